package models

import "time"

// Employee represents an employee row stored in the `employee` table.
// ID is nil until the row has been saved for the first time.
type Employee struct {
	ID       *int64
	Username string
	Email    string
	Birthday *time.Time
	Gender   int16
	Salary   float64
}

// EmployeeDTO is the JSON representation of an employee exchanged with clients.
type EmployeeDTO struct {
	ID       *int64  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Birthday *Date   `json:"birthday"`
	Gender   int16   `json:"gender"`
	Salary   float64 `json:"salary"`
}
