package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/staff-api/internal/models"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, username, email, birthday, gender, salary`

// observe records the duration of the query labelled queryType.
func (r *Repository) observe(queryType string, startTime time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}

// FindAllEmployees returns every stored employee ordered by id. An empty table yields an empty slice.
func (r *Repository) FindAllEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("find_all_employees", time.Now())

	query := `SELECT id, username, email, birthday, gender, salary FROM employee ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", scanErr)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// FindEmployeeByID retrieves an employee from the database by their ID.
// It returns ErrEmployeeNotFound when no row matches.
func (r *Repository) FindEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	defer r.observe("find_employee_by_id", time.Now())

	query := `SELECT id, username, email, birthday, gender, salary FROM employee WHERE id = $1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return employee, nil
}

// SaveEmployee inserts the employee when it has no ID, otherwise replaces every column of the row
// with that ID. An ID that matches no row is treated as a new employee and gets a generated ID.
// The stored state is returned.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	if employee.ID == nil {
		return r.insertEmployee(ctx, employee)
	}

	updated, err := r.updateEmployee(ctx, employee)
	if errors.Is(err, ErrEmployeeNotFound) {
		return r.insertEmployee(ctx, employee)
	}

	return updated, err
}

func (r *Repository) insertEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("insert_employee", time.Now())

	query := `
		INSERT INTO employee (username, email, birthday, gender, salary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + employeeColumns + `;
	`

	saved, err := scanEmployee(r.db.QueryRow(ctx, query,
		employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return saved, nil
}

func (r *Repository) updateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("update_employee", time.Now())

	query := `
		UPDATE employee
		SET username = $2, email = $3, birthday = $4, gender = $5, salary = $6
		WHERE id = $1
		RETURNING ` + employeeColumns + `;
	`

	updated, err := scanEmployee(r.db.QueryRow(ctx, query,
		*employee.ID, employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to update employee data: %w", err)
	}

	return updated, nil
}

// DeleteEmployee removes the row matching the employee ID. Deleting an unsaved employee
// or an ID that matches no row is a no-op.
func (r *Repository) DeleteEmployee(ctx context.Context, employee models.Employee) error {
	if employee.ID == nil {
		return nil
	}

	defer r.observe("delete_employee", time.Now())

	query := `DELETE FROM employee WHERE id = $1`

	_, err := r.db.Exec(ctx, query, *employee.ID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var (
		result models.Employee
		id     int64
	)

	if err := row.Scan(&id, &result.Username, &result.Email, &result.Birthday, &result.Gender, &result.Salary); err != nil {
		return models.Employee{}, err //nolint:wrapcheck // callers wrap with the operation name
	}
	result.ID = &id

	return result, nil
}
