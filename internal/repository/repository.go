package repository

import (
	"context"
	"errors"

	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/Houeta/staff-api/internal/models"
)

// ErrEmployeeNotFound is returned when no employee row matches the requested id.
var ErrEmployeeNotFound = errors.New("employee not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	FindAllEmployees(ctx context.Context) ([]models.Employee, error)
	FindEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error)
	SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	DeleteEmployee(ctx context.Context, employee models.Employee) error
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}
