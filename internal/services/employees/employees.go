package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Houeta/staff-api/internal/lib/logger/sl"
	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/Houeta/staff-api/internal/models"
	"github.com/Houeta/staff-api/internal/repository"
)

// ErrEmployeeNotFound is returned by FindByID when no employee has the requested id.
var ErrEmployeeNotFound = fmt.Errorf("employee service: %w", repository.ErrEmployeeNotFound)

type Staff struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

func (s *Staff) record(operation string, err error) {
	if s.metrics == nil {
		return
	}

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusFailure
	}
	s.metrics.EmployeeOperations.WithLabelValues(operation, status).Inc()
}

// FindAll returns every stored employee. An empty store yields an empty, non-nil slice.
func (s *Staff) FindAll(ctx context.Context) ([]models.EmployeeDTO, error) {
	const opn = "Employee.FindAll"
	log := s.initLogger(opn)

	employees, err := s.repo.FindAllEmployees(ctx)
	s.record(metrics.OpFindAll, err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch employees", sl.Err(err))
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}

	result := make([]models.EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		result = append(result, ToDTO(employee))
	}

	log.DebugContext(ctx, "Employees fetched", "count", len(result))

	return result, nil
}

// FindByID returns the employee with the given id or ErrEmployeeNotFound.
func (s *Staff) FindByID(ctx context.Context, identifier int64) (models.EmployeeDTO, error) {
	const opn = "Employee.FindByID"
	log := s.initLogger(opn)

	employee, err := s.repo.FindEmployeeByID(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			s.record(metrics.OpFindByID, nil)
			log.DebugContext(ctx, "Employee not found", "id", identifier)
			return models.EmployeeDTO{}, ErrEmployeeNotFound
		}
		s.record(metrics.OpFindByID, err)
		log.ErrorContext(ctx, "Failed to fetch employee", "id", identifier, sl.Err(err))
		return models.EmployeeDTO{}, fmt.Errorf("failed to find employee %d: %w", identifier, err)
	}
	s.record(metrics.OpFindByID, nil)

	return ToDTO(employee), nil
}

// Save inserts the employee when it carries no id, or fully replaces the stored row otherwise,
// and returns the persisted state.
func (s *Staff) Save(ctx context.Context, dto models.EmployeeDTO) (models.EmployeeDTO, error) {
	const opn = "Employee.Save"
	log := s.initLogger(opn)

	saved, err := s.repo.SaveEmployee(ctx, ToEntity(dto))
	s.record(metrics.OpSave, err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to save employee", "username", dto.Username, sl.Err(err))
		return models.EmployeeDTO{}, fmt.Errorf("failed to save employee '%s': %w", dto.Username, err)
	}

	result := ToDTO(saved)
	if result.ID != nil {
		log.InfoContext(ctx, "Employee saved", "id", *result.ID)
	}

	return result, nil
}

// Delete removes the employee identified by the transfer object's id. Missing rows are not reported.
func (s *Staff) Delete(ctx context.Context, dto models.EmployeeDTO) error {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	err := s.repo.DeleteEmployee(ctx, ToEntity(dto))
	s.record(metrics.OpDelete, err)
	if err != nil {
		log.ErrorContext(ctx, "Failed to delete employee", sl.Err(err))
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if dto.ID != nil {
		log.InfoContext(ctx, "Employee deleted", "id", *dto.ID)
	}

	return nil
}
