package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/Houeta/staff-api/internal/models"
	"github.com/Houeta/staff-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const findAllEmployeesQuery = `SELECT id, username, email, birthday, gender, salary FROM employee ORDER BY id`

const findEmployeeByIDQuery = `SELECT id, username, email, birthday, gender, salary FROM employee WHERE id = $1`

const insertEmployeeQuery = `
		INSERT INTO employee (username, email, birthday, gender, salary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, birthday, gender, salary;
	`

const updateEmployeeQuery = `
		UPDATE employee
		SET username = $2, email = $3, birthday = $4, gender = $5, salary = $6
		WHERE id = $1
		RETURNING id, username, email, birthday, gender, salary;
	`

const deleteEmployeeQuery = `DELETE FROM employee WHERE id = $1`

var employeeColumns = []string{"id", "username", "email", "birthday", "gender", "salary"}

func newRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.EmployeeRepoIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mock.Close)

	return mock, repository.NewEmployeeRepository(mock, metrics.NewMetrics(prometheus.NewRegistry()))
}

func int64Ptr(v int64) *int64 { return &v }

func birthday() *time.Time {
	date := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &date
}

func antoine() models.Employee {
	return models.Employee{
		Username: "antoine",
		Email:    "antoine@x.com",
		Birthday: birthday(),
		Gender:   1,
		Salary:   3456.0,
	}
}

func TestFindAllEmployees_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	rows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(1), "antoine", "antoine@x.com", birthday(), int16(1), 3456.0).
		AddRow(int64(2), "toto", "toto@x.com", (*time.Time)(nil), int16(2), 1200.5)

	mock.ExpectQuery(regexp.QuoteMeta(findAllEmployeesQuery)).WillReturnRows(rows)

	employees, err := repo.FindAllEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, int64(1), *employees[0].ID)
	assert.Equal(t, "antoine", employees[0].Username)
	assert.Equal(t, birthday(), employees[0].Birthday)
	assert.Equal(t, int64(2), *employees[1].ID)
	assert.Nil(t, employees[1].Birthday)
	assert.InDelta(t, 1200.5, employees[1].Salary, 0.0001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllEmployees_Empty(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findAllEmployeesQuery)).WillReturnRows(pgxmock.NewRows(employeeColumns))

	employees, err := repo.FindAllEmployees(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllEmployees_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findAllEmployeesQuery)).WillReturnError(assert.AnError)

	employees, err := repo.FindAllEmployees(context.Background())

	require.EqualError(t, err, "failed to query employees: "+assert.AnError.Error())
	assert.Nil(t, employees)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEmployeeByID_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	expected := antoine()
	expected.ID = int64Ptr(5)

	rows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(5), expected.Username, expected.Email, expected.Birthday, expected.Gender, expected.Salary)
	mock.ExpectQuery(regexp.QuoteMeta(findEmployeeByIDQuery)).WithArgs(int64(5)).WillReturnRows(rows)

	actual, err := repo.FindEmployeeByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEmployeeByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findEmployeeByIDQuery)).WithArgs(int64(42)).WillReturnError(pgx.ErrNoRows)

	actual, err := repo.FindEmployeeByID(context.Background(), 42)

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	assert.Equal(t, models.Employee{}, actual)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEmployeeByID_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findEmployeeByIDQuery)).WithArgs(int64(123)).WillReturnError(assert.AnError)

	actual, err := repo.FindEmployeeByID(context.Background(), 123)

	require.EqualError(t, err, "failed to get employee by id: "+assert.AnError.Error())
	require.NotErrorIs(t, err, repository.ErrEmployeeNotFound)
	assert.IsType(t, models.Employee{}, actual)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEmployee_Insert(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	employee := antoine()
	rows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(7), employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary)

	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs(employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary).
		WillReturnRows(rows)

	saved, err := repo.SaveEmployee(context.Background(), employee)

	require.NoError(t, err)
	require.NotNil(t, saved.ID)
	assert.Equal(t, int64(7), *saved.ID)
	saved.ID = nil
	assert.Equal(t, employee, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEmployee_InsertError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	employee := antoine()
	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs(employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary).
		WillReturnError(assert.AnError)

	_, err := repo.SaveEmployee(context.Background(), employee)

	require.EqualError(t, err, "failed to save employee: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEmployee_Update(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	employee := antoine()
	employee.ID = int64Ptr(5)
	employee.Username = "toto"

	rows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(5), "toto", employee.Email, employee.Birthday, employee.Gender, employee.Salary)
	mock.ExpectQuery(regexp.QuoteMeta(updateEmployeeQuery)).
		WithArgs(int64(5), "toto", employee.Email, employee.Birthday, employee.Gender, employee.Salary).
		WillReturnRows(rows)

	saved, err := repo.SaveEmployee(context.Background(), employee)

	require.NoError(t, err)
	assert.Equal(t, employee, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEmployee_UpdateUnknownIDInserts(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	employee := antoine()
	employee.ID = int64Ptr(99)

	mock.ExpectQuery(regexp.QuoteMeta(updateEmployeeQuery)).
		WithArgs(int64(99), employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary).
		WillReturnError(pgx.ErrNoRows)

	rows := pgxmock.NewRows(employeeColumns).
		AddRow(int64(8), employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary)
	mock.ExpectQuery(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs(employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary).
		WillReturnRows(rows)

	saved, err := repo.SaveEmployee(context.Background(), employee)

	require.NoError(t, err)
	assert.Equal(t, int64(8), *saved.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEmployee_UpdateError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	employee := antoine()
	employee.ID = int64Ptr(5)

	mock.ExpectQuery(regexp.QuoteMeta(updateEmployeeQuery)).
		WithArgs(int64(5), employee.Username, employee.Email, employee.Birthday, employee.Gender, employee.Salary).
		WillReturnError(assert.AnError)

	_, err := repo.SaveEmployee(context.Background(), employee)

	require.EqualError(t, err, "failed to update employee data: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	employee := antoine()
	employee.ID = int64Ptr(5)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.DeleteEmployee(context.Background(), employee)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteEmployee(context.Background(), models.Employee{ID: int64Ptr(404)})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_WithoutIDSkipsDatabase(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	err := repo.DeleteEmployee(context.Background(), antoine())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(int64(5)).
		WillReturnError(assert.AnError)

	err := repo.DeleteEmployee(context.Background(), models.Employee{ID: int64Ptr(5)})

	require.EqualError(t, err, "failed to delete employee: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
