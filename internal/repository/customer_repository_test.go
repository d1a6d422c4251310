package repository

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/dgarciadev/adventureworks-api/internal/errors"
	"github.com/dgarciadev/adventureworks-api/internal/model"
)

var customerRowColumns = []string{
	"CustomerID", "NameStyle", "Title", "FirstName", "MiddleName", "LastName",
	"Suffix", "CompanyName", "SalesPerson", "EmailAddress", "Phone",
	"PasswordHash", "PasswordSalt",
}

func customerRow(id int, firstName, lastName, email string) []driver.Value {
	return []driver.Value{
		id, false, nil, firstName, nil, lastName, nil, nil, nil, email, nil, "hash", "salt",
	}
}

func newCustomerRepo(t *testing.T) (*CustomerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &CustomerRepository{DB: db}, mock
}

func TestCustomerListSearchTermMatchesBothNameColumns(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery(`FROM SalesLT\.Customer WHERE 1=1 AND \(FirstName LIKE @p1 OR LastName LIKE @p2\) ORDER BY FirstName ASC`).
		WithArgs("%John%", "%John%").
		WillReturnRows(sqlmock.NewRows(customerRowColumns).
			AddRow(customerRow(1, "John", "Doe", "john@adventure-works.com")...))

	customers, err := repo.List("", "", "John")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "John", customers[0].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerListSortColumnAllowList(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	// A column outside the allow-list must fall back to FirstName, never be
	// interpolated into the statement.
	mock.ExpectQuery(`FROM SalesLT\.Customer WHERE 1=1 ORDER BY FirstName DESC`).
		WillReturnRows(sqlmock.NewRows(customerRowColumns))

	_, err := repo.List("PasswordHash; DROP TABLE SalesLT.Customer", "desc", "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerListSortDirectionDefaultsToAsc(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery(`ORDER BY LastName ASC`).
		WillReturnRows(sqlmock.NewRows(customerRowColumns))

	_, err := repo.List("lastname", "sideways", "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerGetByIDReturnsNilWhenAbsent(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery(`FROM SalesLT\.Customer WHERE CustomerID = @p1`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(customerRowColumns))

	customer, err := repo.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, customer)
}

func TestCustomerCreateRejectsDuplicateEmailWithoutInserting(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM SalesLT\.Customer WHERE EmailAddress = @p1`).
		WithArgs("jane@adventure-works.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.Create(&model.Customer{
		FirstName:    "Jane",
		LastName:     "Doe",
		EmailAddress: "jane@adventure-works.com",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "ya existe")
	// No INSERT was expected, so a stray insert fails here.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerCreateInsertsAndReturnsID(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM SalesLT\.Customer WHERE EmailAddress = @p1`).
		WithArgs("jane@adventure-works.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO SalesLT\.Customer`).
		WillReturnRows(sqlmock.NewRows([]string{"CustomerID"}).AddRow(30127))

	customer := &model.Customer{
		FirstName:    "Jane",
		LastName:     "Doe",
		EmailAddress: "jane@adventure-works.com",
	}
	require.NoError(t, repo.Create(customer))
	assert.Equal(t, 30127, customer.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpdateRejectsMissingRow(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM SalesLT\.Customer WHERE CustomerID = @p1`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.Update(&model.Customer{CustomerID: 999, FirstName: "Jane"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerUpdateOverwritesAllColumns(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM SalesLT\.Customer WHERE CustomerID = @p1`).
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`UPDATE SalesLT\.Customer`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(&model.Customer{
		CustomerID:   12,
		FirstName:    "Jane",
		LastName:     "Doe",
		EmailAddress: "jane@adventure-works.com",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDeleteRejectsWhenNoRowAffected(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectExec(`DELETE FROM SalesLT\.Customer WHERE CustomerID = @p1`).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCustomerDeleteSucceedsWhenRowAffected(t *testing.T) {
	repo, mock := newCustomerRepo(t)

	mock.ExpectExec(`DELETE FROM SalesLT\.Customer WHERE CustomerID = @p1`).
		WithArgs(12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(12))
}
