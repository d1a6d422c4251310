package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/dgarciadev/adventureworks-api/internal/errors"
	"github.com/dgarciadev/adventureworks-api/internal/model"
)

type CustomerRepositoryInterface interface {
	List(sortBy, sortDirection, searchTerm string) ([]model.Customer, error)
	GetByID(id int) (*model.Customer, error)
	Create(c *model.Customer) error
	Update(c *model.Customer) error
	Delete(id int) error
}

type CustomerRepository struct {
	DB *sql.DB
}

var customerSortColumns = map[string]string{
	"customerid":   "CustomerID",
	"firstname":    "FirstName",
	"lastname":     "LastName",
	"emailaddress": "EmailAddress",
	"companyname":  "CompanyName",
}

const customerColumns = `CustomerID, NameStyle, Title, FirstName, MiddleName, LastName, Suffix, CompanyName, SalesPerson, EmailAddress, Phone, PasswordHash, PasswordSalt`

func scanCustomer(row interface{ Scan(...interface{}) error }, c *model.Customer) error {
	return row.Scan(
		&c.CustomerID, &c.NameStyle, &c.Title, &c.FirstName, &c.MiddleName,
		&c.LastName, &c.Suffix, &c.CompanyName, &c.SalesPerson,
		&c.EmailAddress, &c.Phone, &c.PasswordHash, &c.PasswordSalt,
	)
}

func (r *CustomerRepository) List(sortBy, sortDirection, searchTerm string) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM SalesLT.Customer WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if searchTerm != "" {
		query += fmt.Sprintf(" AND (FirstName LIKE @p%d OR LastName LIKE @p%d)", argPos, argPos+1)
		args = append(args, "%"+searchTerm+"%", "%"+searchTerm+"%")
		argPos += 2
	}

	query += fmt.Sprintf(" ORDER BY %s %s",
		sortColumn(customerSortColumns, sortBy, "FirstName"),
		orderDirection(sortDirection),
	)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM SalesLT.Customer WHERE CustomerID = @p1`

	var c model.Customer
	if err := scanCustomer(r.DB.QueryRow(query, id), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &c, nil
}

// Create verifies the email is not taken before inserting. The check and the
// insert are separate statements, the unique index on EmailAddress is the
// final arbiter when two creates race.
func (r *CustomerRepository) Create(c *model.Customer) error {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM SalesLT.Customer WHERE EmailAddress = @p1`,
		c.EmailAddress,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewConflict("El cliente con EmailAddress: '%s' ya existe", c.EmailAddress)
	}

	query := `
        INSERT INTO SalesLT.Customer
        (NameStyle, Title, FirstName, MiddleName, LastName, Suffix, CompanyName, SalesPerson, EmailAddress, Phone, PasswordHash, PasswordSalt)
        OUTPUT INSERTED.CustomerID
        VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9, @p10, @p11, @p12)
    `
	err = r.DB.QueryRow(query,
		c.NameStyle, c.Title, c.FirstName, c.MiddleName, c.LastName, c.Suffix,
		c.CompanyName, c.SalesPerson, c.EmailAddress, c.Phone, c.PasswordHash, c.PasswordSalt,
	).Scan(&c.CustomerID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflict("El cliente con EmailAddress: '%s' ya existe", c.EmailAddress)
		}
		return err
	}
	return nil
}

// Update overwrites every mutable column after confirming the row exists.
func (r *CustomerRepository) Update(c *model.Customer) error {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM SalesLT.Customer WHERE CustomerID = @p1`,
		c.CustomerID,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NewNotFound("El cliente con ID %d no existe en la base de datos", c.CustomerID)
	}

	query := `
        UPDATE SalesLT.Customer
        SET NameStyle = @p1, Title = @p2, FirstName = @p3, MiddleName = @p4,
            LastName = @p5, Suffix = @p6, CompanyName = @p7, SalesPerson = @p8,
            EmailAddress = @p9, Phone = @p10, PasswordHash = @p11, PasswordSalt = @p12
        WHERE CustomerID = @p13
    `
	_, err = r.DB.Exec(query,
		c.NameStyle, c.Title, c.FirstName, c.MiddleName, c.LastName, c.Suffix,
		c.CompanyName, c.SalesPerson, c.EmailAddress, c.Phone, c.PasswordHash, c.PasswordSalt,
		c.CustomerID,
	)
	return err
}

func (r *CustomerRepository) Delete(id int) error {
	result, err := r.DB.Exec(`DELETE FROM SalesLT.Customer WHERE CustomerID = @p1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewNotFound("El cliente no existe o ya fue eliminado")
	}
	return nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
