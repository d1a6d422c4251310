package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/dgarciadev/adventureworks-api/internal/errors"
	"github.com/dgarciadev/adventureworks-api/internal/model"
)

type ProductRepositoryInterface interface {
	List(sortBy, sortDirection string, categoryID int, searchTerm string) ([]model.Product, error)
	ListCategories() ([]model.ProductCategory, error)
	GetByID(id int) (*model.Product, error)
	Create(p *model.Product) error
	Update(p *model.Product) error
	Delete(id int) error
}

type ProductRepository struct {
	DB *sql.DB
}

var productSortColumns = map[string]string{
	"name":         "Name",
	"listprice":    "ListPrice",
	"standardcost": "StandardCost",
}

const productColumns = `ProductID, Name, ProductNumber, Color, StandardCost, ListPrice, Size, Weight, ProductCategoryID, ProductModelID, SellStartDate`

func scanProduct(row interface{ Scan(...interface{}) error }, p *model.Product) error {
	return row.Scan(
		&p.ProductID, &p.Name, &p.ProductNumber, &p.Color, &p.StandardCost,
		&p.ListPrice, &p.Size, &p.Weight, &p.ProductCategoryID,
		&p.ProductModelID, &p.SellStartDate,
	)
}

// List filters by name match and category. A categoryID of zero or less means
// no category filter.
func (r *ProductRepository) List(sortBy, sortDirection string, categoryID int, searchTerm string) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM SalesLT.Product WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if searchTerm != "" {
		query += fmt.Sprintf(" AND Name LIKE @p%d", argPos)
		args = append(args, "%"+searchTerm+"%")
		argPos++
	}
	if categoryID > 0 {
		query += fmt.Sprintf(" AND ProductCategoryID = @p%d", argPos)
		args = append(args, categoryID)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY %s %s",
		sortColumn(productSortColumns, sortBy, "Name"),
		orderDirection(sortDirection),
	)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) ListCategories() ([]model.ProductCategory, error) {
	rows, err := r.DB.Query(`SELECT ProductCategoryID, Name FROM SalesLT.ProductCategory`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []model.ProductCategory{}
	for rows.Next() {
		var c model.ProductCategory
		if err := rows.Scan(&c.ProductCategoryID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) GetByID(id int) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM SalesLT.Product WHERE ProductID = @p1`

	var p model.Product
	if err := scanProduct(r.DB.QueryRow(query, id), &p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &p, nil
}

// Create verifies the product name is not taken before inserting, same
// two-step shape as CustomerRepository.Create.
func (r *ProductRepository) Create(p *model.Product) error {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM SalesLT.Product WHERE Name = @p1`,
		p.Name,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewConflict("El producto con Name: '%s' ya existe", p.Name)
	}

	query := `
        INSERT INTO SalesLT.Product
        (Name, ProductNumber, Color, StandardCost, ListPrice, Size, Weight, ProductCategoryID, ProductModelID, SellStartDate)
        OUTPUT INSERTED.ProductID
        VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9, @p10)
    `
	err = r.DB.QueryRow(query,
		p.Name, p.ProductNumber, p.Color, p.StandardCost, p.ListPrice,
		p.Size, p.Weight, p.ProductCategoryID, p.ProductModelID, p.SellStartDate,
	).Scan(&p.ProductID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflict("El producto con Name: '%s' ya existe", p.Name)
		}
		return err
	}
	return nil
}

func (r *ProductRepository) Update(p *model.Product) error {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM SalesLT.Product WHERE ProductID = @p1`,
		p.ProductID,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NewNotFound("El producto con ID %d no existe en la base de datos", p.ProductID)
	}

	query := `
        UPDATE SalesLT.Product
        SET Name = @p1, ProductNumber = @p2, Color = @p3, StandardCost = @p4,
            ListPrice = @p5, Size = @p6, Weight = @p7, ProductCategoryID = @p8,
            ProductModelID = @p9
        WHERE ProductID = @p10
    `
	_, err = r.DB.Exec(query,
		p.Name, p.ProductNumber, p.Color, p.StandardCost, p.ListPrice,
		p.Size, p.Weight, p.ProductCategoryID, p.ProductModelID,
		p.ProductID,
	)
	return err
}

func (r *ProductRepository) Delete(id int) error {
	result, err := r.DB.Exec(`DELETE FROM SalesLT.Product WHERE ProductID = @p1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewNotFound("El producto no existe o ya fue eliminado")
	}
	return nil
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
