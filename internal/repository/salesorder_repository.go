package repository

import (
	"database/sql"
	"fmt"

	apperrors "github.com/dgarciadev/adventureworks-api/internal/errors"
	"github.com/dgarciadev/adventureworks-api/internal/model"
	"github.com/dgarciadev/adventureworks-api/internal/seed"
)

type SalesOrderRepositoryInterface interface {
	List(customerID int) ([]model.SalesOrderHeader, error)
	GetByID(id int) (*model.SalesOrderHeader, error)
	Create(o *model.SalesOrderHeader) error
	Update(o *model.SalesOrderHeader) error
	Delete(id int) error
	SeedTestOrders(n int) (int, error)

	MonthlySales() ([]model.MonthlySales, error)
	SalesByCategory() ([]model.CategorySales, error)
	AverageShippingTime() (float64, error)
	TopSalesMonth() (*model.MonthlySales, error)
}

type SalesOrderRepository struct {
	DB *sql.DB
}

const salesOrderColumns = `SalesOrderID, RevisionNumber, OrderDate, DueDate, ShipDate, Status, SalesOrderNumber, PurchaseOrderNumber, AccountNumber, CustomerID, ShipToAddressID, SubTotal, TaxAmt, Freight, TotalDue`

func scanSalesOrder(row interface{ Scan(...interface{}) error }, o *model.SalesOrderHeader) error {
	return row.Scan(
		&o.SalesOrderID, &o.RevisionNumber, &o.OrderDate, &o.DueDate, &o.ShipDate,
		&o.Status, &o.SalesOrderNumber, &o.PurchaseOrderNumber, &o.AccountNumber,
		&o.CustomerID, &o.ShipToAddressID, &o.SubTotal, &o.TaxAmt, &o.Freight,
		&o.TotalDue,
	)
}

// List returns every order, optionally narrowed to one customer when
// customerID is positive.
func (r *SalesOrderRepository) List(customerID int) ([]model.SalesOrderHeader, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM SalesLT.SalesOrderHeader WHERE 1=1`
	args := []interface{}{}

	if customerID > 0 {
		query += " AND CustomerID = @p1"
		args = append(args, customerID)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.SalesOrderHeader{}
	for rows.Next() {
		var o model.SalesOrderHeader
		if err := scanSalesOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *SalesOrderRepository) GetByID(id int) (*model.SalesOrderHeader, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM SalesLT.SalesOrderHeader WHERE SalesOrderID = @p1`

	var o model.SalesOrderHeader
	if err := scanSalesOrder(r.DB.QueryRow(query, id), &o); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &o, nil
}

func (r *SalesOrderRepository) Create(o *model.SalesOrderHeader) error {
	query := `
        INSERT INTO SalesLT.SalesOrderHeader
        (RevisionNumber, OrderDate, DueDate, ShipDate, Status, PurchaseOrderNumber, AccountNumber, CustomerID, ShipToAddressID)
        OUTPUT INSERTED.SalesOrderID
        VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9)
    `
	return r.DB.QueryRow(query,
		o.RevisionNumber, o.OrderDate, o.DueDate, o.ShipDate, o.Status,
		o.PurchaseOrderNumber, o.AccountNumber, o.CustomerID, o.ShipToAddressID,
	).Scan(&o.SalesOrderID)
}

func (r *SalesOrderRepository) Update(o *model.SalesOrderHeader) error {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM SalesLT.SalesOrderHeader WHERE SalesOrderID = @p1`,
		o.SalesOrderID,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NewNotFound("El pedido con ID %d no existe en la base de datos", o.SalesOrderID)
	}

	query := `
        UPDATE SalesLT.SalesOrderHeader
        SET RevisionNumber = @p1, OrderDate = @p2, DueDate = @p3, ShipDate = @p4,
            Status = @p5, PurchaseOrderNumber = @p6, AccountNumber = @p7,
            CustomerID = @p8, ShipToAddressID = @p9
        WHERE SalesOrderID = @p10
    `
	_, err = r.DB.Exec(query,
		o.RevisionNumber, o.OrderDate, o.DueDate, o.ShipDate, o.Status,
		o.PurchaseOrderNumber, o.AccountNumber, o.CustomerID, o.ShipToAddressID,
		o.SalesOrderID,
	)
	return err
}

func (r *SalesOrderRepository) Delete(id int) error {
	result, err := r.DB.Exec(`DELETE FROM SalesLT.SalesOrderHeader WHERE SalesOrderID = @p1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewNotFound("El pedido no existe o ya fue eliminado")
	}
	return nil
}

// SeedTestOrders inserts n generated orders with their detail lines and
// returns how many orders were written. Each row is its own autocommit
// statement, a failure leaves the earlier orders in place.
func (r *SalesOrderRepository) SeedTestOrders(n int) (int, error) {
	inserted := 0

	for _, o := range seed.Orders(n) {
		headerQuery := `
            INSERT INTO SalesLT.SalesOrderHeader
            (RevisionNumber, OrderDate, DueDate, ShipDate, Status, OnlineOrderFlag, PurchaseOrderNumber, AccountNumber, CustomerID, ShipToAddressID, BillToAddressID, ShipMethod, SubTotal, TaxAmt, Freight, rowguid, ModifiedDate)
            OUTPUT INSERTED.SalesOrderID
            VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9, @p10, @p11, @p12, @p13, @p14, @p15, @p16, @p17)
        `
		var orderID int
		err := r.DB.QueryRow(headerQuery,
			o.RevisionNumber, o.OrderDate, o.DueDate, o.ShipDate, o.Status,
			o.OnlineOrderFlag, o.PurchaseOrderNumber, o.AccountNumber,
			o.CustomerID, o.ShipToAddressID, o.BillToAddressID, o.ShipMethod,
			o.SubTotal, o.TaxAmt, o.Freight, o.RowGUID, o.OrderDate,
		).Scan(&orderID)
		if err != nil {
			return inserted, fmt.Errorf("insertar pedido de prueba: %w", err)
		}

		detailQuery := `
            INSERT INTO SalesLT.SalesOrderDetail
            (SalesOrderID, OrderQty, ProductID, UnitPrice, UnitPriceDiscount, rowguid, ModifiedDate)
            VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7)
        `
		for _, d := range o.Details {
			_, err := r.DB.Exec(detailQuery,
				orderID, d.OrderQty, d.ProductID, d.UnitPrice,
				d.UnitPriceDiscount, d.RowGUID, o.OrderDate,
			)
			if err != nil {
				return inserted, fmt.Errorf("insertar detalle de pedido de prueba: %w", err)
			}
		}

		inserted++
	}

	return inserted, nil
}

var _ SalesOrderRepositoryInterface = (*SalesOrderRepository)(nil)
