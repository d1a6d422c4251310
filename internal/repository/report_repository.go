package repository

import (
	"database/sql"

	"github.com/dgarciadev/adventureworks-api/internal/model"
)

// Reporting aggregations. All of them are parameterless read-only SELECTs.

const monthlySalesQuery = `
    SELECT
        YEAR(OrderDate) AS [Year],
        MONTH(OrderDate) AS [Month],
        COUNT(*) AS OrderCount,
        SUM(TotalDue) AS TotalSales,
        SUM(SubTotal) AS SubTotal,
        SUM(TaxAmt) AS TaxAmt,
        SUM(Freight) AS Freight
    FROM SalesLT.SalesOrderHeader
    GROUP BY YEAR(OrderDate), MONTH(OrderDate)
`

// MonthlySales aggregates order counts and totals per calendar month, oldest
// month first.
func (r *SalesOrderRepository) MonthlySales() ([]model.MonthlySales, error) {
	rows, err := r.DB.Query(monthlySalesQuery + ` ORDER BY [Year], [Month]`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMonthly(rows)
}

// TopSalesMonth returns only the month with the highest summed TotalDue, or
// nil when there are no orders at all.
func (r *SalesOrderRepository) TopSalesMonth() (*model.MonthlySales, error) {
	query := `SELECT TOP 1 * FROM (` + monthlySalesQuery + `) AS monthly ORDER BY TotalSales DESC`

	var m model.MonthlySales
	err := r.DB.QueryRow(query).Scan(
		&m.Year, &m.Month, &m.OrderCount, &m.TotalSales, &m.SubTotal, &m.TaxAmt, &m.Freight,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// SalesByCategory aggregates distinct orders, quantities and line totals per
// product category, best-selling category first.
func (r *SalesOrderRepository) SalesByCategory() ([]model.CategorySales, error) {
	query := `
        SELECT
            pc.Name AS Category,
            COUNT(DISTINCT soh.SalesOrderID) AS OrderCount,
            SUM(sod.OrderQty) AS TotalQuantity,
            SUM(sod.LineTotal) AS TotalSales
        FROM SalesLT.SalesOrderHeader soh
        JOIN SalesLT.SalesOrderDetail sod ON sod.SalesOrderID = soh.SalesOrderID
        JOIN SalesLT.Product p ON p.ProductID = sod.ProductID
        JOIN SalesLT.ProductCategory pc ON pc.ProductCategoryID = p.ProductCategoryID
        GROUP BY pc.Name
        ORDER BY TotalSales DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []model.CategorySales{}
	for rows.Next() {
		var s model.CategorySales
		if err := rows.Scan(&s.Category, &s.OrderCount, &s.TotalQuantity, &s.TotalSales); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// AverageShippingTime returns the mean days between OrderDate and ShipDate
// over shipped orders. Zero with no error when nothing has shipped yet.
func (r *SalesOrderRepository) AverageShippingTime() (float64, error) {
	query := `
        SELECT AVG(CAST(DATEDIFF(day, OrderDate, ShipDate) AS FLOAT)) AS AvgShippingDays
        FROM SalesLT.SalesOrderHeader
        WHERE ShipDate IS NOT NULL
    `
	var avg sql.NullFloat64
	if err := r.DB.QueryRow(query).Scan(&avg); err != nil {
		return 0, err
	}
	return avg.Float64, nil
}

func collectMonthly(rows *sql.Rows) ([]model.MonthlySales, error) {
	monthly := []model.MonthlySales{}
	for rows.Next() {
		var m model.MonthlySales
		err := rows.Scan(&m.Year, &m.Month, &m.OrderCount, &m.TotalSales, &m.SubTotal, &m.TaxAmt, &m.Freight)
		if err != nil {
			return nil, err
		}
		monthly = append(monthly, m)
	}
	return monthly, rows.Err()
}

type SalesOrderDetailRepositoryInterface interface {
	TopSellingProducts() ([]model.ProductSales, error)
}

type SalesOrderDetailRepository struct {
	DB *sql.DB
}

// TopSellingProducts returns the ten products with the highest summed line
// revenue.
func (r *SalesOrderDetailRepository) TopSellingProducts() ([]model.ProductSales, error) {
	query := `
        SELECT TOP 10
            p.Name AS ProductName,
            SUM(sod.OrderQty) AS TotalQuantity,
            SUM(sod.LineTotal) AS TotalRevenue
        FROM SalesLT.SalesOrderDetail sod
        JOIN SalesLT.Product p ON p.ProductID = sod.ProductID
        GROUP BY p.Name
        ORDER BY TotalRevenue DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.ProductSales{}
	for rows.Next() {
		var p model.ProductSales
		if err := rows.Scan(&p.ProductName, &p.TotalQuantity, &p.TotalRevenue); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ SalesOrderDetailRepositoryInterface = (*SalesOrderDetailRepository)(nil)
