package model

// Aggregation rows returned by the reporting queries. They are shaped exactly
// like the SELECT column lists, no post-processing happens in Go.

type MonthlySales struct {
	Year       int     `db:"Year" json:"Year"`
	Month      int     `db:"Month" json:"Month"`
	OrderCount int     `db:"OrderCount" json:"OrderCount"`
	TotalSales float64 `db:"TotalSales" json:"TotalSales"`
	SubTotal   float64 `db:"SubTotal" json:"SubTotal"`
	TaxAmt     float64 `db:"TaxAmt" json:"TaxAmt"`
	Freight    float64 `db:"Freight" json:"Freight"`
}

type CategorySales struct {
	Category      string  `db:"Category" json:"Category"`
	OrderCount    int     `db:"OrderCount" json:"OrderCount"`
	TotalQuantity int     `db:"TotalQuantity" json:"TotalQuantity"`
	TotalSales    float64 `db:"TotalSales" json:"TotalSales"`
}

type ProductSales struct {
	ProductName   string  `db:"ProductName" json:"ProductName"`
	TotalQuantity int     `db:"TotalQuantity" json:"TotalQuantity"`
	TotalRevenue  float64 `db:"TotalRevenue" json:"TotalRevenue"`
}
