package model

import "time"

type SalesOrderHeader struct {
	SalesOrderID        int        `db:"SalesOrderID" json:"SalesOrderID"`
	RevisionNumber      int        `db:"RevisionNumber" json:"RevisionNumber"`
	OrderDate           time.Time  `db:"OrderDate" json:"OrderDate"`
	DueDate             time.Time  `db:"DueDate" json:"DueDate"`
	ShipDate            *time.Time `db:"ShipDate" json:"ShipDate"`
	Status              int        `db:"Status" json:"Status"`
	SalesOrderNumber    string     `db:"SalesOrderNumber" json:"SalesOrderNumber"`
	PurchaseOrderNumber *string    `db:"PurchaseOrderNumber" json:"PurchaseOrderNumber"`
	AccountNumber       *string    `db:"AccountNumber" json:"AccountNumber"`
	CustomerID          int        `db:"CustomerID" json:"CustomerID"`
	ShipToAddressID     *int       `db:"ShipToAddressID" json:"ShipToAddressID"`
	SubTotal            float64    `db:"SubTotal" json:"SubTotal"`
	TaxAmt              float64    `db:"TaxAmt" json:"TaxAmt"`
	Freight             float64    `db:"Freight" json:"Freight"`
	TotalDue            float64    `db:"TotalDue" json:"TotalDue"`
}

type SalesOrderDetail struct {
	SalesOrderDetailID int     `db:"SalesOrderDetailID" json:"SalesOrderDetailID"`
	SalesOrderID       int     `db:"SalesOrderID" json:"SalesOrderID"`
	ProductID          int     `db:"ProductID" json:"ProductID"`
	OrderQty           int     `db:"OrderQty" json:"OrderQty"`
	UnitPrice          float64 `db:"UnitPrice" json:"UnitPrice"`
	UnitPriceDiscount  float64 `db:"UnitPriceDiscount" json:"UnitPriceDiscount"`
	LineTotal          float64 `db:"LineTotal" json:"LineTotal"`
}
