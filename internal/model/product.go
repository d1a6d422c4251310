package model

import "time"

type Product struct {
	ProductID         int       `db:"ProductID" json:"ProductID"`
	Name              string    `db:"Name" json:"Name"`
	ProductNumber     string    `db:"ProductNumber" json:"ProductNumber"`
	Color             *string   `db:"Color" json:"Color"`
	StandardCost      float64   `db:"StandardCost" json:"StandardCost"`
	ListPrice         float64   `db:"ListPrice" json:"ListPrice"`
	Size              *string   `db:"Size" json:"Size"`
	Weight            *float64  `db:"Weight" json:"Weight"`
	ProductCategoryID *int      `db:"ProductCategoryID" json:"ProductCategoryID"`
	ProductModelID    *int      `db:"ProductModelID" json:"ProductModelID"`
	SellStartDate     time.Time `db:"SellStartDate" json:"SellStartDate"`
}

type ProductCategory struct {
	ProductCategoryID int    `db:"ProductCategoryID" json:"ProductCategoryID"`
	Name              string `db:"Name" json:"Name"`
}
