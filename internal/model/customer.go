package model

type Customer struct {
	CustomerID   int     `db:"CustomerID" json:"CustomerID"`
	NameStyle    bool    `db:"NameStyle" json:"NameStyle"`
	Title        *string `db:"Title" json:"Title"`
	FirstName    string  `db:"FirstName" json:"FirstName"`
	MiddleName   *string `db:"MiddleName" json:"MiddleName"`
	LastName     string  `db:"LastName" json:"LastName"`
	Suffix       *string `db:"Suffix" json:"Suffix"`
	CompanyName  *string `db:"CompanyName" json:"CompanyName"`
	SalesPerson  *string `db:"SalesPerson" json:"SalesPerson"`
	EmailAddress string  `db:"EmailAddress" json:"EmailAddress"`
	Phone        *string `db:"Phone" json:"Phone"`
	PasswordHash string  `db:"PasswordHash" json:"PasswordHash"`
	PasswordSalt string  `db:"PasswordSalt" json:"PasswordSalt"`
}
