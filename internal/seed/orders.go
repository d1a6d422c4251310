// Package seed generates random sales orders against the well-known
// AdventureWorksLT sample ids, for load and reporting experiments.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var productIDs = []int{
	980, 771, 977, 818, 748, 975, 884, 791, 775, 848, 715, 781, 912, 830, 950,
}

var customerIDs = []int{
	12, 29784, 451, 29606, 200, 29603, 294, 29636, 29780, 29, 29567, 128, 29813,
	523, 281,
}

var addressIDs = []int{
	451, 466, 467, 475, 487, 502, 504, 505, 519, 526, 546, 553, 558, 28, 1023,
}

const shipMethod = "CARGO TRANSPORT 5"

// poCounter numbers generated purchase orders, continuing past the range the
// sample database ships with.
var poCounter = 80000

type Order struct {
	RevisionNumber      int
	OrderDate           time.Time
	DueDate             time.Time
	ShipDate            time.Time
	Status              int
	OnlineOrderFlag     bool
	PurchaseOrderNumber string
	AccountNumber       string
	CustomerID          int
	ShipToAddressID     int
	BillToAddressID     int
	ShipMethod          string
	SubTotal            float64
	TaxAmt              float64
	Freight             float64
	TotalDue            float64
	RowGUID             string
	Details             []OrderDetail
}

type OrderDetail struct {
	OrderQty          int
	ProductID         int
	UnitPrice         float64
	UnitPriceDiscount float64
	LineTotal         float64
	RowGUID           string
}

// Orders builds n random shipped orders, each with 2 to 4 detail lines.
// TaxAmt is 10% of the subtotal and Freight 5%, mirroring the sample data.
func Orders(n int) []Order {
	orders := make([]Order, 0, n)
	now := time.Now()

	for i := 0; i < n; i++ {
		lineCount := rand.Intn(3) + 2
		details := make([]OrderDetail, 0, lineCount)

		var subTotal float64
		for j := 0; j < lineCount; j++ {
			qty := rand.Intn(5) + 1
			unitPrice := roundTo(50+rand.Float64()*450, 3)
			lineTotal := roundTo(float64(qty)*unitPrice, 3)
			subTotal += lineTotal

			details = append(details, OrderDetail{
				OrderQty:          qty,
				ProductID:         pick(productIDs),
				UnitPrice:         unitPrice,
				UnitPriceDiscount: 0,
				LineTotal:         lineTotal,
				RowGUID:           newGUID(),
			})
		}

		taxAmt := roundTo(subTotal*0.1, 3)
		freight := roundTo(subTotal*0.05, 3)

		poCounter++
		orders = append(orders, Order{
			RevisionNumber:      1,
			OrderDate:           now,
			DueDate:             now,
			ShipDate:            now,
			Status:              5,
			OnlineOrderFlag:     true,
			PurchaseOrderNumber: fmt.Sprintf("PO%d", poCounter),
			AccountNumber:       fmt.Sprintf("10-4020-%d", poCounter),
			CustomerID:          pick(customerIDs),
			ShipToAddressID:     pick(addressIDs),
			BillToAddressID:     pick(addressIDs),
			ShipMethod:          shipMethod,
			SubTotal:            subTotal,
			TaxAmt:              taxAmt,
			Freight:             freight,
			TotalDue:            roundTo(subTotal+taxAmt+freight, 3),
			RowGUID:             newGUID(),
			Details:             details,
		})
	}

	return orders
}

func pick(ids []int) int {
	return ids[rand.Intn(len(ids))]
}

func roundTo(v float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}

func newGUID() string {
	return uuid.NewString()
}
