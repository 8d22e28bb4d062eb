package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryEquipment Category = "EQUIPMENT"
	CategoryFacility  Category = "FACILITY"
	CategoryTravel    Category = "TRAVEL"
	CategorySalary    Category = "SALARY"
	CategoryOther     Category = "OTHER"
)

var CategoryValues = []string{
	string(CategoryEquipment),
	string(CategoryFacility),
	string(CategoryTravel),
	string(CategorySalary),
	string(CategoryOther),
}

type Expense struct {
	ID          string          `json:"id"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IncurredOn  time.Time       `json:"incurred_on"`
	RecordedBy  string          `json:"recorded_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MonthlyTotal is the per-category spend for one calendar month.
type MonthlyTotal struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
