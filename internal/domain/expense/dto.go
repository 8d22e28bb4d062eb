package expense

import (
	"strings"

	"github.com/goalline/academy-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IncurredOn  string          `json:"incurred_on"` // "YYYY-MM-DD"
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(CategoryValues, ", "),
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}
	if _, ok := validator.IsValidDate(r.IncurredOn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "incurred_on",
			Message: "incurred_on must be a valid YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
