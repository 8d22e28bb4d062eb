package athlete

import (
	"strings"

	"github.com/goalline/academy-backend-go/internal/pkg/validator"
)

type CreateAthleteRequest struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	DateOfBirth   string  `json:"date_of_birth"` // "YYYY-MM-DD"
	Position      *string `json:"position,omitempty"`
	GuardianName  string  `json:"guardian_name"`
	GuardianEmail string  `json:"guardian_email"`
	GuardianPhone string  `json:"guardian_phone"`
	BatchID       *string `json:"batch_id,omitempty"`
}

func (r *CreateAthleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth must be a valid YYYY-MM-DD date",
		})
	}
	if validator.IsEmpty(r.GuardianName) {
		errs = append(errs, validator.ValidationError{
			Field:   "guardian_name",
			Message: "guardian_name is required",
		})
	}
	if !validator.IsValidEmail(r.GuardianEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "guardian_email",
			Message: "a valid guardian_email is required",
		})
	}
	if !validator.IsValidPhoneNumber(r.GuardianPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "guardian_phone",
			Message: "a valid guardian_phone is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAthleteRequest struct {
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Position      *string `json:"position,omitempty"`
	GuardianName  *string `json:"guardian_name,omitempty"`
	GuardianEmail *string `json:"guardian_email,omitempty"`
	GuardianPhone *string `json:"guardian_phone,omitempty"`
	Status        *string `json:"status,omitempty"`
	BatchID       *string `json:"batch_id,omitempty"`
}

func (r *UpdateAthleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GuardianEmail != nil && !validator.IsValidEmail(*r.GuardianEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "guardian_email",
			Message: "a valid guardian_email is required",
		})
	}
	if r.GuardianPhone != nil && !validator.IsValidPhoneNumber(*r.GuardianPhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "guardian_phone",
			Message: "a valid guardian_phone is required",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	Search  *string `json:"search,omitempty"`
	Status  *Status `json:"status,omitempty"`
	BatchID *string `json:"batch_id,omitempty"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListResponse struct {
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	Athletes   []Athlete `json:"athletes"`
}
