package attendance

import (
	"strings"

	"github.com/goalline/academy-backend-go/internal/pkg/validator"
)

type MarkEntry struct {
	AthleteID string  `json:"athlete_id"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
}

type MarkRequest struct {
	Entries []MarkEntry `json:"entries"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one entry is required",
		})
	}
	for i, e := range r.Entries {
		field := "entries[" + validator.Itoa(i) + "]"
		if validator.IsEmpty(e.AthleteID) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".athlete_id",
				Message: "athlete_id is required",
			})
		}
		if !validator.IsInSlice(e.Status, StatusValues) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".status",
				Message: "status must be one of: " + strings.Join(StatusValues, ", "),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
