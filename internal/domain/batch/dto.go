package batch

import (
	"strings"

	"github.com/goalline/academy-backend-go/internal/pkg/validator"
)

type SessionRuleRequest struct {
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

type CreateBatchRequest struct {
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	StartDate   string               `json:"start_date"` // "YYYY-MM-DD"
	EndDate     string               `json:"end_date"`
	LocationID  string               `json:"training_location_id"`
	CoachID     string               `json:"coach_staff_id"`
	Sessions    []SessionRuleRequest `json:"sessions"`
}

func (r *CreateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid YYYY-MM-DD date",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid YYYY-MM-DD date",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "training_location_id",
			Message: "training_location_id is required",
		})
	}
	if validator.IsEmpty(r.CoachID) {
		errs = append(errs, validator.ValidationError{
			Field:   "coach_staff_id",
			Message: "coach_staff_id is required",
		})
	}

	for i, s := range r.Sessions {
		field := "sessions[" + validator.Itoa(i) + "]"
		if len(s.Days) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".days",
				Message: "at least one weekday is required",
			})
		}
		for _, d := range s.Days {
			if !validator.IsInSlice(d, WeekdayValues) {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".days",
					Message: "days must be one of: " + strings.Join(WeekdayValues, ", "),
				})
				break
			}
		}
		startMin, startTimeOK := validator.MinutesOfDay(s.StartTime)
		if !startTimeOK {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".start_time",
				Message: "start_time must be HH:MM",
			})
		}
		endMin, endTimeOK := validator.MinutesOfDay(s.EndTime)
		if !endTimeOK {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end_time",
				Message: "end_time must be HH:MM",
			})
		}
		if startTimeOK && endTimeOK && endMin <= startMin {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".end_time",
				Message: "end_time must be after start_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Rules converts validated session requests into expander inputs.
func (r *CreateBatchRequest) Rules() []ExpandInput {
	rules := make([]ExpandInput, len(r.Sessions))
	for i, s := range r.Sessions {
		days := make([]Weekday, len(s.Days))
		for j, d := range s.Days {
			days[j] = Weekday(d)
		}
		rules[i] = ExpandInput{Days: days, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return rules
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateSessionStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, SessionStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(SessionStatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionFilter struct {
	BatchID *string `json:"batch_id,omitempty"`
	From    *string `json:"from,omitempty"` // "YYYY-MM-DD"
	To      *string `json:"to,omitempty"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != nil {
		if _, ok := validator.IsValidDate(*f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a valid YYYY-MM-DD date",
			})
		}
	}
	if f.To != nil {
		if _, ok := validator.IsValidDate(*f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a valid YYYY-MM-DD date",
			})
		}
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 200",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateBatchResponse struct {
	Batch           Batch `json:"batch"`
	SessionsCreated int   `json:"sessions_created"`
}
