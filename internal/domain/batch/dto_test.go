package batch

import (
	"testing"

	"github.com/goalline/academy-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateBatchRequest() CreateBatchRequest {
	return CreateBatchRequest{
		Name:       "U-13 Spring",
		StartDate:  "2024-01-01",
		EndDate:    "2024-03-31",
		LocationID: "loc-1",
		CoachID:    "staff-1",
		Sessions: []SessionRuleRequest{
			{Days: []string{"MONDAY", "WEDNESDAY"}, StartTime: "16:00", EndTime: "17:30"},
		},
	}
}

func TestCreateBatchRequest_Valid(t *testing.T) {
	req := validCreateBatchRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateBatchRequest_EmptySessionsIsLegal(t *testing.T) {
	req := validCreateBatchRequest()
	req.Sessions = nil
	assert.NoError(t, req.Validate())
}

func TestCreateBatchRequest_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateBatchRequest)
		field  string
	}{
		{"missing name", func(r *CreateBatchRequest) { r.Name = " " }, "name"},
		{"bad start date", func(r *CreateBatchRequest) { r.StartDate = "01-01-2024" }, "start_date"},
		{"end before start", func(r *CreateBatchRequest) { r.EndDate = "2023-12-31" }, "end_date"},
		{"missing location", func(r *CreateBatchRequest) { r.LocationID = "" }, "training_location_id"},
		{"missing coach", func(r *CreateBatchRequest) { r.CoachID = "" }, "coach_staff_id"},
		{"no weekdays", func(r *CreateBatchRequest) { r.Sessions[0].Days = nil }, "sessions[0].days"},
		{"unknown weekday", func(r *CreateBatchRequest) { r.Sessions[0].Days = []string{"FUNDAY"} }, "sessions[0].days"},
		{"bad time format", func(r *CreateBatchRequest) { r.Sessions[0].StartTime = "4pm" }, "sessions[0].start_time"},
		{"end not after start", func(r *CreateBatchRequest) { r.Sessions[0].EndTime = "16:00" }, "sessions[0].end_time"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateBatchRequest()
			c.mutate(&req)
			err := req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestCreateBatchRequest_Rules(t *testing.T) {
	req := validCreateBatchRequest()
	rules := req.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, []Weekday{Monday, Wednesday}, rules[0].Days)
	assert.Equal(t, "16:00", rules[0].StartTime)
}
