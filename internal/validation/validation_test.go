package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Number   string `json:"cellNumber" validate:"required"`
	Block    string `json:"block" validate:"required,oneof=A B C"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
	Age      *int   `json:"age" validate:"required,min=0"`
	Born     string `json:"dateOfBirth" validate:"required,date"`
	Status   string `json:"status" validate:"omitempty,oneof=Completed In-progress Cancelled"`
}

func valid() sample {
	age := 30
	return sample{Number: "A-101", Block: "A", Capacity: 2, Age: &age, Born: "1990-05-01"}
}

func TestStruct(t *testing.T) {
	zero := 0
	tests := []struct {
		name    string
		mutate  func(s *sample)
		field   string
		message string
	}{
		{"missing required", func(s *sample) { s.Number = "" }, "cellNumber", `"cellNumber" is required`},
		{"enum", func(s *sample) { s.Block = "D" }, "block", `"block" must be one of [A, B, C]`},
		{"below min", func(s *sample) { s.Capacity = -1 }, "capacity", `"capacity" must be greater than or equal to 1`},
		{"nil pointer", func(s *sample) { s.Age = nil }, "age", `"age" is required`},
		{"bad date", func(s *sample) { s.Born = "yesterday" }, "dateOfBirth", `"dateOfBirth" must be a valid date`},
		{"optional enum", func(s *sample) { s.Status = "Done" }, "status", `"status" must be one of [Completed, In-progress, Cancelled]`},
		{"zero pointer passes", func(s *sample) { s.Age = &zero }, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := Struct(s)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2020-01-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 8, 30, 0, 0, time.UTC), d)

	_, err = ParseDate("01/01/2020")
	assert.Error(t, err)
}
