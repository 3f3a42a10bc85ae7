package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Phone   string `json:"phone" validate:"required,phone"`
	DueTime string `json:"dueTime" validate:"required,duetime"`
	DueDate string `json:"dueDate" validate:"required,duedate"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      sample
		wantFields []string
	}{
		{
			name:  "valid",
			input: sample{Phone: "+358 40 123 4567", DueTime: "09:30", DueDate: "2024-03-14"},
		},
		{
			name:       "invalid phone",
			input:      sample{Phone: "call me", DueTime: "09:30", DueDate: "2024-03-14"},
			wantFields: []string{"phone"},
		},
		{
			name:       "invalid time and date",
			input:      sample{Phone: "040-1234567", DueTime: "25:00", DueDate: "14.03.2024"},
			wantFields: []string{"dueTime", "dueDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)

				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}
