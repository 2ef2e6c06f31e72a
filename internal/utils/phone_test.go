package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name           string
		phone          string
		expectValid    bool
		expectedFormat string
		expectError    bool
	}{
		{
			name:           "Valid with country code",
			phone:          "+13125550144",
			expectValid:    true,
			expectedFormat: "+13125550144",
			expectError:    false,
		},
		{
			name:           "Valid bare ten digits",
			phone:          "3125550144",
			expectValid:    true,
			expectedFormat: "+13125550144",
			expectError:    false,
		},
		{
			name:           "Valid with dashes",
			phone:          "312-555-0144",
			expectValid:    true,
			expectedFormat: "+13125550144",
			expectError:    false,
		},
		{
			name:           "Valid with parentheses and spaces",
			phone:          "(312) 555-0144",
			expectValid:    true,
			expectedFormat: "+13125550144",
			expectError:    false,
		},
		{
			name:           "Valid with dots",
			phone:          "1.312.555.0144",
			expectValid:    true,
			expectedFormat: "+13125550144",
			expectError:    false,
		},
		{
			name:        "Area code starting with zero",
			phone:       "012-555-0144",
			expectValid: false,
			expectError: true,
		},
		{
			name:        "Area code starting with one",
			phone:       "131-555-0144",
			expectValid: false,
			expectError: true,
		},
		{
			name:        "Exchange starting with one",
			phone:       "312-155-0144",
			expectValid: false,
			expectError: true,
		},
		{
			name:        "Too few digits",
			phone:       "312-555-014",
			expectValid: false,
			expectError: true,
		},
		{
			name:        "Too many digits",
			phone:       "+313125550144",
			expectValid: false,
			expectError: true,
		},
		{
			name:        "Letters rejected",
			phone:       "312-CAR-RIDE",
			expectValid: false,
			expectError: true,
		},
		{
			name:        "Empty input",
			phone:       "",
			expectValid: false,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, formatted, err := ValidatePhone(tt.phone)

			assert.Equal(t, tt.expectValid, valid)
			assert.Equal(t, tt.expectedFormat, formatted)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
