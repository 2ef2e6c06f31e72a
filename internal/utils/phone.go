package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// nanpPattern matches a ten digit North American number. Area code and
// exchange cannot begin with 0 or 1.
var nanpPattern = regexp.MustCompile(`^[2-9]\d{2}[2-9]\d{6}$`)

// ValidatePhone validates a dispatch contact number and normalizes it to
// E.164 form. Separators and an optional +1 country code are accepted.
func ValidatePhone(phone string) (bool, string, error) {
	// Clean the input by removing formatting characters
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")
	stripped = strings.ReplaceAll(stripped, ".", "")

	// Remove country code if present
	if len(stripped) == 11 && strings.HasPrefix(stripped, "1") {
		stripped = stripped[1:]
	}

	if !nanpPattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid North American phone number")
	}

	return true, "+1" + stripped, nil
}
