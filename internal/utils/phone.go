package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// defaultRegion is assumed for numbers submitted without a country prefix
const defaultRegion = "IN"

// FormatContactPhone parses and validates a driver contact number and
// returns it in E.164 form. Invalid numbers return an error; callers decide
// whether to keep the raw value.
func FormatContactPhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("phone number is empty")
	}

	parsed, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("invalid phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number: %s", trimmed)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
