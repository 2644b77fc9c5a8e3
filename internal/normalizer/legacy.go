package normalizer

import (
	"strconv"

	"github.com/freightlink/profile-api/internal/models"
	"github.com/spf13/cast"
)

// Legacy backends sent range labels and raw integers for bucketed fields.
// These tables map the known legacy spellings onto the current controlled
// vocabulary. Remapping is attempted only when the direct value is not
// already a current bucket; unrecognized values pass through unchanged so
// unknown data renders instead of vanishing.

var legacyFleetSizes = map[string]string{
	"1-9":        "0-9",
	"10-25":      "10-50",
	"26-50":      "10-50",
	"101-250":    "100+",
	"251-500":    "100+",
	"501-1000":   "100+",
	"Above 1000": "100+",
}

var legacyAvgKmRuns = map[string]string{
	"Upto 250":   "0-250",
	"250-500":    "251-500",
	"500-1000":   "501-1000",
	"Above 1000": "1000+",
}

var legacyYearsExperience = map[string]string{
	"Above 10":     "10+",
	"More than 10": "10+",
}

// MapFleetSize reduces a raw fleet-size value to a current bucket
func MapFleetSize(value interface{}) string {
	s := scalarToken(value)
	if s == "" || models.IsValidFleetSize(s) {
		return s
	}
	if mapped, ok := legacyFleetSizes[s]; ok {
		return mapped
	}
	if n, err := strconv.Atoi(s); err == nil {
		switch {
		case n <= 9:
			return "0-9"
		case n <= 50:
			return "10-50"
		case n <= 100:
			return "51-100"
		default:
			return "100+"
		}
	}
	return s
}

// MapAvgKmRun reduces a raw average-km-run value to a current bucket
func MapAvgKmRun(value interface{}) string {
	s := scalarToken(value)
	if s == "" || models.IsValidAvgKmRun(s) {
		return s
	}
	if mapped, ok := legacyAvgKmRuns[s]; ok {
		return mapped
	}
	if n, err := strconv.Atoi(s); err == nil {
		switch {
		case n <= 250:
			return "0-250"
		case n <= 500:
			return "251-500"
		case n <= 1000:
			return "501-1000"
		default:
			return "1000+"
		}
	}
	return s
}

// MapYearsExperience reduces a raw experience value to a current bucket
func MapYearsExperience(value interface{}) string {
	s := scalarToken(value)
	if s == "" || models.IsValidYearsExperience(s) {
		return s
	}
	if mapped, ok := legacyYearsExperience[s]; ok {
		return mapped
	}
	if n, err := strconv.Atoi(s); err == nil {
		switch {
		case n <= 2:
			return "0-2"
		case n <= 5:
			return "3-5"
		case n <= 10:
			return "6-10"
		default:
			return "10+"
		}
	}
	return s
}

// scalarToken reduces a raw value to a single cleaned token. Numbers keep
// their integer spelling so the threshold fallbacks can parse them.
func scalarToken(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		// JSON numbers decode as float64
		return strconv.Itoa(int(v))
	case int, int32, int64:
		return cast.ToString(v)
	default:
		tokens := Normalize(value)
		if len(tokens) == 0 {
			return ""
		}
		return tokens[0]
	}
}
