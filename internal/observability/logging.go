package observability

import (
	"github.com/freightlink/profile-api/internal/logging"
	"go.uber.org/zap"
)

// Logger returns the global logger instance
func Logger() *zap.Logger {
	return logging.Logger
}

// MaskDriverID masks a driver ID for logging
func MaskDriverID(id string) string {
	if len(id) <= 4 {
		return "****"
	}
	return id[:2] + "****" + id[len(id)-2:]
}

// MaskSensitiveData masks sensitive data in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	sensitiveFields := []string{"phone", "aadhaar_number", "license_number", "pan_number"}
	masked := make(map[string]interface{})

	for k, v := range data {
		if contains(sensitiveFields, k) {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}

	return masked
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
