package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContactPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"national indian mobile", "9876543210", "+919876543210", false},
		{"already e164", "+919876543210", "+919876543210", false},
		{"with spacing", " 98765 43210 ", "+919876543210", false},
		{"empty", "", "", true},
		{"too short", "12345", "", true},
		{"letters", "not a phone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatContactPhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
