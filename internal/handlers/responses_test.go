package handlers

import (
	"errors"
	"testing"
)

func TestUserMessage_Precedence(t *testing.T) {
	err := errors.New("connection refused")

	tests := []struct {
		name          string
		serverMessage string
		err           error
		fallback      string
		want          string
	}{
		{"server message wins", "Please retry later", err, "Something went wrong", "Please retry later"},
		{"error text next", "", err, "Something went wrong", "connection refused"},
		{"fallback last", "", nil, "Something went wrong", "Something went wrong"},
		{"empty error text falls back", "", errors.New(""), "Something went wrong", "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := userMessage(tt.serverMessage, tt.err, tt.fallback)
			if got != tt.want {
				t.Errorf("userMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
