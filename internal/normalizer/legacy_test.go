package normalizer

import "testing"

func TestMapFleetSize(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"current bucket passes through", "10-50", "10-50"},
		{"legacy 101-250", "101-250", "100+"},
		{"legacy 251-500", "251-500", "100+"},
		{"legacy 501-1000", "501-1000", "100+"},
		{"legacy Above 1000", "Above 1000", "100+"},
		{"legacy 1-9", "1-9", "0-9"},
		{"numeric 9", 9, "0-9"},
		{"numeric 75", 75, "51-100"},
		{"numeric 100", 100, "51-100"},
		{"numeric 101", 101, "100+"},
		{"numeric string", "75", "51-100"},
		{"json float", float64(75), "51-100"},
		{"unrecognized passes through", "a few trucks", "a few trucks"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapFleetSize(tt.input)
			if got != tt.want {
				t.Errorf("MapFleetSize(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapAvgKmRun(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"current bucket passes through", "251-500", "251-500"},
		{"legacy Upto 250", "Upto 250", "0-250"},
		{"legacy Above 1000", "Above 1000", "1000+"},
		{"numeric 250", 250, "0-250"},
		{"numeric 900", 900, "501-1000"},
		{"numeric 1500", 1500, "1000+"},
		{"unrecognized passes through", "varies", "varies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapAvgKmRun(tt.input)
			if got != tt.want {
				t.Errorf("MapAvgKmRun(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapYearsExperience(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"current bucket passes through", "3-5", "3-5"},
		{"legacy Above 10", "Above 10", "10+"},
		{"numeric 2", 2, "0-2"},
		{"numeric 7", 7, "6-10"},
		{"numeric 12", 12, "10+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapYearsExperience(tt.input)
			if got != tt.want {
				t.Errorf("MapYearsExperience(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
