package normalizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize_SupportedShapes(t *testing.T) {
	// Every supported encoding of the same logical token set must produce
	// the same tokens.
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{"nil", nil, []string{}},
		{"empty string", "", []string{}},
		{"blank string", "   ", []string{}},
		{"number", 7, []string{"7"}},
		{"float number", float64(7), []string{"7"}},
		{"plain string", "hazmat", []string{"hazmat"}},
		{"comma string", "1,2,3", []string{"1", "2", "3"}},
		{"comma string with spaces", " 1 , 2 ,3 ", []string{"1", "2", "3"}},
		{"native string list", []string{"1", "2"}, []string{"1", "2"}},
		{"native mixed list", []interface{}{"1", float64(2)}, []string{"1", "2"}},
		{"json string of array", `["1","2"]`, []string{"1", "2"}},
		{"json string of numeric array", `[1,2]`, []string{"1", "2"}},
		{"json string nested in list", []interface{}{`["1","2"]`, "3"}, []string{"1", "2", "3"}},
		{"json scalar string", `"hazmat"`, []string{"hazmat"}},
		{"malformed json falls back to comma split", `["a",b`, []string{"a", "b"}},
		{"malformed json element recovered by comma split", []interface{}{`["a",b`, "c"}, []string{"a", "b", "c"}},
		{"duplicates dropped first seen wins", "2,1,2,3,1", []string{"2", "1", "3"}},
		{"empty pieces dropped", "1,,2,", []string{"1", "2"}},
		{"nil list entries dropped", []interface{}{"1", nil, "2"}, []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_NoResidualArtifacts(t *testing.T) {
	inputs := []interface{}{
		`["1","2"]`,
		`[\"1\",\"2\"]`,
		[]interface{}{`"quoted"`, "[bracketed]"},
		"{not json",
	}
	for _, input := range inputs {
		for _, token := range Normalize(input) {
			if strings.ContainsAny(token, `[]{}"'\`) {
				t.Errorf("Normalize(%v) produced token %q with residual JSON syntax", input, token)
			}
			if token != strings.TrimSpace(token) {
				t.Errorf("Normalize(%v) produced untrimmed token %q", input, token)
			}
			if token == "" {
				t.Errorf("Normalize(%v) produced empty token", input)
			}
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []interface{}{
		`["1","2"]`,
		"1,2,3",
		[]string{"hazmat", "tanker"},
		7,
		nil,
		`["a",b`,
	}
	for _, input := range inputs {
		first := Normalize(input)
		second := Normalize(strings.Join(first, ","))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Normalize not idempotent for %v: first %v, second %v", input, first, second)
		}
	}
}

func TestNormalizeTagged_Outcomes(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  ParseOutcome
	}{
		{"nil is empty", nil, OutcomeEmpty},
		{"blank is empty", "  ", OutcomeEmpty},
		{"comma string is direct", "1,2", OutcomeDirect},
		{"native list is direct", []string{"1"}, OutcomeDirect},
		{"number is direct", 5, OutcomeDirect},
		{"valid json is json", `["1","2"]`, OutcomeJSON},
		{"malformed json is comma fallback", `["1",2`, OutcomeCommaFallback},
		{"malformed element in native list is comma fallback", []interface{}{`["a",b`, "c"}, OutcomeCommaFallback},
		{"malformed element in string list is comma fallback", []string{`["a",b`}, OutcomeCommaFallback},
		{"malformed element inside decoded json array is comma fallback", `["[\"a\",b", "c"]`, OutcomeCommaFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, outcome := NormalizeTagged(tt.input)
			if outcome != tt.want {
				t.Errorf("NormalizeTagged(%v) outcome = %q, want %q", tt.input, outcome, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name    string
		current string
		value   string
		want    string
	}{
		{"append to empty", "", "1", "1"},
		{"append preserves order", "1,2", "3", "1,2,3"},
		{"remove keeps remaining order", "1,2,3", "2", "1,3"},
		{"remove only element", "1", "1", ""},
		{"re-added token goes to the end", "2,3", "1", "2,3,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Toggle(tt.current, tt.value)
			if got != tt.want {
				t.Errorf("Toggle(%q, %q) = %q, want %q", tt.current, tt.value, got, tt.want)
			}
		})
	}
}

func TestToggle_TwiceIsNoOpOnSet(t *testing.T) {
	// Double-toggling restores the token set; a removed-then-re-added token
	// re-enters at the end, so order is compared as a set.
	cases := []struct{ current, value string }{
		{"1,2,3", "2"},
		{"1,2,3", "9"},
		{"", "x"},
		{`["1","2"]`, "1"},
	}
	for _, c := range cases {
		want := tokenSet(Normalize(c.current))
		got := tokenSet(Normalize(Toggle(Toggle(c.current, c.value), c.value)))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("double Toggle(%q, %q) set = %v, want %v", c.current, c.value, got, want)
		}
	}
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
