package normalizer

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// ParseOutcome reports which parse path produced a normalized value, so
// fallback use is observable instead of silently swallowed.
type ParseOutcome string

const (
	// OutcomeEmpty means the input was nil or blank
	OutcomeEmpty ParseOutcome = "empty"
	// OutcomeDirect means the input was already a native list, scalar, or
	// plain comma-separated string
	OutcomeDirect ParseOutcome = "direct"
	// OutcomeJSON means the input was a JSON-encoded string that decoded
	// successfully
	OutcomeJSON ParseOutcome = "json"
	// OutcomeCommaFallback means JSON decoding failed and the value was
	// recovered by comma splitting
	OutcomeCommaFallback ParseOutcome = "comma_fallback"
)

// Normalize converts an arbitrarily-shaped field value into a clean ordered
// list of deduplicated string tokens. It accepts nil, numbers, plain or
// JSON-encoded strings, and lists of strings/numbers. Normalize is
// idempotent: feeding its comma-joined output back in reproduces the same
// tokens.
func Normalize(value interface{}) []string {
	tokens, _ := NormalizeTagged(value)
	return tokens
}

// NormalizeTagged is Normalize plus the parse outcome that produced the
// result.
func NormalizeTagged(value interface{}) ([]string, ParseOutcome) {
	switch v := value.(type) {
	case nil:
		return []string{}, OutcomeEmpty
	case []string:
		items := make([]interface{}, len(v))
		for i, s := range v {
			items[i] = s
		}
		tokens, recovered := normalizeList(items)
		return dedupe(tokens), listOutcome(recovered)
	case []interface{}:
		tokens, recovered := normalizeList(v)
		return dedupe(tokens), listOutcome(recovered)
	case string:
		return normalizeString(v)
	default:
		// Numbers and other scalars stringify via cast
		s := cast.ToString(v)
		if strings.TrimSpace(s) == "" {
			return []string{}, OutcomeEmpty
		}
		return []string{strings.TrimSpace(s)}, OutcomeDirect
	}
}

// normalizeString handles the string branch: plain comma-separated values
// pass straight through the cleaner; values that look like JSON are decoded
// first and comma splitting is the recovery path for malformed JSON.
func normalizeString(s string) ([]string, ParseOutcome) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []string{}, OutcomeEmpty
	}

	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return dedupe(splitAndClean(trimmed)), OutcomeDirect
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
		if list, ok := decoded.([]interface{}); ok {
			tokens, recovered := normalizeList(list)
			if recovered {
				return dedupe(tokens), OutcomeCommaFallback
			}
			return dedupe(tokens), OutcomeJSON
		}
		if token := cleanToken(cast.ToString(decoded)); token != "" {
			return []string{token}, OutcomeJSON
		}
		return []string{}, OutcomeJSON
	}

	// Malformed JSON degrades to comma splitting; the data source is an
	// external system we cannot fix.
	return dedupe(splitAndClean(trimmed)), OutcomeCommaFallback
}

// normalizeList flattens a native list. String elements may themselves be
// JSON-encoded; nested arrays are flattened one entry at a time. The second
// return reports whether any element was malformed JSON recovered by comma
// splitting.
func normalizeList(items []interface{}) ([]string, bool) {
	out := make([]string, 0, len(items))
	recovered := false
	for _, item := range items {
		switch v := item.(type) {
		case string:
			var decoded interface{}
			if err := json.Unmarshal([]byte(v), &decoded); err == nil {
				if nested, ok := decoded.([]interface{}); ok {
					tokens, nestedRecovered := normalizeList(nested)
					out = append(out, tokens...)
					recovered = recovered || nestedRecovered
					continue
				}
				if token := cleanToken(cast.ToString(decoded)); token != "" {
					out = append(out, token)
				}
				continue
			}
			trimmed := strings.TrimSpace(v)
			if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
				recovered = true
			}
			out = append(out, splitAndClean(trimmed)...)
		case nil:
			// dropped: one bad entry must not blank the list
		default:
			if token := cleanToken(cast.ToString(v)); token != "" {
				out = append(out, token)
			}
		}
	}
	return out, recovered
}

// listOutcome tags a native-list parse; any recovered element downgrades the
// outcome so fallback use stays countable
func listOutcome(recovered bool) ParseOutcome {
	if recovered {
		return OutcomeCommaFallback
	}
	return OutcomeDirect
}

// splitAndClean splits a comma-separated string and cleans each piece
func splitAndClean(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := cleanToken(part); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// cleanToken strips residual JSON syntax characters and surrounding
// whitespace from a token
func cleanToken(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', '{', '}', '"', '\'', '\\':
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(cleaned)
}

// dedupe removes duplicate tokens while preserving first-seen order
func dedupe(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// Join renders a token list back into its canonical comma-joined form
func Join(tokens []string) string {
	return strings.Join(tokens, ",")
}

// Toggle removes value from the comma-joined selection if present, appends
// it at the end otherwise. The order of the remaining tokens is preserved.
func Toggle(current, value string) string {
	tokens := Normalize(current)
	target := cleanToken(value)

	out := make([]string, 0, len(tokens)+1)
	removed := false
	for _, t := range tokens {
		if t == target {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed && target != "" {
		out = append(out, target)
	}
	return Join(out)
}
