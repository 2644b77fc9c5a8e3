package models

// RawRecord is the untrusted shape a backend record arrives in. A logical
// field may appear under more than one key (legacy PascalCase next to
// snake_case) and multi-value fields may be encoded as native lists,
// JSON-encoded strings, comma-separated strings, or bare scalars.
type RawRecord map[string]interface{}

// Lookup returns the first present value among the given keys. Records from
// older backend versions carry legacy key spellings, so callers list the
// current key first and legacy aliases after it.
func (r RawRecord) Lookup(keys ...string) (interface{}, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// StringField returns the value under the given keys as a string, or empty
// when absent or not a string.
func (r RawRecord) StringField(keys ...string) string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
