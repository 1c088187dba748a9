package service

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// M is an arbitrary map.
type M map[string]any

// str extracts a string value from m.
func str(m M, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// list extracts a list of strings from m.
// Decoded JSON payloads carry lists as []any.
func list(m M, key string) ([]string, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}

	elements, ok := v.([]any)
	if !ok {
		return nil, false
	}

	values := make([]string, len(elements))
	for i, e := range elements {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		values[i] = s
	}
	return values, true
}

// date coerces a payload value to a timestamp.
func date(v any) (time.Time, error) {
	switch v := v.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := dateparse.ParseAny(v)
		return t, errors.Wrap(err, "could not parse date")
	default:
		return time.Time{}, errors.New("unsupported date type")
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
