// Package casing translates map key naming conventions between the external
// camelCase representation and the internal snake_case one.
//
// Conversion is a pure structural transform without validation. Round-trip is
// lossless only for keys free of consecutive capitals, leading capitals and
// leading underscores.
package casing

import (
	"strings"
	"unicode"
)

// Snake rewrites every key of m from camelCase to snake_case, recursing into
// nested maps and into maps held by slices. Leaf values are left untouched.
func Snake(m map[string]any) map[string]any {
	return convert(m, snake)
}

// Camel rewrites every key of m from snake_case to camelCase, recursing into
// nested maps and into maps held by slices. Leaf values are left untouched.
func Camel(m map[string]any) map[string]any {
	return convert(m, camel)
}

func convert(m map[string]any, key func(string) string) map[string]any {
	if m == nil {
		return nil
	}

	converted := make(map[string]any, len(m))
	for k, v := range m {
		converted[key(k)] = value(v, key)
	}
	return converted
}

func value(v any, key func(string) string) any {
	switch v := v.(type) {
	case map[string]any:
		return convert(v, key)
	case []any:
		elements := make([]any, len(v))
		for i, e := range v {
			elements[i] = value(e, key)
		}
		return elements
	default:
		return v
	}
}

// snake inserts a separator before each uppercase rune and lowers it.
// A leading capital produces a leading separator which is trimmed, so the
// marker is lost and such keys do not round-trip.
func snake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimPrefix(b.String(), "_")
}

// camel joins underscore-separated segments, Title-casing every segment but the
// first. Digits travel with their segment.
func camel(key string) string {
	segments := strings.Split(key, "_")

	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(segments[0])

	for _, segment := range segments[1:] {
		if segment == "" {
			continue
		}
		r := []rune(segment)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}
