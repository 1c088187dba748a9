package casing_test

import (
	"testing"

	"github.com/mdouchement/pinpost/internal/casing"
	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	m := map[string]any{
		"name":      "Alice",
		"startDate": "2026-09-08T00:00:00Z",
		"users":     []any{"Alice", "Bob"},
		"metadata": map[string]any{
			"placeName": "New York City",
			"tags":      []any{map[string]any{"tagName": "urgent"}},
		},
	}

	assert.Equal(t, map[string]any{
		"name":       "Alice",
		"start_date": "2026-09-08T00:00:00Z",
		"users":      []any{"Alice", "Bob"},
		"metadata": map[string]any{
			"place_name": "New York City",
			"tags":       []any{map[string]any{"tag_name": "urgent"}},
		},
	}, casing.Snake(m))
}

func TestCamel(t *testing.T) {
	m := map[string]any{
		"direction_from_reference": "NE",
		"start_date":               "2026-09-08T00:00:00Z",
		"places": []any{
			map[string]any{"state_abbreviation": "NY"},
		},
	}

	assert.Equal(t, map[string]any{
		"directionFromReference": "NE",
		"startDate":              "2026-09-08T00:00:00Z",
		"places": []any{
			map[string]any{"stateAbbreviation": "NY"},
		},
	}, casing.Camel(m))
}

func TestRoundTrip(t *testing.T) {
	m := map[string]any{
		"name":       "Alice",
		"start_date": "2026-09-08T00:00:00Z",
		"zip_code_5": "10001",
		"nested": map[string]any{
			"created_at": "now",
			"users":      []any{"Alice"},
		},
	}

	assert.Equal(t, m, casing.Snake(casing.Camel(m)))
}

func TestSnakeEdgeCases(t *testing.T) {
	// Leading capitals and consecutive capitals are flattened; they are
	// documented as non-round-trippable.
	m := casing.Snake(map[string]any{
		"Name":   "v1",
		"userID": "v2",
	})

	assert.Equal(t, map[string]any{
		"name":     "v1",
		"user_i_d": "v2",
	}, m)
}

func TestConvertNil(t *testing.T) {
	assert.Nil(t, casing.Snake(nil))
	assert.Nil(t, casing.Camel(nil))
}
