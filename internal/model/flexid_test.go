package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlexIDUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected FlexID
	}{
		{"number", `{"id":42}`, "42"},
		{"string", `{"id":"42"}`, "42"},
		{"uuid string", `{"id":"p1-uuid"}`, "p1-uuid"},
		{"null", `{"id":null}`, ""},
		{"absent", `{}`, ""},
		{"large number", `{"id":9007199254740993}`, "9007199254740993"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				ID FlexID `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &out))
			require.Equal(t, tt.expected, out.ID)
		})
	}
}

func TestFlexIDUnmarshalRejectsNonScalar(t *testing.T) {
	var out struct {
		ID FlexID `json:"id"`
	}
	require.Error(t, json.Unmarshal([]byte(`{"id":{"nested":true}}`), &out))
}

func TestParseResourceType(t *testing.T) {
	tests := []struct {
		input    string
		expected ResourceType
		ok       bool
	}{
		{"application", ResourceTypeApplication, true},
		{"app", ResourceTypeApplication, true},
		{"Service", ResourceTypeService, true},
		{" database ", ResourceTypeDatabase, true},
		{"db", ResourceTypeDatabase, true},
		{"widget", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseResourceType(tt.input)
		require.Equal(t, tt.ok, ok, tt.input)
		require.Equal(t, tt.expected, got, tt.input)
	}
}
