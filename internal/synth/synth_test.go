package synth

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routemock/routemock/internal/analyzer"
)

func objectKeys(t *testing.T, body []byte) []string {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		key, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, key.(string))

		_, err = dec.Token()
		require.NoError(t, err)
	}

	return keys
}

func TestValueTypes(t *testing.T) {
	for i := 0; i < 100; i++ {
		_, ok := Value(analyzer.Boolean).(bool)
		require.True(t, ok, "boolean value should be a bool")

		n, ok := Value(analyzer.Number).(int)
		require.True(t, ok, "number value should be an int")
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, 999)

		s, ok := Value(analyzer.String).(string)
		require.True(t, ok, "string value should be a string")
		require.NotEmpty(t, s)
	}
}

func TestBooleanValuesVary(t *testing.T) {
	seen := map[bool]bool{}
	for i := 0; i < 100; i++ {
		seen[Value(analyzer.Boolean).(bool)] = true
	}
	require.Len(t, seen, 2)
}

func TestRecordPreservesDeclarationOrder(t *testing.T) {
	entity := analyzer.Entity{
		Route: "/users",
		Properties: []analyzer.Property{
			{Name: "id", Type: analyzer.Number},
			{Name: "name", Type: analyzer.String},
			{Name: "active", Type: analyzer.Boolean},
		},
	}

	body, err := json.Marshal(Record(entity))
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "active"}, objectKeys(t, body))
}

func TestRecordKeepsDuplicateKeys(t *testing.T) {
	entity := analyzer.Entity{
		Route: "/dup",
		Properties: []analyzer.Property{
			{Name: "a", Type: analyzer.Number},
			{Name: "b", Type: analyzer.String},
			{Name: "a", Type: analyzer.Boolean},
		},
	}

	body, err := json.Marshal(Record(entity))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "a"}, objectKeys(t, body))
}

func TestRecordEmptyEntity(t *testing.T) {
	body, err := json.Marshal(Record(analyzer.Entity{Route: "/empty", Properties: []analyzer.Property{}}))
	require.NoError(t, err)
	require.Equal(t, "{}", string(body))
}

func TestObjectMarshalEscapesKeys(t *testing.T) {
	body, err := json.Marshal(Object{{Key: `with "quotes"`, Value: 1}})
	require.NoError(t, err)
	require.True(t, json.Valid(body))
	require.Equal(t, []string{`with "quotes"`}, objectKeys(t, body))
}
