package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, raw string) any {
	t.Helper()
	var out any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return out
}

func TestNormalizeCurrentShapePassesThrough(t *testing.T) {
	input := decodeJSON(t, `[
		{"productId":"ww-001","quantity":2},
		{"productId":"ww-003","quantity":1.5}
	]`)

	items, err := Normalize(input)
	require.NoError(t, err)
	require.Equal(t, []Item{
		{ProductID: "ww-001", Quantity: 2},
		{ProductID: "ww-003", Quantity: 1.5},
	}, items)
}

func TestNormalizeLegacyShapeMapsFields(t *testing.T) {
	input := decodeJSON(t, `[
		{"id":"ww-002","qty":1},
		{"id":"ww-005","qty":3}
	]`)

	items, err := Normalize(input)
	require.NoError(t, err)
	require.Equal(t, []Item{
		{ProductID: "ww-002", Quantity: 1},
		{ProductID: "ww-005", Quantity: 3},
	}, items)
}

func TestNormalizeEmptyArrayIsValid(t *testing.T) {
	items, err := Normalize(decodeJSON(t, `[]`))
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestNormalizeRejections(t *testing.T) {
	cases := map[string]string{
		"not an array":              `{"productId":"ww-001","quantity":2}`,
		"string body":               `"ww-001"`,
		"zero quantity":             `[{"productId":"ww-001","quantity":0}]`,
		"negative quantity":         `[{"productId":"ww-001","quantity":-1}]`,
		"string quantity":           `[{"productId":"ww-001","quantity":"2"}]`,
		"missing quantity":          `[{"productId":"ww-001"}]`,
		"zero legacy qty":           `[{"id":"ww-001","qty":0}]`,
		"string legacy qty":         `[{"id":"ww-001","qty":"1"}]`,
		"missing both keys":         `[{"sku":"ww-001","quantity":2}]`,
		"mixed shapes":              `[{"productId":"ww-001","quantity":2},{"id":"ww-002","qty":1}]`,
		"null element":              `[null]`,
		"non-object element":        `[42]`,
		"one bad among valid items": `[{"productId":"ww-001","quantity":2},{"productId":"ww-002","quantity":0}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			items, err := Normalize(decodeJSON(t, raw))
			require.Error(t, err)
			require.Nil(t, items)
		})
	}
}

func TestNormalizeCurrentShapeWithBadQuantityDoesNotFallBackToLegacy(t *testing.T) {
	// Every element matches the current shape, so the legacy branch
	// never runs even though the element also carries id/qty.
	input := decodeJSON(t, `[{"productId":"ww-001","quantity":0,"id":"ww-001","qty":2}]`)
	_, err := Normalize(input)
	require.Error(t, err)
}
