package cart

import (
	pkgerrors "github.com/stitchandstory/shop-backend/pkg/errors"
)

// Item is the canonical cart line. ProductID should reference a catalog
// product but is not enforced; Quantity is strictly positive for any
// item that passed normalization.
type Item struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// Normalize converts decoded JSON cart items in either the current
// shape {productId, quantity} or the legacy shape {id, qty} into a
// canonical item list. Shape detection is strict: the whole input must
// match one shape, and the whole input is rejected when any matched
// element carries a non-positive or non-numeric quantity. An empty
// array matches the current shape and yields an empty list.
func Normalize(input any) ([]Item, error) {
	raw, ok := input.([]any)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart body must be a JSON array")
	}

	if elementsHaveStringField(raw, "productId") {
		items := make([]Item, 0, len(raw))
		for _, element := range raw {
			fields := element.(map[string]any)
			quantity, ok := fields["quantity"].(float64)
			if !ok || quantity <= 0 {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive number")
			}
			items = append(items, Item{
				ProductID: fields["productId"].(string),
				Quantity:  quantity,
			})
		}
		return items, nil
	}

	if elementsHaveStringField(raw, "id") {
		items := make([]Item, 0, len(raw))
		for _, element := range raw {
			fields := element.(map[string]any)
			qty, ok := fields["qty"].(float64)
			if !ok || qty <= 0 {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "qty must be a positive number")
			}
			items = append(items, Item{
				ProductID: fields["id"].(string),
				Quantity:  qty,
			})
		}
		return items, nil
	}

	return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart items must consistently use productId/quantity or id/qty")
}

// elementsHaveStringField reports whether every element is an object
// carrying a string value under key. Vacuously true for an empty slice.
func elementsHaveStringField(elements []any, key string) bool {
	for _, element := range elements {
		fields, ok := element.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := fields[key].(string); !ok {
			return false
		}
	}
	return true
}
