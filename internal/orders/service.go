package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/stitchandstory/shop-backend/internal/cart"
	pkgerrors "github.com/stitchandstory/shop-backend/pkg/errors"
	"github.com/stitchandstory/shop-backend/pkg/ids"
)

const (
	missingUserOrCartMessage = "Missing user or cart in request body"
	invalidItemsMessage      = "Cart items invalid. Expect array of items with productId/id and positive quantity/qty"
)

// CheckoutInput is the decoded checkout body. Cart is kept untyped
// because callers may submit either a bare item array or an object
// wrapping an items array.
type CheckoutInput struct {
	User  *CheckoutUser
	Cart  any
	Notes *string
}

// Service simulates order creation.
type Service interface {
	PlaceOrder(ctx context.Context, input CheckoutInput) (*Order, error)
}

type service struct {
	store Store
	ids   ids.Generator
	now   func() time.Time
}

// NewService builds an order service over the provided store and id
// strategy.
func NewService(store Store, generator ids.Generator, now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("order store required")
	}
	if generator == nil {
		return nil, fmt.Errorf("id generator required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, ids: generator, now: now}, nil
}

// PlaceOrder validates the checkout body, normalizes the cart items and
// appends a confirmed order. The user object is stored as given; notes
// default to null.
func (s *service) PlaceOrder(ctx context.Context, input CheckoutInput) (*Order, error) {
	if input.User == nil || input.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, missingUserOrCartMessage)
	}

	items, err := cart.Normalize(itemsCandidate(input.Cart))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, invalidItemsMessage)
	}

	order := Order{
		ID:        s.ids.OrderID(),
		CreatedAt: s.now().UTC().Format(time.RFC3339Nano),
		User:      *input.User,
		Cart:      OrderCart{Items: items},
		Notes:     input.Notes,
		Status:    StatusConfirmed,
	}
	if err := s.store.Append(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving order")
	}
	return &order, nil
}

// itemsCandidate derives the sequence to normalize: the cart itself
// when it is an array, its items field when that is an array, otherwise
// nothing (which Normalize rejects).
func itemsCandidate(rawCart any) any {
	if items, ok := rawCart.([]any); ok {
		return items
	}
	if fields, ok := rawCart.(map[string]any); ok {
		if items, ok := fields["items"].([]any); ok {
			return items
		}
	}
	return nil
}
