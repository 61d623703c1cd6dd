package cart

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/stitchandstory/shop-backend/pkg/errors"
	"github.com/stitchandstory/shop-backend/pkg/ids"
)

const invalidBodyMessage = "Body must be an array of cart items with productId/id and positive quantity/qty"

// Service persists cart submissions.
type Service interface {
	SaveCart(ctx context.Context, body any) (*SavedCart, error)
}

type service struct {
	store Store
	ids   ids.Generator
	now   func() time.Time
}

// NewService builds a cart service over the provided store and id
// strategy.
func NewService(store Store, generator ids.Generator, now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if generator == nil {
		return nil, fmt.Errorf("id generator required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, ids: generator, now: now}, nil
}

// SaveCart normalizes the decoded request body, stamps a fresh record
// and appends it to the store. The returned validation error carries
// the public shape guidance.
func (s *service) SaveCart(ctx context.Context, body any) (*SavedCart, error) {
	items, err := Normalize(body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, invalidBodyMessage)
	}

	record := SavedCart{
		ID:        s.ids.CartID(),
		CreatedAt: s.now().UTC().Format(time.RFC3339Nano),
		Items:     items,
	}
	if err := s.store.Append(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving cart")
	}
	return &record, nil
}
