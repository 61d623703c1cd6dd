package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stitchandstory/shop-backend/api/responses"
	cartsvc "github.com/stitchandstory/shop-backend/internal/cart"
	pkgerrors "github.com/stitchandstory/shop-backend/pkg/errors"
	"github.com/stitchandstory/shop-backend/pkg/logger"
)

type saveCartResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CartID     string `json:"cartId"`
	ItemsCount int    `json:"itemsCount"`
}

// SaveCart stores a cart submission in memory and returns its id. The
// body is a bare JSON array in either the current or the legacy item
// shape, so it is decoded untyped and handed to the service.
func SaveCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var body any
		if err := decodeAny(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.SaveCart(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithCartID(r.Context(), record.ID)
			ctx = logg.WithField(ctx, "cart", record)
			logg.Info(ctx, "cart.saved")
		}

		responses.WriteJSON(w, http.StatusOK, saveCartResponse{
			Success:    true,
			Message:    "Cart saved",
			CartID:     record.ID,
			ItemsCount: len(record.Items),
		})
	}
}

// decodeAny reads an arbitrarily shaped JSON body. Shape errors are the
// normalizer's concern, so only malformed JSON is rejected here, with
// the same public guidance the normalizer produces.
func decodeAny(r *http.Request, dest *any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err,
			"Body must be an array of cart items with productId/id and positive quantity/qty")
	}
	return nil
}
