package controllers

import (
	"net/http"

	"github.com/stitchandstory/shop-backend/api/responses"
	"github.com/stitchandstory/shop-backend/api/validators"
	ordersvc "github.com/stitchandstory/shop-backend/internal/orders"
	pkgerrors "github.com/stitchandstory/shop-backend/pkg/errors"
	"github.com/stitchandstory/shop-backend/pkg/logger"
)

type checkoutRequest struct {
	User *ordersvc.CheckoutUser `json:"user"`
	// Cart may be a bare item array or an object wrapping an items
	// array; the order service sorts that out.
	Cart  any     `json:"cart"`
	Notes *string `json:"notes"`
}

type checkoutResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// Checkout simulates order creation from a user and a cart.
func Checkout(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), ordersvc.CheckoutInput{
			User:  payload.User,
			Cart:  payload.Cart,
			Notes: payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithOrderID(r.Context(), order.ID)
			ctx = logg.WithField(ctx, "order", order)
			logg.Info(ctx, "order.placed")
		}

		responses.WriteJSON(w, http.StatusOK, checkoutResponse{
			Success: true,
			OrderID: order.ID,
			Status:  order.Status,
		})
	}
}
