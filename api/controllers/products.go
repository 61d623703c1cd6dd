package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stitchandstory/shop-backend/api/responses"
	"github.com/stitchandstory/shop-backend/internal/catalog"
	pkgerrors "github.com/stitchandstory/shop-backend/pkg/errors"
	"github.com/stitchandstory/shop-backend/pkg/logger"
)

// ListProducts returns the full catalog in seed order.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteJSON(w, http.StatusOK, svc.List(r.Context()))
	}
}

// GetProduct returns a single product by id or a 404 payload.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.GetByID(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, product)
	}
}
