package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/stitchandstory/shop-backend/internal/catalog"
)

func newCatalogService(t *testing.T) catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(catalog.Seed())
	if err != nil {
		t.Fatalf("new catalog service: %v", err)
	}
	return svc
}

func getWithURLParam(handler http.HandlerFunc, path, key, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestListProductsReturnsCatalog(t *testing.T) {
	handler := ListProducts(newCatalogService(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var products []catalog.Product
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
	if products[0].ID != "ww-001" {
		t.Fatalf("seed order broken: %q", products[0].ID)
	}
}

func TestGetProductByID(t *testing.T) {
	handler := GetProduct(newCatalogService(t), nil)

	rec := getWithURLParam(handler, "/api/products/ww-003", "productId", "ww-003")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var product catalog.Product
	if err := json.NewDecoder(rec.Body).Decode(&product); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if product.Title != "Women Printed Top" {
		t.Fatalf("unexpected product %+v", product)
	}
}

func TestGetProductNotFound(t *testing.T) {
	handler := GetProduct(newCatalogService(t), nil)

	rec := getWithURLParam(handler, "/api/products/nonexistent", "productId", "nonexistent")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error != "Product not found" {
		t.Fatalf("unexpected error %q", body.Error)
	}
}
