package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stitchandstory/shop-backend/api/controllers"
	"github.com/stitchandstory/shop-backend/api/middleware"
	"github.com/stitchandstory/shop-backend/internal/catalog"
	cartsvc "github.com/stitchandstory/shop-backend/internal/cart"
	ordersvc "github.com/stitchandstory/shop-backend/internal/orders"
	"github.com/stitchandstory/shop-backend/pkg/config"
	"github.com/stitchandstory/shop-backend/pkg/logger"
	"github.com/stitchandstory/shop-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	orderService ordersvc.Service,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/health", controllers.Health(cfg))
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(catalogService, logg))
		r.Get("/{productId}", controllers.GetProduct(catalogService, logg))
	})

	r.Post("/api/cart", controllers.SaveCart(cartService, logg))
	r.Post("/api/checkout", controllers.Checkout(orderService, logg))

	return r
}
