package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/udongsi/udongsi-backend/api/controllers"
	"github.com/udongsi/udongsi-backend/api/middleware"
	"github.com/udongsi/udongsi-backend/api/responses"
	"github.com/udongsi/udongsi-backend/internal/cart"
	"github.com/udongsi/udongsi-backend/internal/dishes"
	"github.com/udongsi/udongsi-backend/internal/markets"
	"github.com/udongsi/udongsi-backend/pkg/config"
	pkgerrors "github.com/udongsi/udongsi-backend/pkg/errors"
	"github.com/udongsi/udongsi-backend/pkg/logger"
	"github.com/udongsi/udongsi-backend/pkg/metrics"
)

// RouterParams groups everything the router wires together.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       controllers.Pinger
	Redis    controllers.Pinger
	IdemSt   middleware.IdempotencyStore
	Registry *prometheus.Registry
	Cart     cart.Service
	Dishes   dishes.Service
	Markets  markets.Service
}

// NewRouter assembles the HTTP surface: middleware chain, API routes, health
// probes and the metrics endpoint.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	var httpMetrics *metrics.HTTPMetrics
	if p.Registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(p.Registry)
	}

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), p.Logger, w, pkgerrors.New(pkgerrors.CodeNotFound, "API Not Found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), p.Logger, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "Method Not Allowed"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, map[string]controllers.Pinger{
			"database": p.DB,
			"redis":    p.Redis,
		}))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.With(middleware.Idempotency(p.IdemSt, p.Logger)).
				Post("/items", controllers.AddCartItem(p.Cart, p.Logger))
			r.Get("/items", controllers.GetCartItems(p.Cart, p.Logger))
		})

		r.Get("/categories/{category}/dishes", controllers.CategoryDishes(p.Dishes, p.Logger))

		r.Route("/common", func(r chi.Router) {
			r.Get("/search", controllers.SearchDishes(p.Dishes, p.Logger))
			r.Get("/dish/{dishId}", controllers.DishDetail(p.Dishes, p.Logger))
			r.Get("/stores", controllers.AllStores(p.Markets, p.Logger))
			r.Get("/markets", controllers.ListMarkets(p.Markets, p.Logger))
		})

		r.Route("/markets", func(r chi.Router) {
			r.Get("/", controllers.ListMarkets(p.Markets, p.Logger))
			r.Get("/{marketId}", controllers.MarketDetail(p.Markets, p.Logger))
			r.Get("/{marketId}/stores", controllers.MarketStores(p.Markets, p.Logger))
			r.Get("/{marketId}/stores/{storeId}/dishes", controllers.StoreDishes(p.Markets, p.Logger))
		})

		r.Get("/home/special", controllers.SpecialDishes(p.Markets, p.Logger))
	})

	return r
}
