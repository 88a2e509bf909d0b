package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/boardcamp/boardcamp-backend/api/controllers"
	"github.com/boardcamp/boardcamp-backend/api/middleware"
	"github.com/boardcamp/boardcamp-backend/internal/categories"
	"github.com/boardcamp/boardcamp-backend/internal/customers"
	"github.com/boardcamp/boardcamp-backend/internal/games"
	"github.com/boardcamp/boardcamp-backend/internal/rentals"
	"github.com/boardcamp/boardcamp-backend/pkg/config"
	"github.com/boardcamp/boardcamp-backend/pkg/logger"
	"github.com/boardcamp/boardcamp-backend/pkg/metrics"
	"github.com/boardcamp/boardcamp-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	HTTPMetrics *metrics.HTTPMetrics
	DBPinger    controllers.Pinger
	Redis       *redis.Client

	Categories categories.Service
	Games      games.Service
	Customers  customers.Service
	Rentals    rentals.Service
}

// NewRouter assembles the HTTP surface of the rental backend.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.CORS(),
	)
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(deps.Logger, readinessDeps(deps)))
	})

	if deps.HTTPMetrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.HTTPMetrics.Handler())
	}

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", controllers.CategoriesList(deps.Categories, deps.Logger))
		r.Post("/", controllers.CategoriesCreate(deps.Categories, deps.Logger))
	})

	r.Route("/games", func(r chi.Router) {
		r.Get("/", controllers.GamesList(deps.Games, deps.Logger))
		r.Post("/", controllers.GamesCreate(deps.Games, deps.Logger))
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", controllers.CustomersList(deps.Customers, deps.Logger))
		r.Post("/", controllers.CustomersCreate(deps.Customers, deps.Logger))
		r.Get("/{customerId}", controllers.CustomersGet(deps.Customers, deps.Logger))
	})

	r.Route("/rentals", func(r chi.Router) {
		if deps.Redis != nil {
			ttl := defaultRentalsTTL(deps)
			r.Use(middleware.Idempotency(deps.Redis, ttl, deps.Logger))
		}
		r.Get("/", controllers.RentalsList(deps.Rentals, deps.Logger))
		r.Post("/", controllers.RentalsCreate(deps.Rentals, deps.Logger))
		r.Post("/{rentalId}/return", controllers.RentalsClose(deps.Rentals, deps.Logger))
		r.Delete("/{rentalId}", controllers.RentalsDelete(deps.Rentals, deps.Logger))
	})

	return r
}

func readinessDeps(deps Deps) map[string]controllers.Pinger {
	checks := map[string]controllers.Pinger{}
	if deps.DBPinger != nil {
		checks["postgres"] = deps.DBPinger
	}
	if deps.Redis != nil {
		checks["redis"] = deps.Redis
	}
	return checks
}

func defaultRentalsTTL(deps Deps) (ttl time.Duration) {
	if deps.Config != nil {
		ttl = deps.Config.Rentals.IdempotencyTTL
	}
	return ttl
}
