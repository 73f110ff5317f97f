package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lortega/storefront-backend/api/controllers"
	"github.com/lortega/storefront-backend/api/middleware"
	"github.com/lortega/storefront-backend/internal/auth"
	"github.com/lortega/storefront-backend/internal/cart"
	"github.com/lortega/storefront-backend/internal/categories"
	"github.com/lortega/storefront-backend/internal/products"
	"github.com/lortega/storefront-backend/internal/profiles"
	"github.com/lortega/storefront-backend/pkg/auth/session"
	"github.com/lortega/storefront-backend/pkg/config"
	"github.com/lortega/storefront-backend/pkg/db"
	"github.com/lortega/storefront-backend/pkg/logger"
	"github.com/lortega/storefront-backend/pkg/metrics"
	redisclient "github.com/lortega/storefront-backend/pkg/redis"
)

type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Redis           *redisclient.Client
	Sessions        session.Checker
	Metrics         *metrics.HTTPMetrics
	Registry        *prometheus.Registry
	AuthService     auth.Service
	ProfileService  profiles.Service
	CategoryService categories.Service
	ProductService  products.Service
	CartService     cart.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)
	if p.Metrics != nil {
		r.Use(p.Metrics.Middleware)
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.DB, p.Redis, logg))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).Post("/register", controllers.Register(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).Post("/login", controllers.Login(p.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, p.Sessions, logg)).Post("/logout", controllers.Logout(p.AuthService, logg))
	})

	// Catalog reads are public; writes require an admin session.
	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Get("/", controllers.CategoriesList(p.CategoryService, logg))
		r.Get("/{id}", controllers.CategoriesGet(p.CategoryService, logg))
		r.Get("/{id}/products", controllers.CategoriesListProducts(p.CategoryService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
			r.Use(middleware.RequireRole("admin", logg))
			r.Post("/", controllers.CategoriesCreate(p.CategoryService, logg))
			r.Put("/{id}", controllers.CategoriesUpdate(p.CategoryService, logg))
			r.Delete("/{id}", controllers.CategoriesDelete(p.CategoryService, logg))
		})
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductsList(p.ProductService, logg))
		r.Get("/{id}", controllers.ProductsGet(p.ProductService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
			r.Use(middleware.RequireRole("admin", logg))
			r.Post("/", controllers.ProductsCreate(p.ProductService, logg))
			r.Put("/{id}", controllers.ProductsUpdate(p.ProductService, logg))
			r.Delete("/{id}", controllers.ProductsDelete(p.ProductService, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(p.ProfileService, logg))
			r.Put("/", controllers.ProfileUpdate(p.ProfileService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(p.CartService, logg))
			r.Delete("/", controllers.CartClear(p.CartService, logg))
			r.Route("/products/{productId}", func(r chi.Router) {
				r.Post("/", controllers.CartAddProduct(p.CartService, logg))
				r.Put("/", controllers.CartUpdateItem(p.CartService, logg))
				r.Post("/increment", controllers.CartIncrementItem(p.CartService, logg))
				r.Post("/decrement", controllers.CartDecrementItem(p.CartService, logg))
				r.Delete("/", controllers.CartRemoveItem(p.CartService, logg))
			})
		})
	})

	return r
}
