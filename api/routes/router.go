package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/storegate/api/controllers"
	"github.com/angelmondragon/storegate/api/middleware"
	"github.com/angelmondragon/storegate/internal/accounts"
	"github.com/angelmondragon/storegate/internal/catalog"
	"github.com/angelmondragon/storegate/internal/dashboard"
	"github.com/angelmondragon/storegate/internal/orders"
	"github.com/angelmondragon/storegate/internal/stats"
	"github.com/angelmondragon/storegate/internal/users"
	"github.com/angelmondragon/storegate/internal/wishlist"
	"github.com/angelmondragon/storegate/pkg/cache"
	"github.com/angelmondragon/storegate/pkg/config"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/metrics"
)

// Services bundles the typed clients the router wires into handlers.
type Services struct {
	Accounts  *accounts.Client
	Catalog   *catalog.Client
	Orders    *orders.Client
	Users     *users.Client
	Wishlist  *wishlist.Client
	Stats     *stats.Client
	Dashboard *dashboard.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *cache.Client,
	pages *cache.PageCache,
	m *metrics.GatewayMetrics,
	promRegistry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", controllers.Login(svcs.Accounts, logg))
		r.Post("/register", controllers.Register(svcs.Accounts, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/overview", controllers.DashboardOverview(svcs.Dashboard, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(svcs.Catalog, pages, m, logg))
			r.Get("/{productId}", controllers.ProductGet(svcs.Catalog, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.CategoryList(svcs.Catalog, pages, m, logg))
			r.Get("/{categoryId}", controllers.CategoryGet(svcs.Catalog, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(svcs.Orders, logg))
			r.Post("/", controllers.OrderCreate(svcs.Orders, logg))
			r.Get("/{orderId}", controllers.OrderGet(svcs.Orders, logg))
			r.Delete("/{orderId}", controllers.OrderDelete(svcs.Orders, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistList(svcs.Wishlist, logg))
			r.Post("/", controllers.WishlistAdd(svcs.Wishlist, logg))
			r.Delete("/{itemId}", controllers.WishlistRemove(svcs.Wishlist, logg))
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(svcs.Users, logg))
			r.Put("/", controllers.ProfileUpdate(svcs.Users, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))

			r.Post("/auth/register", controllers.AdminRegister(svcs.Accounts, logg))
			r.Get("/users", controllers.AdminUserList(svcs.Users, logg))

			r.Route("/products", func(r chi.Router) {
				r.Post("/", controllers.ProductCreate(svcs.Catalog, logg))
				r.Put("/{productId}", controllers.ProductUpdate(svcs.Catalog, logg))
				r.Delete("/{productId}", controllers.ProductDelete(svcs.Catalog, logg))
				r.Post("/{productId}/reviews", controllers.ProductAddReview(svcs.Catalog, logg))
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", controllers.CategoryCreate(svcs.Catalog, logg))
				r.Put("/{categoryId}", controllers.CategoryUpdate(svcs.Catalog, logg))
				r.Delete("/{categoryId}", controllers.CategoryDelete(svcs.Catalog, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Put("/{orderId}/status", controllers.OrderUpdateStatus(svcs.Orders, logg))
				r.Post("/find", controllers.OrderFind(svcs.Orders, logg))
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/sales", controllers.StatsSales(svcs.Stats, logg))
				r.Get("/products", controllers.StatsProducts(svcs.Stats, logg))
				r.Get("/report", controllers.DashboardReport(svcs.Dashboard, logg))
			})
		})
	})

	return r
}
