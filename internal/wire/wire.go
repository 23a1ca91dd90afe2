package wire

import (
	"net/http"

	"manaibay/internal/adaptor"
	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/internal/usecase"
	"manaibay/pkg/middleware"
	"manaibay/pkg/token"
	"manaibay/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// guards are the per-route auth chains shared by the route tables.
type guards struct {
	authenticate func(http.Handler) http.Handler
	admin        func(http.Handler) http.Handler
	canLogout    bool
}

// Wiring builds services, handlers and the router on one repository bundle.
// revocations is nil when no redis is configured; /logout is then not served.
func Wiring(
	repo *repository.Repository,
	revocations token.RevocationStore,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	tokens := token.NewManager(config.JWT.Secret, config.JWT.Expiry)
	hasher := token.NewHasher(config.App.BcryptCost)

	service := usecase.NewService(repo, tokens, hasher, revocations, logger)
	handler := adaptor.NewHandler(service, repo.Store, logger)

	g := guards{
		authenticate: middleware.Authenticate(tokens, repo.User, revocations, logger),
		admin:        middleware.RequireRole(entity.RoleAdmin, logger),
		canLogout:    revocations != nil,
	}

	return &App{
		Router:  setupRouter(handler, g, config, logger),
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, g guards, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	// clients call /clients/ and /products/ as well as the bare paths
	r.Use(chimw.StripSlashes)

	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wireClient(r, handler.Client, g)
	wireProduct(r, handler.Product, g)

	r.Get("/health", handler.Health.Health)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
