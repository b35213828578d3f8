package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/envisys/internal/app/auth"
	appControllers "github.com/yigit/envisys/internal/app/controllers"
	"github.com/yigit/envisys/internal/app/models"
	appRepos "github.com/yigit/envisys/internal/app/repositories"
	appRoutes "github.com/yigit/envisys/internal/app/routes"
	appServices "github.com/yigit/envisys/internal/app/services"
	"github.com/yigit/envisys/internal/config"
	appMiddleware "github.com/yigit/envisys/internal/middleware"
	pkgAuth "github.com/yigit/envisys/internal/pkg/auth"
	"github.com/yigit/envisys/internal/pkg/helpers"
	"github.com/yigit/envisys/internal/pkg/logger"
	"github.com/yigit/envisys/internal/pkg/validation"
	"github.com/yigit/envisys/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SessionService       *appServices.SessionService
	ViewService          *appServices.ViewService
	AuthzService         *appAuth.AuthorizationService
	SessionController    *appControllers.SessionController
	NavigationController *appControllers.NavigationController
	ViewController       *appControllers.ViewController
	ActionController     *appControllers.ActionController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadCatalog reads the sample catalog the pages render.
func LoadCatalog(cfg *config.Config, lgr zerolog.Logger) (*models.Catalog, error) {
	return seed.LoadCatalog(cfg.Fixtures.Path, lgr)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, catalog *models.Catalog, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(catalog)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    helpers.ParseDuration(cfg.Session.TokenExpiration, 8*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService()
	deps.SessionService = appServices.NewSessionService(
		deps.Repos.SessionRepository,
		deps.JWTService,
		logger.Component("session"),
	)
	deps.ViewService = appServices.NewViewService(deps.Repos.CatalogRepository, logger.Component("view"))

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	deps.SessionController = appControllers.NewSessionController(deps.SessionService, deps.ViewService, lgr)
	deps.NavigationController = appControllers.NewNavigationController(deps.SessionService, deps.ViewService, lgr)
	deps.ViewController = appControllers.NewViewController(deps.SessionService, deps.ViewService)
	deps.ActionController = appControllers.NewActionController(deps.SessionService, deps.AuthzService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case strings.EqualFold(cfg.Server.Mode, gin.TestMode):
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterWithGin(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(logger.Component("http")))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Session:    deps.SessionController,
		Navigation: deps.NavigationController,
		View:       deps.ViewController,
		Action:     deps.ActionController,
	}, deps.AuthMiddleware)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
