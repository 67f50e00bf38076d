package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sonquang/laixe-registry/internal/app/controllers"
	appRoutes "github.com/sonquang/laixe-registry/internal/app/routes"
	appServices "github.com/sonquang/laixe-registry/internal/app/services"
	"github.com/sonquang/laixe-registry/internal/config"
	appMiddleware "github.com/sonquang/laixe-registry/internal/middleware"
	pkgAuth "github.com/sonquang/laixe-registry/internal/pkg/auth"
	"github.com/sonquang/laixe-registry/internal/pkg/helpers"
	"github.com/sonquang/laixe-registry/internal/pkg/logger"
	"github.com/sonquang/laixe-registry/internal/seed"
	"github.com/sonquang/laixe-registry/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	TeacherService    appServices.TeacherService
	ImportService     appServices.ImportService
	AuthController    *appControllers.AuthController
	TeacherController *appControllers.TeacherController
	ImportController  *appControllers.ImportController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	JWTService        *pkgAuth.JWTService
	Store             *store.TeacherStore
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore parses the embedded dataset and builds the in-memory
// collection. There is no database; the collection lives and dies with the
// process.
func SetupStore(lgr zerolog.Logger) *store.TeacherStore {
	teachers := seed.LoadInitialTeachers(lgr)
	st := store.NewTeacherStore(teachers)
	lgr.Info().Int("teachers", st.Len()).Msg("Teacher collection initialized")
	return st
}

// BuildDependencies initializes services, controllers and middleware.
func BuildDependencies(cfg *config.Config, st *store.TeacherStore, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: st}

	accessTokenExp := helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, pkgAuth.DefaultAccessTokenExp)
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService, err := appServices.NewAuthService(deps.JWTService, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		return nil, err
	}
	deps.AuthService = authService
	deps.TeacherService = appServices.NewTeacherService(st)
	deps.ImportService = appServices.NewImportService(st, cfg.Import.SheetWhitelist)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.ImportController = appControllers.NewImportController(deps.ImportService, cfg.Import.MaxUploadSizeMB)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter builds the gin engine with all routes attached.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.TeacherController,
		deps.ImportController,
		deps.AuthMiddleware,
	)

	return router
}
