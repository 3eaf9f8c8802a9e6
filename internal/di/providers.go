package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sandeepkv93/lost-and-found-backend/internal/app"
	"github.com/sandeepkv93/lost-and-found-backend/internal/config"
	"github.com/sandeepkv93/lost-and-found-backend/internal/database"
	"github.com/sandeepkv93/lost-and-found-backend/internal/health"
	"github.com/sandeepkv93/lost-and-found-backend/internal/http/handler"
	"github.com/sandeepkv93/lost-and-found-backend/internal/http/middleware"
	"github.com/sandeepkv93/lost-and-found-backend/internal/http/router"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"
	"github.com/sandeepkv93/lost-and-found-backend/internal/repository"
	"github.com/sandeepkv93/lost-and-found-backend/internal/security"
	"github.com/sandeepkv93/lost-and-found-backend/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideRedisClient,
	providePhotoStorage,
	provideReadinessProbeRunner,
)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewOwnerRepository,
	repository.NewLostItemRepository,
)

var SecuritySet = wire.NewSet(
	provideJWTManager,
	providePasswordHasher,
)

var ServiceSet = wire.NewSet(
	service.NewAuthService,
	service.NewOwnerService,
	provideLostItemService,
	wire.Bind(new(service.AuthServiceInterface), new(*service.AuthService)),
	wire.Bind(new(service.OwnerServiceInterface), new(*service.OwnerService)),
	wire.Bind(new(service.LostItemServiceInterface), new(*service.LostItemService)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewOwnerHandler,
	handler.NewLostItemHandler,
	provideGlobalRateLimiter,
	provideAuthRateLimiter,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(provideApp)

// MigrationRunner applies the schema and optional demo data outside the API
// process.
type MigrationRunner struct {
	db *gorm.DB
}

func NewMigrationRunner(db *gorm.DB) *MigrationRunner {
	return &MigrationRunner{db: db}
}

func (m *MigrationRunner) Run(seed bool) ([]string, error) {
	if err := database.Migrate(m.db); err != nil {
		return nil, err
	}
	details := []string{"schema migration applied"}
	if !seed {
		return details, nil
	}
	report, err := database.SeedDemo(m.db)
	if err != nil {
		return nil, err
	}
	return append(details, fmt.Sprintf("seeded owners=%d items=%d", report.CreatedOwners, report.CreatedItems)), nil
}

// Close releases the underlying connection pool.
func (m *MigrationRunner) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	logger := observability.InitLogger(cfg, runtime.LoggerProvider)
	if cfg.UsesDevSecret() {
		logger.Warn("JWT_SECRET not set, signing tokens with the development secret", "env", cfg.Env)
	}
	return logger
}

func provideOpenDB(cfg *config.Config) (*gorm.DB, error) {
	return database.Open(cfg)
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func provideRedisClient(cfg *config.Config, logger *slog.Logger) redis.UniversalClient {
	if !cfg.RateLimitRedisEnabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	observability.InstrumentRedisClient(client, logger)
	return client
}

// providePhotoStorage returns nil when STORAGE_ENABLED is false; photo
// routes then answer 503.
func providePhotoStorage(cfg *config.Config) (*service.MinIOPhotoStorage, error) {
	if !cfg.StorageEnabled {
		return nil, nil
	}
	return service.NewMinIOPhotoStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageUseSSL,
	)
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTIssuer, cfg.JWTSecret, cfg.JWTTTL)
}

func providePasswordHasher(cfg *config.Config) *security.PasswordHasher {
	return security.NewPasswordHasher(cfg.AuthBcryptCost, cfg.AuthHashConcurrency)
}

func provideLostItemService(
	items repository.LostItemRepository,
	owners repository.OwnerRepository,
	storage *service.MinIOPhotoStorage,
	logger *slog.Logger,
) *service.LostItemService {
	var photos service.PhotoStorage
	if storage != nil {
		photos = storage
	}
	return service.NewLostItemService(items, owners, photos, logger)
}

func provideGlobalRateLimiter(cfg *config.Config, redisClient redis.UniversalClient) router.GlobalRateLimiterFunc {
	if cfg.RateLimitRedisEnabled && redisClient != nil {
		redisLimiter := middleware.NewRedisFixedWindowLimiter(redisClient, cfg.RateLimitRedisPrefix+":api")
		return middleware.NewDistributedRateLimiter(
			redisLimiter,
			cfg.APIRateLimitPerMin,
			time.Minute,
			middleware.FailOpen,
			"api",
		).Middleware()
	}
	return middleware.NewRateLimiter(cfg.APIRateLimitPerMin, time.Minute).Middleware()
}

func provideAuthRateLimiter(cfg *config.Config, redisClient redis.UniversalClient) router.AuthRateLimiterFunc {
	if cfg.RateLimitRedisEnabled && redisClient != nil {
		redisLimiter := middleware.NewRedisFixedWindowLimiter(redisClient, cfg.RateLimitRedisPrefix+":auth")
		return middleware.NewDistributedRateLimiter(
			redisLimiter,
			cfg.AuthRateLimitPerMin,
			time.Minute,
			middleware.FailClosed,
			"auth",
		).Middleware()
	}
	return middleware.NewRateLimiter(cfg.AuthRateLimitPerMin, time.Minute).Middleware()
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	ownerHandler *handler.OwnerHandler,
	itemHandler *handler.LostItemHandler,
	jwt *security.JWTManager,
	globalRateLimiter router.GlobalRateLimiterFunc,
	authRateLimiter router.AuthRateLimiterFunc,
	readiness *health.ProbeRunner,
	cfg *config.Config,
) router.Dependencies {
	return router.Dependencies{
		AuthHandler:       authHandler,
		OwnerHandler:      ownerHandler,
		LostItemHandler:   itemHandler,
		TokenParser:       jwt,
		CORSOrigins:       cfg.CORSAllowedOrigins,
		AuthRateLimitRPM:  cfg.AuthRateLimitPerMin,
		APIRateLimitRPM:   cfg.APIRateLimitPerMin,
		GlobalRateLimiter: globalRateLimiter,
		AuthRateLimiter:   authRateLimiter,
		Readiness:         readiness,
		EnableOTelHTTP:    cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func provideReadinessProbeRunner(
	cfg *config.Config,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	storage *service.MinIOPhotoStorage,
) *health.ProbeRunner {
	checkers := make([]health.Checker, 0, 3)
	if c := health.NewDBChecker(db); c != nil {
		checkers = append(checkers, c)
	}
	if cfg.RateLimitRedisEnabled {
		if c := health.NewRedisChecker(redisClient); c != nil {
			checkers = append(checkers, c)
		}
	}
	if storage != nil {
		checkers = append(checkers, health.NewStorageChecker(storage))
	}
	return health.NewProbeRunner(cfg.ReadinessProbeTimeout, cfg.ServerStartGracePeriod, checkers...)
}

func provideApp(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
) *app.App {
	return app.New(cfg, logger, server, runtime, db, redisClient)
}
