// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/owner-portal/backend/config"
	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/application/usecase/dashboard"
	"github.com/owner-portal/backend/internal/infra/server/router"
	"github.com/owner-portal/backend/internal/integration/adapters"
	"github.com/owner-portal/backend/internal/integration/cache"
	"github.com/owner-portal/backend/internal/integration/entrypoint/controller"
	"github.com/owner-portal/backend/internal/integration/entrypoint/middleware"
	"github.com/owner-portal/backend/internal/integration/persistence"
	"github.com/owner-portal/backend/internal/integration/scheduler"
)

// Options carries the optional collaborators of the injector.
type Options struct {
	// RedisClient enables the snapshot cache and the shared rate limiter. May be nil.
	RedisClient redis.UniversalClient
	// Clock overrides the system clock.
	Clock adapter.Clock
	// DBHealthChecker and CacheHealthChecker feed the health endpoint.
	DBHealthChecker    func() bool
	CacheHealthChecker func() bool
}

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	TokenService adapter.TokenService
	// Scheduler is nil when the warm job is disabled or there is no cache to warm.
	Scheduler *scheduler.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Without a database only the health endpoint is served.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	healthController := controller.NewHealthController(opts.DBHealthChecker, opts.CacheHealthChecker)

	injector := &Injector{
		Config:       cfg,
		DB:           db,
		TokenService: tokenService,
	}

	if db == nil {
		slog.Warn("Dashboard not initialized due to missing database connection")
		injector.Router = router.NewRouter(healthController, nil, nil, nil)
		return injector
	}

	// Create repositories and caches
	portfolioRepo := persistence.NewPortfolioRepository(db)

	var snapshotCache adapter.SnapshotCache
	if opts.RedisClient != nil {
		snapshotCache = cache.NewSnapshotCache(opts.RedisClient, cfg.Redis.KeyPrefix+":snapshot")
	}
	loader := dashboard.NewSnapshotLoader(portfolioRepo, snapshotCache, cfg.Snapshot.CacheTTL)

	settings := dashboard.Settings{
		DefaultHorizons:      cfg.Forecast.Horizons,
		CancellationStatuses: cfg.Forecast.CancellationStatuses,
		ProjectionMonths:     cfg.Forecast.ProjectionMonths,
	}

	// Create dashboard use cases
	listPropertiesUseCase := dashboard.NewListPropertiesUseCase(portfolioRepo)
	getForecastUseCase := dashboard.NewGetForecastUseCase(portfolioRepo, loader, clock, settings)
	getPerformanceUseCase := dashboard.NewGetPerformanceUseCase(portfolioRepo, loader)
	getOccupancyUseCase := dashboard.NewGetOccupancyUseCase(portfolioRepo, loader, settings)
	getProjectionUseCase := dashboard.NewGetProjectionUseCase(portfolioRepo, loader, clock, settings)
	simulateForecastUseCase := dashboard.NewSimulateForecastUseCase(clock, settings)

	dashboardController := controller.NewDashboardController(
		listPropertiesUseCase,
		getForecastUseCase,
		getPerformanceUseCase,
		getOccupancyUseCase,
		getProjectionUseCase,
		simulateForecastUseCase,
	)

	// Create middleware
	var simulateRateLimiter *middleware.RateLimiter
	if opts.RedisClient != nil {
		simulateRateLimiter = middleware.NewRedisRateLimiter(
			opts.RedisClient,
			cfg.Redis.KeyPrefix+":rate_limit:simulate",
			cfg.Forecast.SimulateRateLimit,
			cfg.Forecast.SimulateRateWindow,
		)
	} else {
		simulateRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Forecast.SimulateRateLimit, cfg.Forecast.SimulateRateWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	injector.Router = router.NewRouter(healthController, dashboardController, simulateRateLimiter, authMiddleware)

	if cfg.Snapshot.WarmEnabled && snapshotCache != nil {
		warmUseCase := dashboard.NewWarmSnapshotsUseCase(portfolioRepo, loader, cfg.Snapshot.WarmConcurrency)
		injector.Scheduler = scheduler.NewScheduler(warmUseCase, slog.Default(), cfg.Snapshot.WarmSchedule, cfg.Snapshot.WarmTimeout)
	}

	return injector
}
