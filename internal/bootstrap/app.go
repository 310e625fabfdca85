package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"airscore-backend/internal/catalog"
	"airscore-backend/internal/evaluations"
	"airscore-backend/internal/scoring"
	"airscore-backend/internal/services/health"
	"airscore-backend/internal/shared/cache"
	"airscore-backend/internal/shared/config"
	"airscore-backend/internal/shared/server"
	"airscore-backend/internal/shared/storage/db"
	"airscore-backend/internal/shared/storage/object"
	localstore "airscore-backend/internal/shared/storage/object/local"
	s3store "airscore-backend/internal/shared/storage/object/s3"
	"airscore-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Store             object.Store
	Catalog           catalog.Catalog
	Cache             cache.Cache
	EvaluationService *evaluations.Service
	EvaluationHandler *evaluations.Handler
	Health            *health.Service
}

// Build prepares dependencies and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if err := scoring.ValidateWeights(); err != nil {
		return nil, fmt.Errorf("scoring weights: %w", err)
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	app := &App{Config: cfg}

	if cfg.CatalogSource == config.CatalogPostgres {
		sqlDB, err := buildDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.DB = sqlDB
	}

	if cfg.CatalogSource == config.CatalogDocument {
		store, err := buildStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.Store = store
	}

	cat, err := buildCatalog(ctx, app)
	if err != nil {
		return nil, err
	}
	app.Catalog = cat

	app.Cache = buildCache(ctx, cfg)

	app.EvaluationService = &evaluations.Service{
		Catalog:     app.Catalog,
		Cache:       app.Cache,
		CacheTTL:    cfg.CacheTTL,
		Concurrency: cfg.CompareConcurrency,
	}
	app.EvaluationHandler = evaluations.NewHandler(app.EvaluationService)

	app.Health = health.NewService()
	if app.DB != nil {
		app.Health.Register("database", app.DB.PingContext)
	}
	if pinger, ok := app.Cache.(interface{ Ping(context.Context) error }); ok {
		app.Health.Register("cache", pinger.Ping)
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		Routes:         []server.RouteRegistrar{app.EvaluationHandler},
		Ready:          app.Ready,
		RateLimitGroup: evaluations.RateLimitGroup,
	})

	return app, nil
}

// Ready runs the registered dependency checks.
func (a *App) Ready(ctx context.Context) error {
	if a.Health == nil {
		return nil
	}
	return a.Health.Ready(ctx)
}

// Close releases the cache connection. The database pool is left open for
// the Lambda singleton.
func (a *App) Close() error {
	if a.Cache == nil {
		return nil
	}
	return a.Cache.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDev() {
			telemetry.Warn("bootstrap.db_missing", map[string]any{"fallback": config.CatalogMemory})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if cfg.IsDev() {
			telemetry.Warn("bootstrap.db_connect_failed", map[string]any{"error": err, "fallback": config.CatalogMemory})
			return nil, nil
		}
		return nil, err
	}

	if cfg.IsDev() {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildCatalog(ctx context.Context, app *App) (catalog.Catalog, error) {
	cfg := app.Config
	switch cfg.CatalogSource {
	case config.CatalogPostgres:
		if app.DB == nil {
			return catalog.NewDefaultCatalog(), nil
		}
		telemetry.Info("bootstrap.catalog", map[string]any{"source": config.CatalogPostgres})
		return &catalog.PGRepo{DB: app.DB}, nil
	case config.CatalogDocument:
		doc, err := catalog.LoadDocument(ctx, app.Store, cfg.CatalogDocumentKey)
		if errors.Is(err, object.ErrNotFound) && cfg.IsDev() {
			doc = catalog.DefaultDocument()
			if _, err := catalog.SaveDocument(ctx, app.Store, cfg.CatalogDocumentKey, doc); err != nil {
				return nil, fmt.Errorf("seed catalog document: %w", err)
			}
			telemetry.Info("bootstrap.catalog_seeded", map[string]any{"key": cfg.CatalogDocumentKey})
		} else if err != nil {
			return nil, fmt.Errorf("load catalog document: %w", err)
		}
		telemetry.Info("bootstrap.catalog", map[string]any{
			"source":      config.CatalogDocument,
			"key":         cfg.CatalogDocumentKey,
			"occupations": len(doc.Occupations),
		})
		return catalog.NewMemoryCatalog(doc), nil
	default:
		telemetry.Info("bootstrap.catalog", map[string]any{"source": config.CatalogMemory})
		return catalog.NewDefaultCatalog(), nil
	}
}

func buildCache(ctx context.Context, cfg config.Config) cache.Cache {
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisKeyPrefix)
		if err == nil {
			return rc
		}
		telemetry.Warn("bootstrap.redis_unavailable", map[string]any{"addr": cfg.RedisAddr, "error": err})
	}
	if cfg.CacheMaxEntries > 0 && cfg.CacheTTL > 0 {
		return cache.NewMemory(cfg.CacheMaxEntries, nil)
	}
	return cache.Nop{}
}
