package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"airscore-backend/internal/catalog"
	"airscore-backend/internal/shared/cache"
	"airscore-backend/internal/shared/config"
	localstore "airscore-backend/internal/shared/storage/object/local"
)

func baseConfig(t *testing.T) config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return config.Config{
		Env:             "dev",
		ServiceVersion:  "test",
		CatalogSource:   config.CatalogMemory,
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		CacheTTL:        time.Minute,
		CacheMaxEntries: 8,
		RateLimitRPS:    100,
		RateLimitBurst:  100,
	}
}

func TestBuildMemoryCatalog(t *testing.T) {
	app, err := Build(context.Background(), baseConfig(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer app.Close()

	if _, ok := app.Catalog.(*catalog.MemoryCatalog); !ok {
		t.Fatalf("expected memory catalog, got %T", app.Catalog)
	}
	if _, ok := app.Cache.(*cache.Memory); !ok {
		t.Fatalf("expected memory cache, got %T", app.Cache)
	}

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/occupations", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestBuildPostgresWithoutURLFallsBackInDev(t *testing.T) {
	cfg := baseConfig(t)
	cfg.CatalogSource = config.CatalogPostgres

	app, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected no database")
	}
	if err := app.Ready(context.Background()); err != nil {
		t.Fatalf("expected ready without db, got %v", err)
	}
}

func TestBuildPostgresWithoutURLFailsInProduction(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Env = "production"
	cfg.CatalogSource = config.CatalogPostgres

	if _, err := Build(context.Background(), cfg); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}
}

func TestBuildDocumentCatalogSeedsMissingDocument(t *testing.T) {
	cfg := baseConfig(t)
	cfg.CatalogSource = config.CatalogDocument
	cfg.CatalogDocumentKey = "reference/catalog.yaml"

	if _, err := Build(context.Background(), cfg); err != nil {
		t.Fatalf("build: %v", err)
	}

	doc, err := catalog.LoadDocument(context.Background(), localstore.New(cfg.LocalStoreDir), cfg.CatalogDocumentKey)
	if err != nil {
		t.Fatalf("expected seeded document: %v", err)
	}
	if len(doc.Occupations) != len(catalog.DefaultDocument().Occupations) {
		t.Fatalf("unexpected seeded occupations %d", len(doc.Occupations))
	}
}

func TestBuildDocumentCatalogMissingInProduction(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Env = "production"
	cfg.CatalogSource = config.CatalogDocument
	cfg.CatalogDocumentKey = "reference/catalog.yaml"

	if _, err := Build(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for missing catalog document")
	}
}

func TestBuildCacheDisabled(t *testing.T) {
	cfg := baseConfig(t)
	cfg.CacheMaxEntries = 0

	app, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, ok := app.Cache.(cache.Nop); !ok {
		t.Fatalf("expected nop cache, got %T", app.Cache)
	}
}
