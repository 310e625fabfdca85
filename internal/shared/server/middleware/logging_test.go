package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"airscore-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	prev := telemetry.SetLogger(zap.New(core))
	t.Cleanup(func() { telemetry.SetLogger(prev) })

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.POST("/api/v1/simulations", func(c *gin.Context) {
		c.Set(OccupationKey, "Data Scientist")
		c.Set(PathwayKey, "Human-AI Collaboration")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", nil)
	req.Header.Set("X-Request-Id", "req-123")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request.complete").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	for _, key := range []string{"request_id", "method", "route", "status", "duration_ms", "occupation", "pathway"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if fields["request_id"] != "req-123" {
		t.Fatalf("unexpected request_id: %v", fields["request_id"])
	}
	if fields["route"] != "/api/v1/simulations" {
		t.Fatalf("unexpected route: %v", fields["route"])
	}
	if fields["occupation"] != "Data Scientist" || fields["pathway"] != "Human-AI Collaboration" {
		t.Fatalf("unexpected domain fields: %v", fields)
	}
}

func TestLoggingSkipsPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	prev := telemetry.SetLogger(zap.New(core))
	t.Cleanup(func() { telemetry.SetLogger(prev) })

	router := gin.New()
	router.Use(Logging())
	router.OPTIONS("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodOptions, "/x", nil))

	if logs.Len() != 0 {
		t.Fatalf("expected no logs for preflight, got %d", logs.Len())
	}
}
