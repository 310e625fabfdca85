package telemetry

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestInfoWritesFields(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	Info("evaluation.complete", map[string]any{"occupation": "Data Scientist", "aiR": 12.5})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "evaluation.complete" || e.Level != zapcore.InfoLevel {
		t.Fatalf("unexpected entry %+v", e.Entry)
	}
	ctx := e.ContextMap()
	if ctx["occupation"] != "Data Scientist" || ctx["aiR"] != 12.5 {
		t.Fatalf("unexpected fields %+v", ctx)
	}
}

func TestErrorFieldsAreNamedErrors(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	Error("catalog.load_failed", map[string]any{"error": errors.New("boom")})

	ctx := logs.All()[0].ContextMap()
	if ctx["error"] != "boom" {
		t.Fatalf("expected error string, got %#v", ctx["error"])
	}
}

func TestLevelFiltering(t *testing.T) {
	logs := observe(t, zapcore.WarnLevel)

	Debug("skip", nil)
	Info("skip", nil)
	Warn("keep", nil)

	if logs.Len() != 1 || logs.All()[0].Message != "keep" {
		t.Fatalf("expected only warn entry, got %+v", logs.All())
	}
}

func TestSetLoggerNilFallsBackToNop(t *testing.T) {
	prev := SetLogger(nil)
	t.Cleanup(func() { SetLogger(prev) })
	Info("dropped", map[string]any{"k": "v"})
}
