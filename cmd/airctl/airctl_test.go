package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"airscore-backend/internal/catalog"
	"airscore-backend/internal/evaluations"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	catalogFile, catalogOut, catalogIn = "", "", ""
	compareJSON = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("airctl %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(run(t, "sample")), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestRootPreRunAcceptsFixedWeights(t *testing.T) {
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE: %v", err)
	}
}

func TestSampleProfileScores(t *testing.T) {
	path := writeSample(t)
	out := run(t, "score", "--profile", path)

	var ev evaluations.Evaluation
	if err := json.Unmarshal([]byte(out), &ev); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if ev.Result.Occupation != catalog.SampleOccupation {
		t.Fatalf("unexpected occupation %q", ev.Result.Occupation)
	}
	if ev.Result.Snapshot.AIR <= 0 {
		t.Fatalf("expected positive AI-R, got %v", ev.Result.Snapshot.AIR)
	}
}

func TestSimulatePrintsDelta(t *testing.T) {
	path := writeSample(t)
	out := run(t, "simulate", "--profile", path, "--pathway", "Human-AI Collaboration", "--completion", "0.5")

	var sim evaluations.Simulation
	if err := json.Unmarshal([]byte(out), &sim); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if sim.Completion.Completion != 0.5 || sim.Completion.Mastery != 1 {
		t.Fatalf("unexpected completion %+v", sim.Completion)
	}
	if sim.Delta.AdaptiveCapacity <= 0 {
		t.Fatalf("expected adaptive capacity gain, got %+v", sim.Delta)
	}
}

func TestCompareTable(t *testing.T) {
	path := writeSample(t)
	out := run(t, "compare", "--profile", path)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "1 ") {
		t.Fatalf("expected first row ranked 1, got %q", lines[1])
	}
}

func TestCatalogExportThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	run(t, "catalog", "export", "--out", path)

	out := run(t, "catalog", "validate", "--file", path)
	if !strings.Contains(out, "ok: 6 occupations, 6 required skills, 3 pathways") {
		t.Fatalf("unexpected validate output %q", out)
	}

	scored := run(t, "score", "--catalog", path, "--profile", writeSample(t))
	if !strings.Contains(scored, catalog.SampleOccupation) {
		t.Fatalf("expected score against exported catalog, got %s", scored)
	}
}

func TestDecodeProfileRejectsUnknownFields(t *testing.T) {
	_, err := decodeProfile(strings.NewReader("occupation: Data Scientist\nsalary: 10\n"))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := decodeProfile(strings.NewReader("")); err == nil {
		t.Fatalf("expected empty profile error")
	}
}

func TestLoadProfileRequiresPath(t *testing.T) {
	if _, err := loadProfile(" "); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
