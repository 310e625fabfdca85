package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line     string
		key, val string
		ok       bool
	}{
		{line: "PORT=9090", key: "PORT", val: "9090", ok: true},
		{line: "export REDIS_ADDR = localhost:6379", key: "REDIS_ADDR", val: "localhost:6379", ok: true},
		{line: `S3_PREFIX="airscore/ref"`, key: "S3_PREFIX", val: "airscore/ref", ok: true},
		{line: "ENV='staging'", key: "ENV", val: "staging", ok: true},
		{line: "# comment", ok: false},
		{line: "   ", ok: false},
		{line: "NOVALUE", ok: false},
		{line: "=orphan", ok: false},
	}
	for _, tc := range cases {
		key, val, ok := parseEnvLine(tc.line)
		if ok != tc.ok || key != tc.key || val != tc.val {
			t.Fatalf("parseEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)", tc.line, key, val, ok, tc.key, tc.val, tc.ok)
		}
	}
}

func TestLoadEnvFilesKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("AIRSCORE_TEST_A=file\nAIRSCORE_TEST_B=file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("AIRSCORE_TEST_A", "process")
	t.Setenv("AIRSCORE_TEST_B", "")
	os.Unsetenv("AIRSCORE_TEST_B")

	loadEnvFiles(path, filepath.Join(dir, "missing.env"))

	if got := os.Getenv("AIRSCORE_TEST_A"); got != "process" {
		t.Fatalf("expected process value to win, got %q", got)
	}
	if got := os.Getenv("AIRSCORE_TEST_B"); got != "file" {
		t.Fatalf("expected file value, got %q", got)
	}
}
