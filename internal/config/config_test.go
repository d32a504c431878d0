package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/agbru/ghlookup/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("ghlookup", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Interactive() {
		t.Error("no users should mean interactive mode")
	}
}

func TestParseConfig_Users(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"shorthand", []string{"-u", "octocat"}, []string{"octocat"}},
		{"comma list", []string{"-u", "a, b,,c"}, []string{"a", "b", "c"}},
		{"repeated", []string{"-u", "a", "--user", "b"}, []string{"a", "b"}},
		{"positional", []string{"--json", "a", "b,c"}, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("ghlookup", tt.args, io.Discard)
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg.Users); diff != "" {
				t.Errorf("users mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig("ghlookup", []string{"--help"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad url", []string{"--base-url", "not a url"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"negative rate", []string{"--rate", "-1"}},
		{"zero burst", []string{"--burst", "0"}},
		{"zero concurrency", []string{"--concurrency", "0"}},
		{"repl with users", []string{"--repl", "-u", "octocat"}},
		{"log level", []string{"--log-level", "loud"}},
		{"completion shell", []string{"--completion", "tcsh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("ghlookup", tt.args, io.Discard)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
				t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"TOKEN", "env-token")
	t.Setenv(EnvPrefix+"TIMEOUT", "5s")
	t.Setenv(EnvPrefix+"RATE", "0.5")
	t.Setenv(EnvPrefix+"JSON", "yes")
	t.Setenv(EnvPrefix+"USERS", "a,b")
	t.Setenv(EnvPrefix+"CONCURRENCY", "not-a-number")

	cfg, err := ParseConfig("ghlookup", []string{"--timeout", "9s"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Token != "env-token" {
		t.Errorf("Token = %q, want env value", cfg.Token)
	}
	if cfg.Timeout != 9*time.Second {
		t.Errorf("Timeout = %s, flag must win over env", cfg.Timeout)
	}
	if cfg.RequestsPerSecond != 0.5 || !cfg.JSON {
		t.Errorf("RequestsPerSecond = %g, JSON = %v", cfg.RequestsPerSecond, cfg.JSON)
	}
	if diff := cmp.Diff([]string{"a", "b"}, cfg.Users); diff != "" {
		t.Errorf("Users mismatch (-want +got):\n%s", diff)
	}
	if cfg.Concurrency != DefaultConcurrency {
		t.Errorf("unparseable env must keep default, got %d", cfg.Concurrency)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ghlookup.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFile_Priority(t *testing.T) {
	path := writeFile(t, `
base_url: https://ghe.example.com/api/v3
token: file-token
rate: 10
burst: 20
timeout: 1m
log_level: debug
theme: dark
`)
	t.Setenv(EnvPrefix+"THEME", "light")

	cfg, err := ParseConfig("ghlookup", []string{"--config", path, "--burst", "3"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	want := Default()
	want.ConfigFile = path
	want.BaseURL = "https://ghe.example.com/api/v3"
	want.Token = "file-token"
	want.RequestsPerSecond = 10
	want.Burst = 3
	want.Timeout = time.Minute
	want.LogLevel = "debug"
	want.Theme = "light"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigFile_FromEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"CONFIG", writeFile(t, "no_tui: true\n"))
	cfg, err := ParseConfig("ghlookup", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if !cfg.NoTUI {
		t.Error("NoTUI from GHLOOKUP_CONFIG file not applied")
	}
}

func TestParseFile_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "colour: red\n"},
		{"bad timeout", "timeout: soon\n"},
		{"bad yaml", "rate: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseFile([]byte(tt.data))
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
	if _, err := ParseFile(nil); err != nil {
		t.Errorf("empty file should be accepted, got %v", err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestClientConfig(t *testing.T) {
	t.Parallel()
	cfg := Default()
	cfg.Token = "t"
	cc := cfg.ClientConfig()
	if cc.BaseURL != cfg.BaseURL || cc.Token != "t" || cc.Burst != cfg.Burst || cc.RequestsPerSecond != cfg.RequestsPerSecond {
		t.Errorf("ClientConfig() = %+v", cc)
	}
}
