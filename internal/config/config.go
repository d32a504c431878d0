package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/agbru/ghlookup/internal/errors"
	"github.com/agbru/ghlookup/internal/github"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "GHLOOKUP_"

// Defaults.
const (
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 2.0
	DefaultBurst             = 4
	DefaultConcurrency       = 4
	DefaultLogLevel          = "warn"
	DefaultTheme             = "default"
	DefaultUserAgent         = "ghlookup"
)

// AppConfig holds the resolved configuration of one ghlookup run.
type AppConfig struct {
	// Remote API.
	BaseURL           string
	Token             string
	UserAgent         string
	RequestsPerSecond float64
	Burst             int

	// Users to look up non-interactively. Empty means interactive.
	Users       []string
	Timeout     time.Duration
	Concurrency int
	JSON        bool

	// Interactive modes. TUI is the default on a terminal.
	REPL  bool
	NoTUI bool

	// Ambient.
	MetricsAddr string
	LogLevel    string
	LogFile     string
	NoColor     bool
	Theme       string
	Completion  string
	ConfigFile  string
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		BaseURL:           github.DefaultBaseURL,
		UserAgent:         DefaultUserAgent,
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             DefaultBurst,
		Timeout:           DefaultTimeout,
		Concurrency:       DefaultConcurrency,
		LogLevel:          DefaultLogLevel,
		Theme:             DefaultTheme,
	}
}

// Interactive reports whether no users were given on the command line.
func (c AppConfig) Interactive() bool {
	return len(c.Users) == 0
}

// ClientConfig returns the GitHub client settings.
func (c AppConfig) ClientConfig() github.ClientConfig {
	return github.ClientConfig{
		BaseURL:           c.BaseURL,
		Token:             c.Token,
		UserAgent:         c.UserAgent,
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
	}
}

// userList collects -u values. Each value may itself be comma-separated.
type userList struct{ users *[]string }

func (u userList) String() string {
	if u.users == nil {
		return ""
	}
	return strings.Join(*u.users, ",")
}

func (u userList) Set(v string) error {
	*u.users = append(*u.users, SplitUsers(v)...)
	return nil
}

// SplitUsers splits a comma-separated list and drops empty entries.
func SplitUsers(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseConfig resolves the configuration from, in decreasing priority:
// command-line flags, GHLOOKUP_* environment variables, the YAML file named
// by --config (or GHLOOKUP_CONFIG), and built-in defaults.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "Look up GitHub user profiles. Without -u, starts an interactive session.")
		fmt.Fprintln(errorWriter, "\nOptions:")
		fs.PrintDefaults()
	}

	cfg := Default()
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to a YAML configuration file.")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "GitHub API base URL.")
	fs.StringVar(&cfg.Token, "token", "", "GitHub API token (prefer GHLOOKUP_TOKEN).")
	fs.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header sent to the API.")
	fs.Float64Var(&cfg.RequestsPerSecond, "rate", cfg.RequestsPerSecond, "Client-side request rate limit (requests/second, 0 disables).")
	fs.IntVar(&cfg.Burst, "burst", cfg.Burst, "Client-side burst size.")
	fs.Var(userList{&cfg.Users}, "u", "Username(s) to look up, comma-separated or repeated (shorthand).")
	fs.Var(userList{&cfg.Users}, "user", "Username(s) to look up, comma-separated or repeated.")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum time for non-interactive lookups.")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Concurrent lookups in batch mode.")
	fs.BoolVar(&cfg.JSON, "json", false, "Print results as JSON.")
	fs.BoolVar(&cfg.REPL, "repl", false, "Start the line-oriented interactive mode.")
	fs.BoolVar(&cfg.NoTUI, "no-tui", false, "Never start the full-screen interface.")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error.")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Write logs to this file instead of stderr.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme: default, dark, light, none.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script (bash, zsh, fish, powershell).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	for _, arg := range fs.Args() {
		cfg.Users = append(cfg.Users, SplitUsers(arg)...)
	}

	file := cfg.ConfigFile
	if file == "" {
		file = getEnvString("CONFIG", "")
	}
	if file != "" {
		fc, err := LoadFile(file)
		if err != nil {
			return AppConfig{}, err
		}
		fc.applyTo(&cfg, fs)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.NewConfigError("invalid base URL %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.RequestsPerSecond < 0 {
		return apperrors.NewConfigError("rate must not be negative, got %g", c.RequestsPerSecond)
	}
	if c.Burst < 1 {
		return apperrors.NewConfigError("burst must be at least 1, got %d", c.Burst)
	}
	if c.Concurrency < 1 {
		return apperrors.NewConfigError("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.REPL && !c.Interactive() {
		return apperrors.NewConfigError("--repl cannot be combined with -u")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish", "powershell":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q", c.Completion)
	}
	return nil
}
