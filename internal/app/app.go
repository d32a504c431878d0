package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/agbru/ghlookup/internal/cli"
	"github.com/agbru/ghlookup/internal/config"
	apperrors "github.com/agbru/ghlookup/internal/errors"
	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/logging"
	"github.com/agbru/ghlookup/internal/metrics"
	"github.com/agbru/ghlookup/internal/orchestration"
	"github.com/agbru/ghlookup/internal/server"
	"github.com/agbru/ghlookup/internal/tui"
	"github.com/agbru/ghlookup/internal/ui"
)

// Application represents the ghlookup application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	// HTTPClient performs the API requests. Nil uses http.DefaultClient.
	HTTPClient github.HTTPClient
	// In feeds the line-oriented interactive mode.
	In io.Reader
	// IsTerminal reports whether stdout is a terminal.
	IsTerminal func() bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(c github.HTTPClient) AppOption {
	return func(a *Application) { a.HTTPClient = c }
}

// WithInput sets the reader for the interactive REPL.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithTerminalCheck overrides terminal detection.
func WithTerminalCheck(fn func() bool) AppOption {
	return func(a *Application) { a.IsTerminal = fn }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter:  errWriter,
		In:         os.Stdin,
		IsTerminal: stdoutIsTerminal,
	}
	for _, opt := range opts {
		opt(app)
	}

	programName := "ghlookup"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// runMode selects the front end.
type runMode int

const (
	modeOneShot runMode = iota
	modeREPL
	modeTUI
)

func (m runMode) String() string {
	switch m {
	case modeOneShot:
		return "oneshot"
	case modeREPL:
		return "repl"
	default:
		return "tui"
	}
}

// mode picks the front end: users on the command line run once, otherwise
// the full-screen interface starts unless disabled or stdout is not a terminal.
func (a *Application) mode() runMode {
	switch {
	case !a.Config.Interactive():
		return modeOneShot
	case a.Config.REPL, a.Config.NoTUI, !a.IsTerminal():
		return modeREPL
	default:
		return modeTUI
	}
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(logging.ParseLevel(a.Config.LogLevel))
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	mode := a.mode()
	logger, closeLog, err := a.newLogger(mode)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	defer closeLog()
	logger.Debug("starting", logging.String("mode", mode.String()), logging.String("version", Version))

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	recorder := metrics.NewLookupRecorder()
	client := github.NewClient(a.Config.ClientConfig(), a.HTTPClient, github.WithLogger(logger))

	run := func(ctx context.Context) int {
		switch mode {
		case modeOneShot:
			return a.runLookups(ctx, out, client, recorder, logger)
		case modeREPL:
			return a.runREPL(ctx, out, client, recorder, logger)
		default:
			return a.runTUI(ctx, client, recorder, logger)
		}
	}

	if a.Config.MetricsAddr == "" {
		return run(ctx)
	}
	return a.runWithMetrics(ctx, recorder, logger, run)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, ui.ThemeNames()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runWithMetrics serves the metrics endpoint for the lifetime of run. A
// listener failure is reported but does not abort the lookups.
func (a *Application) runWithMetrics(ctx context.Context, recorder *metrics.LookupRecorder, logger logging.Logger, run func(context.Context) int) int {
	srvCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()

	srv := server.New(a.Config.MetricsAddr, recorder, server.WithLogger(logger))
	var g errgroup.Group
	g.Go(func() error { return srv.Run(srvCtx) })

	code := run(ctx)
	stopServer()
	if err := apperrors.WrapError(g.Wait(), "metrics listener on %s", a.Config.MetricsAddr); err != nil {
		logger.Error("metrics listener failed", err)
		fmt.Fprintf(a.ErrWriter, "Warning: %v\n", err)
	}
	return code
}

// runLookups looks up the configured users once and prints the results.
func (a *Application) runLookups(ctx context.Context, out io.Writer, fetcher orchestration.Fetcher, recorder orchestration.Recorder, logger logging.Logger) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()

	batch := len(a.Config.Users) > 1
	if batch && !a.Config.JSON {
		cli.PrintLookupConfig(a.Config, out)
		fmt.Fprintln(out)
	}

	records := cli.RunLookups(ctx, fetcher, a.Config.Users, cli.LookupOptions{
		Concurrency: a.Config.Concurrency,
		Recorder:    recorder,
		Logger:      logger,
	})

	switch {
	case a.Config.JSON:
		if err := cli.WriteJSON(out, records); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing results: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	case batch:
		cli.DisplayBatchTable(records, out)
	default:
		cli.DisplayRecord(out, records[0])
	}

	err := cli.ResultsError(ctx, records, a.Config.Timeout)
	if err != nil {
		logger.Debug("lookups finished with failures", logging.Err(err))
	}
	return apperrors.ExitCodeFor(err)
}

// runREPL starts the line-oriented interactive session.
func (a *Application) runREPL(ctx context.Context, out io.Writer, fetcher orchestration.Fetcher, recorder orchestration.Recorder, logger logging.Logger) int {
	repl := cli.NewREPL(fetcher, cli.REPLConfig{
		BaseURL:  a.Config.BaseURL,
		Animate:  a.IsTerminal(),
		Recorder: recorder,
		Logger:   logger,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)

	if errors.Is(ctx.Err(), context.Canceled) {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitSuccess
}

// runTUI launches the full-screen interface.
func (a *Application) runTUI(ctx context.Context, fetcher orchestration.Fetcher, recorder orchestration.Recorder, logger logging.Logger) int {
	return tui.Run(ctx, fetcher, tui.Options{
		Version:  Version,
		Logger:   logger,
		Recorder: recorder,
	})
}

// newLogger builds the session logger. The full-screen interface owns the
// terminal, so it only logs to a file.
func (a *Application) newLogger(mode runMode) (logging.Logger, func(), error) {
	if a.Config.LogFile != "" {
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, apperrors.WrapError(apperrors.ConfigError{Message: err.Error()}, "opening log file")
		}
		return logging.NewLogger(f, "ghlookup"), func() { _ = f.Close() }, nil
	}
	if mode == modeTUI {
		return logging.NewNopLogger(), func() {}, nil
	}
	return logging.NewConsoleLogger(a.ErrWriter, "ghlookup", logging.ParseLevel(a.Config.LogLevel)), func() {}, nil
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
