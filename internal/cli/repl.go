// Package cli provides the line-oriented front ends of ghlookup: the
// REPL, one-shot and batch output, and shell completion.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/agbru/ghlookup/internal/format"
	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/logging"
	"github.com/agbru/ghlookup/internal/orchestration"
	"github.com/agbru/ghlookup/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// BaseURL is the API endpoint, shown by the status command.
	BaseURL string
	// Animate enables the loading spinner.
	Animate bool
	// Recorder receives lifecycle metrics. May be nil.
	Recorder orchestration.Recorder
	// Logger receives lookup logs. May be nil.
	Logger logging.Logger
}

// REPL represents an interactive lookup session on a line terminal.
type REPL struct {
	config  REPLConfig
	fetcher orchestration.Fetcher
	in      io.Reader
	out     io.Writer

	runner    *orchestration.Runner
	presenter *LinePresenter

	mu      sync.Mutex
	history []string
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - fetcher: The lookup backend.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(fetcher orchestration.Fetcher, config REPLConfig) *REPL {
	return &REPL{
		config:  config,
		fetcher: fetcher,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session. It reads commands until the
// user exits, input reaches EOF, or ctx is cancelled. In-flight lookups
// are cancelled on return.
func (r *REPL) Start(ctx context.Context) {
	r.presenter = NewLinePresenter(r.out, r.config.Animate)
	opts := []orchestration.Option{
		orchestration.WithPresenter(r.presenter),
		orchestration.WithInput(r.presenter),
		orchestration.WithContext(ctx),
	}
	if r.config.Recorder != nil {
		opts = append(opts, orchestration.WithRecorder(r.config.Recorder))
	}
	if r.config.Logger != nil {
		opts = append(opts, orchestration.WithLogger(r.config.Logger))
	}
	r.runner = orchestration.NewRunner(orchestration.New(r.fetcher, opts...))
	defer r.runner.Close()
	r.runner.Do(func(o *orchestration.Orchestrator) {
		o.Subscribe(orchestration.ListenerFuncs{
			Success: func(e orchestration.SuccessEvent) {
				r.record(fmt.Sprintf("%s%-20s%s %s", ui.ColorGreen(), e.Handle, ui.ColorReset(), format.RepoCount(e.Profile.PublicRepos)))
			},
			Error: func(e orchestration.ErrorEvent) {
				r.record(fmt.Sprintf("%s%-20s%s %s", ui.ColorRed(), e.Handle, ui.ColorReset(), e.Failure.Summary()))
			},
		})
	})

	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	stop := make(chan struct{})
	defer close(stop)
	lines := readLines(r.in, stop)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"gh> "+ui.ColorReset())

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !r.processCommand(line) {
			return
		}
	}
}

// readLines forwards input lines on a channel that is closed at EOF or
// once stop is closed.
func readLines(in io.Reader, stop <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
	}()
	return lines
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sGitHub User Lookup - Interactive Mode%s                %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<username>%s       - Look up a GitHub user\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slookup <name>%s    - Same as above\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sclear%s            - Clear the current result\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shistory%s          - List settled lookups\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s           - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s             - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s     - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "lookup", "l":
		r.lookup(strings.Join(args, " "))
	case "clear", "c":
		r.runner.InputChanged("")
		fmt.Fprintln(r.out, "Cleared.")
	case "history", "hist":
		r.cmdHistory()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.lookup(input)
	}

	return true
}

// lookup submits raw and waits for it to settle.
func (r *REPL) lookup(raw string) {
	r.runner.Submit(raw)
	r.runner.Wait()

	state := r.runner.State()
	if hf, ok := state.Failure.(github.HTTPFailure); ok && state.Kind == orchestration.StateError {
		if hint := format.ResetHint(hf.RateLimit, time.Now()); hint != "" {
			fmt.Fprintf(r.out, "  %s%s%s\n", ui.ColorYellow(), hint, ui.ColorReset())
		}
	}
}

func (r *REPL) record(line string) {
	r.mu.Lock()
	r.history = append(r.history, line)
	r.mu.Unlock()
}

// cmdHistory lists settled lookups, oldest first.
func (r *REPL) cmdHistory() {
	r.mu.Lock()
	history := append([]string(nil), r.history...)
	r.mu.Unlock()

	if len(history) == 0 {
		fmt.Fprintln(r.out, "No lookups yet.")
		return
	}
	fmt.Fprintf(r.out, "\n%sLookups:%s\n", ui.ColorBold(), ui.ColorReset())
	for i, line := range history {
		fmt.Fprintf(r.out, "  %2d. %s\n", i+1, line)
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	state := r.runner.State()
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  API:        %s%s%s\n", ui.ColorCyan(), r.config.BaseURL, ui.ColorReset())
	fmt.Fprintf(r.out, "  State:      %s%s%s\n", ui.ColorCyan(), state.Kind, ui.ColorReset())
	if state.Handle != "" {
		fmt.Fprintf(r.out, "  Last input: %s%s%s\n", ui.ColorCyan(), state.Handle, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}
