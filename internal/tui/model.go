package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/ghlookup/internal/errors"
	"github.com/agbru/ghlookup/internal/logging"
	"github.com/agbru/ghlookup/internal/orchestration"
)

// Options configures a TUI session.
type Options struct {
	Version  string
	Logger   logging.Logger
	Recorder orchestration.Recorder
}

// lookupDoneMsg carries a finished lookup back to the event loop.
type lookupDoneMsg struct {
	Completion orchestration.Completion
}

// ContextCancelledMsg signals that the parent context was cancelled.
type ContextCancelledMsg struct {
	Err error
}

// Layout constants for the lookup screen.
const (
	inputWidth     = 39
	historyRows    = 6
	minHistoryRows = 2
	fixedRows      = 14
)

// Model is the root bubbletea model. The orchestrator, the screen it
// draws on and the event log are shared by pointer across the copies
// bubbletea makes of Model; they are only touched from Update.
type Model struct {
	orch    *orchestration.Orchestrator
	screen  *screen
	history *HistoryModel

	header  HeaderModel
	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keymap  KeyMap

	ctx      context.Context
	cancel   context.CancelFunc
	width    int
	height   int
	exitCode int
}

// NewModel creates a new TUI model backed by fetcher.
func NewModel(parentCtx context.Context, fetcher orchestration.Fetcher, opts Options) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	scr := newScreen()
	history := NewHistoryModel(historyRows)

	orchOpts := []orchestration.Option{
		orchestration.WithPresenter(scr),
		orchestration.WithInput(scr),
		orchestration.WithContext(ctx),
	}
	if opts.Logger != nil {
		orchOpts = append(orchOpts, orchestration.WithLogger(opts.Logger))
	}
	if opts.Recorder != nil {
		orchOpts = append(orchOpts, orchestration.WithRecorder(opts.Recorder))
	}
	orch := orchestration.New(fetcher, orchOpts...)
	orch.Subscribe(history.Listener())

	ti := textinput.New()
	ti.Placeholder = "octocat"
	ti.Prompt = "› "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 64
	ti.Width = inputWidth
	ti.Focus()

	return Model{
		orch:     orch,
		screen:   scr,
		history:  history,
		header:   NewHeaderModel(opts.Version),
		input:    ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle)),
		help:     help.New(),
		keymap:   DefaultKeyMap(),
		ctx:      ctx,
		cancel:   cancel,
		exitCode: apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case lookupDoneMsg:
		m.orch.OnResult(msg.Completion)
		return m, m.syncFocus()

	case spinner.TickMsg:
		if !m.screen.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ContextCancelledMsg:
		m.orch.Dispose()
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.orch.Dispose()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Clear):
		m.input.SetValue("")
		m.orch.OnInputChanged("")
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		m.history.ScrollUp()
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.history.ScrollDown()
		return m, nil
	}

	// The input is read-only while a lookup is in flight.
	if m.screen.busy {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.orch.OnInputChanged(after)
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	call := m.orch.Submit(m.input.Value())
	focus := m.syncFocus()
	if call == nil {
		return m, focus
	}
	return m, tea.Batch(lookupCmd(call), m.spinner.Tick, focus)
}

// syncFocus applies a focus request made by the orchestrator.
func (m *Model) syncFocus() tea.Cmd {
	if !m.screen.takeFocus() {
		return nil
	}
	return m.input.Focus()
}

// View renders the lookup screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	m.header.SetCounts(m.history.Counts())

	inputRow := m.input.View() + " " + renderButton(m.screen)
	if m.screen.loading {
		inputRow += " " + m.spinner.View()
	}

	status := renderMessage(m.screen.message)
	if hint := renderRateLimitHint(m.orch.State(), time.Now()); hint != "" {
		status += "\n" + hint
	}

	var body string
	switch {
	case m.screen.profile != nil:
		body = renderProfileCard(*m.screen.profile, m.width)
	case m.screen.showEmptyState():
		body = renderEmptyState(m.width)
	}

	sections := []string{m.header.View(), "", " " + inputRow, " " + status, body}
	if m.history.Len() > 0 {
		sections = append(sections, statsStyle.Render(" Recent lookups"), m.history.View(m.width))
	}
	sections = append(sections, " "+m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, dropBlank(sections)...)
}

func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	rows := m.height - fixedRows
	if m.help.ShowAll {
		rows -= 2
	}
	if rows < minHistoryRows {
		rows = minHistoryRows
	}
	if rows > historyRows {
		rows = historyRows
	}
	m.history.SetHeight(rows)
}

// dropBlank removes empty sections, keeping the spacer under the header.
func dropBlank(sections []string) []string {
	out := sections[:0:0]
	for i, s := range sections {
		if strings.TrimSpace(s) == "" && i > 1 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, fetcher orchestration.Fetcher, opts Options) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, fetcher, opts)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		model.orch.Dispose()
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.orch.Dispose()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// lookupCmd runs call off the event loop and reports its completion.
func lookupCmd(call orchestration.Call) tea.Cmd {
	return func() tea.Msg {
		return lookupDoneMsg{Completion: call()}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
