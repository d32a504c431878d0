package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/ghlookup/internal/ui"
)

// Style variables for the lookup screen.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	versionStyle    lipgloss.Style
	statsStyle      lipgloss.Style
	promptStyle     lipgloss.Style
	buttonStyle     lipgloss.Style
	buttonBusyStyle lipgloss.Style
	buttonOffStyle  lipgloss.Style
	infoStyle       lipgloss.Style
	successStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	hintStyle       lipgloss.Style
	nameStyle       lipgloss.Style
	loginStyle      lipgloss.Style
	bioStyle        lipgloss.Style
	linkStyle       lipgloss.Style
	emptyTitleStyle lipgloss.Style
	emptyBodyStyle  lipgloss.Style
	logTimeStyle    lipgloss.Style
	logSuccessStyle lipgloss.Style
	logErrorStyle   lipgloss.Style
	spinnerStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statsStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	promptStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	buttonStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)

	buttonBusyStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Padding(0, 1)

	buttonOffStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Background(t.Border).
		Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Italic(true)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	hintStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	nameStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	loginStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	bioStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	linkStyle = lipgloss.NewStyle().
		Foreground(t.Link).
		Underline(true)

	emptyTitleStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	emptyBodyStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	logTimeStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	logSuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	logErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	spinnerStyle = lipgloss.NewStyle().
		Foreground(t.Accent)
}
