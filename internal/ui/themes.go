package ui

import (
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes for line-oriented output.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

// TUITheme holds the lipgloss colors of the full-screen interface.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Link    lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

type palette struct {
	ansi Theme
	tui  TUITheme
}

var palettes = map[string]palette{
	"dark": {
		ansi: Theme{
			Name:      "dark",
			Primary:   "\033[38;5;75m",  // Sky blue
			Secondary: "\033[38;5;245m", // Grey
			Success:   "\033[38;5;78m",  // Green
			Warning:   "\033[38;5;179m", // Amber
			Error:     "\033[38;5;203m", // Salmon red
			Info:      "\033[38;5;111m", // Light blue
			Bold:      "\033[1m",
			Underline: "\033[4m",
			Reset:     "\033[0m",
		},
		tui: TUITheme{
			Text:    lipgloss.Color("#E6EDF3"),
			Border:  lipgloss.Color("#30363D"),
			Accent:  lipgloss.Color("#2F81F7"),
			Link:    lipgloss.Color("#58A6FF"),
			Success: lipgloss.Color("#3FB950"),
			Warning: lipgloss.Color("#D29922"),
			Error:   lipgloss.Color("#F85149"),
			Dim:     lipgloss.Color("#7D8590"),
		},
	},
	"light": {
		ansi: Theme{
			Name:      "light",
			Primary:   "\033[38;5;25m",  // Dark blue
			Secondary: "\033[38;5;240m", // Dark grey
			Success:   "\033[38;5;28m",  // Dark green
			Warning:   "\033[38;5;130m", // Brown
			Error:     "\033[38;5;124m", // Dark red
			Info:      "\033[38;5;31m",  // Teal
			Bold:      "\033[1m",
			Underline: "\033[4m",
			Reset:     "\033[0m",
		},
		tui: TUITheme{
			Text:    lipgloss.Color("#1F2328"),
			Border:  lipgloss.Color("#D0D7DE"),
			Accent:  lipgloss.Color("#0969DA"),
			Link:    lipgloss.Color("#0550AE"),
			Success: lipgloss.Color("#1A7F37"),
			Warning: lipgloss.Color("#9A6700"),
			Error:   lipgloss.Color("#CF222E"),
			Dim:     lipgloss.Color("#656D76"),
		},
	},
	"none": {
		ansi: Theme{Name: "none"},
		tui: TUITheme{
			Text:    lipgloss.NoColor{},
			Border:  lipgloss.NoColor{},
			Accent:  lipgloss.NoColor{},
			Link:    lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Warning: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Dim:     lipgloss.NoColor{},
		},
	},
}

// DefaultThemeName is used for "default" and unknown names.
const DefaultThemeName = "dark"

var (
	current    = palettes[DefaultThemeName]
	themeMutex sync.RWMutex
)

// ThemeNames lists the selectable themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentTheme returns the active line-output theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return current.ansi
}

// GetCurrentTUITheme returns the active full-screen theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return current.tui
}

// SetTheme activates a theme by name. Unknown names select the default.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	p, ok := palettes[name]
	if !ok {
		p = palettes[DefaultThemeName]
	}
	current = p
}

// InitTheme selects the theme for this run. noColor and the NO_COLOR
// environment variable (https://no-color.org/) both force "none".
func InitTheme(name string, noColor bool) {
	if noColor {
		SetTheme("none")
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetTheme("none")
		return
	}
	SetTheme(name)
}
