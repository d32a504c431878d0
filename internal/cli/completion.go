package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "user")
	Short     string   // short flag without "-" (e.g., "u")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "handle", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsTheme   bool     // true if values come from the theme list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "user", Short: "u", Help: "GitHub username(s) to look up", ValueName: "handle"},
	{Long: "json", Help: "Print results as JSON"},
	{Long: "timeout", Help: "Maximum time for non-interactive lookups", Values: []string{"5s", "10s", "30s", "1m"}, ValueName: "duration"},
	{Long: "concurrency", Help: "Concurrent lookups in batch mode", Values: []string{"1", "2", "4", "8"}, ValueName: "number"},
	{Long: "repl", Help: "Start the line-oriented interactive mode"},
	{Long: "no-tui", Help: "Never start the full-screen interface"},
	{Long: "base-url", Help: "GitHub API base URL", Values: []string{"https://api.github.com"}, ValueName: "url"},
	{Long: "token", Help: "GitHub API token", ValueName: "token"},
	{Long: "user-agent", Help: "User-Agent header", ValueName: "agent"},
	{Long: "rate", Help: "Client-side requests per second", Values: []string{"0", "1", "2", "5"}, ValueName: "rate"},
	{Long: "burst", Help: "Client-side burst size", Values: []string{"1", "4", "8"}, ValueName: "number"},
	{Long: "config", Help: "YAML configuration file", IsFile: true, ValueName: "file"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "log-file", Help: "Log file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-addr", Help: "Prometheus metrics listen address", Values: []string{":9090"}, ValueName: "addr"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", IsTheme: true, ValueName: "theme"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - themes: List of selectable theme names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, themes []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, themes)
	case "zsh":
		return generateZshCompletion(out, themes)
	case "fish":
		return generateFishCompletion(out, themes)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, themes)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// flagNames returns the dash-prefixed spellings of f.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	return names
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, themes []string) error {
	var opts []string
	for _, f := range flagRegistry {
		opts = append(opts, flagNames(f)...)
	}

	var caseBody strings.Builder
	writeCase := func(patterns []string, body string) {
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(patterns, "|"))
		caseBody.WriteString(")\n            ")
		caseBody.WriteString(body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	var filePatterns []string
	for _, f := range flagRegistry {
		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, flagNames(f)...)
		case f.IsTheme:
			writeCase(flagNames(f), `COMPREPLY=( $(compgen -W "${themes}" -- "${cur}") )`)
		case len(f.Values) > 0:
			writeCase(flagNames(f), fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")))
		}
	}
	if len(filePatterns) > 0 {
		writeCase(filePatterns, `COMPREPLY=( $(compgen -f -- "${cur}") )`)
	}

	script := fmt.Sprintf(`# Bash completion script for ghlookup
# Add this to your ~/.bashrc or ~/.bash_completion

_ghlookup_completions() {
    local cur prev opts themes
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available themes
    themes="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _ghlookup_completions ghlookup
`, strings.Join(opts, " "), strings.Join(themes, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, themes []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef ghlookup

# Zsh completion script for ghlookup
# Add this to your ~/.zshrc or place in $fpath

_ghlookup() {
    local -a themes
    themes=(%s)

    _arguments -s \
%s
}

_ghlookup "$@"
`, strings.Join(themes, " "), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsTheme:
		valueSuffix = fmt.Sprintf(":%s:($themes)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, themes []string) error {
	lines := []string{
		"# Fish completion script for ghlookup",
		"# Add this to ~/.config/fish/completions/ghlookup.fish",
		"",
		"# Disable file completion by default",
		"complete -c ghlookup -f",
		"",
	}

	themeList := strings.Join(themes, " ")
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, themeList))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, themeList string) string {
	parts := []string{"complete -c ghlookup"}

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsTheme:
		parts = append(parts, fmt.Sprintf("-xa '%s'", themeList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, themes []string) error {
	var optionEntries []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
	}

	psSwitchEntry := func(long string, values []string) string {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = fmt.Sprintf("'%s'", v)
		}
		return fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, long, strings.Join(quoted, ", "))
	}

	var switchEntries []string
	for _, f := range flagRegistry {
		switch {
		case f.IsTheme:
			switchEntries = append(switchEntries, psSwitchEntry(f.Long, themes))
		case !f.IsFile && len(f.Values) > 0:
			switchEntries = append(switchEntries, psSwitchEntry(f.Long, f.Values))
		}
	}

	script := fmt.Sprintf(`# PowerShell completion script for ghlookup
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'ghlookup' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
%s
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
