// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayProfile], [DisplayBatchTable].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatProfile].
//
//   - Write* functions emit machine-readable output.
//     Examples: [WriteJSON].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/ghlookup/internal/format"
	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/ui"
)

// FormatProfile renders a profile as a plain-text card.
//
// Parameters:
//   - p: The profile to render.
//
// Returns:
//   - string: The multi-line card, without a trailing newline.
func FormatProfile(p github.Profile) string {
	var b strings.Builder
	b.WriteString(ui.ColorBold() + p.DisplayLabel() + ui.ColorReset())
	if p.DisplayLabel() != p.Login {
		b.WriteString(" " + ui.ColorGrey() + "@" + p.Login + ui.ColorReset())
	}
	b.WriteString("\n  " + format.Biography(p))
	b.WriteString("\n  " + ui.ColorCyan() + RepoSummary(p) + ui.ColorReset())
	if p.HTMLURL != "" {
		b.WriteString("\n  " + ui.ColorUnderline() + p.HTMLURL + ui.ColorReset())
	}
	if p.AvatarURL != "" {
		b.WriteString("\n  " + ui.ColorGrey() + "avatar: " + p.AvatarURL + ui.ColorReset())
	}
	return b.String()
}

// DisplayProfile writes the profile card followed by a blank line.
func DisplayProfile(out io.Writer, p github.Profile) {
	fmt.Fprintf(out, "%s\n\n", FormatProfile(p))
}

// RepoSummary returns the public repository count for display.
func RepoSummary(p github.Profile) string {
	return format.RepoCount(p.PublicRepos)
}

// DisplayRecord writes one settled lookup: the profile card on success,
// the error line and rate-limit hint otherwise.
func DisplayRecord(out io.Writer, rec LookupRecord) {
	if rec.Profile != nil {
		DisplayProfile(out, *rec.Profile)
		return
	}
	fmt.Fprintf(out, "%s✗ %s: %s%s\n", ui.ColorRed(), rec.Handle, rec.Error, ui.ColorReset())
	if rec.Hint != "" {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorYellow(), rec.Hint, ui.ColorReset())
	}
}

// WriteJSON writes records as indented JSON: a single object for one
// record, an array otherwise.
//
// Returns:
//   - error: An error if encoding or writing fails.
func WriteJSON(out io.Writer, records []LookupRecord) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	var v any = records
	if len(records) == 1 {
		v = records[0]
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}

func recordDuration(rec LookupRecord) string {
	if rec.Elapsed == 0 {
		return "-"
	}
	return format.FormatExecutionDuration(rec.Elapsed)
}
