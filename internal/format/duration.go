package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a lookup latency for display: microseconds
// below a millisecond, whole milliseconds below a second, and seconds with
// two decimals above.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
