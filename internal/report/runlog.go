package report

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// AppendLog appends the run diagnostics to path under a "=== Run at ... ===" header.
// Earlier runs are kept.
func AppendLog(path string, at time.Time, lines []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n=== Run at %s ===\n", at.Format(time.DateTime))
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("write run log: %w", err)
	}
	return f.Close()
}
