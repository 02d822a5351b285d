// Package render formats extracted records as line-wrapped text blocks.
// All functions are pure: display options are resolved once by the caller
// and passed in, never read from global state.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/chfmt/internal/record"
)

// separator sits between the timestamp and the first display line.
const separator = "  "

// minTextWidth is the floor for the wrapped text column. It guarantees
// wrapping never degenerates to zero or negative width on narrow terminals.
const minTextWidth = 20

// Options control how a record is rendered.
type Options struct {
	// Width is the number of terminal columns available.
	Width int
	// TrimWords truncates the display text to this many words, appending
	// "..." when truncation occurs. Zero disables trimming.
	TrimWords int
	// ShowTimestamp prefixes the block with the record timestamp and
	// aligns continuation lines under the text column.
	ShowTimestamp bool
}

// Format renders one record as a possibly multi-line text block.
func Format(rec record.Record, opts Options) string {
	display := rec.Display()
	if opts.TrimWords > 0 {
		display = trimWords(display, opts.TrimWords)
	}

	if !opts.ShowTimestamp {
		return strings.Join(wrap(display, opts.Width), "\n")
	}

	ts := Timestamp(rec.Timestamp())
	indent := strings.Repeat(" ", len(ts)+len(separator))
	width := opts.Width - len(indent)
	if width < minTextWidth {
		width = minTextWidth
	}

	lines := wrap(display, width)

	var b strings.Builder
	b.WriteString(ts)
	b.WriteString(separator)
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// Timestamp formats a millisecond epoch timestamp as a local-time
// "YYYY-MM-DD HH:MM:SS.mmm" string.
func Timestamp(ms int64) string {
	t := time.UnixMilli(ms)
	frac := ms % 1000
	if frac < 0 {
		frac += 1000
	}
	return fmt.Sprintf("%s.%03d", t.Format("2006-01-02 15:04:05"), frac)
}

// trimWords truncates text to at most max whitespace-delimited words,
// appending "..." only when truncation occurred. A word count equal to max
// is left untouched.
func trimWords(text string, max int) string {
	words := strings.Fields(text)
	if len(words) <= max {
		return text
	}
	return strings.Join(words[:max], " ") + "..."
}
