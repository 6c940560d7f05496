package display

import (
	"strconv"
	"strings"

	"github.com/harrison/grepy/internal/models"
)

// Formatter renders matched lines as output records.
type Formatter struct {
	cfg         models.SearchConfig
	highlighter *Highlighter
}

// NewFormatter creates a Formatter for cfg. The highlight color is only resolved when
// cfg.Colorize is set, so an unknown color is an error only if it would be used.
func NewFormatter(cfg models.SearchConfig) (*Formatter, error) {
	f := &Formatter{cfg: cfg}
	if cfg.Colorize {
		h, err := NewHighlighter(cfg.HighlightColor)
		if err != nil {
			return nil, err
		}
		f.highlighter = h
	}
	return f, nil
}

// Format builds one record: "[path:][line:]body", without a trailing newline.
// The body is result.Line as read, its line terminator already removed by the reader.
// When colorizing, each match in result.Matches is wrapped in color markers at its
// recorded offset.
func (f *Formatter) Format(task models.FileTask, result models.MatchResult) string {
	var b strings.Builder

	if f.cfg.ShowFilenames {
		b.WriteString(task.Path)
		b.WriteByte(':')
	}
	if f.cfg.ShowLineNumbers {
		b.WriteString(strconv.Itoa(result.LineNumber))
		b.WriteByte(':')
	}

	body := result.Line
	if f.highlighter == nil {
		b.WriteString(body)
		return b.String()
	}

	pos := 0
	for _, m := range result.Matches {
		// Overlapping, empty or out of range matches have nothing to highlight
		if m.Start < pos || m.Start >= m.End || m.End > len(body) {
			continue
		}
		b.WriteString(body[pos:m.Start])
		b.WriteString(f.highlighter.Wrap(body[m.Start:m.End]))
		pos = m.End
	}
	b.WriteString(body[pos:])

	return b.String()
}
