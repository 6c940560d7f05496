package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// colorMap maps the supported highlight color names to foreground attributes.
var colorMap = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ColorNames returns the supported highlight color names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(colorMap))
	for name := range colorMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsValidColor reports whether name is a supported highlight color (case-insensitive).
func IsValidColor(name string) bool {
	_, ok := colorMap[strings.ToLower(name)]
	return ok
}

// resetMarker ends a highlighted span
var resetMarker = fmt.Sprintf("\x1b[%dm", color.Reset)

// Highlighter wraps text in ANSI foreground color markers of the form
// ESC[0;<code>m ... ESC[0m. The leading reset clears any attribute left on by the
// line itself. Markers are emitted even when stdout is not a terminal; grepy does no
// TTY detection for match output.
type Highlighter struct {
	start string
}

// NewHighlighter creates a Highlighter for the named color.
func NewHighlighter(name string) (*Highlighter, error) {
	attr, ok := colorMap[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown highlight color %q (valid: %s)", name, strings.Join(ColorNames(), ", "))
	}

	// fatih/color closes a multi-attribute sequence with one reset per attribute
	// (ESC[0;0m), so only the attribute codes are taken from it
	return &Highlighter{start: fmt.Sprintf("\x1b[%d;%dm", color.Reset, attr)}, nil
}

// Wrap returns text surrounded by the start and reset markers.
func (h *Highlighter) Wrap(text string) string {
	return h.start + text + resetMarker
}
