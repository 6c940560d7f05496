package logger

import (
	"strings"

	"github.com/fatih/color"
)

// levelColors defines the color used for each level tag.
// Trace: dim, Debug: cyan, Info: blue, Warn: yellow, Error: red
var levelColors = map[string]color.Attribute{
	"TRACE": color.FgHiBlack,
	"DEBUG": color.FgCyan,
	"INFO":  color.FgBlue,
	"WARN":  color.FgYellow,
	"ERROR": color.FgRed,
}

// colorizeLevel returns the level tag wrapped in its color.
// fatih/color decides on its own from stdout whether to color; diagnostics go to stderr,
// so the decision made by ConsoleLogger is forced here.
func colorizeLevel(level string) string {
	attr, ok := levelColors[strings.ToUpper(level)]
	if !ok {
		return level
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(level)
}
