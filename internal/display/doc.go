// Package display renders grepy's output records.
//
// A record is one matched line, optionally prefixed with the file path and the
// line number, in that order:
//
//	notes.txt:2:beta foo
//
// # Highlighting
//
// With colorization enabled the matched text is wrapped in ANSI escape markers built from
// fatih/color attribute codes, for example green:
//
//	beta \x1b[0;32mfoo\x1b[0m
//
// Only the first match of a line is highlighted unless the search runs in all-matches
// mode. Markers are written whether or not stdout is a terminal: piping colorized output
// into another program passes the escape bytes through unchanged.
//
// Supported color names are listed by ColorNames: black, blue, cyan, green, magenta,
// red, white and yellow.
package display
