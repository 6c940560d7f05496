// Package pattern compiles the user's search expression and finds it in lines.
package pattern

import (
	"fmt"
	"regexp"

	"github.com/harrison/grepy/internal/models"
)

// CompileError reports a malformed search expression.
type CompileError struct {
	Expr string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Expr, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Pattern is a compiled search expression. It is safe for concurrent use.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// Compile parses expr using Go's regular expression syntax.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &CompileError{Expr: expr, Err: err}
	}
	return &Pattern{expr: expr, re: re}, nil
}

// String returns the source expression
func (p *Pattern) String() string {
	return p.expr
}

// Match finds the leftmost match in line.
func (p *Pattern) Match(line string) (models.Match, bool) {
	loc := p.re.FindStringIndex(line)
	if loc == nil {
		return models.Match{}, false
	}
	return models.Match{Text: line[loc[0]:loc[1]], Start: loc[0], End: loc[1]}, true
}

// MatchAll finds every non-overlapping match in line, left to right.
// Empty matches are dropped since they have nothing to highlight; a line whose only
// matches are empty is reported through the single leftmost empty match instead.
func (p *Pattern) MatchAll(line string) []models.Match {
	locs := p.re.FindAllStringIndex(line, -1)
	if locs == nil {
		return nil
	}

	matches := make([]models.Match, 0, len(locs))
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		matches = append(matches, models.Match{Text: line[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}
	if len(matches) == 0 {
		loc := locs[0]
		matches = append(matches, models.Match{Start: loc[0], End: loc[1]})
	}
	return matches
}

// Scan matches one line and builds the record for it.
// The boolean is false when the line does not match and must not be reported.
func (p *Pattern) Scan(lineNumber int, line string, all bool) (models.MatchResult, bool) {
	result := models.MatchResult{LineNumber: lineNumber, Line: line}
	if all {
		result.Matches = p.MatchAll(line)
	} else if m, ok := p.Match(line); ok {
		result.Matches = []models.Match{m}
	}
	return result, result.Matched()
}
