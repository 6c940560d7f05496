package display

import (
	"testing"

	"github.com/harrison/grepy/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	greenStart = "\x1b[0;32m"
	reset      = "\x1b[0m"
)

func single(lineNumber int, line string, start, end int) models.MatchResult {
	return models.MatchResult{
		LineNumber: lineNumber,
		Line:       line,
		Matches:    []models.Match{{Text: line[start:end], Start: start, End: end}},
	}
}

func TestFormatter_Format(t *testing.T) {
	task := models.FileTask{Path: "a.txt"}

	tests := []struct {
		name   string
		cfg    models.SearchConfig
		result models.MatchResult
		want   string
	}{
		{
			name:   "plain line",
			cfg:    models.SearchConfig{},
			result: single(3, "beta foo", 5, 8),
			want:   "beta foo",
		},
		{
			name:   "line number only",
			cfg:    models.SearchConfig{ShowLineNumbers: true},
			result: single(2, "beta foo", 5, 8),
			want:   "2:beta foo",
		},
		{
			name:   "filename only",
			cfg:    models.SearchConfig{ShowFilenames: true},
			result: single(2, "beta foo", 5, 8),
			want:   "a.txt:beta foo",
		},
		{
			name:   "filename before line number",
			cfg:    models.SearchConfig{ShowFilenames: true, ShowLineNumbers: true},
			result: single(3, "gamma foo", 6, 9),
			want:   "a.txt:3:gamma foo",
		},
		{
			name:   "line text emitted as given",
			cfg:    models.SearchConfig{},
			result: single(1, "foo\r", 0, 3),
			want:   "foo\r",
		},
		{
			name:   "colorized match",
			cfg:    models.SearchConfig{Colorize: true, HighlightColor: "green"},
			result: single(1, "xfoox", 1, 4),
			want:   "x" + greenStart + "foo" + reset + "x",
		},
		{
			name:   "colorized with prefixes",
			cfg:    models.SearchConfig{Colorize: true, HighlightColor: "green", ShowFilenames: true, ShowLineNumbers: true},
			result: single(7, "foo bar", 0, 3),
			want:   "a.txt:7:" + greenStart + "foo" + reset + " bar",
		},
		{
			name: "only first occurrence highlighted",
			cfg:  models.SearchConfig{Colorize: true, HighlightColor: "green"},
			result: models.MatchResult{
				LineNumber: 1,
				Line:       "foo foo",
				Matches:    []models.Match{{Text: "foo", Start: 0, End: 3}},
			},
			want: greenStart + "foo" + reset + " foo",
		},
		{
			name: "all matches highlighted",
			cfg:  models.SearchConfig{Colorize: true, HighlightColor: "green"},
			result: models.MatchResult{
				LineNumber: 1,
				Line:       "foo foo",
				Matches: []models.Match{
					{Text: "foo", Start: 0, End: 3},
					{Text: "foo", Start: 4, End: 7},
				},
			},
			want: greenStart + "foo" + reset + " " + greenStart + "foo" + reset,
		},
		{
			name:   "empty match leaves line untouched",
			cfg:    models.SearchConfig{Colorize: true, HighlightColor: "green"},
			result: single(1, "abc", 0, 0),
			want:   "abc",
		},
		{
			name: "match past the end of the line is ignored",
			cfg:  models.SearchConfig{Colorize: true, HighlightColor: "green"},
			result: models.MatchResult{
				LineNumber: 1,
				Line:       "ab",
				Matches:    []models.Match{{Text: "b\n", Start: 1, End: 3}},
			},
			want: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormatter(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Format(task, tt.result))
		})
	}
}

func TestNewFormatter_UnknownColor(t *testing.T) {
	_, err := NewFormatter(models.SearchConfig{Colorize: true, HighlightColor: "mauve"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mauve")

	// Color is irrelevant when not colorizing
	_, err = NewFormatter(models.SearchConfig{HighlightColor: "mauve"})
	assert.NoError(t, err)
}

func TestHighlighter_Wrap(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  string
	}{
		{name: "red", color: "red", want: "\x1b[0;31mhit" + reset},
		{name: "yellow upper case", color: "YELLOW", want: "\x1b[0;33mhit" + reset},
		{name: "cyan", color: "cyan", want: "\x1b[0;36mhit" + reset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHighlighter(tt.color)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Wrap("hit"))
		})
	}
}

func TestHighlighter_MarkerBytes(t *testing.T) {
	h, err := NewHighlighter("green")
	require.NoError(t, err)

	// ESC[0;<code>m ... ESC[0m
	assert.Equal(t, []byte{0x1b, '[', '0', ';', '3', '2', 'm', 'x', 0x1b, '[', '0', 'm'}, []byte(h.Wrap("x")))
}

func TestColorNames(t *testing.T) {
	assert.Equal(t, []string{"black", "blue", "cyan", "green", "magenta", "red", "white", "yellow"}, ColorNames())
	assert.True(t, IsValidColor("Green"))
	assert.False(t, IsValidColor("orange"))
}
