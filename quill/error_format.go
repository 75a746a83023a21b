package quill

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCodeFrame renders a gutter-and-caret excerpt of source pointing at
// pos, the way a compiler diagnostic points at the offending column. It
// shows up to one line of context before and after the offending line, with
// a gutter wide enough for the widest of the three line numbers so the bars
// stay aligned even when the excerpt crosses a digit-width boundary (e.g.
// lines 9, 10, 11). Returns "" when source or pos is unusable (e.g. a
// synthetic position).
func FormatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	line := pos.Line
	if line > len(lines) {
		return ""
	}

	lineRunes := []rune(lines[line-1])
	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lastShown := line
	if line < len(lines) {
		lastShown = line + 1
	}
	gutterWidth := len(strconv.Itoa(lastShown))

	frame := []string{fmt.Sprintf("  --> line %d, column %d", line, column)}
	if line > 1 {
		frame = append(frame, gutterLine(gutterWidth, line-1, lines[line-2]))
	}
	frame = append(frame, gutterLine(gutterWidth, line, lines[line-1]))
	frame = append(frame, fmt.Sprintf(" %s | %s^", strings.Repeat(" ", gutterWidth), strings.Repeat(" ", column-1)))
	if line < len(lines) {
		frame = append(frame, gutterLine(gutterWidth, line+1, lines[line]))
	}
	return strings.Join(frame, "\n")
}

func gutterLine(gutterWidth, lineNum int, text string) string {
	return fmt.Sprintf(" %*d | %s", gutterWidth, lineNum, text)
}
