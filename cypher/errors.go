// errors.go: reporting for unclassifiable input.
//
// Tokenization never fails — input that matches no rule degrades to
// per-rune Error tokens. This file turns those tokens into readable,
// caret-annotated snippets for interactive use:
//
//	unclassified input at 2:9: ";"
//
//	   1 | MATCH (a)
//	   2 | WHERE (x; y)
//	     |         ^
//	   3 | RETURN a
//
// The snippet numbers the lines, shows up to one line of context either
// side, and places a caret under the 1-based column.
package cypher

import (
	"fmt"
	"strings"
)

// Diagnostic locates one run of unclassifiable input. Line and Col are
// 1-based; Text is the offending source text.
type Diagnostic struct {
	Line int
	Col  int
	Text string
}

// Diagnose collects the Error tokens of a pass over src into diagnostics.
// Runs of consecutive Error tokens are merged into one.
func Diagnose(src string, tokens []Token) []Diagnostic {
	var out []Diagnostic
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Type != Error {
			continue
		}
		start := tokens[i]
		text := start.Text
		for i+1 < len(tokens) && tokens[i+1].Type == Error &&
			tokens[i+1].Pos == tokens[i].Pos+len(tokens[i].Text) {
			i++
			text += tokens[i].Text
		}
		line, col := lineCol(src, start.Pos)
		out = append(out, Diagnostic{Line: line, Col: col, Text: text})
	}
	return out
}

// Format renders the diagnostic as a caret-annotated snippet of src.
func (d Diagnostic) Format(src string) string {
	lines := strings.Split(src, "\n")
	line, col := d.Line, d.Col
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	// header and caret share the clamped location
	var b strings.Builder
	fmt.Fprintf(&b, "unclassified input at %d:%d: %q\n\n", line, col, d.Text)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// lineCol converts a byte offset into 1-based line and column numbers.
// Out-of-range offsets are clamped to the source bounds.
func lineCol(src string, pos int) (line, col int) {
	if pos > len(src) {
		pos = len(src)
	}
	line = 1 + strings.Count(src[:pos], "\n")
	if i := strings.LastIndexByte(src[:pos], '\n'); i >= 0 {
		col = pos - i
	} else {
		col = pos + 1
	}
	return line, col
}
