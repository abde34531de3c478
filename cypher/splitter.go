// splitter.go: statement splitting over the token stream.
package cypher

import "strings"

// Statements splits text into individual statements at top-level
// semicolons. Each statement is trimmed of surrounding whitespace; empty
// statements are dropped. A semicolon inside a string literal is part of
// the String token, and one inside brackets never lexes as Punctuation, so
// neither is ever a boundary.
func (l *Lexer) Statements(text string) []string {
	var stmts []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			stmts = append(stmts, s)
		}
		b.Reset()
	}
	for _, tok := range l.Tokenize(text) {
		if tok.Type == Punctuation && tok.Text == ";" {
			flush()
			continue
		}
		b.WriteString(tok.Text)
	}
	flush()
	return stmts
}

// Statements splits text with the stock Cypher grammar.
func Statements(text string) []string {
	return stock.Statements(text)
}
