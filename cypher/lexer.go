// lexer.go: the tokenizer driver.
package cypher

import "unicode/utf8"

// Lexer tokenizes Cypher text. A Lexer compiles its grammar once at
// construction and is immutable afterwards; one Lexer may serve any number
// of concurrent Tokenize calls, each of which runs on its own state stack.
type Lexer struct {
	grammar *Grammar
	states  map[string][]rule
}

// stock lexer for the package-level convenience functions.
var stock = NewLexer()

// NewLexer returns a lexer for the stock Cypher grammar.
func NewLexer() *Lexer {
	return NewLexerFromGrammar(DefaultGrammar())
}

// NewLexerFromGrammar compiles g into a lexer. The grammar must not be
// mutated afterwards.
func NewLexerFromGrammar(g *Grammar) *Lexer {
	return &Lexer{grammar: g, states: compileStates(g)}
}

// Grammar returns the grammar the lexer was compiled from.
func (l *Lexer) Grammar() *Grammar {
	return l.grammar
}

// Tokenize scans text into a classified token stream. It is total: input
// that matches no rule in the current context is consumed one rune at a
// time as Error tokens, so the call always terminates and the concatenated
// token texts always reproduce text exactly.
func (l *Lexer) Tokenize(text string) []Token {
	var out []Token
	stack := []string{stRoot}
	pos := 0
	for pos < len(text) {
		rules := l.states[stack[len(stack)-1]]
		matched := false
		for _, r := range rules {
			if r.bol && !atLineStart(text, pos) {
				continue
			}
			idx := r.re.FindStringSubmatchIndex(text[pos:])
			if idx == nil {
				continue
			}
			if idx[1] == 0 && r.act == actNone {
				// zero-width match with no state change cannot advance
				continue
			}
			out = emitMatch(out, r, text, pos, idx)
			pos += idx[1]
			switch r.act {
			case actPush:
				stack = append(stack, r.target)
			case actPushSelf:
				stack = append(stack, stack[len(stack)-1])
			case actPop:
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
			case actPopPush:
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
				stack = append(stack, r.target)
			}
			matched = true
			break
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(text[pos:])
			if size == 0 {
				size = 1
			}
			out = append(out, Token{Error, text[pos : pos+size], pos})
			pos += size
		}
	}
	return out
}

// emitMatch appends the tokens for one rule match: either the whole match
// under the rule's single type, or one token per non-empty capture group.
func emitMatch(out []Token, r rule, text string, pos int, idx []int) []Token {
	if len(r.types) == 1 {
		return append(out, Token{r.types[0], text[pos : pos+idx[1]], pos})
	}
	for gi, tt := range r.types {
		s, e := idx[2*(gi+1)], idx[2*(gi+1)+1]
		if s < 0 || s == e {
			continue
		}
		out = append(out, Token{tt, text[pos+s : pos+e], pos + s})
	}
	return out
}

func atLineStart(text string, pos int) bool {
	return pos == 0 || text[pos-1] == '\n'
}

// Tokenize scans text with the stock Cypher grammar.
func Tokenize(text string) []Token {
	return stock.Tokenize(text)
}
