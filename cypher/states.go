// states.go: the lexing contexts and their rule lists.
package cypher

// State names. The bracket syntax is overloaded — () nodes, [] relationships
// and list comprehensions, {} property maps — so each bracket kind gets its
// own context, and adjacency like )-[ switches contexts directly instead of
// passing through root.
const (
	stRoot     = "root"
	stParen    = "in-()"
	stBracket  = "in-[]"
	stBrace    = "in-{}"
	stComments = "multiline-comments"
)

func cat(lists ...[]rule) []rule {
	var out []rule
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// compileStates flattens the shared rule fragments into one ordered rule
// list per state. The result is read-only; a lexer built from it may be
// shared freely across goroutines.
func compileStates(g *Grammar) map[string][]rule {
	stringRules := []rule{
		pat(`'(?:\\[bfnrt"'\\]|\\u[0-9A-Fa-f]{4}|\\U[0-9A-Fa-f]{8}|[^\\'])*'`, String),
		pat(`"(?:\\[bfnrt'"\\]|\\u[0-9A-Fa-f]{4}|\\U[0-9A-Fa-f]{8}|[^\\"])*"`, String),
	}

	commentRules := []rule{
		pat(`.*//.*\n`, CommentSingle).atLineStart(),
		pat(`/\*`, CommentMultiline).pushes(stComments),
	}

	keywordRules := wordList(g.Keywords, Keyword)
	pseudoKeywordRules := wordList(g.PseudoKeywords, Keyword)

	labelRules := []rule{
		pat("(:)(\\s*)(`(?:``|[^`])+`)", Punctuation, Whitespace, NameLabel),
		pat(`(:)(\s*)([A-Za-z_][0-9A-Za-z_]*)`, Punctuation, Whitespace, NameLabel),
	}

	operatorRules := cat(
		wordList(g.OperatorWords, Operator),
		symbolList(g.OperatorSymbols, Operator),
	)

	expressionRules := cat(
		// procedures
		[]rule{pat(`(CALL)(\s+)([A-Za-z_][0-9A-Za-z_\.]*)`, Keyword, Whitespace, NameFunction)},
		// functions
		[]rule{pat(`([A-Za-z_][0-9A-Za-z_\.]*)(\s*)(\()`, NameFunction, Whitespace, Punctuation).pushes(stParen)},
		// constants
		wordList(g.Constants, NameConstant),
		// aliases
		[]rule{
			pat("(AS)(\\s+)(`(?:``|[^`])+`)", Keyword, Whitespace, NameVariable),
			pat(`(AS)(\s+)([A-Za-z_][0-9A-Za-z_]*)`, Keyword, Whitespace, NameVariable),
		},
		// variables
		[]rule{
			pat("`(?:``|[^`])+`", NameVariable),
			pat(`[A-Za-z_][0-9A-Za-z_]*`, NameVariable),
		},
		// parameters
		[]rule{
			pat("(\\$)(`(?:``|[^`])+`)", Punctuation, NameVariableGlobal),
			pat(`(\$)([A-Za-z_][0-9A-Za-z_]*)`, Punctuation, NameVariableGlobal),
		},
		// numbers
		[]rule{
			pat(`[0-9]*\.[0-9]*(e[+-]?[0-9]+)?`, NumberFloat),
			pat(`[0-9]+e[+-]?[0-9]+`, NumberFloat),
			pat(`[0-9]+`, NumberInteger),
		},
	)

	whitespaceRules := []rule{
		pat(`\s+`, Whitespace),
	}

	return map[string][]rule{
		stRoot: cat(
			stringRules,
			commentRules,
			keywordRules,
			pseudoKeywordRules,
			[]rule{pat(`[,;]`, Punctuation)},
			labelRules,
			operatorRules,
			expressionRules,
			whitespaceRules,
			[]rule{
				pat(`\(`, Punctuation).pushes(stParen),
				pat(`\[`, Punctuation).pushes(stBracket),
				pat(`\{`, Punctuation).pushes(stBrace),
			},
		),
		stParen: cat(
			stringRules,
			commentRules,
			keywordRules, // keywords used in FOREACH
			[]rule{pat(`[,|]`, Punctuation)},
			labelRules,
			operatorRules,
			expressionRules,
			whitespaceRules,
			[]rule{
				pat(`\(`, Punctuation).pushesSelf(),
				pat(`\)\s*<?-+>?\s*\(`, Punctuation),
				pat(`\)\s*<?-+\s*\[`, Punctuation).popsInto(stBracket),
				pat(`\)`, Punctuation).pops(),
				pat(`\[`, Punctuation).pushes(stBracket),
				pat(`\{`, Punctuation).pushes(stBrace),
			},
		),
		stBracket: cat(
			stringRules,
			commentRules,
			[]rule{pat(`WHERE\b`, Keyword)}, // used in list comprehensions
			[]rule{pat(`[,|]`, Punctuation)},
			labelRules,
			operatorRules,
			expressionRules,
			whitespaceRules,
			[]rule{
				pat(`\(`, Punctuation).pushes(stParen),
				pat(`\[`, Punctuation).pushesSelf(),
				pat(`\]\s*-+>?\s*\(`, Punctuation).popsInto(stParen),
				pat(`\]`, Punctuation).pops(),
				pat(`\{`, Punctuation).pushes(stBrace),
			},
		),
		stBrace: cat(
			stringRules,
			commentRules,
			[]rule{pat(`[,:]`, Punctuation)},
			operatorRules,
			expressionRules,
			whitespaceRules,
			[]rule{
				pat(`\(`, Punctuation).pushes(stParen),
				pat(`\[`, Punctuation).pushes(stBracket),
				pat(`\{`, Punctuation).pushesSelf(),
				pat(`\}`, Punctuation).pops(),
			},
		),
		stComments: {
			pat(`/\*`, CommentMultiline).pushesSelf(),
			pat(`\*/`, CommentMultiline).pops(),
			pat(`[^/*]+`, CommentMultiline),
			pat(`[/*]`, CommentMultiline),
		},
	}
}
