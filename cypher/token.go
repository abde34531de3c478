// Package cypher tokenizes Cypher query text and splits multi-statement
// input at top-level semicolons.
//
// Tokenization is driven by a small stack machine: each nesting context
// (top level, inside round, square or curly brackets, inside a block
// comment) carries its own ordered rule list, and matched delimiters push,
// pop or swap contexts. The grammar tables the rules are compiled from are
// the only configuration surface; see Grammar.
package cypher

// TokenType classifies one span of source text. Types form a hierarchy
// expressed by dotted names: Number.Integer is a refinement of Number.
type TokenType string

const (
	Keyword            TokenType = "Keyword"
	Operator           TokenType = "Operator"
	Punctuation        TokenType = "Punctuation"
	String             TokenType = "String"
	Number             TokenType = "Number"
	NumberInteger      TokenType = "Number.Integer"
	NumberFloat        TokenType = "Number.Float"
	Comment            TokenType = "Comment"
	CommentSingle      TokenType = "Comment.Single"
	CommentMultiline   TokenType = "Comment.Multiline"
	Name               TokenType = "Name"
	NameLabel          TokenType = "Name.Label"
	NameFunction       TokenType = "Name.Function"
	NameVariable       TokenType = "Name.Variable"
	NameVariableGlobal TokenType = "Name.Variable.Global"
	NameConstant       TokenType = "Name.Constant"
	Whitespace         TokenType = "Whitespace"
	Error              TokenType = "Error"
)

// Is reports whether t equals parent or is a refinement of it,
// e.g. NumberFloat.Is(Number) is true.
func (t TokenType) Is(parent TokenType) bool {
	if t == parent {
		return true
	}
	p := string(parent)
	s := string(t)
	return len(s) > len(p) && s[:len(p)] == p && s[len(p)] == '.'
}

// Token is one classified, contiguous span of source text. Pos is the byte
// offset of Text within the input. Tokens are never mutated after emission;
// concatenating the Text of every token of a pass reproduces the input.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}
