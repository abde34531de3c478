// rules.go: match rules and the compilers that turn literal tables into
// correctly ordered rule lists.
package cypher

import (
	"regexp"
	"sort"
	"strings"
)

// action is the stack operation a rule applies after its match.
type action int

const (
	actNone     action = iota
	actPush            // push target
	actPushSelf        // push the current state again (self-nesting)
	actPop             // pop one state; the root state never pops
	actPopPush         // pop one state, then push target
)

// rule is one (pattern, token types, transition) entry of a state. Rules
// within a state are tried in order; the first pattern that matches at the
// current offset wins. A rule either assigns one type to the whole match,
// or, when types has more than one entry, one type per capture group.
type rule struct {
	re     *regexp.Regexp
	types  []TokenType
	act    action
	target string
	bol    bool // pattern only applies at the beginning of a line
}

// pat compiles a rule matching at the current offset only. All patterns are
// case-insensitive and multiline, as the grammar requires.
func pat(expr string, types ...TokenType) rule {
	return rule{
		re:    regexp.MustCompile(`(?im)\A(?:` + expr + `)`),
		types: types,
	}
}

func (r rule) pushes(state string) rule {
	r.act, r.target = actPush, state
	return r
}

func (r rule) pushesSelf() rule {
	r.act = actPushSelf
	return r
}

func (r rule) pops() rule {
	r.act = actPop
	return r
}

func (r rule) popsInto(state string) rule {
	r.act, r.target = actPopPush, state
	return r
}

func (r rule) atLineStart() rule {
	r.bol = true
	return r
}

// wordList compiles a set of keyword phrases into one rule per phrase.
// Internal spaces match any whitespace run, and a trailing word boundary
// keeps a phrase from matching as the prefix of a longer identifier.
//
// The generated patterns are sorted in descending order. For any two
// phrases where one is a prefix of the other ("CREATE", "CREATE UNIQUE"),
// a strict prefix sorts below its extension, so the longer phrase is always
// tried first. That is the only kind of ambiguity these tables contain, so
// the sort stands in for a full longest-match scan.
func wordList(words []string, t TokenType) []rule {
	patterns := make([]string, len(words))
	for i, w := range words {
		patterns[i] = strings.ReplaceAll(w, " ", `\s+`) + `\b`
	}
	sort.Sort(sort.Reverse(sort.StringSlice(patterns)))
	rules := make([]rule, len(patterns))
	for i, p := range patterns {
		rules[i] = pat(p, t)
	}
	return rules
}

// symbolList compiles operator symbols the same way, with every character
// backslash-escaped instead of word-bounded. The descending sort again
// guarantees "<=" is tried before "<".
func symbolList(symbols []string, t TokenType) []rule {
	patterns := make([]string, len(symbols))
	for i, s := range symbols {
		var b strings.Builder
		for _, ch := range s {
			b.WriteByte('\\')
			b.WriteRune(ch)
		}
		patterns[i] = b.String()
	}
	sort.Sort(sort.Reverse(sort.StringSlice(patterns)))
	rules := make([]rule, len(patterns))
	for i, p := range patterns {
		rules[i] = pat(p, t)
	}
	return rules
}
