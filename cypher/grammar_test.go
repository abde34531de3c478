package cypher

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_DefaultGrammar_FunctionPredicates(t *testing.T) {
	g := DefaultGrammar()
	if !g.IsBuiltInFunction("shortestPath") {
		t.Fatalf("shortestPath should be built in")
	}
	if g.IsBuiltInFunction("datetime") {
		t.Fatalf("datetime is user defined, not built in")
	}
	if !g.IsUserDefinedFunction("datetime.truncate") {
		t.Fatalf("datetime.truncate should be user defined")
	}
	if g.IsUserDefinedFunction("count") {
		t.Fatalf("count is built in, not user defined")
	}
}

func Test_GrammarFromYAML_ExtendsKeywords(t *testing.T) {
	doc := []byte(`
keywords:
  - MATCH
  - RETURN
  - "MERGE INTO"
`)
	g, err := GrammarFromYAML(doc)
	if err != nil {
		t.Fatalf("GrammarFromYAML: %v", err)
	}
	lx := NewLexerFromGrammar(g)

	got := lx.Tokenize("MERGE INTO x")
	if got[0].Type != Keyword || got[0].Text != "MERGE INTO" {
		t.Fatalf("custom multi-word keyword not recognized: %v", got)
	}

	// tables absent from the document keep their stock values
	if tok := lx.Tokenize("true")[0]; tok.Type != NameConstant {
		t.Fatalf("stock constants lost: %+v", tok)
	}
	if tok := lx.Tokenize("<=")[0]; tok.Type != Operator || tok.Text != "<=" {
		t.Fatalf("stock operators lost: %+v", tok)
	}

	// CREATE was dropped from the keyword table, so it lexes as a name now
	if tok := lx.Tokenize("CREATE")[0]; tok.Type != NameVariable {
		t.Fatalf("dropped keyword should lex as a variable: %+v", tok)
	}
}

func Test_GrammarFromYAML_BadDocument(t *testing.T) {
	if _, err := GrammarFromYAML([]byte("keywords: {not: a list")); err == nil {
		t.Fatalf("malformed YAML should fail")
	}
}

func Test_LoadGrammar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grammar.yaml")
	if err := os.WriteFile(path, []byte("constants:\n  - nil\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGrammar(path)
	if err != nil {
		t.Fatalf("LoadGrammar: %v", err)
	}
	lx := NewLexerFromGrammar(g)
	if tok := lx.Tokenize("nil")[0]; tok.Type != NameConstant {
		t.Fatalf("constant from document not recognized: %+v", tok)
	}
	if tok := lx.Tokenize("true")[0]; tok.Type != NameVariable {
		t.Fatalf("replaced constant table should drop stock entries: %+v", tok)
	}
}

func Test_LoadGrammar_MissingFile(t *testing.T) {
	if _, err := LoadGrammar(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("missing file should fail")
	}
}

func Test_CompletionTerms(t *testing.T) {
	terms := DefaultGrammar().CompletionTerms()
	for _, want := range []string{"MATCH", "BEGIN", "CONTAINS", "null", "count", "datetime"} {
		if !contains(terms, want) {
			t.Fatalf("completion terms missing %q", want)
		}
	}
}
