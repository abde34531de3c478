package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/jtwool/py2neo/cypher"
)

const (
	appName     = "cypher"
	historyFile = ".cypher_history"
	promptMain  = "cypher> "
	promptCont  = "   ...> "
)

var banner = fmt.Sprintf("Cypher tools %s\nCtrl+C cancels input, Ctrl+D exits. Statements run on ';'. Type :quit to exit.", cypher.Version)

func red(s string) string    { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string  { return "\x1b[32m" + s + "\x1b[0m" }
func yellow(s string) string { return "\x1b[33m" + s + "\x1b[0m" }
func blue(s string) string   { return "\x1b[94m" + s + "\x1b[0m" }
func cyan(s string) string   { return "\x1b[36m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:]))
	case "split":
		os.Exit(cmdSplit(os.Args[2:]))
	case "shell":
		os.Exit(cmdShell(os.Args[2:]))
	case "version":
		fmt.Println(cypher.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Cypher tools %s

Usage:
  %s tokens [-g grammar.yaml] [file]    Dump the token stream (stdin if no file)
  %s split  [-g grammar.yaml] [file]    Split input into statements
  %s shell  [-g grammar.yaml]           Interactive shell
  %s version                            Print the version

`, cypher.Version, appName, appName, appName, appName)
}

// newLexer builds a lexer from the -g grammar document, or the stock
// grammar when the flag is empty.
func newLexer(grammarPath string) (*cypher.Lexer, error) {
	if grammarPath == "" {
		return cypher.NewLexer(), nil
	}
	g, err := cypher.LoadGrammar(grammarPath)
	if err != nil {
		return nil, err
	}
	return cypher.NewLexerFromGrammar(g), nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

// -----------------------------------------------------------------------------
// tokens
// -----------------------------------------------------------------------------

func cmdTokens(args []string) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	grammarPath := fs.String("g", "", "YAML grammar document")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	lx, err := newLexer(*grammarPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	src, err := readInput(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}

	for _, tok := range lx.Tokenize(src) {
		fmt.Printf("%6d  %-20s  %q\n", tok.Pos, tok.Type, tok.Text)
	}
	return 0
}

// -----------------------------------------------------------------------------
// split
// -----------------------------------------------------------------------------

func cmdSplit(args []string) int {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	grammarPath := fs.String("g", "", "YAML grammar document")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	lx, err := newLexer(*grammarPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	src, err := readInput(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}

	fmt.Print(renderStatements(lx.Statements(src)))
	return 0
}

// renderStatements prints one statement per block, separated by blank
// lines. Statements are printed as split — the consumed terminators are
// not re-added, so a final unterminated statement stays unterminated.
func renderStatements(stmts []string) string {
	var b strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(stmt)
		b.WriteByte('\n')
	}
	return b.String()
}

// -----------------------------------------------------------------------------
// shell
// -----------------------------------------------------------------------------

func cmdShell(args []string) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	grammarPath := fs.String("g", "", "YAML grammar document")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	lx, err := newLexer(*grammarPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}

	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(completer(lx.Grammar()))

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		src, ok := readStatement(ln, lx)
		if !ok {
			fmt.Println()
			break
		}

		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			switch strings.TrimSpace(strings.ToLower(src)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(src) == "" {
			continue
		}

		for _, d := range cypher.Diagnose(src, lx.Tokenize(src)) {
			fmt.Fprint(os.Stderr, red(d.Format(src)))
		}
		for _, stmt := range lx.Statements(src) {
			fmt.Println(colorize(lx.Tokenize(stmt)))
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}

	return 0
}

// readStatement keeps prompting until the buffer ends in a complete
// ';'-terminated statement (or a ':' shell command on the first line).
func readStatement(ln *liner.State, lx *cypher.Lexer) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if endsStatement(lx, src) {
			return src, true
		}
	}
}

// endsStatement reports whether the last meaningful token of src is a
// top-level statement terminator. A ';' inside a string or inside brackets
// never lexes as Punctuation, so an open construct keeps the continuation
// prompt going.
func endsStatement(lx *cypher.Lexer, src string) bool {
	tokens := lx.Tokenize(src)
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		if tok.Type.Is(cypher.Whitespace) || tok.Type.Is(cypher.Comment) {
			continue
		}
		return tok.Type == cypher.Punctuation && tok.Text == ";"
	}
	return false
}

// completer offers the grammar's keywords, functions and constants for the
// word under the cursor.
func completer(g *cypher.Grammar) liner.WordCompleter {
	terms := g.CompletionTerms()
	return func(line string, pos int) (head string, completions []string, tail string) {
		head = line[:pos]
		tail = line[pos:]
		start := strings.LastIndexAny(head, " \t(),[]{}|:")
		word := head[start+1:]
		head = head[:start+1]
		if word == "" {
			return head + word, nil, tail
		}
		for _, term := range terms {
			if len(term) >= len(word) && strings.EqualFold(term[:len(word)], word) {
				completions = append(completions, term)
			}
		}
		if len(completions) == 0 {
			return head + word, nil, tail
		}
		return head, completions, tail
	}
}

// colorize renders a token stream with one ANSI color per token class.
func colorize(tokens []cypher.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch {
		case tok.Type.Is(cypher.Keyword):
			b.WriteString(green(tok.Text))
		case tok.Type.Is(cypher.String):
			b.WriteString(yellow(tok.Text))
		case tok.Type.Is(cypher.Number):
			b.WriteString(cyan(tok.Text))
		case tok.Type.Is(cypher.Comment):
			b.WriteString(cyan(tok.Text))
		case tok.Type.Is(cypher.Name):
			b.WriteString(blue(tok.Text))
		case tok.Type.Is(cypher.Error):
			b.WriteString(red(tok.Text))
		default:
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}
