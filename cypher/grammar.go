// grammar.go: the literal tables the lexer rules are compiled from.
package cypher

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keyword phrases. Multi-word entries match across any run of whitespace,
// so "ORDER   BY" and "ORDER BY" are the same keyword.
var cypherKeywords = []string{
	"AS",
	"ASC",
	"ASCENDING",
	"ASSERT",
	"ASSERT EXISTS",
	"CALL",
	"CONSTRAINT ON",
	"CREATE",
	"CREATE UNIQUE",
	"CYPHER",
	"DELETE",
	"DESC",
	"DESCENDING",
	"DETACH DELETE",
	"DO",
	"DROP",
	"EXPLAIN",
	"FIELDTERMINATOR",
	"FOREACH",
	"FROM",
	"GRAPH",
	"GRAPH AT",
	"GRAPH OF",
	"INDEX ON",
	"INTO",
	"IS NODE KEY",
	"IS UNIQUE",
	"LIMIT",
	"LOAD",
	"LOAD CSV",
	"MATCH",
	"MERGE",
	"ON CREATE SET",
	"ON MATCH SET",
	"OPTIONAL MATCH",
	"ORDER BY",
	"PERSIST",
	"_PRAGMA",
	"PROFILE",
	"REMOVE",
	"RELOCATE",
	"RETURN",
	"RETURN DISTINCT",
	"SET",
	"SKIP",
	"SNAPSHOT",
	"SOURCE",
	"START",
	"TARGET",
	"UNION",
	"UNION ALL",
	"UNWIND",
	"USING INDEX",
	"USING JOIN ON",
	"USING PERIODIC COMMIT",
	"USING SCAN",
	"WHERE",
	"WITH",
	"WITH DISTINCT",
	"WITH HEADERS",
	"YIELD",
	">>",
}

var cypherPseudoKeywords = []string{
	"BEGIN",
	"COMMIT",
	"ROLLBACK",
}

var cypherOperatorSymbols = []string{
	"!=",
	"%",
	"*",
	"+",
	"+=",
	"-",
	".",
	"/",
	"<",
	"<=",
	"<>",
	"=",
	"=~",
	">",
	">=",
	"^",
}

var cypherOperatorWords = []string{
	"AND",
	"CASE",
	"CONTAINS",
	"DISTINCT",
	"ELSE",
	"END",
	"ENDS WITH",
	"IN",
	"IS NOT NULL",
	"IS NULL",
	"NOT",
	"OR",
	"STARTS WITH",
	"THEN",
	"WHEN",
	"XOR",
}

var cypherConstants = []string{
	"null",
	"true",
	"false",
}

var neo4jBuiltInFunctions = []string{
	"abs",
	"acos",
	"all",
	"allShortestPaths",
	"any",
	"asin",
	"atan",
	"atan2",
	"avg",
	"ceil",
	"coalesce",
	"collect",
	"cos",
	"cot",
	"count",
	"degrees",
	"e",
	"endNode",
	"exists",
	"exp",
	"extract",
	"filter",
	"floor",
	"haversin",
	"head",
	"id",
	"keys",
	"labels",
	"last",
	"left",
	"length",
	"log",
	"log10",
	"lTrim",
	"max",
	"min",
	"nodes",
	"none",
	"percentileCont",
	"percentileDisc",
	"pi",
	"distance",
	"point",
	"radians",
	"rand",
	"range",
	"reduce",
	"relationships",
	"replace",
	"reverse",
	"right",
	"round",
	"rTrim",
	"shortestPath",
	"sign",
	"sin",
	"single",
	"size",
	"split",
	"sqrt",
	"startNode",
	"stdDev",
	"stdDevP",
	"substring",
	"sum",
	"tail",
	"tan",
	"timestamp",
	"toBoolean",
	"toFloat",
	"toInteger",
	"toLower",
	"toString",
	"toUpper",
	"properties",
	"trim",
	"type",
}

var neo4jUserDefinedFunctions = []string{
	"date",
	"date.realtime",
	"date.statement",
	"date.transaction",
	"date.truncate",
	"datetime",
	"datetime.fromepoch",
	"datetime.fromepochmillis",
	"datetime.realtime",
	"datetime.statement",
	"datetime.transaction",
	"datetime.truncate",
	"duration",
	"duration.between",
	"duration.inDays",
	"duration.inMonths",
	"duration.inSeconds",
	"localdatetime",
	"localdatetime.realtime",
	"localdatetime.statement",
	"localdatetime.transaction",
	"localdatetime.truncate",
	"localtime",
	"localtime.realtime",
	"localtime.statement",
	"localtime.transaction",
	"localtime.truncate",
	"randomUUID",
	"time",
	"time.realtime",
	"time.statement",
	"time.transaction",
	"time.truncate",
}

// Grammar is the full table set one lexer is compiled from. Swapping or
// extending the tables (a new Cypher version, vendor extensions) needs no
// change to the driver or the splitter. A Grammar is read-only once a
// lexer has been built from it.
type Grammar struct {
	Keywords             []string `yaml:"keywords"`
	PseudoKeywords       []string `yaml:"pseudo-keywords"`
	OperatorSymbols      []string `yaml:"operator-symbols"`
	OperatorWords        []string `yaml:"operator-words"`
	Constants            []string `yaml:"constants"`
	BuiltInFunctions     []string `yaml:"built-in-functions"`
	UserDefinedFunctions []string `yaml:"user-defined-functions"`
}

// DefaultGrammar returns the stock Cypher grammar (the Cypher version
// shipped with Neo4j 3.4).
func DefaultGrammar() *Grammar {
	return &Grammar{
		Keywords:             cypherKeywords,
		PseudoKeywords:       cypherPseudoKeywords,
		OperatorSymbols:      cypherOperatorSymbols,
		OperatorWords:        cypherOperatorWords,
		Constants:            cypherConstants,
		BuiltInFunctions:     neo4jBuiltInFunctions,
		UserDefinedFunctions: neo4jUserDefinedFunctions,
	}
}

// GrammarFromYAML builds a grammar from a YAML document. Tables absent from
// the document keep their stock values, so a document can extend just the
// keyword list:
//
//	keywords:
//	  - MATCH
//	  - "MY EXTENSION"
func GrammarFromYAML(data []byte) (*Grammar, error) {
	var doc Grammar
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cypher: parsing grammar document: %w", err)
	}
	g := DefaultGrammar()
	if doc.Keywords != nil {
		g.Keywords = doc.Keywords
	}
	if doc.PseudoKeywords != nil {
		g.PseudoKeywords = doc.PseudoKeywords
	}
	if doc.OperatorSymbols != nil {
		g.OperatorSymbols = doc.OperatorSymbols
	}
	if doc.OperatorWords != nil {
		g.OperatorWords = doc.OperatorWords
	}
	if doc.Constants != nil {
		g.Constants = doc.Constants
	}
	if doc.BuiltInFunctions != nil {
		g.BuiltInFunctions = doc.BuiltInFunctions
	}
	if doc.UserDefinedFunctions != nil {
		g.UserDefinedFunctions = doc.UserDefinedFunctions
	}
	return g, nil
}

// LoadGrammar reads a YAML grammar document from a file.
func LoadGrammar(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cypher: reading grammar %s: %w", path, err)
	}
	return GrammarFromYAML(data)
}

// IsBuiltInFunction reports whether name is one of the built-in functions.
func (g *Grammar) IsBuiltInFunction(name string) bool {
	return contains(g.BuiltInFunctions, name)
}

// IsUserDefinedFunction reports whether name is one of the user-defined
// (temporal) functions.
func (g *Grammar) IsUserDefinedFunction(name string) bool {
	return contains(g.UserDefinedFunctions, name)
}

// CompletionTerms returns every term worth offering in interactive
// completion: keywords, pseudo-keywords, operator words, constants and
// function names.
func (g *Grammar) CompletionTerms() []string {
	var out []string
	out = append(out, g.Keywords...)
	out = append(out, g.PseudoKeywords...)
	out = append(out, g.OperatorWords...)
	out = append(out, g.Constants...)
	out = append(out, g.BuiltInFunctions...)
	out = append(out, g.UserDefinedFunctions...)
	return out
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
