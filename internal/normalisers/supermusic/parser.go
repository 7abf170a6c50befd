package supermusic

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/normalisers"
)

// Lexer rules are tried in order. A "[" that does not open a complete
// chord on the same line matches nothing and stops the lexer.
var sheetLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Chord", Pattern: `\[[^\[\]\n]+\]`},
	{Name: "Newline", Pattern: `\n`},
	{Name: "Text", Pattern: `[^\[\]\n]+`},
})

//nolint:govet // participle grammar tags
type sheetAST struct {
	Tokens []*token `@@*`
}

//nolint:govet // participle grammar tags
type token struct {
	Chord   *string `  @Chord`
	Newline bool    `| @Newline`
	Text    *string `| @Text`
}

var sheetParser = participle.MustBuild[sheetAST](
	participle.Lexer(sheetLexer),
)

// chordListSep separates the chords of a comma list such as [C, G].
const chordListSep = ", "

// Parse tokenises inline-chord markup into a flat node sequence.
// A bracketed comma list becomes separate chords joined by a single space.
func Parse(input string) (domain.Nodes, error) {
	ast, err := sheetParser.ParseString("", input)
	if err != nil {
		return nil, normalisers.ParseError(domain.DialectSupermusic, input, err, failedRule)
	}

	nodes := make(domain.Nodes, 0, len(ast.Tokens))
	for _, tok := range ast.Tokens {
		switch {
		case tok.Chord != nil:
			nodes = appendChords(nodes, strings.TrimSuffix(strings.TrimPrefix(*tok.Chord, "["), "]"))
		case tok.Newline:
			nodes = append(nodes, domain.Newline{})
		case tok.Text != nil:
			nodes = append(nodes, domain.Text(*tok.Text))
		}
	}
	return nodes, nil
}

func appendChords(nodes domain.Nodes, body string) domain.Nodes {
	for i, name := range strings.Split(body, chordListSep) {
		if i > 0 {
			nodes = append(nodes, domain.Text(" "))
		}
		nodes = append(nodes, domain.Chord(name))
	}
	return nodes
}

func failedRule(remaining string) string {
	switch {
	case strings.HasPrefix(remaining, "["):
		return "chord"
	case strings.HasPrefix(remaining, "]"):
		return "text"
	default:
		return "sheet"
	}
}
