package ultimateguitar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/normalisers"
)

const (
	chordOpen  = "[ch]"
	chordClose = "[/ch]"
)

// An opening [ch] without a chord body and closing tag on the same line
// lexes as OpenChord, which no grammar rule accepts. This keeps a broken
// chord from being read back as a "ch" label.
var sheetLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Chord", Pattern: `\[ch\][^\[\]\n]+\[/ch\]`},
	{Name: "OpenChord", Pattern: `\[ch\]`},
	{Name: "Label", Pattern: `\[[^\[\]\n]+\]`},
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
	Label   *string `| @Label`
	Newline bool    `| @Newline`
	Text    *string `| @Text`
}

var sheetParser = participle.MustBuild[sheetAST](
	participle.Lexer(sheetLexer),
)

// Parse tokenises bracket-everything markup into a flat node sequence.
func Parse(input string) (domain.Nodes, error) {
	ast, err := sheetParser.ParseString("", input)
	if err != nil {
		return nil, normalisers.ParseError(domain.DialectUltimateGuitar, input, err, failedRule)
	}

	nodes := make(domain.Nodes, 0, len(ast.Tokens))
	for _, tok := range ast.Tokens {
		switch {
		case tok.Chord != nil:
			body := strings.TrimSuffix(strings.TrimPrefix(*tok.Chord, chordOpen), chordClose)
			nodes = append(nodes, domain.Chord(body))
		case tok.Label != nil:
			nodes = append(nodes, domain.Label(strings.TrimSuffix(strings.TrimPrefix(*tok.Label, "["), "]")))
		case tok.Newline:
			nodes = append(nodes, domain.Newline{})
		case tok.Text != nil:
			nodes = append(nodes, domain.Text(*tok.Text))
		}
	}
	return nodes, nil
}

func failedRule(remaining string) string {
	switch {
	case strings.HasPrefix(remaining, chordOpen):
		return "chord"
	case strings.HasPrefix(remaining, "["):
		return "label"
	case strings.HasPrefix(remaining, "]"):
		return "text"
	default:
		return "sheet"
	}
}

// StripWrappers removes the [tab]...[/tab] block markers that wrap
// chord/lyric groups in a tab page and normalises line endings.
func StripWrappers(content string) string {
	r := strings.NewReplacer("\r\n", "\n", "[tab]", "", "[/tab]", "")
	return r.Replace(content)
}
