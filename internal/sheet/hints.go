package sheet

import (
	"fmt"
	"strings"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

// EditingHints expands nodes into display nodes interleaved with the
// places where an editor may drop a chord: before and after every word
// and around every chord. Consecutive places, and consecutive Text hints
// with equal content, are collapsed.
func EditingHints(nodes domain.Nodes) []domain.EditingHint {
	var hints []domain.EditingHint
	for _, n := range nodes {
		switch v := n.(type) {
		case domain.Text:
			hints = append(hints, textHints(string(v))...)
		case domain.Chord:
			hints = append(hints, domain.PlaceHint(), domain.NodeHint(v), domain.PlaceHint())
		case domain.Label, domain.Newline:
			hints = append(hints, domain.NodeHint(v))
		default:
			panic(fmt.Sprintf("sheet: EditingHints: unknown node type %T", n))
		}
	}
	return dedupHints(hints)
}

func textHints(text string) []domain.EditingHint {
	var hints []domain.EditingHint
	parts := strings.Split(text, " ")
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			hints = append(hints, domain.NodeHint(domain.Text(" ")))
			continue
		}
		hints = append(hints, domain.PlaceHint(), domain.NodeHint(domain.Text(part)))
		if i != len(parts)-1 {
			hints = append(hints, domain.PlaceHint(), domain.NodeHint(domain.Text(" ")))
		}
		hints = append(hints, domain.PlaceHint())
	}
	return hints
}

func dedupHints(hints []domain.EditingHint) []domain.EditingHint {
	out := make([]domain.EditingHint, 0, len(hints))
	for _, h := range hints {
		if len(out) > 0 && sameHint(out[len(out)-1], h) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func sameHint(a, b domain.EditingHint) bool {
	ta, aText := a.Node.(domain.Text)
	tb, bText := b.Node.(domain.Text)
	if aText && bText {
		return ta == tb
	}
	return a.PossibleChordPlace && b.PossibleChordPlace
}
