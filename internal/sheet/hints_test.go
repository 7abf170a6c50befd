package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
)

func TestEditingHints(t *testing.T) {
	place := domain.PlaceHint()
	node := domain.NodeHint

	nodes := domain.Nodes{domain.Chord("C"), domain.Text("Hello world"), domain.Newline{}}

	assert.Equal(t, []domain.EditingHint{
		place, node(domain.Chord("C")), place,
		node(domain.Text("Hello")), place, node(domain.Text(" ")), place,
		node(domain.Text("world")), place,
		node(domain.Newline{}),
	}, EditingHints(nodes))
}

func TestEditingHints_WhitespaceAndLabels(t *testing.T) {
	place := domain.PlaceHint()
	node := domain.NodeHint

	nodes := domain.Nodes{domain.Label("®:"), domain.Text(" a")}

	assert.Equal(t, []domain.EditingHint{
		node(domain.Label("®:")),
		node(domain.Text(" ")),
		place, node(domain.Text("a")), place,
	}, EditingHints(nodes))
}

func TestEditingHints_Empty(t *testing.T) {
	assert.Empty(t, EditingHints(nil))
}
