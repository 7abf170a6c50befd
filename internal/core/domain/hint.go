package domain

import "encoding/json"

// EditingHint is one step of an editor view over a song body: either a
// node to display or a place where the user may drop a chord.
type EditingHint struct {
	// Node is the node to display. Nil for a chord place.
	Node TextNode

	// PossibleChordPlace marks a position that can receive a chord.
	PossibleChordPlace bool
}

// PlaceHint returns a chord-place hint.
func PlaceHint() EditingHint {
	return EditingHint{PossibleChordPlace: true}
}

// NodeHint returns a hint displaying n.
func NodeHint(n TextNode) EditingHint {
	return EditingHint{Node: n}
}

// MarshalJSON encodes a place as "PossibleChordPlace" and a node as
// {"Node": <node>}.
func (h EditingHint) MarshalJSON() ([]byte, error) {
	if h.PossibleChordPlace {
		return json.Marshal("PossibleChordPlace")
	}
	item, err := nodeValue(h.Node)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{"Node": item})
}
