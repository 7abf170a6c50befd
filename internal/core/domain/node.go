package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TextNode is one element of a song body.
//
// The set of implementations is closed: Text, Chord, Label and Newline.
// Consumers switch over the concrete types and treat any other value as
// a programming error.
type TextNode interface {
	isTextNode()
}

// Text is literal lyric or prose content. Leading and trailing
// whitespace is significant; its byte length drives offset math.
type Text string

// Chord is a chord symbol such as "Am7" or "G/B". Its position is
// implied by its index among its siblings.
type Chord string

// Label is a section marker such as "Chorus" or "Verse 1".
type Label string

// Newline separates two lines. It carries no data.
type Newline struct{}

func (Text) isTextNode()    {}
func (Chord) isTextNode()   {}
func (Label) isTextNode()   {}
func (Newline) isTextNode() {}

// IsChord reports whether n is a Chord.
func IsChord(n TextNode) bool {
	_, ok := n.(Chord)
	return ok
}

// IsText reports whether n is a Text.
func IsText(n TextNode) bool {
	_, ok := n.(Text)
	return ok
}

// IsLabel reports whether n is a Label.
func IsLabel(n TextNode) bool {
	_, ok := n.(Label)
	return ok
}

// Nodes is an ordered node sequence.
//
// Its JSON form is the externally tagged encoding the web front-end
// reads: {"Text":"..."}, {"Chord":"..."}, {"Label":"..."}
// and the bare string "Newline".
type Nodes []TextNode

// Clone returns a shallow copy. Node values are immutable so a shallow
// copy is independent of the receiver.
func (ns Nodes) Clone() Nodes {
	if ns == nil {
		return nil
	}
	out := make(Nodes, len(ns))
	copy(out, ns)
	return out
}

// Chords returns the chord symbols in order.
func (ns Nodes) Chords() []string {
	var out []string
	for _, n := range ns {
		if ch, ok := n.(Chord); ok {
			out = append(out, string(ch))
		}
	}
	return out
}

const newlineTag = "Newline"

// MarshalJSON implements json.Marshaler.
func (ns Nodes) MarshalJSON() ([]byte, error) {
	items := make([]any, 0, len(ns))
	for i, n := range ns {
		item, err := nodeValue(n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		items = append(items, item)
	}
	return json.Marshal(items)
}

// nodeValue returns the JSON-encodable form of a single node.
func nodeValue(n TextNode) (any, error) {
	switch v := n.(type) {
	case Text:
		return map[string]string{"Text": string(v)}, nil
	case Chord:
		return map[string]string{"Chord": string(v)}, nil
	case Label:
		return map[string]string{"Label": string(v)}, nil
	case Newline:
		return newlineTag, nil
	default:
		return nil, fmt.Errorf("unknown node type %T", n)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (ns *Nodes) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Nodes, 0, len(raw))
	for i, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var tag string
			if err := json.Unmarshal(item, &tag); err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			if tag != newlineTag {
				return fmt.Errorf("node %d: unknown unit node %q: %w", i, tag, ErrInvalidInput)
			}
			out = append(out, Newline{})
			continue
		}

		var tagged map[string]string
		if err := json.Unmarshal(item, &tagged); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		if len(tagged) != 1 {
			return fmt.Errorf("node %d: expected exactly one tag, got %d: %w", i, len(tagged), ErrInvalidInput)
		}
		for tag, value := range tagged {
			switch tag {
			case "Text":
				out = append(out, Text(value))
			case "Chord":
				out = append(out, Chord(value))
			case "Label":
				out = append(out, Label(value))
			default:
				return fmt.Errorf("node %d: unknown tag %q: %w", i, tag, ErrInvalidInput)
			}
		}
	}

	*ns = out
	return nil
}
