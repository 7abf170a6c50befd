package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"quit q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km.Quit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, km.Back},
		{"select", tea.KeyMsg{Type: tea.KeyEnter}, km.Select},
		{"down j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km.Down},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"transpose up", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}, km.TransposeUp},
		{"transpose up without shift", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'='}}, km.TransposeUp},
		{"transpose down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}}, km.TransposeDown},
		{"delete", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, km.Delete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.LibraryHelp(), 7)
	assert.Len(t, km.SongHelp(), 5)
	assert.Len(t, km.FullHelp(), 4)
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}, km.LibraryHelp()...))
}
