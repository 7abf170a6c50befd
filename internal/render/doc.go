// Package render writes songs for people to read.
//
// Plain writes chords inline in brackets, the same notation the supermusic
// dialect is typed in, so its output can be parsed back. Terminal adds
// colour through lipgloss and is chosen automatically when stdout is a TTY.
package render
