// Package supermusic provides a SheetNormaliser for the inline chord
// dialect exported by supermusic.cz. Chords are written directly into the
// lyric line as [C], and the realigner only has to move chords that sit
// inside a word onto the nearest word boundary.
package supermusic
