// Package normalisers provides implementations of the SheetNormaliser
// interface for the supported chord-sheet dialects. Each normaliser knows
// how to tokenise one markup convention and realign its chords onto the
// lyric text.
//
// Normalisers are registered with the NormaliserRegistry at startup.
package normalisers
