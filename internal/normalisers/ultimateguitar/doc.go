// Package ultimateguitar provides a SheetNormaliser for the
// bracket-everything dialect used by ultimate-guitar.com tabs.
//
// Chords are written as [ch]C[/ch] on their own line above the lyrics,
// aligned by column. Section markers such as [Verse 1] or [Chorus] are
// labels. The normaliser merges every chord line into the lyric line
// below it.
package ultimateguitar
