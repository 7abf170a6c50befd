// Package domain defines the core entities of the song-sheet converter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TextNode: One element of a song body (Text, Chord, Label or Newline)
//   - LyricsWithChords: A song body plus its artist and title
//   - RawSheet: Markup text handed to a dialect normaliser
//   - Song: A stored LyricsWithChords with library metadata
//   - Options: Rendering and labelling configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
