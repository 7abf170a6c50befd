// Package inbox imports chord sheets dropped into a watched directory.
//
// A Watcher listens for fsnotify create and write events on *.txt and *.tab
// files directly inside the directory. Events for the same file are
// debounced so an editor saving in several writes triggers one import.
// The dialect comes from the extension and the title from a file name of
// the form "Artist - Song.ext".
package inbox
