// Package file provides the file-based ConfigStore.
//
// Configuration lives in a TOML file inside the spevnikovac config
// directory. Values can be overridden per process through environment
// variables, which may in turn come from a .env file.
package file
