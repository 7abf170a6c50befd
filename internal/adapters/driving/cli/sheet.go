package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/adapters/driven/inbox"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/normalisers/supermusic"
)

// sheetFlags are the input flags shared by parse and import.
type sheetFlags struct {
	dialect  string
	artist   string
	songName string
	export   bool
}

func (f *sheetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.dialect, "dialect", "d", "", "Sheet dialect: supermusic or ultimate-guitar (default from file extension or settings)")
	cmd.Flags().StringVar(&f.artist, "artist", "", "Artist name (default from the file name)")
	cmd.Flags().StringVar(&f.songName, "song", "", "Song name (default from the file name)")
	cmd.Flags().BoolVar(&f.export, "export", false, "Input is a supermusic TXT export; drop its header lines")
}

// readSheet loads path ("-" for stdin) into a RawSheet. An explicit
// --dialect wins over the file extension; otherwise the service default
// applies.
func readSheet(cmd *cobra.Command, path string, flags *sheetFlags) (*domain.RawSheet, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content, err := inbox.DecodeText(data)
	if err != nil {
		return nil, err
	}
	if flags.export {
		content = supermusic.TrimExportHeader(content)
	}

	raw := &domain.RawSheet{Content: content}

	switch {
	case flags.dialect != "":
		d, err := domain.ParseDialect(flags.dialect)
		if err != nil {
			return nil, err
		}
		raw.Dialect = d
	case path != "-":
		if d, ok := inbox.DialectForPath(path, ""); ok {
			raw.Dialect = d
		}
	}

	if path != "-" {
		raw.URI = path
		raw.Artist, raw.SongName = inbox.TitleFromPath(path)
	}
	if flags.artist != "" {
		raw.Artist = flags.artist
	}
	if flags.songName != "" {
		raw.SongName = flags.songName
	}
	return raw, nil
}
