package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInboxDir(t *testing.T) {
	original := defaultInboxDir
	defer func() { defaultInboxDir = original }()
	SetInboxDir("/data/inbox")

	tests := []struct {
		name       string
		flag       string
		configured string
		expected   string
	}{
		{"flag wins", "/flag", "/configured", "/flag"},
		{"configured", "", "/configured", "/configured"},
		{"default", "", "", "/data/inbox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveInboxDir(tt.flag, tt.configured))
		})
	}
}

func TestWatchCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	songService = nil

	_, _, err := execute(t, "watch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "song service not configured")
}

func TestWatchCmd_NoDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	original := defaultInboxDir
	defer func() { defaultInboxDir = original }()
	defaultInboxDir = ""

	_, _, err := execute(t, "watch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no inbox directory configured")
}

func TestWatchCmd_ScanImportsExistingSheets(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := filepath.Join(t.TempDir(), "inbox")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Kabát - Pohoda.txt"), []byte("[C]la"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"watch", "--dir", dir, "--scan"})
	defer rootCmd.SetArgs(nil)

	// cobra keeps a subcommand's context once set, so hand it over directly.
	watchCmd.SetContext(ctx)
	defer watchCmd.SetContext(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- rootCmd.Execute()
	}()

	require.Eventually(t, func() bool {
		songs, err := songService.List(context.Background())
		return err == nil && len(songs) == 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}

	songs, err := songService.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kabát", songs[0].Lyrics.Artist)
	assert.Equal(t, "Pohoda", songs[0].Lyrics.SongName)
	assert.Contains(t, out.String(), "Imported "+songs[0].ID)
}
