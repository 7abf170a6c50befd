package inbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/core/domain"
	"github.com/ivanhrabcak/spevnikovac-3000-backend/internal/logger"
)

// Importer stores a parsed sheet. driving.SongService satisfies it.
type Importer interface {
	Import(ctx context.Context, raw *domain.RawSheet) (*domain.Song, error)
}

// Result reports the outcome of importing one file.
type Result struct {
	Path string
	Song *domain.Song
	Err  error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long a file must stay quiet before it is imported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithDefaultDialect sets the dialect used for .txt files.
func WithDefaultDialect(d domain.Dialect) Option {
	return func(w *Watcher) {
		if d != "" {
			w.defaultDialect = d
		}
	}
}

// WithResults registers a callback invoked after every import attempt.
func WithResults(fn func(Result)) Option {
	return func(w *Watcher) {
		w.onResult = fn
	}
}

// Watcher imports sheet files written into a directory.
type Watcher struct {
	dir            string
	importer       Importer
	debounce       time.Duration
	defaultDialect domain.Dialect
	onResult       func(Result)

	mu      sync.Mutex
	pending map[string]*time.Timer
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher for dir.
func NewWatcher(dir string, importer Importer, opts ...Option) *Watcher {
	w := &Watcher{
		dir:            filepath.Clean(dir),
		importer:       importer,
		debounce:       domain.DefaultInboxDebounce,
		defaultDialect: domain.DialectSupermusic,
		pending:        make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Run watches the directory until ctx is cancelled. Pending imports are
// dropped on cancellation; an import already running is waited for.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0700); err != nil {
		return fmt.Errorf("creating inbox directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Info("Watching %s for .txt and .tab sheets", w.dir)

	defer w.wg.Wait()
	defer w.stopPending()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if path, ok := w.handleFsEvent(event); ok {
				w.schedule(ctx, path)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// Scan imports every sheet file already in the directory, in name order.
func (w *Watcher) Scan(ctx context.Context) ([]Result, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("reading inbox directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !w.isSheet(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, w.ImportFile(ctx, filepath.Join(w.dir, name)))
	}
	return results, nil
}

// ImportFile reads and imports a single sheet file.
func (w *Watcher) ImportFile(ctx context.Context, path string) Result {
	result := Result{Path: path}

	raw, err := ReadSheet(path, w.defaultDialect)
	if err != nil {
		result.Err = err
	} else {
		result.Song, result.Err = w.importer.Import(ctx, raw)
	}

	if result.Err != nil {
		logger.Warn("Import of %s failed: %v", filepath.Base(path), result.Err)
	} else {
		logger.Info("Imported %s as %s", filepath.Base(path), result.Song.ID)
	}

	if w.onResult != nil {
		w.onResult(result)
	}
	return result
}

// handleFsEvent returns the sheet path an event refers to, if it should
// trigger an import.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if filepath.Dir(event.Name) != w.dir || !w.isSheet(event.Name) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return event.Name, true
}

func (w *Watcher) isSheet(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	_, ok := DialectForPath(base, w.defaultDialect)
	return ok
}

// schedule (re)starts the debounce timer for path.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.pending[path] != timer {
			w.mu.Unlock()
			return
		}
		delete(w.pending, path)
		w.wg.Add(1)
		w.mu.Unlock()
		defer w.wg.Done()

		if ctx.Err() != nil {
			return
		}
		w.ImportFile(ctx, path)
	})
	w.pending[path] = timer
	logger.Debug("Scheduled import of %s in %v", filepath.Base(path), w.debounce)
}

// stopPending cancels every scheduled import.
func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

// Pending returns how many imports are waiting on their debounce timer.
func (w *Watcher) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
