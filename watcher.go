package polint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

const defaultDebounce = 300 * time.Millisecond

// WatchOptions configures WatchCatalogs.
type WatchOptions struct {
	// Debounce is the quiet period after the last filesystem event
	// before catalogs are rechecked. Zero means 300ms.
	Debounce time.Duration

	// OnResults is called with the results of the initial check and of
	// every recheck, always from a single goroutine.
	OnResults func(results []FileResult)

	// If Ready is non-nil, a value is sent after the initial check has
	// been delivered and the watcher is fully set up, allowing callers
	// to synchronize without time.Sleep.
	Ready chan<- struct{}
}

// watchSet is the resolved form of the watch arguments: explicit catalog
// files plus directory arguments whose .po contents are rediscovered on
// every recheck.
type watchSet struct {
	files     []string        // explicit file args, original order
	fileSet   map[string]bool // cleaned explicit paths
	dirs      []string        // directory args
	dirSet    map[string]bool // cleaned directory args
	watchDirs []string        // directories registered with fsnotify
}

func resolveWatchSet(paths []string) (*watchSet, error) {
	ws := &watchSet{
		fileSet: make(map[string]bool),
		dirSet:  make(map[string]bool),
	}
	seen := make(map[string]bool)
	addWatchDir := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			ws.watchDirs = append(ws.watchDirs, dir)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		if info.IsDir() {
			ws.dirs = append(ws.dirs, p)
			ws.dirSet[filepath.Clean(p)] = true
			addWatchDir(p)
			continue
		}
		ws.files = append(ws.files, p)
		ws.fileSet[filepath.Clean(p)] = true
		// Watch the parent: events for the file keep coming even when
		// editors replace it via rename.
		addWatchDir(filepath.Dir(p))
	}
	return ws, nil
}

// relevant reports whether a filesystem event name concerns one of the
// watched catalogs.
func (ws *watchSet) relevant(name string) bool {
	name = filepath.Clean(name)
	if ws.fileSet[name] {
		return true
	}
	return filepath.Ext(name) == ".po" && ws.dirSet[filepath.Dir(name)]
}

// catalogs returns the current check targets: explicit files first,
// then the .po files found in each directory argument.
func (ws *watchSet) catalogs() []string {
	out := make([]string, 0, len(ws.files))
	out = append(out, ws.files...)
	for _, d := range ws.dirs {
		entries, err := os.ReadDir(d)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".po" {
				continue
			}
			out = append(out, filepath.Join(d, e.Name()))
		}
	}
	return out
}

// WatchCatalogs checks the configured catalogs once, then watches them
// and rechecks after each burst of filesystem changes. Directory
// arguments are rescanned on every recheck, so new .po files are picked
// up. Blocks until ctx is cancelled; cancellation is a normal return.
func WatchCatalogs(ctx context.Context, cfg Config, opts WatchOptions) error {
	ws, err := resolveWatchSet(cfg.Paths)
	if err != nil {
		return err
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	onResults := opts.OnResults
	if onResults == nil {
		onResults = func([]FileResult) {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range ws.watchDirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	check := func() []FileResult {
		runCfg := cfg
		runCfg.Paths = ws.catalogs()
		return CheckFiles(ctx, runCfg)
	}

	// Initial check: the watcher is already registered, so changes made
	// during this check still produce events and trigger a recheck.
	onResults(check())

	g, ctx := errgroup.WithContext(ctx)
	changes := make(chan string, 16)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !ws.relevant(event.Name) {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				select {
				case changes <- event.Name:
				default:
					// A recheck is already pending; coalesce.
				}
			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				LogWarn("watch: %v", werr)
			}
		}
	})

	g.Go(func() error {
		timer := time.NewTimer(time.Hour)
		timer.Stop()
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case name := <-changes:
				LogInfo(Msg("change_detected"), name)
				timer.Reset(debounce)
			case <-timer.C:
				onResults(check())
			}
		}
	})

	if opts.Ready != nil {
		opts.Ready <- struct{}{}
	}

	return g.Wait()
}
