package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// changePing signals that some document under the user's namespace changed.
// Subscribers do not get told what changed: the feed is a full-snapshot
// replace, so the only action is a rebuild.
type changePing struct{}

// Subscribe delivers the current snapshot immediately, then a freshly derived
// full snapshot after every burst of storage changes, until ctx is done. The
// channel always carries the latest state; intermediate snapshots may be
// replaced if the consumer lags.
func (p *persistence) Subscribe(ctx context.Context) (<-chan Snapshot, error) {
	pings, err := p.watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan Snapshot, 1)
	out <- p.Snapshot(ctx)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-pings:
				if !ok {
					return
				}
				deliver(out, p.Snapshot(ctx))
			}
		}
	}()

	return out, nil
}

// deliver replaces any undelivered snapshot with the newer one so a slow
// consumer always wakes to current state.
func deliver(out chan Snapshot, snap Snapshot) {
	select {
	case out <- snap:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	select {
	case out <- snap:
	default:
	}
}

// watch streams change pings until ctx is cancelled. Pings are coalesced so a
// burst of document writes wakes the subscriber once.
func (p *persistence) watch(ctx context.Context) (<-chan changePing, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	userDir := filepath.Join(p.basePath, p.userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure user path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(userDir)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	pings := make(chan changePing, 1)

	go func() {
		defer close(pings)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func() {
			select {
			case pings <- changePing{}:
			default:
				// A ping is already pending; the rebuild it triggers will
				// observe this change too.
			}
		}

		throttle := newPingThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Whatever went wrong, a full rebuild resynchronizes.
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&fsnotify.Create == fsnotify.Create {
					// New bucket directories must be watched to see the
					// document writes that follow.
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
					}
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return pings, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// pingThrottle coalesces rapid change notifications so a subscriber rebuilds
// once per burst of filesystem activity instead of once per written file.
type pingThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newPingThrottle(delay time.Duration) *pingThrottle {
	return &pingThrottle{delay: delay}
}

func (t *pingThrottle) Enqueue(send func()) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *pingThrottle) flush(send func()) {
	t.mu.Lock()
	fire := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()
	if fire {
		send()
	}
}

func (t *pingThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
