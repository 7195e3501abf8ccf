package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/haru/pkg/content"
	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/settings"
)

// ErrNoIdentity is returned when a persistence is opened without a signed-in
// user to scope the documents under.
var ErrNoIdentity = errors.New("store: no user identity")

// ErrClosed is reported for mutations issued after Close.
var ErrClosed = errors.New("store: persistence closed")

// Persistence is the per-user day-record document store. Mutations return a
// result channel: they are applied in issue order (so writes to one date key
// never reorder) and the caller observes success or failure on the channel —
// a write is never silently dropped.
type Persistence interface {
	// Record reads one day's document. ok is false when no document exists.
	Record(date dates.Key) (rec DayRecord, ok bool, err error)

	// Snapshot re-derives the events/holidays maps from every document.
	Snapshot(ctx context.Context) Snapshot

	// Write merge-upserts the content field for the date. Empty cleaned
	// content removes the field; a record left with nothing is deleted.
	Write(date dates.Key, text string) <-chan error

	// SetHoliday marks the date a holiday named name, or reverts it to a
	// normal day when name is empty. Content is never touched.
	SetHoliday(date dates.Key, name string) <-chan error

	// Subscribe delivers the current snapshot immediately and a fresh
	// full snapshot after every storage change until ctx is done.
	Subscribe(ctx context.Context) (<-chan Snapshot, error)

	LoadSettings() (settings.Settings, bool, error)
	SaveSettings(settings.Settings) error

	// DeleteAll removes every document for the user.
	DeleteAll(ctx context.Context) error

	Close() error
}

const (
	calendarBucket = "calendar"
	settingsBucket = "settings"
	settingsDoc    = "config"
)

// Load opens the user's document store under cfg.BasePath().
func Load(cfg Config, userID string) (Persistence, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrNoIdentity
	}
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		userID:   userID,
		ops:      make(chan op, 64),
	}
	go p.applyLoop()
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	userID   string

	mu     sync.Mutex
	closed bool
	ops    chan op
}

type op struct {
	apply func() error
	done  chan error
}

// applyLoop drains mutations one at a time. Global FIFO order implies
// per-date-key order, which is the guarantee edit commits rely on.
func (p *persistence) applyLoop() {
	for o := range p.ops {
		o.done <- o.apply()
		close(o.done)
	}
}

func (p *persistence) enqueue(apply func() error) <-chan error {
	done := make(chan error, 1)
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		done <- ErrClosed
		close(done)
		return done
	}
	p.ops <- op{apply: apply, done: done}
	p.mu.Unlock()
	return done
}

func (p *persistence) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.ops)
	return nil
}

func (p *persistence) dayKey(date dates.Key) string {
	return fmt.Sprintf("%s/%s/%s", p.userID, calendarBucket, date)
}

func (p *persistence) settingsKey() string {
	return fmt.Sprintf("%s/%s/%s", p.userID, settingsBucket, settingsDoc)
}

func (p *persistence) readRecord(key string) (DayRecord, bool, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return DayRecord{}, false, nil
		}
		return DayRecord{}, false, err
	}
	var rec DayRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return DayRecord{}, false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return rec, true, nil
}

func (p *persistence) writeRecord(key string, rec DayRecord) error {
	if rec.Empty() {
		if p.d.Has(key) {
			return p.d.Erase(key)
		}
		return nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) Record(date dates.Key) (DayRecord, bool, error) {
	return p.readRecord(p.dayKey(date))
}

func (p *persistence) Snapshot(ctx context.Context) Snapshot {
	snap := emptySnapshot()
	prefix := p.userID + "/" + calendarBucket + "/"
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		date, err := dates.Parse(strings.TrimPrefix(key, prefix))
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		rec, ok, err := p.readRecord(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		if !ok {
			continue
		}
		if rec.Content != "" {
			snap.Events[date] = rec.Content
		}
		if name, ok := rec.Holiday(); ok {
			snap.Holidays[date] = name
		}
	}
	return snap
}

func (p *persistence) Write(date dates.Key, text string) <-chan error {
	return p.enqueue(func() error {
		if !date.Valid() {
			return fmt.Errorf("store: invalid date key %q", date)
		}
		key := p.dayKey(date)
		rec, _, err := p.readRecord(key)
		if err != nil {
			return err
		}
		rec.Content = content.Clean(text)
		return p.writeRecord(key, rec)
	})
}

func (p *persistence) SetHoliday(date dates.Key, name string) <-chan error {
	return p.enqueue(func() error {
		if !date.Valid() {
			return fmt.Errorf("store: invalid date key %q", date)
		}
		key := p.dayKey(date)
		rec, _, err := p.readRecord(key)
		if err != nil {
			return err
		}
		if name = strings.TrimSpace(name); name != "" {
			rec.Type = TypeHoliday
			rec.Name = name
		} else {
			rec.Type = TypeNormal
			rec.Name = ""
		}
		return p.writeRecord(key, rec)
	})
}

func (p *persistence) LoadSettings() (settings.Settings, bool, error) {
	val, err := p.d.Read(p.settingsKey())
	if err != nil {
		if os.IsNotExist(err) {
			return settings.Default(), false, nil
		}
		return settings.Default(), false, err
	}
	var s settings.Settings
	if err := json.Unmarshal(val, &s); err != nil {
		return settings.Default(), false, err
	}
	return s.Normalize(), true, nil
}

func (p *persistence) SaveSettings(s settings.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return p.d.Write(p.settingsKey(), data)
}

func (p *persistence) DeleteAll(ctx context.Context) error {
	err := <-p.enqueue(func() error {
		// Erase key by key so diskv drops each record from its read
		// cache too; removing the directory behind its back would let a
		// warmed cache keep serving deleted documents.
		prefix := p.userID + "/"
		for key := range p.d.Keys(ctx.Done()) {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			if err := p.d.Erase(key); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

// keys are "<uid>/<bucket>/<doc>"; diskv maps all but the last segment to
// directories.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pathKey.Path...), pathKey.FileName), "/")
}
