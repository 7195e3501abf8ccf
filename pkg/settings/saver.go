package settings

import (
	"sync"
	"time"
)

const defaultDebounce = time.Second

// Saver coalesces rapid settings changes into a single persisted write after a
// quiet period. Each Update resets the timer; only the most recent value is
// written.
type Saver struct {
	save     func(Settings) error
	onError  func(error)
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	latest  Settings
	running bool
}

type SaverOpts struct {
	Debounce time.Duration
	// OnError receives write failures from the background flush. Optional.
	OnError func(error)
}

func NewSaver(save func(Settings) error, opts SaverOpts) *Saver {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Saver{
		save:     save,
		onError:  opts.OnError,
		debounce: debounce,
	}
}

// Update records the new value and (re)arms the quiet-period timer.
func (s *Saver) Update(v Settings) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.latest = v
	s.pending = true
	if s.timer == nil {
		s.timer = time.AfterFunc(s.debounce, s.onTimer)
		s.mu.Unlock()
		return
	}
	s.timer.Reset(s.debounce)
	s.mu.Unlock()
}

func (s *Saver) onTimer() {
	s.mu.Lock()
	if s.running {
		// A flush is in-flight; run again afterwards to pick up the change.
		if s.timer != nil {
			s.timer.Reset(s.debounce)
		}
		s.mu.Unlock()
		return
	}
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.running = true
	v := s.latest
	s.mu.Unlock()

	err := s.save(v)
	if err != nil && s.onError != nil {
		s.onError(err)
	}

	s.mu.Lock()
	s.running = false
	if s.pending && s.timer != nil {
		s.timer.Reset(s.debounce)
	}
	s.mu.Unlock()
}

// Flush writes any pending value immediately.
func (s *Saver) Flush() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if !s.pending {
		s.mu.Unlock()
		return nil
	}
	s.pending = false
	v := s.latest
	s.mu.Unlock()
	return s.save(v)
}

// Stop cancels any pending flush without writing.
func (s *Saver) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.mu.Unlock()
}
