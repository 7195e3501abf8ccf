package settings

import (
	"sync"
	"testing"
	"time"
)

func TestSaverCoalescesRapidUpdates(t *testing.T) {
	var mu sync.Mutex
	var saved []Settings
	s := NewSaver(func(v Settings) error {
		mu.Lock()
		saved = append(saved, v)
		mu.Unlock()
		return nil
	}, SaverOpts{Debounce: 30 * time.Millisecond})
	defer s.Stop()

	for y := 2024; y <= 2030; y++ {
		s.Update(Settings{QuickYear: y})
		time.Sleep(2 * time.Millisecond)
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := len(saved)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for debounced save")
		case <-time.After(5 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(saved) != 1 {
		t.Fatalf("expected one coalesced save, got %d", len(saved))
	}
	if saved[0].QuickYear != 2030 {
		t.Errorf("saved stale value %d, want 2030", saved[0].QuickYear)
	}
}

func TestSaverFlushWritesPendingValue(t *testing.T) {
	var saved []Settings
	s := NewSaver(func(v Settings) error {
		saved = append(saved, v)
		return nil
	}, SaverOpts{Debounce: time.Hour})
	defer s.Stop()

	s.Update(Settings{QuickMonth: 7})
	if err := s.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if len(saved) != 1 || saved[0].QuickMonth != 7 {
		t.Fatalf("flush did not write pending value: %#v", saved)
	}
	// A second flush with nothing pending is a no-op.
	if err := s.Flush(); err != nil {
		t.Fatalf("idle flush: %v", err)
	}
	if len(saved) != 1 {
		t.Fatal("idle flush wrote again")
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	got := Settings{}.Normalize()
	if got.ViewType != ViewSpecific || got.YearType != YearCalendar {
		t.Errorf("unexpected defaults: %#v", got)
	}
	if got.QuickMonth < 1 || got.QuickMonth > 12 {
		t.Errorf("quick month out of range: %d", got.QuickMonth)
	}

	got = Settings{StartYear: 2030, EndYear: 2026}.Normalize()
	if got.EndYear != 2030 {
		t.Errorf("end year should clamp to start year, got %d", got.EndYear)
	}
}

func TestMonthsForAcademicYearWrap(t *testing.T) {
	months := MonthsForYear(2025, YearAcademic)
	if len(months) != 12 {
		t.Fatalf("academic year should have 12 panels, got %d", len(months))
	}
	if months[0] != (YearMonth{Year: 2025, Month: time.March}) {
		t.Errorf("academic year should start in March, got %v", months[0])
	}
	last := months[len(months)-1]
	if last != (YearMonth{Year: 2026, Month: time.February}) {
		t.Errorf("academic year should end in next February, got %v", last)
	}
}
