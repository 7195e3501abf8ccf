package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/settings"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func open(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()}, "user-1")
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestLoadRequiresIdentity(t *testing.T) {
	if _, err := Load(testConfig{path: t.TempDir()}, "  "); err != ErrNoIdentity {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}
}

func TestWriteDoesNotClearHolidayMark(t *testing.T) {
	p := open(t)
	date := dates.Key("2025-10-06")

	if err := <-p.SetHoliday(date, "추석"); err != nil {
		t.Fatalf("set holiday: %v", err)
	}
	if err := <-p.Write(date, "• task"); err != nil {
		t.Fatalf("write: %v", err)
	}

	snap := p.Snapshot(context.Background())
	if snap.HolidayName(date) != "추석" {
		t.Errorf("holiday mark lost: %q", snap.HolidayName(date))
	}
	if snap.Content(date) != "• task" {
		t.Errorf("content = %q", snap.Content(date))
	}

	// Reverting the holiday must leave content alone.
	if err := <-p.SetHoliday(date, ""); err != nil {
		t.Fatalf("clear holiday: %v", err)
	}
	snap = p.Snapshot(context.Background())
	if _, ok := snap.Holidays[date]; ok {
		t.Error("holiday mark not cleared")
	}
	if snap.Content(date) != "• task" {
		t.Errorf("content disturbed by holiday change: %q", snap.Content(date))
	}
}

func TestClearedContentConvergesToAbsence(t *testing.T) {
	p := open(t)
	date := dates.Key("2025-01-15")

	if err := <-p.Write(date, "• something"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := <-p.Write(date, "•  \n\n"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	rec, ok, err := p.Record(date)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if ok {
		t.Fatalf("cleared day should have no document, got %#v", rec)
	}
	snap := p.Snapshot(context.Background())
	if _, found := snap.Events[date]; found {
		t.Error("cleared day still present in events map")
	}
}

func TestClearedContentKeepsHolidayDocument(t *testing.T) {
	p := open(t)
	date := dates.Key("2025-05-05")

	if err := <-p.SetHoliday(date, "어린이날"); err != nil {
		t.Fatalf("set holiday: %v", err)
	}
	if err := <-p.Write(date, "• visit"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := <-p.Write(date, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}

	rec, ok, err := p.Record(date)
	if err != nil || !ok {
		t.Fatalf("record: ok=%v err=%v", ok, err)
	}
	if rec.Content != "" {
		t.Errorf("content field should be absent, got %q", rec.Content)
	}
	if name, holiday := rec.Holiday(); !holiday || name != "어린이날" {
		t.Errorf("holiday mark lost: %q %v", name, holiday)
	}
}

func TestWritesToOneKeyApplyInIssueOrder(t *testing.T) {
	p := open(t)
	date := dates.Key("2025-03-03")

	const n = 25
	results := make([]<-chan error, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, p.Write(date, fmt.Sprintf("• revision %02d", i)))
	}
	for i, ch := range results {
		if err := <-ch; err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	snap := p.Snapshot(context.Background())
	want := fmt.Sprintf("• revision %02d", n-1)
	if snap.Content(date) != want {
		t.Errorf("final content %q, want %q", snap.Content(date), want)
	}
}

func TestWriteNormalizesThroughClean(t *testing.T) {
	p := open(t)
	date := dates.Key("2025-06-01")

	if err := <-p.Write(date, "• a\n\n•  \n• b"); err != nil {
		t.Fatalf("write: %v", err)
	}
	snap := p.Snapshot(context.Background())
	if snap.Content(date) != "• a\n• b" {
		t.Errorf("stored content = %q", snap.Content(date))
	}
}

func TestWriteRejectsInvalidDate(t *testing.T) {
	p := open(t)
	if err := <-p.Write("not-a-date", "• x"); err == nil {
		t.Fatal("expected error for invalid date key")
	}
}

func TestMutationsAfterCloseFail(t *testing.T) {
	p := open(t)
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := <-p.Write("2025-01-01", "• x"); err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestSubscribeDeliversSnapshotReplacements(t *testing.T) {
	p := open(t)
	date := dates.Key("2025-02-02")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed, err := p.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	// The initial snapshot arrives without any mutation.
	select {
	case snap := <-feed:
		if len(snap.Events) != 0 {
			t.Fatalf("initial snapshot should be empty, got %d events", len(snap.Events))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	if err := <-p.Write(date, "• hello"); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case snap, ok := <-feed:
			if !ok {
				t.Fatal("feed closed before delivering update")
			}
			if snap.Content(date) == "• hello" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot push")
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	p := open(t)

	if _, found, err := p.LoadSettings(); err != nil || found {
		t.Fatalf("fresh store: found=%v err=%v", found, err)
	}

	in := settings.Settings{
		ViewType:   settings.ViewAll,
		YearType:   settings.YearAcademic,
		StartYear:  2024,
		EndYear:    2026,
		QuickYear:  2025,
		QuickMonth: 9,
	}
	if err := p.SaveSettings(in); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	out, found, err := p.LoadSettings()
	if err != nil || !found {
		t.Fatalf("load settings: found=%v err=%v", found, err)
	}
	if out != in {
		t.Errorf("settings round trip: got %#v", out)
	}
}

func TestDeleteAllRemovesEveryDocument(t *testing.T) {
	p := open(t)
	if err := <-p.Write("2025-01-01", "• a"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := <-p.SetHoliday("2025-01-01", "신정"); err != nil {
		t.Fatalf("holiday: %v", err)
	}
	if err := p.DeleteAll(context.Background()); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	snap := p.Snapshot(context.Background())
	if len(snap.Events) != 0 || len(snap.Holidays) != 0 {
		t.Errorf("documents remain after delete: %#v", snap)
	}
}

func TestDeleteAllDropsCachedReads(t *testing.T) {
	p := open(t)
	date := dates.Key("2025-03-01")
	if err := <-p.Write(date, "• cached"); err != nil {
		t.Fatalf("write: %v", err)
	}
	// Read first so the record sits in the disk store's read cache.
	if _, found, err := p.Record(date); err != nil || !found {
		t.Fatalf("record before delete: found=%v err=%v", found, err)
	}
	if err := p.DeleteAll(context.Background()); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	_, found, err := p.Record(date)
	if err != nil {
		t.Fatalf("record after delete: %v", err)
	}
	if found {
		t.Error("deleted record still served")
	}
}
