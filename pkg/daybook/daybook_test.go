package daybook

import (
	"testing"

	"tableflip.dev/haru/pkg/dates"
	"tableflip.dev/haru/pkg/store"
)

// fakeStore is an in-memory stand-in for the mutation surface the Book uses.
type fakeStore struct {
	writes   []string
	holidays []string
	fail     error
}

func (f *fakeStore) Write(date dates.Key, text string) <-chan error {
	done := make(chan error, 1)
	f.writes = append(f.writes, string(date)+"="+text)
	done <- f.fail
	return done
}

func (f *fakeStore) SetHoliday(date dates.Key, name string) <-chan error {
	done := make(chan error, 1)
	f.holidays = append(f.holidays, string(date)+"="+name)
	done <- f.fail
	return done
}

func newBook(f *fakeStore) *Book {
	return New(f, store.Snapshot{})
}

func TestCommitContentCleansAndDiffs(t *testing.T) {
	f := &fakeStore{}
	b := newBook(f)
	date := dates.Key("2025-01-10")

	done, issued := b.CommitContent(date, "• a\n\n•  \n• b")
	if !issued {
		t.Fatal("expected a write")
	}
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	if b.Content(date) != "• a\n• b" {
		t.Errorf("local content = %q", b.Content(date))
	}
	if b.UndoDepth() != 1 {
		t.Errorf("undo depth = %d", b.UndoDepth())
	}

	// Committing text that cleans to the same value issues nothing.
	if _, issued := b.CommitContent(date, "• a\n• b\n•  "); issued {
		t.Error("unchanged commit should not write")
	}
	if b.UndoDepth() != 1 {
		t.Errorf("unchanged commit pushed an undo entry")
	}
}

func TestUndoRestoresPriorCommittedValue(t *testing.T) {
	f := &fakeStore{}
	b := newBook(f)
	date := dates.Key("2025-01-11")

	b.ApplySnapshot(store.Snapshot{
		Events:   map[dates.Key]string{date: "• A"},
		Holidays: map[dates.Key]string{},
	})
	if _, issued := b.CommitContent(date, "• B"); !issued {
		t.Fatal("commit should write")
	}

	done, ok := b.Undo()
	if !ok {
		t.Fatal("undo should pop")
	}
	if err := <-done; err != nil {
		t.Fatalf("undo write: %v", err)
	}
	if b.Content(date) != "• A" {
		t.Errorf("content = %q, want • A", b.Content(date))
	}
	last := f.writes[len(f.writes)-1]
	if last != "2025-01-11=• A" {
		t.Errorf("store write = %q", last)
	}
}

func TestUndoOnEmptyBookIsNoOp(t *testing.T) {
	b := newBook(&fakeStore{})
	if _, ok := b.Undo(); ok {
		t.Fatal("undo with no history should be a no-op")
	}
}

func TestSetHolidayRecordsPriorMark(t *testing.T) {
	f := &fakeStore{}
	b := newBook(f)
	date := dates.Key("2025-10-06")

	if _, issued := b.SetHoliday(date, "추석"); !issued {
		t.Fatal("marking should write")
	}
	if _, issued := b.SetHoliday(date, "추석"); issued {
		t.Error("re-marking with same name should be a no-op")
	}
	if _, issued := b.SetHoliday(date, "연휴"); !issued {
		t.Fatal("rename should write")
	}

	// Undo the rename, then the original mark.
	if done, ok := b.Undo(); !ok {
		t.Fatal("undo rename")
	} else {
		<-done
	}
	if b.HolidayName(date) != "추석" {
		t.Errorf("after undo rename: %q", b.HolidayName(date))
	}
	if done, ok := b.Undo(); !ok {
		t.Fatal("undo mark")
	} else {
		<-done
	}
	if b.HolidayName(date) != "" {
		t.Errorf("after undo mark: %q", b.HolidayName(date))
	}
}

func TestToggleLine(t *testing.T) {
	f := &fakeStore{}
	b := newBook(f)
	date := dates.Key("2025-03-01")
	b.ApplySnapshot(store.Snapshot{
		Events:   map[dates.Key]string{date: "• buy milk\n• call mom"},
		Holidays: map[dates.Key]string{},
	})

	if _, issued := b.ToggleLine(date, 0); !issued {
		t.Fatal("toggle should write")
	}
	if b.Content(date) != "✔ buy milk\n• call mom" {
		t.Errorf("content = %q", b.Content(date))
	}
	// Out-of-range toggles are absorbed.
	if _, issued := b.ToggleLine(date, 99); issued {
		t.Error("out-of-range toggle should not write")
	}
}

func TestFailedWriteLeavesUndoEntry(t *testing.T) {
	f := &fakeStore{fail: assertErr("boom")}
	b := newBook(f)
	date := dates.Key("2025-02-14")

	done, issued := b.CommitContent(date, "• x")
	if !issued {
		t.Fatal("commit should attempt write")
	}
	if err := <-done; err == nil {
		t.Fatal("expected write failure")
	}
	// Deliberate policy: the entry stays even though the store never held
	// the value; undo remains usable and must not panic.
	if b.UndoDepth() != 1 {
		t.Errorf("undo depth = %d", b.UndoDepth())
	}
	if done, ok := b.Undo(); !ok {
		t.Fatal("undo should still pop")
	} else {
		<-done
	}
}

func TestSearchSortsByDate(t *testing.T) {
	b := newBook(&fakeStore{})
	b.ApplySnapshot(store.Snapshot{
		Events: map[dates.Key]string{
			"2025-06-02": "• meet minsu",
			"2025-01-05": "• call minsu",
			"2025-03-09": "• lunch",
		},
		Holidays: map[dates.Key]string{},
	})
	got := b.Search("minsu")
	if len(got) != 2 || got[0].Date != "2025-01-05" || got[1].Date != "2025-06-02" {
		t.Errorf("search results: %#v", got)
	}
	if b.Search("  ") != nil {
		t.Error("blank keyword should return nothing")
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
