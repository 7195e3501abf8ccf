package identity

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func provider(t *testing.T) *FileProvider {
	t.Helper()
	return NewFileProvider(filepath.Join(t.TempDir(), "identity.json"))
}

func TestSignInMintsStableID(t *testing.T) {
	p := provider(t)

	first, err := p.SignIn("me@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == "" {
		t.Fatal("expected a minted id")
	}
	if first.Email != "me@example.com" {
		t.Errorf("email = %q", first.Email)
	}

	if err := p.SignOut(); err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Current(); ok {
		t.Fatal("expected no identity after sign-out")
	}

	again, err := p.SignIn("me@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != first.ID {
		t.Errorf("id changed across sign-ins: %q vs %q", again.ID, first.ID)
	}
}

func TestCurrentReflectsActive(t *testing.T) {
	p := provider(t)
	if _, ok := p.Current(); ok {
		t.Fatal("fresh provider should have no identity")
	}
	want, err := p.SignIn("me@example.com")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := p.Current()
	if !ok || got != want {
		t.Fatalf("Current() = %+v, %v; want %+v", got, ok, want)
	}
}

func TestDeleteRequiresIdentity(t *testing.T) {
	p := provider(t)
	if err := p.Delete(); !errors.Is(err, ErrSignedOut) {
		t.Fatalf("err = %v, want ErrSignedOut", err)
	}
}

func TestDeleteRequiresRecentLogin(t *testing.T) {
	p := provider(t)
	now := time.Now()
	p.now = func() time.Time { return now }

	if _, err := p.SignIn("me@example.com"); err != nil {
		t.Fatal(err)
	}

	now = now.Add(RecentLoginWindow + time.Second)
	if err := p.Delete(); !errors.Is(err, ErrRequiresRecentLogin) {
		t.Fatalf("err = %v, want ErrRequiresRecentLogin", err)
	}
	if _, ok := p.Current(); !ok {
		t.Fatal("a refused deletion must not discard the identity itself")
	}

	// A fresh sign-in makes the deletion acceptable.
	if _, err := p.SignIn("me@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := p.Delete(); err != nil {
		t.Fatalf("delete after fresh sign-in: %v", err)
	}
	if _, ok := p.Current(); ok {
		t.Fatal("expected no identity after deletion")
	}

	// The account is gone: signing in again mints a new id.
	fresh, err := p.SignIn("me@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if fresh.ID == "" {
		t.Fatal("expected a minted id")
	}
}
