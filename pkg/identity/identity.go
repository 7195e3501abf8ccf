// Package identity supplies the user identity the store scopes its data by:
// an opaque stable identifier plus an email-like display string. The file
// provider is a local stand-in with the same contract a hosted auth backend
// exposes, including the "fresh sign-in required" refusal on account
// deletion.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSignedOut is returned by operations that need an active identity.
	ErrSignedOut = errors.New("not signed in")

	// ErrRequiresRecentLogin refuses an account deletion whose sign-in is
	// too old. The caller must sign in again and retry; it is never retried
	// automatically.
	ErrRequiresRecentLogin = errors.New("account deletion requires a recent sign-in")
)

// Identity is an authenticated user. ID is opaque and stable across
// sign-ins; Email is display-only.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Provider is the auth surface the rest of the program consumes.
type Provider interface {
	// Current returns the active identity, if any.
	Current() (Identity, bool)
	// SignIn activates the identity for email, minting it on first use.
	SignIn(email string) (Identity, error)
	// SignOut clears the active identity. Signing out while signed out is
	// not an error.
	SignOut() error
	// Delete removes the active identity's account. Fails with
	// ErrRequiresRecentLogin when the sign-in is older than the freshness
	// window; the caller is expected to force a sign-out on that error.
	Delete() error
}

// RecentLoginWindow is how fresh a sign-in must be for Delete to proceed.
const RecentLoginWindow = 5 * time.Minute

type state struct {
	Accounts  map[string]Identity `json:"accounts"`
	Active    string              `json:"active,omitempty"`
	LastLogin time.Time           `json:"lastLogin,omitempty"`
}

// FileProvider keeps accounts in a single JSON file next to the data store.
type FileProvider struct {
	path string
	now  func() time.Time
}

// NewFileProvider returns a provider backed by the file at path. The file is
// created on first sign-in.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path, now: time.Now}
}

func (p *FileProvider) load() (state, error) {
	var s state
	b, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return state{Accounts: map[string]Identity{}}, nil
	}
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("corrupt identity file %s: %w", p.path, err)
	}
	if s.Accounts == nil {
		s.Accounts = map[string]Identity{}
	}
	return s, nil
}

func (p *FileProvider) save(s state) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(p.path, b, 0600)
}

func (p *FileProvider) Current() (Identity, bool) {
	s, err := p.load()
	if err != nil || s.Active == "" {
		return Identity{}, false
	}
	id, ok := s.Accounts[s.Active]
	return id, ok
}

func (p *FileProvider) SignIn(email string) (Identity, error) {
	if email == "" {
		return Identity{}, errors.New("email required")
	}
	s, err := p.load()
	if err != nil {
		return Identity{}, err
	}
	id, ok := s.Accounts[email]
	if !ok {
		id = Identity{ID: uuid.New().String(), Email: email}
		s.Accounts[email] = id
	}
	s.Active = email
	s.LastLogin = p.now()
	if err := p.save(s); err != nil {
		return Identity{}, err
	}
	return id, nil
}

func (p *FileProvider) SignOut() error {
	s, err := p.load()
	if err != nil {
		return err
	}
	if s.Active == "" {
		return nil
	}
	s.Active = ""
	s.LastLogin = time.Time{}
	return p.save(s)
}

func (p *FileProvider) Delete() error {
	s, err := p.load()
	if err != nil {
		return err
	}
	if s.Active == "" {
		return ErrSignedOut
	}
	if p.now().Sub(s.LastLogin) > RecentLoginWindow {
		return ErrRequiresRecentLogin
	}
	delete(s.Accounts, s.Active)
	s.Active = ""
	s.LastLogin = time.Time{}
	return p.save(s)
}
