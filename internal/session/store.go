package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"podly/internal/api"
	"podly/internal/storage"
)

// TokenKey is the fixed credential key the bearer token is persisted under.
// Only this package writes it.
const TokenKey = "auth_token"

// profileClient is the slice of the API client the session store needs.
type profileClient interface {
	Profile(ctx context.Context, token string) (*api.Identity, error)
}

// Store is the single source of truth for "who is logged in". An identity is
// exposed only after its token was validated against the identity service in
// this process lifetime; a present-but-unvalidated token is never visible to
// consumers.
//
// Every Login and Logout bumps a generation counter. A validation round trip
// that resolves after the generation has moved on is discarded, so a slow
// Initialize response can never overwrite a newer Login, and a stale response
// can never resurrect a logged-out session.
type Store struct {
	client  profileClient
	storage storage.Store

	mu         sync.Mutex
	identity   *api.Identity
	token      string
	generation uint64
	pending    bool
	inFlight   bool
	subs       []func()
}

// NewStore creates a session store backed by the given API client and
// durable storage. The session starts in the pending state until Initialize
// resolves it.
func NewStore(client profileClient, st storage.Store) *Store {
	return &Store{
		client:  client,
		storage: st,
		pending: true,
	}
}

// Initialize reads the persisted token and validates it against the identity
// service. No token resolves immediately to unauthenticated. A 403 clears
// the persisted token (expired); any other failure resolves unauthenticated
// but leaves the token in place: "can't verify now" is not "definitely
// invalid", and a transient network failure must not silently log the user
// out.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		// A validation for the current generation is already outstanding.
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	s.pending = true

	token, err := s.storage.GetCredential(TokenKey)
	if err != nil {
		s.pending = false
		s.mu.Unlock()
		s.notifySubs()
		return fmt.Errorf("failed to read persisted token: %w", err)
	}
	if token == "" {
		s.pending = false
		s.mu.Unlock()
		s.notifySubs()
		return nil
	}
	s.inFlight = true
	s.mu.Unlock()

	return s.validate(ctx, gen, token)
}

// Login persists the token, then validates it the same way Initialize does.
// On validation failure the session ends unauthenticated without error
// surfacing here; the caller decides how to tell the user.
func (s *Store) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.pending = true
	s.identity = nil
	s.token = ""
	if err := s.storage.SetCredential(TokenKey, token); err != nil {
		s.pending = false
		s.mu.Unlock()
		s.notifySubs()
		return fmt.Errorf("failed to persist token: %w", err)
	}
	s.inFlight = true
	s.mu.Unlock()

	return s.validate(ctx, gen, token)
}

// validate performs the profile round trip and applies the result only if
// the session generation has not moved since the caller captured gen.
func (s *Store) validate(ctx context.Context, gen uint64, token string) error {
	identity, err := s.client.Profile(ctx, token)

	s.mu.Lock()
	if gen == s.generation {
		s.inFlight = false
	}
	if s.generation != gen {
		// Superseded by a newer Login or Logout; discard.
		s.mu.Unlock()
		slog.Debug("Discarding stale session validation", "generation", gen)
		return nil
	}

	switch {
	case err == nil:
		s.identity = identity
		s.token = token
	case api.IsForbidden(err):
		// The service said the token is dead; forget it.
		if derr := s.storage.DeleteCredential(TokenKey); derr != nil {
			slog.Warn("Failed to clear expired token", "error", derr)
		}
		s.identity = nil
		s.token = ""
	default:
		s.identity = nil
		s.token = ""
	}
	s.pending = false
	s.mu.Unlock()
	s.notifySubs()

	if err != nil && !api.IsForbidden(err) {
		return fmt.Errorf("failed to verify session: %w", err)
	}
	return nil
}

// Logout clears the persisted token and in-memory identity synchronously.
// It never calls the remote service.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.generation++
	s.identity = nil
	s.token = ""
	s.pending = false
	s.inFlight = false
	err := s.storage.DeleteCredential(TokenKey)
	s.mu.Unlock()
	s.notifySubs()

	if err != nil {
		return fmt.Errorf("failed to clear persisted token: %w", err)
	}
	return nil
}

// CurrentIdentity returns the validated identity, or nil while the initial
// check is pending or when unauthenticated.
func (s *Store) CurrentIdentity() *api.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Token returns the validated bearer token, or an empty string when there is
// no authenticated session.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Pending reports whether the initial session check is still unresolved.
func (s *Store) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Subscribe registers fn to be called after every resolved state transition.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notifySubs() {
	s.mu.Lock()
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
