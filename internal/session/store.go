package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

// AuthKey is the key of the session entry in both caches.
const AuthKey = "auth"

// Store is the session of one client process. It is safe for concurrent
// use; operations are serialised and never interleave their cache I/O.
type Store struct {
	directory DirectorySource
	durable   Cache
	cookie    Cache
	logger    *logger.Logger

	mu    sync.Mutex
	state State
}

// NewStore constructs an unauthenticated session.
func NewStore(directory DirectorySource, durable, cookie Cache, log *logger.Logger) *Store {
	return &Store{
		directory: directory,
		durable:   durable,
		cookie:    cookie,
		logger:    log,
	}
}

// Login authenticates credentials against the directory.
//
// On success the session becomes authenticated, the full record is written
// to the durable cache and the redacted record to the cookie. A failed cache
// write is logged and does not fail the login. On any error the session is
// left as it was.
func (s *Store) Login(ctx context.Context, credentials models.Credentials) error {
	log := s.logger

	users, err := s.directory.FetchUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Store.Login").Msg("error fetching user directory")
		return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	var match *models.User
	for i := range users {
		if users[i].Credentials.Matches(credentials) {
			match = &users[i]
			break
		}
	}
	if match == nil {
		log.Info().Str("func", "*Store.Login").Str("username", credentials.Username).Msg("invalid credentials")
		return ErrInvalidCredentials
	}
	if !match.Active {
		log.Info().Str("func", "*Store.Login").Str("username", credentials.Username).Msg("inactive user")
		return ErrInactiveUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := *match
	s.state = State{Authenticated: true, User: &user}

	s.writeUser(ctx, s.durable, "durable", user)
	s.writeUser(ctx, s.cookie, "cookie", user.Redacted())

	log.Info().Str("func", "*Store.Login").Int64("user_id", user.ID).Msg("logged in")
	return nil
}

// Logout clears the session and deletes both cache entries. Deletion
// failures are logged.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	s.deleteEntry(ctx, s.durable, "durable")
	s.deleteEntry(ctx, s.cookie, "cookie")

	s.logger.Info().Str("func", "*Store.Logout").Msg("logged out")
}

// CheckAuth rebuilds the session from the caches and reports whether a user
// is present. The durable entry is preferred over the cookie. A missing entry
// is then filled with the raw text of the present one. The directory is
// never consulted.
func (s *Store) CheckAuth(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	durable := s.readEntry(ctx, s.durable, "durable")
	cookie := s.readEntry(ctx, s.cookie, "cookie")

	p := reconcile(durable, cookie)
	if p.preferred == nil {
		s.state = State{}
		return false
	}

	s.state = State{Authenticated: true, User: p.preferred}

	if p.toCookie != "" {
		s.saveRaw(ctx, s.cookie, "cookie", p.toCookie)
	}
	if p.toDurable != "" {
		s.saveRaw(ctx, s.durable, "durable", p.toDurable)
	}

	return true
}

// State returns a copy of the current session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// IsAuthenticated reports the in-memory flag without touching the caches.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Authenticated
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return models.User{}, false
	}
	return *s.state.User, true
}

func (s *Store) readEntry(ctx context.Context, cache Cache, name string) *entry {
	log := s.logger

	if cache == nil {
		return nil
	}

	raw, err := cache.Load(ctx, AuthKey)
	if errors.Is(err, store.ErrCacheMiss) {
		return nil
	}
	if err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrCacheUnavailable, err)).
			Str("func", "*Store.readEntry").Str("cache", name).Msg("error reading session entry")
		return nil
	}

	var user *models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrParse, err)).
			Str("func", "*Store.readEntry").Str("cache", name).Msg("error decoding session entry")
		return nil
	}
	if user == nil {
		return nil
	}

	return &entry{user: *user, raw: raw}
}

func (s *Store) writeUser(ctx context.Context, cache Cache, name string, user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Err(fmt.Errorf("%w: %w", ErrCacheUnavailable, err)).
			Str("func", "*Store.writeUser").Str("cache", name).Msg("error encoding session entry")
		return
	}
	s.saveRaw(ctx, cache, name, string(raw))
}

func (s *Store) saveRaw(ctx context.Context, cache Cache, name, raw string) {
	if cache == nil {
		return
	}
	if err := cache.Save(ctx, AuthKey, raw); err != nil {
		s.logger.Err(fmt.Errorf("%w: %w", ErrCacheUnavailable, err)).
			Str("func", "*Store.saveRaw").Str("cache", name).Msg("error writing session entry")
	}
}

func (s *Store) deleteEntry(ctx context.Context, cache Cache, name string) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, AuthKey); err != nil {
		s.logger.Err(fmt.Errorf("%w: %w", ErrCacheUnavailable, err)).
			Str("func", "*Store.deleteEntry").Str("cache", name).Msg("error deleting session entry")
	}
}
