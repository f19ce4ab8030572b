// Package board holds the job board state and every operation that reads or
// mutates it. Each collection is persisted wholesale under its own key.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/apperr"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/storage"
)

// Storage keys.
const (
	KeyUsers        = "users"
	KeyJobs         = "jobs"
	KeyApplications = "applications"
	KeyBookmarks    = "bookmarks"
	KeyCurrentUser  = "currentUser"
	KeyTheme        = "theme"
)

const storageErrorMessage = "Storage error"

// Store owns the four collections, the session and the theme preference.
// Every exported method runs under one mutex so callers never observe a
// half-applied operation.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	now     func() time.Time
	newID   func() string
	timeout time.Duration
	log     *slog.Logger

	users        []models.User
	jobs         []models.Job
	applications []models.Application
	bookmarks    []string
	current      *models.User
	theme        models.Theme
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithTimeout bounds every storage call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New builds a Store and loads its snapshot from kv. Missing keys start
// empty; undecodable blobs are logged and treated as missing.
func New(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:      kv,
		now:     time.Now,
		newID:   uuid.NewString,
		timeout: 5 * time.Second,
		log:     slog.Default(),
		theme:   models.ThemeLight,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	var err error
	if s.users, err = readKey[[]models.User](ctx, s, KeyUsers); err != nil {
		return err
	}
	if s.jobs, err = readKey[[]models.Job](ctx, s, KeyJobs); err != nil {
		return err
	}
	if s.applications, err = readKey[[]models.Application](ctx, s, KeyApplications); err != nil {
		return err
	}
	if s.bookmarks, err = readKey[[]string](ctx, s, KeyBookmarks); err != nil {
		return err
	}
	if s.current, err = readKey[*models.User](ctx, s, KeyCurrentUser); err != nil {
		return err
	}

	theme, err := readKey[models.Theme](ctx, s, KeyTheme)
	if err != nil {
		return err
	}
	if theme == models.ThemeDark {
		s.theme = theme
	}

	s.log.Info("job board loaded",
		"users", len(s.users),
		"jobs", len(s.jobs),
		"applications", len(s.applications),
		"bookmarks", len(s.bookmarks),
		"session", s.current != nil,
	)
	return nil
}

func readKey[T any](ctx context.Context, s *Store, key string) (T, error) {
	var v T

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return v, nil
	}
	if err != nil {
		return v, apperr.Storage(storageErrorMessage, fmt.Errorf("load %s: %w", key, err))
	}
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Error("failed to decode stored collection", "key", key, "error", err)
		var zero T
		return zero, nil
	}
	return v, nil
}

// write persists v under key. Callers commit to memory only after it succeeds.
func (s *Store) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperr.Storage(storageErrorMessage, fmt.Errorf("encode %s: %w", key, err))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.kv.Set(ctx, key, data); err != nil {
		s.log.Error("storage write failed", "key", key, "error", err)
		return apperr.Storage(storageErrorMessage, fmt.Errorf("save %s: %w", key, err))
	}
	return nil
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) findJob(id string) (int, bool) {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) findUser(id string) (int, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// appendCopy returns a new slice holding xs followed by v, leaving xs intact.
func appendCopy[T any](xs []T, v T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs...)
	return append(out, v)
}

func filter[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}
