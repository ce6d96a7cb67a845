// Package session keeps many independent 2048 games side by side.
// Each session owns its own game and board; nothing is shared between
// sessions, so different sessions may be driven from different goroutines.
package session

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tile-twister/internal/core"
	"github.com/vovakirdan/tile-twister/internal/games/t2048"
)

// ErrNotFound is returned when a session ID is not registered.
var ErrNotFound = errors.New("session: not found")

// ID uniquely identifies a session.
type ID string

// NewID returns a fresh random session ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Session is one player's game.
type Session struct {
	id        ID
	createdAt time.Time

	mu   sync.Mutex // serializes access to game
	game *t2048.Game
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(g *t2048.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Play performs one turn under the session lock.
func (s *Session) Play(dir t2048.Direction) t2048.TurnResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Play(dir)
}

// Snapshot returns the game snapshot under the session lock.
func (s *Session) Snapshot() t2048.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Registry tracks active sessions.
// Thread-safe for concurrent access; the registry lock only guards the map.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]*Session
	logger   *log.Logger
}

// NewRegistry creates a new session registry. A nil logger disables logging.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Registry{
		sessions: make(map[ID]*Session),
		logger:   logger,
	}
}

// Options describes a game to create.
type Options struct {
	Mode       t2048.Mode
	Seed       int64 // 0 draws a random seed
	StartLevel int   // Campaign level (1-based) to start at, 0 for the first
}

// Create starts a new game and registers it.
func (r *Registry) Create(opts Options) (*Session, error) {
	game, err := t2048.NewForMode(opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("session: create: %w", err)
	}
	game.SetStartLevel(opts.StartLevel)

	cfg := core.DefaultConfig()
	cfg.Seed = opts.Seed
	return r.Add(game, cfg), nil
}

// Add resets game with cfg and registers it under a new ID.
func (r *Registry) Add(game *t2048.Game, cfg core.RuntimeConfig) *Session {
	s := &Session{
		id:        NewID(),
		createdAt: time.Now(),
		game:      game,
	}
	game.SetLogger(r.logger.With("session", s.id))
	game.Reset(cfg)

	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()

	r.logger.Debug("session created", "id", s.id, "mode", game.Mode(), "seed", game.Board().Seed())
	return s
}

// Get retrieves a session by ID.
func (r *Registry) Get(id ID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// Remove unregisters a session.
func (r *Registry) Remove(id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(r.sessions, id)
	r.logger.Debug("session removed", "id", id)
	return nil
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// IDs returns the registered session IDs in sorted order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	ids := make([]ID, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
