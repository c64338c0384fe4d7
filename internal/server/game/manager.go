package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	codec BoardCodec
	store *Store // nil: memory only
}

func NewManager(codec BoardCodec, store *Store) *Manager {
	return &Manager{
		games: make(map[string]*GameState),
		codec: codec,
		store: store,
	}
}

func (m *Manager) NewGame(b *skirmish.Board) GameState {
	if b == nil {
		b = skirmish.NewBoard()
	}
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     b,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.games[g.ID] = g
	snap := *g
	m.mu.Unlock()

	m.persist(snap)
	return snap
}

// Get returns a copy of the session, falling back to the store when the
// session is not in memory.
func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	g, ok := m.games[id]
	var snap GameState
	if ok {
		snap = *g
	}
	m.mu.RUnlock()
	if ok {
		return snap, nil
	}
	return m.restore(id)
}

// Update installs a new authoritative board for id.
func (m *Manager) Update(id string, b *skirmish.Board) (GameState, error) {
	if b == nil {
		return GameState{}, errors.New("nil board")
	}
	if _, err := m.Get(id); err != nil {
		return GameState{}, err
	}

	m.mu.Lock()
	g, ok := m.games[id]
	if !ok {
		m.mu.Unlock()
		return GameState{}, errors.Wrap(ErrGameNotFound, id)
	}
	g.Board = b
	g.Revision++
	g.UpdatedAt = time.Now()
	snap := *g
	m.mu.Unlock()

	m.persist(snap)
	return snap, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func (m *Manager) persist(g GameState) {
	if m.store == nil || m.codec == nil {
		return
	}
	rec := Record{
		Position:  m.codec.EncodeBoard(g.Board),
		Revision:  g.Revision,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if err := m.store.Save(g.ID, rec); err != nil {
		logger.Log.WithError(err).WithField("game_id", g.ID).Warn("snapshot not persisted")
	}
}

func (m *Manager) restore(id string) (GameState, error) {
	if m.store == nil || m.codec == nil {
		return GameState{}, errors.Wrap(ErrGameNotFound, id)
	}
	rec, ok, err := m.store.Load(id)
	if err != nil {
		return GameState{}, errors.Wrapf(err, "restore %s", id)
	}
	if !ok {
		return GameState{}, errors.Wrap(ErrGameNotFound, id)
	}
	b, err := m.codec.DecodeBoard(rec.Position)
	if err != nil {
		return GameState{}, errors.Wrapf(err, "restore %s", id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[id]; ok {
		return *g, nil
	}
	g := &GameState{
		ID:        id,
		Board:     b,
		Revision:  rec.Revision,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	m.games[id] = g
	logger.Log.WithFields(logrus.Fields{"game_id": id, "revision": rec.Revision}).Info("session restored from store")
	return *g, nil
}
