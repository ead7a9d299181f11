// Package session is the host harness around the simulation core: it
// loads the encoded world for a session, runs one tick, and writes the
// result back atomically. The core assumes at most one in-flight tick
// per session; the manager enforces that with a per-session lock, so
// the core itself stays lock-free.
package session

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickcore/internal/sim"
	"github.com/vovakirdan/brickcore/internal/storage"
	"github.com/vovakirdan/brickcore/internal/world"
)

// Manager coordinates session creation, ticking, and reset against the
// session store.
type Manager struct {
	store  *storage.Store
	logger *log.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager creates a session manager. A nil logger gets a default
// stderr logger.
func NewManager(store *storage.Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "brickcore",
		})
	}
	return &Manager{
		store:  store,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lock returns the mutex serializing ticks for one session.
func (m *Manager) lock(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

// Create initializes a new game session and persists its starting world.
// Returns the new session ID.
func (m *Manager) Create(cfg world.Config) (string, error) {
	w, err := sim.InitWorld(cfg)
	if err != nil {
		return "", fmt.Errorf("session: init world: %w", err)
	}

	id := uuid.NewString()
	if err := m.save(id, w, true); err != nil {
		return "", err
	}

	m.logger.Info("session created",
		"session", id,
		"grid", fmt.Sprintf("%dx%d", cfg.Rows, cfg.Cols),
		"layout", cfg.Layout,
		"hash", w.Hash(),
	)
	return id, nil
}

// Load returns the current world for a session.
func (m *Manager) Load(id string) (*world.World, error) {
	sess, err := m.store.LoadSession(id)
	if err != nil {
		return nil, err
	}
	w, err := world.Decode(sess.State)
	if err != nil {
		return nil, fmt.Errorf("session: decode %s: %w", id, err)
	}
	return w, nil
}

// Tick advances a session one step. The session's tick is serialized:
// nothing is written back if the simulation fails, and a terminal world
// is returned as-is without a write.
func (m *Manager) Tick(id string, in sim.Input) (*world.World, []sim.Event, error) {
	l := m.lock(id)
	l.Lock()
	defer l.Unlock()

	w, err := m.Load(id)
	if err != nil {
		return nil, nil, err
	}

	next, events, err := sim.Tick(w, in)
	if err != nil {
		return nil, nil, err
	}
	if w.Score.Status.Terminal() {
		return next, events, nil
	}

	if err := m.save(id, next, false); err != nil {
		return nil, nil, err
	}

	if next.Score.Status.Terminal() {
		outcome := next.Score.Status.String()
		score := int64(next.Score.Score)
		ticks := int64(next.Tick) //#nosec G115 -- tick count is always positive
		if _, err := m.store.RecordResult(id, outcome, score, ticks); err != nil {
			m.logger.Warn("could not record result", "session", id, "error", err)
		}
		m.logger.Info("game finished",
			"session", id,
			"outcome", outcome,
			"score", next.Score.Score,
			"ticks", next.Tick,
		)
	} else {
		m.logger.Debug("tick",
			"session", id,
			"tick", next.Tick,
			"input", in,
			"events", len(events),
			"hash", next.Hash(),
		)
	}

	return next, events, nil
}

// Reset reinitializes a session to the config it was created with.
func (m *Manager) Reset(id string) (*world.World, error) {
	l := m.lock(id)
	l.Lock()
	defer l.Unlock()

	w, err := m.Load(id)
	if err != nil {
		return nil, err
	}

	fresh, err := sim.Reset(w)
	if err != nil {
		return nil, fmt.Errorf("session: reset %s: %w", id, err)
	}
	if err := m.save(id, fresh, false); err != nil {
		return nil, err
	}

	m.logger.Info("session reset", "session", id, "hash", fresh.Hash())
	return fresh, nil
}

// Delete removes a session and its lock entry, so long-lived hosts do
// not accumulate mutexes for sessions that no longer exist. Recorded
// results are kept.
func (m *Manager) Delete(id string) error {
	l := m.lock(id)
	l.Lock()
	defer l.Unlock()

	if err := m.store.DeleteSession(id); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()

	m.logger.Info("session deleted", "session", id)
	return nil
}

// save persists a world under the session ID.
func (m *Manager) save(id string, w *world.World, create bool) error {
	blob := world.Encode(w)
	status := w.Score.Status.String()
	score := int64(w.Score.Score)
	tick := int64(w.Tick) //#nosec G115 -- tick counts stay far below int64 max

	if create {
		return m.store.CreateSession(id, blob, status, score, tick)
	}
	return m.store.SaveSession(id, blob, status, score, tick)
}
