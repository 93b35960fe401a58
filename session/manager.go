package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lacuchara/reservation-app/database"
	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/utils"
)

// Manager owns all live sessions. Each session gets its own SQLite
// in-memory database, migrated and seeded on creation, so concurrent
// sessions never see each other's reservations or added restaurants.
type Manager struct {
	catalog  database.CatalogSource
	ttl      time.Duration
	sweep    time.Duration
	sessions map[string]*Session
	mu       sync.RWMutex
	StopChan chan struct{}
}

func NewManager(catalog database.CatalogSource, ttl, sweep time.Duration) *Manager {
	return &Manager{
		catalog:  catalog,
		ttl:      ttl,
		sweep:    sweep,
		sessions: make(map[string]*Session),
		StopChan: make(chan struct{}),
	}
}

// Create opens and seeds a fresh session store.
func (m *Manager) Create() (*Session, error) {
	id := uuid.NewString()

	// A named in-memory database with a shared cache keeps every pooled
	// connection of this session on the same store. A plain ":memory:" DSN
	// would hand each new connection an empty database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", id)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := database.Seed(db, m.catalog); err != nil {
		return nil, err
	}

	sess := &Session{
		ID:       id,
		DB:       db,
		flow:     models.IdleFlow(),
		lastSeen: time.Now(),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	utils.InfoLogger.Printf("Session %s created", sess.ID)
	return sess, nil
}

// Get returns a live session and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		sess.touch()
	}
	return sess, ok
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Start runs the janitor that drops sessions idle longer than the TTL.
func (m *Manager) Start() {
	go func() {
		ticker := time.NewTicker(m.sweep)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.sweepExpired()
			case <-m.StopChan:
				return
			}
		}
	}()
}

func (m *Manager) Stop() {
	close(m.StopChan)
}

func (m *Manager) sweepExpired() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		if sess.idleSince(cutoff) {
			delete(m.sessions, id)
			if sqlDB, err := sess.DB.DB(); err == nil {
				sqlDB.Close()
			}
			utils.InfoLogger.Printf("Session %s expired", id)
		}
	}
}
