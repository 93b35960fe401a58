package session

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lacuchara/reservation-app/models"
)

const ContextKey = "session"

// Session holds everything one browsing user mutates: an in-memory store of
// its own plus the reservation workflow state. Nothing here is shared
// between sessions and nothing survives the process.
type Session struct {
	ID       string
	DB       *gorm.DB
	mu       sync.Mutex
	flow     models.FlowState
	lastSeen time.Time
}

func (s *Session) Flow() models.FlowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow
}

func (s *Session) SetFlow(flow models.FlowState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flow = flow
}

func (s *Session) ResetFlow() {
	s.SetFlow(models.IdleFlow())
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

// FromContext returns the session resolved by the session middleware.
func FromContext(c *gin.Context) *Session {
	v, _ := c.Get(ContextKey)
	sess, _ := v.(*Session)
	return sess
}
