package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager: registro de las sesiones vivas del proceso. Las sesiones no
// se persisten, mueren con el proceso.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create arma una sesión nueva con su grid inicial.
func (m *Manager) Create(grid []int) *Session {
	s := newSession(uuid.NewString(), grid)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get devuelve la sesión o nil si no existe (token viejo de otro proceso).
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
