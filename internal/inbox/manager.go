package inbox

import (
	"log"
	"sync"

	"FinSentinel/internal/model"
)

// RetentionCap is the hard inbox size; the oldest insights are evicted first.
const RetentionCap = 100

// Manager holds the full insight inbox with concurrency safety. Insights are
// immutable except for the read flag.
type Manager struct {
	mu       sync.Mutex
	state    *State
	filePath string
}

// NewManager creates a Manager, loading state from disk. An empty filePath
// keeps the inbox memory-only.
func NewManager(filePath string) (*Manager, error) {
	state := &State{}
	if filePath != "" {
		loaded, err := LoadState(filePath)
		if err != nil {
			return nil, err
		}
		state = loaded
	}
	return &Manager{state: state, filePath: filePath}, nil
}

// Add appends insights to the inbox, evicting the oldest entries beyond the
// retention cap.
func (m *Manager) Add(insights ...model.Insight) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Insights = append(m.state.Insights, insights...)
	if n := len(m.state.Insights); n > RetentionCap {
		m.state.Insights = m.state.Insights[n-RetentionCap:]
	}
	m.save()
}

// MarkRead flags one insight as read. The read flag is the only mutable
// field on an insight.
func (m *Manager) MarkRead(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.state.Insights {
		if m.state.Insights[i].ID == id {
			m.state.Insights[i].IsRead = true
			m.save()
			return true
		}
	}
	return false
}

// All returns a copy of the inbox, newest last.
func (m *Manager) All() []model.Insight {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Insight, len(m.state.Insights))
	copy(out, m.state.Insights)
	return out
}

// Unread returns the unread insights.
func (m *Manager) Unread() []model.Insight {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Insight
	for _, ins := range m.state.Insights {
		if !ins.IsRead {
			out = append(out, ins)
		}
	}
	return out
}

// Len reports the current inbox size.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.Insights)
}

func (m *Manager) save() {
	if m.filePath == "" {
		return
	}
	if err := SaveState(m.filePath, m.state); err != nil {
		log.Printf("[ERROR] failed to save inbox state: %v", err)
	}
}
