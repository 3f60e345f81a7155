package render

import (
	"sync"

	"siren-api/core/domain"
)

// mockCache is a map-backed ParseCache that counts lookups
type mockCache struct {
	mu      sync.Mutex
	entries map[string]*domain.AttributedText
	hits    int
	misses  int
	purges  int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]*domain.AttributedText)}
}

func (m *mockCache) Get(key string) (*domain.AttributedText, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.entries[key]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return text, ok
}

func (m *mockCache) Add(key string, text *domain.AttributedText) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = text
}

func (m *mockCache) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*domain.AttributedText)
	m.purges++
}

func (m *mockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records every call
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) log(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log("error", msg, fields) }

func (m *mockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.level == level {
			n++
		}
	}
	return n
}
