package testutil

import (
	"fmt"
	"io"
	"solobill/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// HasLevel reports whether any entry was recorded at the given level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockAdapter implements storage.AdapterInterface in memory.
type MockAdapter struct {
	mu     sync.Mutex
	Data   map[string][]byte
	GetErr error
	SetErr error
	Sets   int
	Closes int
}

func NewMockAdapter() *MockAdapter {
	return &MockAdapter{Data: make(map[string][]byte)}
}

func (m *MockAdapter) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	val, ok := m.Data[key]
	return val, ok, nil
}

func (m *MockAdapter) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Sets++
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockAdapter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closes++
	return nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu     sync.Mutex
	Data   map[string][]byte
	Clears int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.Clears++
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu         sync.Mutex
	Operations map[string]int
	Failures   map[string]int
	Records    map[string]int
	CacheHits  int
	CacheMiss  int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Operations: make(map[string]int),
		Failures:   make(map[string]int),
		Records:    make(map[string]int),
	}
}

func (m *MockMetrics) IncOperation(entity, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Operations[entity+":"+op]++
}

func (m *MockMetrics) IncFailure(entity, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures[entity+":"+op]++
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMiss++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {}

func (m *MockMetrics) SetRecordsTotal(collection string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records[collection] = count
}

func (m *MockMetrics) Dump(_ io.Writer) error { return nil }

// FixedClock yields a controllable time for deterministic tests.
type FixedClock struct {
	mu      sync.Mutex
	current time.Time
}

func NewFixedClock(start time.Time) *FixedClock {
	return &FixedClock{current: start}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// SequentialIDs produces deterministic identifiers.
type SequentialIDs struct {
	mu      sync.Mutex
	prefix  string
	counter int
}

func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "id"
	}
	return &SequentialIDs{prefix: prefix}
}

func (g *SequentialIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("%s-%d", g.prefix, g.counter)
}
