package providers

import (
	"solobill/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
)

// local mock logger to avoid import cycle with testutil
type cacheTestLogger struct{}

func (m *cacheTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *cacheTestLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *cacheTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Close()                                        {}

func cacheConfig(enabled bool, size int) *structures.Config {
	return &structures.Config{
		Cache: structures.CacheConfig{
			Enabled: enabled,
			Size:    size,
		},
	}
}

func TestCacheProvider_DisabledReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(false, 10), &cacheTestLogger{})
	_, ok := c.Get("any")
	assert.False(t, ok)
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_ZeroSizeReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 0), &cacheTestLogger{})
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_EnabledReturnsCacheProvider(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1), &cacheTestLogger{})
	assert.IsType(t, &CacheProvider{}, c)
}

func TestCacheProvider_SetAndGet(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1), &cacheTestLogger{})

	c.Set("dashboard:2026-05-20", []byte(`{"todayMeetings":2}`))
	val, ok := c.Get("dashboard:2026-05-20")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"todayMeetings":2}`), val)
}

func TestCacheProvider_Miss(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1), &cacheTestLogger{})

	val, ok := c.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCacheProvider_Overwrite(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1), &cacheTestLogger{})

	c.Set("meetings", []byte("v1"))
	c.Set("meetings", []byte("v2"))

	val, ok := c.Get("meetings")
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), val)
}

func TestCacheProvider_ClearDropsAllEntries(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1), &cacheTestLogger{})

	c.Set("meetings", []byte("v1"))
	c.Set("invoices", []byte("v2"))
	c.Clear()

	_, ok := c.Get("meetings")
	assert.False(t, ok)
	_, ok = c.Get("invoices")
	assert.False(t, ok)
}

func TestNoopCache_AlwaysMiss(t *testing.T) {
	c := &noopCache{}
	c.Set("meetings", []byte("v1"))

	val, ok := c.Get("meetings")
	assert.False(t, ok)
	assert.Nil(t, val)
}
