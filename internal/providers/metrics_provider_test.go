package providers

import (
	"bytes"
	"solobill/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncOperation("client", "add")
	m.IncFailure("client", "add")
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.SetRecordsTotal("clients", 10)
	assert.NoError(t, m.Dump(&bytes.Buffer{}))
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)

	// These should not panic
	m.IncOperation("client", "add")
	m.IncOperation("invoice", "generate")
	m.IncFailure("invoice", "generate")
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(100 * time.Millisecond)
	m.SetRecordsTotal("clients", 42)
}

func TestMetricsProvider_DumpRendersTextFormat(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	m.IncOperation("client", "add")
	m.SetRecordsTotal("clients", 3)

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))

	out := buf.String()
	assert.Contains(t, out, "solobill_operations_total")
	assert.Contains(t, out, `entity="client"`)
	assert.Contains(t, out, "solobill_records_total")
}

func TestMetricsProvider_PrivateRegistriesAreIndependent(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	first := NewMetricsProvider(conf)
	second := NewMetricsProvider(conf)
	first.IncOperation("client", "add")

	var buf bytes.Buffer
	require.NoError(t, second.Dump(&buf))
	assert.NotContains(t, buf.String(), `entity="client"`)
}
