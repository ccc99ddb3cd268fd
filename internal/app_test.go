package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solobill/internal/billing"
	"solobill/internal/services"
	"solobill/internal/structures"
	"solobill/internal/testutil"
)

func newTestApp(t *testing.T) (*App, *testutil.MockAdapter) {
	adapter := testutil.NewMockAdapter()
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	cache := testutil.NewMockCache()
	repo := billing.NewRepository(adapter, logger, metrics)
	service := services.NewLedgerService(repo, cache, metrics, logger)
	views := services.NewViewsService(service, cache, metrics, logger)

	conf := &structures.Config{AppName: "solobill"}
	conf.Storage.Backend = "file"

	app, err := NewApp(conf, logger, service, views, metrics, adapter)
	require.NoError(t, err)
	return app, adapter
}

func TestNewApp_LoadsStoreOnStart(t *testing.T) {
	app, _ := newTestApp(t)

	// the fresh store was seeded during Load
	assert.Equal(t, 1, app.Service.Counts()["notifications"])
}

func TestAppClose_PersistsBeforeReleasingAdapter(t *testing.T) {
	app, adapter := newTestApp(t)
	sets := adapter.Sets

	require.NoError(t, app.Close())
	assert.Greater(t, adapter.Sets, sets)
	assert.Equal(t, 1, adapter.Closes)
}
