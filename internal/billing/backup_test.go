package billing

import (
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solobill/internal/models"
)

func exportFixture() *models.Ledger {
	ledger := models.NewLedger()
	ledger.Clients = []*models.Client{{
		ID:          "client-1",
		Name:        "Acme Corp",
		Email:       "ops@acme.test",
		ContactInfo: models.ContactInfo{Phone: "555-0101"},
		HourlyRate:  150,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	ledger.Meetings = []*models.Meeting{{
		ID:        "meeting-1",
		ClientID:  "client-1",
		Title:     "Kickoff",
		StartTime: time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 10, 11, 0, 0, 0, time.UTC),
		Duration:  60,
		Status:    models.MeetingBooked,
		Amount:    150,
		CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}}
	ledger.Settings = models.DefaultSettings()
	return ledger
}

func TestExportJSON_Golden(t *testing.T) {
	data, err := ExportJSON(exportFixture(), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "export", data)
}

func TestExportImport_Roundtrip(t *testing.T) {
	original := exportFixture()

	data, err := ExportJSON(original, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	restored, err := Import(data, models.Settings{CompanyName: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, original.Clients, restored.Clients)
	assert.Equal(t, original.Meetings, restored.Meetings)
	assert.Equal(t, original.Invoices, restored.Invoices)
	assert.Equal(t, original.Notifications, restored.Notifications)
	assert.Equal(t, original.Settings, restored.Settings)
}

func TestImport_AbsentCollectionsRestoreEmpty(t *testing.T) {
	doc := []byte(`{"clients":[{"id":"c1","name":"Acme"}],"version":"1.0"}`)

	ledger, err := Import(doc, models.DefaultSettings())
	require.NoError(t, err)
	assert.Len(t, ledger.Clients, 1)
	assert.Empty(t, ledger.Meetings)
	assert.Empty(t, ledger.Invoices)
	assert.Empty(t, ledger.Notifications)
	assert.Equal(t, models.DefaultSettings(), ledger.Settings)
}

func TestImport_KeepsCurrentSettingsWhenAbsent(t *testing.T) {
	current := models.Settings{CompanyName: "Mine", DefaultHourlyRate: 90}

	ledger, err := Import([]byte(`{"clients":[]}`), current)
	require.NoError(t, err)
	assert.Equal(t, current, ledger.Settings)
}

func TestImport_RejectsMalformedDocuments(t *testing.T) {
	for _, input := range []string{"", "   ", "null", "{not json"} {
		_, err := Import([]byte(input), models.DefaultSettings())
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, ErrInvalidFormat), "input %q", input)
	}
}
