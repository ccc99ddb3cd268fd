package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"solobill/internal/models"
)

func viewsFixtureLedger(now time.Time) *models.Ledger {
	ledger := models.NewLedger()
	ledger.Clients = []*models.Client{
		{ID: "c1", Name: "Acme Corp", HourlyRate: 150},
		{ID: "c2", Name: "Beta Ltd", HourlyRate: 100, IsArchived: true},
	}
	ledger.Meetings = []*models.Meeting{
		{ID: "m1", ClientID: "c1", StartTime: now.Add(-time.Hour), Duration: 60, Status: models.MeetingBooked, Amount: 150},
		{ID: "m2", ClientID: "c1", StartTime: now.Add(-30 * time.Minute), Duration: 30, Status: models.MeetingBooked, Amount: 75},
		{ID: "m3", ClientID: "c1", StartTime: now, Duration: 60, Status: models.MeetingCancelled, Amount: 150},
		{ID: "m4", ClientID: "c1", StartTime: now.Add(-48 * time.Hour), Duration: 60, Status: models.MeetingBooked, Amount: 150},
	}
	return ledger
}

func TestBuildDashboardSummary(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.Local)
	summary := BuildDashboardSummary(viewsFixtureLedger(now), now)

	// Cancelled and prior-day meetings are excluded; archived clients do not
	// count toward the total.
	assert.Equal(t, 2, summary.TodayMeetings)
	assert.Equal(t, 1.5, summary.HoursTracked)
	assert.Equal(t, 225.0, summary.TodayRevenue)
	assert.Equal(t, 1, summary.TotalClients)
}

func TestBuildDashboardSummary_EmptyLedger(t *testing.T) {
	now := time.Now()
	summary := BuildDashboardSummary(models.NewLedger(), now)
	assert.Equal(t, DashboardSummary{}, summary)
}

func TestClientsByArchiveState(t *testing.T) {
	ledger := viewsFixtureLedger(time.Now())

	active := ClientsByArchiveState(ledger, false)
	assert.Len(t, active, 1)
	assert.Equal(t, "c1", active[0].ID)

	archived := ClientsByArchiveState(ledger, true)
	assert.Len(t, archived, 1)
	assert.Equal(t, "c2", archived[0].ID)
}

func TestMeetingsSorted_MostRecentFirst(t *testing.T) {
	ledger := viewsFixtureLedger(time.Date(2026, 5, 20, 15, 0, 0, 0, time.Local))

	sorted := MeetingsSorted(ledger)
	ids := make([]string, 0, len(sorted))
	for _, m := range sorted {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"m3", "m2", "m1", "m4"}, ids)

	// The ledger's own order is untouched.
	assert.Equal(t, "m1", ledger.Meetings[0].ID)
}

func TestClientName_DanglingReferenceFallback(t *testing.T) {
	ledger := viewsFixtureLedger(time.Now())
	assert.Equal(t, "Acme Corp", ClientName(ledger, "c1"))
	assert.Equal(t, "Unknown Client", ClientName(ledger, "deleted"))
}
