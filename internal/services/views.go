package services

import (
	"solobill/internal/models"
	"sort"
	"time"
)

// Derived views are pure functions over a ledger snapshot; they never mutate
// the collections they read.

type DashboardSummary struct {
	TodayMeetings int     `json:"todayMeetings"`
	HoursTracked  float64 `json:"hoursTracked"`
	TodayRevenue  float64 `json:"todayRevenue"`
	TotalClients  int     `json:"totalClients"`
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// BuildDashboardSummary aggregates booked meetings falling on now's calendar
// day (local time) plus the non-archived client count.
func BuildDashboardSummary(ledger *models.Ledger, now time.Time) DashboardSummary {
	var summary DashboardSummary
	var minutes int
	for _, m := range ledger.Meetings {
		if m.Status != models.MeetingBooked || !sameLocalDay(m.StartTime, now) {
			continue
		}
		summary.TodayMeetings++
		minutes += m.Duration
		summary.TodayRevenue = round2(summary.TodayRevenue + m.Amount)
	}
	summary.HoursTracked = float64(minutes) / 60
	for _, c := range ledger.Clients {
		if !c.IsArchived {
			summary.TotalClients++
		}
	}
	return summary
}

// ClientsByArchiveState filters clients, preserving insertion order.
func ClientsByArchiveState(ledger *models.Ledger, archived bool) []*models.Client {
	out := make([]*models.Client, 0)
	for _, c := range ledger.Clients {
		if c.IsArchived == archived {
			out = append(out, c)
		}
	}
	return out
}

// MeetingsSorted returns all meetings most recent first; meetings with equal
// start times keep their insertion order.
func MeetingsSorted(ledger *models.Ledger) []*models.Meeting {
	out := make([]*models.Meeting, len(ledger.Meetings))
	copy(out, ledger.Meetings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out
}

func InvoicesList(ledger *models.Ledger) []*models.Invoice {
	out := make([]*models.Invoice, len(ledger.Invoices))
	copy(out, ledger.Invoices)
	return out
}

func NotificationsList(ledger *models.Ledger) []*models.Notification {
	out := make([]*models.Notification, len(ledger.Notifications))
	copy(out, ledger.Notifications)
	return out
}

// ClientName resolves a client id for display. Dangling references are
// tolerated and rendered with a fallback label.
func ClientName(ledger *models.Ledger, id string) string {
	if c, ok := ledger.FindClient(id); ok {
		return c.Name
	}
	return "Unknown Client"
}
