package models

import "time"

// Storage keys. Each collection is persisted as one JSON value under its own
// key; the sequence record lives outside the invoice collection so numbering
// survives invoice deletion.
const (
	KeyClients       = "solo-billing-clients"
	KeyMeetings      = "solo-billing-meetings"
	KeyInvoices      = "solo-billing-invoices"
	KeyNotifications = "solo-billing-notifications"
	KeySettings      = "solo-billing-settings"
	KeySequence      = "solo-billing-sequence"
)

// BackupVersion is the format tag written into export documents.
const BackupVersion = "1.0"

// BackupDocument is the export/import wire format. Any of the collection
// fields may be absent on import; absent collections restore as empty and an
// absent settings object keeps the current one.
type BackupDocument struct {
	Clients       []*Client       `json:"clients"`
	Meetings      []*Meeting      `json:"meetings"`
	Invoices      []*Invoice      `json:"invoices"`
	Notifications []*Notification `json:"notifications"`
	Settings      *Settings       `json:"settings"`
	ExportDate    time.Time       `json:"exportDate"`
	Version       string          `json:"version"`
}

// SequenceRecord tracks the next invoice number for a calendar year.
type SequenceRecord struct {
	Year int `json:"year"`
	Next int `json:"next"`
}
