package billing

import (
	"bytes"
	"fmt"
	"solobill/internal/models"
	"time"

	json "github.com/goccy/go-json"
)

// Export builds the transferable backup document for the current ledger.
// It has no side effects; the caller decides where the result goes.
func Export(ledger *models.Ledger, now time.Time) *models.BackupDocument {
	settings := ledger.Settings
	return &models.BackupDocument{
		Clients:       ledger.Clients,
		Meetings:      ledger.Meetings,
		Invoices:      ledger.Invoices,
		Notifications: ledger.Notifications,
		Settings:      &settings,
		ExportDate:    now,
		Version:       models.BackupVersion,
	}
}

// ExportJSON renders the document with two-space indentation, matching the
// backup files the tool has always produced.
func ExportJSON(ledger *models.Ledger, now time.Time) ([]byte, error) {
	return json.MarshalIndent(Export(ledger, now), "", "  ")
}

// Import parses a backup document into a fresh ledger. The result is fully
// buffered: on any parse failure the caller's current ledger is untouched.
// Absent collections restore as empty; an absent settings object falls back
// to the supplied current settings.
func Import(data []byte, current models.Settings) (*models.Ledger, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidFormat)
	}

	var doc models.BackupDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
	}

	ledger := models.NewLedger()
	if doc.Clients != nil {
		ledger.Clients = doc.Clients
	}
	if doc.Meetings != nil {
		ledger.Meetings = doc.Meetings
	}
	if doc.Invoices != nil {
		ledger.Invoices = doc.Invoices
	}
	if doc.Notifications != nil {
		ledger.Notifications = doc.Notifications
	}
	if doc.Settings != nil {
		ledger.Settings = *doc.Settings
	} else {
		ledger.Settings = current
	}
	return ledger, nil
}
