package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"solobill/internal/models"
)

func TestNextInvoiceNumber(t *testing.T) {
	seq := models.SequenceRecord{}

	number, seq := NextInvoiceNumber(seq, 2026)
	assert.Equal(t, "INV-2026-001", number)

	number, seq = NextInvoiceNumber(seq, 2026)
	assert.Equal(t, "INV-2026-002", number)
	assert.Equal(t, models.SequenceRecord{Year: 2026, Next: 3}, seq)
}

func TestNextInvoiceNumber_YearRollover(t *testing.T) {
	seq := models.SequenceRecord{Year: 2026, Next: 42}

	number, seq := NextInvoiceNumber(seq, 2027)
	assert.Equal(t, "INV-2027-001", number)
	assert.Equal(t, models.SequenceRecord{Year: 2027, Next: 2}, seq)
}

func TestNextInvoiceNumber_NeverReissuesAfterDelete(t *testing.T) {
	seq := models.SequenceRecord{}
	_, seq = NextInvoiceNumber(seq, 2026)
	_, seq = NextInvoiceNumber(seq, 2026)

	// Deleting issued invoices leaves the counter alone, so the next number
	// keeps advancing.
	number, _ := NextInvoiceNumber(seq, 2026)
	assert.Equal(t, "INV-2026-003", number)
}

func TestRebuildSequence(t *testing.T) {
	invoices := []*models.Invoice{
		{InvoiceNumber: "INV-2026-003"},
		{InvoiceNumber: "INV-2026-001"},
		{InvoiceNumber: "INV-2025-044"},
		{InvoiceNumber: "garbage"},
	}

	seq := RebuildSequence(invoices, 2026)
	assert.Equal(t, models.SequenceRecord{Year: 2026, Next: 4}, seq)

	number, _ := NextInvoiceNumber(seq, 2026)
	assert.Equal(t, "INV-2026-004", number)
}

func TestRebuildSequence_NoInvoices(t *testing.T) {
	seq := RebuildSequence(nil, 2026)
	assert.Equal(t, models.SequenceRecord{Year: 2026, Next: 1}, seq)
}
