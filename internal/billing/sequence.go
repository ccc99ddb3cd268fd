package billing

import (
	"fmt"
	"solobill/internal/models"
)

// Invoice numbers look like INV-2026-007. The sequence is a per-year counter
// persisted under its own key, so deleting an invoice can never cause a
// number to be issued twice.

// NextInvoiceNumber advances the counter for the given year and returns the
// formatted number together with the updated record. A year rollover resets
// the counter to one.
func NextInvoiceNumber(seq models.SequenceRecord, year int) (string, models.SequenceRecord) {
	if seq.Year != year || seq.Next < 1 {
		seq = models.SequenceRecord{Year: year, Next: 1}
	}
	number := fmt.Sprintf("INV-%d-%03d", year, seq.Next)
	seq.Next++
	return number, seq
}

// RebuildSequence derives the counter from existing invoice numbers. Used
// when no persisted counter exists (stores created before the counter was
// introduced, or restored from a backup document).
func RebuildSequence(invoices []*models.Invoice, year int) models.SequenceRecord {
	seq := models.SequenceRecord{Year: year, Next: 1}
	for _, inv := range invoices {
		var y, n int
		if _, err := fmt.Sscanf(inv.InvoiceNumber, "INV-%d-%d", &y, &n); err != nil {
			continue
		}
		if y == year && n >= seq.Next {
			seq.Next = n + 1
		}
	}
	return seq
}
