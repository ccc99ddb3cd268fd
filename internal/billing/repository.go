package billing

import (
	"solobill/internal/models"
	"solobill/internal/providers"
	"solobill/internal/storage"
	"time"

	json "github.com/goccy/go-json"
)

// Repository moves the ledger between memory and the storage adapter, one
// key per collection.
type Repository struct {
	adapter storage.AdapterInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewRepository(adapter storage.AdapterInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *Repository {
	return &Repository{
		adapter: adapter,
		logger:  logger,
		metrics: metrics,
	}
}

// LoadLedger reads every collection. An absent key leaves the collection at
// its default; a malformed value is logged and degrades that one collection
// to its default instead of failing the whole load.
func (r *Repository) LoadLedger() (*models.Ledger, error) {
	ledger := models.NewLedger()

	loadCollection(r, models.KeyClients, &ledger.Clients)
	loadCollection(r, models.KeyMeetings, &ledger.Meetings)
	loadCollection(r, models.KeyInvoices, &ledger.Invoices)
	loadCollection(r, models.KeyNotifications, &ledger.Notifications)

	var settings models.Settings
	if loadCollection(r, models.KeySettings, &settings) {
		ledger.Settings = settings
	}

	return ledger, nil
}

// loadCollection reports whether a stored value was read and decoded. The
// value is decoded into a scratch variable first; a decode error that hits
// mid-document must not leave a partial prefix in the target.
func loadCollection[T any](r *Repository, key string, target *T) bool {
	data, found, err := r.adapter.Get(key)
	if err != nil {
		r.logger.Errorf(providers.TypeStore, "Failed to read %s: %s", key, err)
		return false
	}
	if !found {
		return false
	}
	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		r.logger.Warnf(providers.TypeStore, "Malformed data under %s, falling back to empty collection: %s", key, err)
		return false
	}
	*target = decoded
	return true
}

// SaveLedger writes every collection back to its key. There is no
// cross-collection transaction; a failure between two writes can leave the
// persisted collections at different mutation points.
func (r *Repository) SaveLedger(ledger *models.Ledger) error {
	started := time.Now()

	for _, entry := range []struct {
		key   string
		value interface{}
	}{
		{models.KeyClients, ledger.Clients},
		{models.KeyMeetings, ledger.Meetings},
		{models.KeyInvoices, ledger.Invoices},
		{models.KeyNotifications, ledger.Notifications},
		{models.KeySettings, ledger.Settings},
	} {
		data, err := json.Marshal(entry.value)
		if err != nil {
			return err
		}
		if err := r.adapter.Set(entry.key, data); err != nil {
			return err
		}
	}

	r.metrics.ObservePersistenceDuration(time.Since(started))
	r.metrics.SetRecordsTotal("clients", len(ledger.Clients))
	r.metrics.SetRecordsTotal("meetings", len(ledger.Meetings))
	r.metrics.SetRecordsTotal("invoices", len(ledger.Invoices))
	r.metrics.SetRecordsTotal("notifications", len(ledger.Notifications))

	return nil
}

// LoadSequence returns the persisted invoice counter, zero-valued when the
// key is absent or unreadable.
func (r *Repository) LoadSequence() models.SequenceRecord {
	var seq models.SequenceRecord
	loadCollection(r, models.KeySequence, &seq)
	return seq
}

func (r *Repository) SaveSequence(seq models.SequenceRecord) error {
	data, err := json.Marshal(seq)
	if err != nil {
		return err
	}
	return r.adapter.Set(models.KeySequence, data)
}
