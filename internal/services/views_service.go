package services

import (
	"solobill/internal/models"
	"solobill/internal/providers"
	"time"

	json "github.com/goccy/go-json"
)

type ViewsServiceInterface interface {
	Dashboard(now time.Time) ([]byte, error)
	Clients(archived bool) ([]byte, error)
	Meetings() ([]byte, error)
	Invoices() ([]byte, error)
	Notifications() ([]byte, error)
}

type MeetingRow struct {
	*models.Meeting
	ClientName string `json:"clientName"`
}

type InvoiceRow struct {
	*models.Invoice
	ClientName string `json:"clientName"`
}

type ClientListView struct {
	ActiveCount   int              `json:"activeCount"`
	ArchivedCount int              `json:"archivedCount"`
	Clients       []*models.Client `json:"clients"`
}

// ViewsService renders derived views as JSON documents, served from cache
// until the next mutation clears it.
type ViewsService struct {
	service LedgerServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
	logger  providers.Logger
}

func NewViewsService(service LedgerServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) ViewsServiceInterface {
	return &ViewsService{
		service: service,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

func (v *ViewsService) fromCacheOrCompute(cacheKey string, compute func() interface{}) ([]byte, error) {
	if data, ok := v.cache.Get(cacheKey); ok {
		v.metrics.IncCacheHits()
		return data, nil
	}
	v.metrics.IncCacheMisses()

	gson, err := json.MarshalIndent(compute(), "", "  ")
	if err != nil {
		return nil, err
	}

	v.cache.Set(cacheKey, gson)
	return gson, nil
}

func (v *ViewsService) Dashboard(now time.Time) ([]byte, error) {
	return v.fromCacheOrCompute("dashboard:"+now.Local().Format("2006-01-02"), func() interface{} {
		return BuildDashboardSummary(v.service.Snapshot(), now)
	})
}

func (v *ViewsService) Clients(archived bool) ([]byte, error) {
	key := "clients:active"
	if archived {
		key = "clients:archived"
	}
	return v.fromCacheOrCompute(key, func() interface{} {
		ledger := v.service.Snapshot()
		return ClientListView{
			ActiveCount:   len(ClientsByArchiveState(ledger, false)),
			ArchivedCount: len(ClientsByArchiveState(ledger, true)),
			Clients:       ClientsByArchiveState(ledger, archived),
		}
	})
}

func (v *ViewsService) Meetings() ([]byte, error) {
	return v.fromCacheOrCompute("meetings", func() interface{} {
		ledger := v.service.Snapshot()
		rows := make([]MeetingRow, 0, len(ledger.Meetings))
		for _, m := range MeetingsSorted(ledger) {
			rows = append(rows, MeetingRow{Meeting: m, ClientName: ClientName(ledger, m.ClientID)})
		}
		return rows
	})
}

func (v *ViewsService) Invoices() ([]byte, error) {
	return v.fromCacheOrCompute("invoices", func() interface{} {
		ledger := v.service.Snapshot()
		rows := make([]InvoiceRow, 0, len(ledger.Invoices))
		for _, i := range InvoicesList(ledger) {
			rows = append(rows, InvoiceRow{Invoice: i, ClientName: ClientName(ledger, i.ClientID)})
		}
		return rows
	})
}

func (v *ViewsService) Notifications() ([]byte, error) {
	return v.fromCacheOrCompute("notifications", func() interface{} {
		return NotificationsList(v.service.Snapshot())
	})
}
