package services

import (
	"math"
	"solobill/internal/billing"
	"solobill/internal/models"
	"solobill/internal/providers"
	"sync"
	"time"

	"github.com/google/uuid"
)

type LedgerServiceInterface interface {
	Load() error
	Persist() error
	Snapshot() *models.Ledger
	Settings() models.Settings
	Counts() map[string]int

	AddClient(form *models.ClientForm) (*models.Client, error)
	EditClient(id string, form *models.ClientForm) (*models.Client, error)
	ArchiveClient(id string) error
	RestoreClient(id string) error
	DeleteClient(id string) error

	AddMeeting(form *models.MeetingForm) (*models.Meeting, error)
	CancelMeeting(id string) error
	DeleteMeeting(id string) error

	GenerateInvoice(form *models.InvoiceForm) (*models.Invoice, error)
	MarkInvoicePaid(id string, form *models.PaymentForm) (*models.Invoice, error)
	DeleteInvoice(id string) error

	AddNotification(form *models.NotificationForm) (*models.Notification, error)
	MarkNotificationRead(id string) error
	DismissNotification(id string) error
	DeleteNotification(id string) error

	SaveSettings(form *models.SettingsForm) (models.Settings, error)

	ExportJSON(now time.Time) ([]byte, error)
	ImportJSON(data []byte) error
}

// LedgerService owns the record collections. Every mutation persists the full
// ledger back through the repository and clears the view cache; a failed
// operation never corrupts in-memory state.
type LedgerService struct {
	mu      sync.Mutex
	ledger  *models.Ledger
	seq     models.SequenceRecord
	repo    *billing.Repository
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
	logger  providers.Logger

	nowFn func() time.Time
	idFn  func() string
}

func NewLedgerService(repo *billing.Repository, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) LedgerServiceInterface {
	return &LedgerService{
		ledger:  models.NewLedger(),
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		nowFn:   time.Now,
		idFn:    uuid.NewString,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *LedgerService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.repo.LoadLedger()
	if err != nil {
		return err
	}
	s.ledger = ledger

	s.seq = s.repo.LoadSequence()
	if s.seq.Year == 0 {
		s.seq = billing.RebuildSequence(ledger.Invoices, s.nowFn().Year())
	}

	if ledger.Empty() {
		s.seedWelcomeLocked()
	}

	s.logger.Infof(providers.TypeStore, "Loaded %d clients, %d meetings, %d invoices, %d notifications",
		len(ledger.Clients), len(ledger.Meetings), len(ledger.Invoices), len(ledger.Notifications))
	return nil
}

// seedWelcomeLocked adds the first-run notification to an otherwise empty
// store.
func (s *LedgerService) seedWelcomeLocked() {
	s.ledger.Notifications = append(s.ledger.Notifications, &models.Notification{
		ID:        s.idFn(),
		Type:      "welcome",
		Title:     "Welcome to Solo Billing!",
		Message:   "Your offline billing app is ready to use. Start by adding your first client.",
		Priority:  "low",
		CreatedAt: s.nowFn(),
	})
	if err := s.persistLocked("notification", "seed"); err != nil {
		s.logger.Errorf(providers.TypeStore, "Failed to persist welcome notification: %s", err)
	}
}

func (s *LedgerService) persistLocked(entity, op string) error {
	if err := s.repo.SaveLedger(s.ledger); err != nil {
		s.metrics.IncFailure(entity, op)
		return err
	}
	s.cache.Clear()
	s.metrics.IncOperation(entity, op)
	return nil
}

func (s *LedgerService) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveLedger(s.ledger)
}

func (s *LedgerService) Snapshot() *models.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

func (s *LedgerService) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Settings
}

func (s *LedgerService) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"clients":       len(s.ledger.Clients),
		"meetings":      len(s.ledger.Meetings),
		"invoices":      len(s.ledger.Invoices),
		"notifications": len(s.ledger.Notifications),
	}
}

func (s *LedgerService) AddClient(form *models.ClientForm) (*models.Client, error) {
	if err := billing.ValidateForm(form); err != nil {
		s.metrics.IncFailure("client", "add")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rate := form.HourlyRate
	if rate == 0 {
		rate = s.ledger.Settings.DefaultHourlyRate
	}

	client := &models.Client{
		ID:          s.idFn(),
		Name:        form.Name,
		Company:     form.Company,
		Email:       form.Email,
		ContactInfo: models.ContactInfo{Phone: form.Phone},
		HourlyRate:  rate,
		CreatedAt:   s.nowFn(),
	}
	s.ledger.Clients = append(s.ledger.Clients, client)

	if err := s.persistLocked("client", "add"); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *LedgerService) EditClient(id string, form *models.ClientForm) (*models.Client, error) {
	if err := billing.ValidateForm(form); err != nil {
		s.metrics.IncFailure("client", "edit")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.ledger.FindClient(id)
	if !ok {
		s.metrics.IncFailure("client", "edit")
		return nil, billing.ErrClientNotFound
	}

	client.Name = form.Name
	client.Company = form.Company
	client.Email = form.Email
	client.ContactInfo.Phone = form.Phone
	if form.HourlyRate > 0 {
		client.HourlyRate = form.HourlyRate
	}

	if err := s.persistLocked("client", "edit"); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *LedgerService) ArchiveClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.ledger.FindClient(id)
	if !ok {
		return nil
	}
	now := s.nowFn()
	client.IsArchived = true
	client.ArchivedAt = &now
	return s.persistLocked("client", "archive")
}

func (s *LedgerService) RestoreClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.ledger.FindClient(id)
	if !ok {
		return nil
	}
	client.IsArchived = false
	client.ArchivedAt = nil
	return s.persistLocked("client", "restore")
}

// DeleteClient removes the record only. Meetings and invoices referencing the
// id keep their dangling reference and render as "Unknown Client".
func (s *LedgerService) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.ledger.Clients[:0]
	for _, c := range s.ledger.Clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.ledger.Clients) {
		return nil
	}
	s.ledger.Clients = kept
	return s.persistLocked("client", "delete")
}

func (s *LedgerService) AddMeeting(form *models.MeetingForm) (*models.Meeting, error) {
	if err := billing.ValidateForm(form); err != nil {
		s.metrics.IncFailure("meeting", "add")
		return nil, err
	}
	if form.Start.IsZero() {
		s.metrics.IncFailure("meeting", "add")
		return nil, billing.NewValidationError("start", "start time is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.ledger.FindClient(form.ClientID)
	if !ok || client.IsArchived {
		s.metrics.IncFailure("meeting", "add")
		return nil, billing.ErrClientNotFound
	}

	title := form.Title
	if title == "" {
		title = "Meeting"
	}

	// Flat-rate billing: half the hourly rate up to 30 minutes, the full
	// rate beyond, regardless of exact duration.
	amount := client.HourlyRate
	if form.Duration <= 30 {
		amount = client.HourlyRate * 0.5
	}

	meeting := &models.Meeting{
		ID:        s.idFn(),
		ClientID:  client.ID,
		Title:     title,
		StartTime: form.Start,
		EndTime:   form.Start.Add(time.Duration(form.Duration) * time.Minute),
		Duration:  form.Duration,
		Status:    models.MeetingBooked,
		Notes:     form.Notes,
		Amount:    round2(amount),
		CreatedAt: s.nowFn(),
	}
	s.ledger.Meetings = append(s.ledger.Meetings, meeting)

	if err := s.persistLocked("meeting", "add"); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *LedgerService) CancelMeeting(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, ok := s.ledger.FindMeeting(id)
	if !ok {
		s.metrics.IncFailure("meeting", "cancel")
		return billing.ErrMeetingNotFound
	}
	meeting.Status = models.MeetingCancelled
	return s.persistLocked("meeting", "cancel")
}

func (s *LedgerService) DeleteMeeting(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.ledger.Meetings[:0]
	for _, m := range s.ledger.Meetings {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(s.ledger.Meetings) {
		return nil
	}
	s.ledger.Meetings = kept
	return s.persistLocked("meeting", "delete")
}

func (s *LedgerService) GenerateInvoice(form *models.InvoiceForm) (*models.Invoice, error) {
	if err := billing.ValidateForm(form); err != nil {
		s.metrics.IncFailure("invoice", "generate")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ledger.FindClient(form.ClientID); !ok {
		s.metrics.IncFailure("invoice", "generate")
		return nil, billing.ErrClientNotFound
	}

	var subtotal float64
	var meetingIDs []string
	for _, m := range s.ledger.Meetings {
		if m.ClientID == form.ClientID && m.Status == models.MeetingBooked && m.Amount > 0 {
			subtotal += m.Amount
			meetingIDs = append(meetingIDs, m.ID)
		}
	}
	if len(meetingIDs) == 0 {
		s.metrics.IncFailure("invoice", "generate")
		return nil, billing.ErrNoBillableMeetings
	}
	subtotal = round2(subtotal)

	now := s.nowFn()
	number, seq := billing.NextInvoiceNumber(s.seq, now.Year())
	if err := s.repo.SaveSequence(seq); err != nil {
		s.metrics.IncFailure("invoice", "generate")
		return nil, err
	}
	s.seq = seq

	invoice := &models.Invoice{
		ID:            s.idFn(),
		ClientID:      form.ClientID,
		InvoiceNumber: number,
		IssueDate:     now,
		DueDate:       now.Add(30 * 24 * time.Hour),
		MeetingIDs:    meetingIDs,
		Subtotal:      subtotal,
		TaxAmount:     0,
		Total:         subtotal,
		Status:        models.InvoiceDraft,
		CutOffPeriod:  form.CutOffPeriod,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     now,
	}
	s.ledger.Invoices = append(s.ledger.Invoices, invoice)

	if err := s.persistLocked("invoice", "generate"); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *LedgerService) MarkInvoicePaid(id string, form *models.PaymentForm) (*models.Invoice, error) {
	if err := billing.ValidateForm(form); err != nil {
		s.metrics.IncFailure("invoice", "pay")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoice, ok := s.ledger.FindInvoice(id)
	if !ok {
		s.metrics.IncFailure("invoice", "pay")
		return nil, billing.ErrInvoiceNotFound
	}

	now := s.nowFn()
	invoice.PaymentStatus = models.PaymentPaid
	invoice.PaymentDate = &now
	invoice.PaymentMethod = form.Method
	invoice.PaymentNotes = form.Notes

	if err := s.persistLocked("invoice", "pay"); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *LedgerService) DeleteInvoice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.ledger.Invoices[:0]
	for _, i := range s.ledger.Invoices {
		if i.ID != id {
			kept = append(kept, i)
		}
	}
	if len(kept) == len(s.ledger.Invoices) {
		return nil
	}
	s.ledger.Invoices = kept
	return s.persistLocked("invoice", "delete")
}

func (s *LedgerService) AddNotification(form *models.NotificationForm) (*models.Notification, error) {
	if err := billing.ValidateForm(form); err != nil {
		s.metrics.IncFailure("notification", "add")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notification := &models.Notification{
		ID:          s.idFn(),
		Type:        form.Type,
		Title:       form.Title,
		Message:     form.Message,
		Priority:    form.Priority,
		RelatedID:   form.RelatedID,
		RelatedType: form.RelatedType,
		CreatedAt:   s.nowFn(),
	}
	s.ledger.Notifications = append(s.ledger.Notifications, notification)

	if err := s.persistLocked("notification", "add"); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *LedgerService) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.ledger.FindNotification(id)
	if !ok {
		return nil
	}
	notification.IsRead = true
	return s.persistLocked("notification", "read")
}

func (s *LedgerService) DismissNotification(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.ledger.FindNotification(id)
	if !ok {
		return nil
	}
	notification.IsDismissed = true
	return s.persistLocked("notification", "dismiss")
}

func (s *LedgerService) DeleteNotification(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.ledger.Notifications[:0]
	for _, n := range s.ledger.Notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(s.ledger.Notifications) {
		return nil
	}
	s.ledger.Notifications = kept
	return s.persistLocked("notification", "delete")
}

func (s *LedgerService) SaveSettings(form *models.SettingsForm) (models.Settings, error) {
	if err := billing.ValidateForm(form); err != nil {
		s.metrics.IncFailure("settings", "save")
		return models.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Settings = models.Settings{
		CompanyName:       form.CompanyName,
		CompanyEmail:      form.CompanyEmail,
		CompanyPhone:      form.CompanyPhone,
		DefaultHourlyRate: form.DefaultHourlyRate,
	}

	if err := s.persistLocked("settings", "save"); err != nil {
		return models.Settings{}, err
	}
	return s.ledger.Settings, nil
}

func (s *LedgerService) ExportJSON(now time.Time) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return billing.ExportJSON(s.ledger, now)
}

// ImportJSON replaces all five collections wholesale. The document is parsed
// into a buffered ledger first; the live one is swapped only after the whole
// document validated.
func (s *LedgerService) ImportJSON(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := billing.Import(data, s.ledger.Settings)
	if err != nil {
		s.metrics.IncFailure("backup", "import")
		return err
	}

	s.ledger = ledger
	s.seq = billing.RebuildSequence(ledger.Invoices, s.nowFn().Year())
	if err := s.repo.SaveSequence(s.seq); err != nil {
		s.logger.Errorf(providers.TypeBackup, "Failed to persist invoice sequence: %s", err)
	}
	s.logger.Infof(providers.TypeBackup, "Imported %d clients, %d meetings, %d invoices, %d notifications",
		len(ledger.Clients), len(ledger.Meetings), len(ledger.Invoices), len(ledger.Notifications))

	return s.persistLocked("backup", "import")
}
