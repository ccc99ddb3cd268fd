package models

// Ledger holds the five record collections. It is owned by a single service
// instance for the lifetime of the process; slices keep insertion order.
type Ledger struct {
	Clients       []*Client
	Meetings      []*Meeting
	Invoices      []*Invoice
	Notifications []*Notification
	Settings      Settings
}

func NewLedger() *Ledger {
	return &Ledger{
		Clients:       make([]*Client, 0),
		Meetings:      make([]*Meeting, 0),
		Invoices:      make([]*Invoice, 0),
		Notifications: make([]*Notification, 0),
		Settings:      DefaultSettings(),
	}
}

func (l *Ledger) FindClient(id string) (*Client, bool) {
	for _, c := range l.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

func (l *Ledger) FindMeeting(id string) (*Meeting, bool) {
	for _, m := range l.Meetings {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

func (l *Ledger) FindInvoice(id string) (*Invoice, bool) {
	for _, i := range l.Invoices {
		if i.ID == id {
			return i, true
		}
	}
	return nil, false
}

func (l *Ledger) FindNotification(id string) (*Notification, bool) {
	for _, n := range l.Notifications {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Empty reports whether the ledger holds no records at all.
func (l *Ledger) Empty() bool {
	return len(l.Clients) == 0 && len(l.Meetings) == 0 &&
		len(l.Invoices) == 0 && len(l.Notifications) == 0
}
