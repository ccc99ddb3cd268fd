package models

import "time"

type ContactInfo struct {
	Phone string `json:"phone,omitempty"`
}

// Client is a billable counterparty. Ids are never reused, deletion leaves
// referencing meetings and invoices untouched.
type Client struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Company     string      `json:"company,omitempty"`
	Email       string      `json:"email"`
	ContactInfo ContactInfo `json:"contactInfo"`
	HourlyRate  float64     `json:"hourlyRate"`
	IsArchived  bool        `json:"isArchived"`
	ArchivedAt  *time.Time  `json:"archivedAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type MeetingStatus string

const (
	MeetingBooked    MeetingStatus = "booked"
	MeetingCancelled MeetingStatus = "cancelled"
)

// Meeting tracks one time entry. Amount is derived once at creation from the
// client's rate at that moment and is not recomputed afterwards.
type Meeting struct {
	ID        string        `json:"id"`
	ClientID  string        `json:"clientId"`
	Title     string        `json:"title"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  int           `json:"duration"` // minutes
	Status    MeetingStatus `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	Amount    float64       `json:"amount"`
	CreatedAt time.Time     `json:"createdAt"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

type Invoice struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"clientId"`
	InvoiceNumber string        `json:"invoiceNumber"`
	IssueDate     time.Time     `json:"issueDate"`
	DueDate       time.Time     `json:"dueDate"`
	MeetingIDs    []string      `json:"meetingIds"`
	Subtotal      float64       `json:"subtotal"`
	TaxAmount     float64       `json:"taxAmount"`
	Total         float64       `json:"total"`
	Status        string        `json:"status"`
	CutOffPeriod  string        `json:"cutOffPeriod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentDate   *time.Time    `json:"paymentDate"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	PaymentNotes  string        `json:"paymentNotes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// InvoiceDraft is the only status invoices are created with.
const InvoiceDraft = "draft"

type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Priority    string    `json:"priority"`
	RelatedID   string    `json:"relatedId,omitempty"`
	RelatedType string    `json:"relatedType,omitempty"`
	IsRead      bool      `json:"isRead"`
	IsDismissed bool      `json:"isDismissed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Settings is the singleton profile record.
type Settings struct {
	CompanyName       string  `json:"companyName"`
	CompanyEmail      string  `json:"companyEmail"`
	CompanyPhone      string  `json:"companyPhone"`
	DefaultHourlyRate float64 `json:"defaultHourlyRate"`
}

func DefaultSettings() Settings {
	return Settings{
		CompanyName:       "Your Company",
		CompanyEmail:      "billing@yourcompany.com",
		CompanyPhone:      "(555) 123-4567",
		DefaultHourlyRate: 150,
	}
}
