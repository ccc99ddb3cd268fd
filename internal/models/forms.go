package models

import "time"

// Forms are the structured data-entry contracts: a form goes in, a validated
// record or a validation error comes out.

type ClientForm struct {
	Name       string  `json:"name" validate:"required"`
	Company    string  `json:"company"`
	Email      string  `json:"email" validate:"email"`
	Phone      string  `json:"phone"`
	HourlyRate float64 `json:"hourlyRate" validate:"min:0"`
}

type MeetingForm struct {
	ClientID string    `json:"clientId" validate:"required"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	Duration int       `json:"duration" validate:"required|min:1"` // minutes
	Notes    string    `json:"notes"`
}

type InvoiceForm struct {
	ClientID     string `json:"clientId" validate:"required"`
	CutOffPeriod string `json:"cutOffPeriod"`
}

type PaymentForm struct {
	Method string `json:"method" validate:"required"`
	Notes  string `json:"notes"`
}

type NotificationForm struct {
	Type        string `json:"type" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Message     string `json:"message"`
	Priority    string `json:"priority"`
	RelatedID   string `json:"relatedId"`
	RelatedType string `json:"relatedType"`
}

type SettingsForm struct {
	CompanyName       string  `json:"companyName" validate:"required"`
	CompanyEmail      string  `json:"companyEmail" validate:"email"`
	CompanyPhone      string  `json:"companyPhone"`
	DefaultHourlyRate float64 `json:"defaultHourlyRate" validate:"min:0"`
}
