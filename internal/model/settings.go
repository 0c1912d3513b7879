package model

import "time"

// SiteSettings is the backend's singleton contact record.
type SiteSettings struct {
	WhatsAppNumber     string    `json:"whatsapp_number"`
	ContactEmail       string    `json:"contact_email"`
	ContactPhone       string    `json:"contact_phone"`
	ContactAddress     string    `json:"contact_address"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	UpdatedAt          time.Time `json:"updated_at"`
}
