package dto

import (
	"strings"
	"time"
)

// Input is the contact form. Lengths are counted in characters after trimming.
type Input struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"required,min=8,max=20"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (in Input) Trimmed() Input {
	return Input{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}
}

// Submission is what a sink delivers.
type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	Locale      string    `json:"locale"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

// Receipt tells the client what to show and whether to clear the form.
type Receipt struct {
	ID           string       `json:"id"`
	Notification Notification `json:"notification"`
	Reset        bool         `json:"reset"`
}
