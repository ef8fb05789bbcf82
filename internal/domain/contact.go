package domain

import (
	"context"
	"time"
)

type ContactFilter string

const (
	ContactFilterAll      ContactFilter = "all"
	ContactFilterUnread   ContactFilter = "unread"
	ContactFilterArchived ContactFilter = "archived"
)

// ParseContactFilter maps an empty value to ContactFilterAll.
func ParseContactFilter(s string) (ContactFilter, bool) {
	switch ContactFilter(s) {
	case "", ContactFilterAll:
		return ContactFilterAll, true
	case ContactFilterUnread:
		return ContactFilterUnread, true
	case ContactFilterArchived:
		return ContactFilterArchived, true
	}
	return "", false
}

// ContactSubmission is a visitor message. Submissions are not owner scoped.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,not_blank,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,not_blank,max=5000"`
}

type ContactCounts struct {
	All      int `json:"all"`
	Unread   int `json:"unread"`
	Archived int `json:"archived"`
}

type ContactList struct {
	Filter      ContactFilter       `json:"filter"`
	Submissions []ContactSubmission `json:"submissions"`
	Counts      ContactCounts       `json:"counts"`
}

// ContactExport is a rendered download of the inbox.
type ContactExport struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ContactRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) error
	List(ctx context.Context, filter ContactFilter) ([]ContactSubmission, error)
	Counts(ctx context.Context) (ContactCounts, error)
	MarkRead(ctx context.Context, id string) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
}

type ContactUsecase interface {
	SubmitContact(ctx context.Context, req *ContactRequest) error
	ListContacts(ctx context.Context, filter ContactFilter) (*ContactList, error)
	MarkContactRead(ctx context.Context, id string) error
	ArchiveContact(ctx context.Context, id string, archived bool) error
	DeleteContact(ctx context.Context, id string) error
	ExportContacts(ctx context.Context, format string) (*ContactExport, error)
}
