package domain

import (
	"context"
	"time"
)

type Certification struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Issuer        string    `json:"issuer"`
	IssuedDate    *Date     `json:"issued_date"`
	CredentialURL *string   `json:"credential_url"`
	CreatedAt     time.Time `json:"created_at"`
}

type CertificationInput struct {
	Title         string  `json:"title" validate:"required,not_blank,max=200"`
	Issuer        string  `json:"issuer" validate:"required,not_blank,max=200"`
	IssuedDate    *Date   `json:"issued_date"`
	CredentialURL *string `json:"credential_url" validate:"omitempty,url"`
}

type CertificationRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]Certification, error)
	ListAll(ctx context.Context) ([]Certification, error)
	Create(ctx context.Context, cert *Certification) error
	Update(ctx context.Context, cert *Certification) error
	Delete(ctx context.Context, id, userID string) error
}

type CertificationUsecase interface {
	ListCertifications(ctx context.Context) ([]Certification, error)
	CreateCertification(ctx context.Context, input *CertificationInput) (*Certification, error)
	UpdateCertification(ctx context.Context, id string, input *CertificationInput) error
	DeleteCertification(ctx context.Context, id string) error
}
