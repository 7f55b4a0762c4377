package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidPayload marks a submission rejected before it reaches storage.
// Handlers map it to HTTP 400.
var ErrInvalidPayload = errors.New("invalid payload")

// ContactSubmission is one persisted contact-form entry. ID and CreatedAt are
// assigned by the store at insert time and never change; submissions are never
// updated or deleted.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmitContactRequest represents a contact form submission
type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Service string `json:"service"`
	Message string `json:"message" validate:"required"`
}

// ContactRepository defines the persistence interface for submissions.
// The store is append-only: there is no update or delete.
type ContactRepository interface {
	// Create appends a new submission and populates sub.ID and sub.CreatedAt.
	Create(ctx context.Context, sub *ContactSubmission) error
	// Fetch returns all submissions ordered newest-first.
	Fetch(ctx context.Context) ([]ContactSubmission, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates and persists a contact form submission.
	Submit(ctx context.Context, req *SubmitContactRequest) (*ContactSubmission, error)
	// List returns every stored submission, most recent first.
	List(ctx context.Context) ([]ContactSubmission, error)
}
