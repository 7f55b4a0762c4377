package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"futuresign-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	repo         domain.ContactRepository
	validate     *validator.Validate
	storeTimeout time.Duration
}

// NewContactUsecase creates a new contact usecase. storeTimeout bounds each
// persistence call so a stuck store cannot hang the request forever.
func NewContactUsecase(repo domain.ContactRepository, validate *validator.Validate, storeTimeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		repo:         repo,
		validate:     validate,
		storeTimeout: storeTimeout,
	}
}

// Submit validates the contact request and appends it to the store. Exactly
// one record is written per successful call; on any error no record exists.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.SubmitContactRequest) (*domain.ContactSubmission, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Service = strings.TrimSpace(req.Service)
	req.Message = strings.TrimSpace(req.Message)

	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPayload, validationMessage(err))
	}

	// Empty service is allowed (the form's "Select a Service" default), but a
	// non-empty value must name a catalog entry.
	if req.Service != "" && !domain.KnownService(req.Service) {
		return nil, fmt.Errorf("%w: unknown service %q", domain.ErrInvalidPayload, req.Service)
	}

	sub := &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save contact submission: %w", err)
	}

	return sub, nil
}

// List returns every stored submission, most recent first.
func (uc *contactUsecase) List(ctx context.Context) ([]domain.ContactSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	subs, err := uc.repo.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact submissions: %w", err)
	}
	return subs, nil
}

// validationMessage flattens validator errors into a short human-readable
// string ("Name is required; Email must be a valid email").
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var msgs []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
