package postgres

import (
	"context"

	"futuresign-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

// Create appends a submission row. The database assigns id and created_at;
// both are scanned back into sub so the caller can echo the stored record.
func (r *contactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (name, email, phone, service, message)
              VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		sub.Name, sub.Email, sub.Phone, sub.Service, sub.Message,
	).Scan(&sub.ID, &sub.CreatedAt)
}

func (r *contactRepo) Fetch(ctx context.Context) ([]domain.ContactSubmission, error) {
	query := `SELECT id, name, email, phone, service, message, created_at
              FROM contact_submissions ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.ContactSubmission
	for rows.Next() {
		var sub domain.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Service, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
