package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/kalyondo/guardianre-website/internal/model"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
)

type SubmissionRepository interface {
	Create(sub *model.Submission) error
	ByID(id string) (*model.Submission, error)
}

type submissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(sub *model.Submission) error {
	query := `
		INSERT INTO submissions (
			id, name, email, subject, message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(
		query,
		sub.ID,
		sub.Name,
		sub.Email,
		sub.Subject,
		sub.Message,
		sub.CreatedAt,
	)

	return err
}

func (r *submissionRepository) ByID(id string) (*model.Submission, error) {
	sub := &model.Submission{}
	query := `SELECT * FROM submissions WHERE id = $1`

	err := r.db.Get(sub, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}

	return sub, nil
}
