package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kalyondo/guardianre-website/internal/metric"
	"github.com/kalyondo/guardianre-website/internal/model"
	"github.com/kalyondo/guardianre-website/internal/repository"
)

// ContactService accepts validated contact form submissions: persist,
// then notify. A failed notification email is logged but does not fail
// the submission, the record is already safe in the database.
type ContactService struct {
	repo  repository.SubmissionRepository
	email *EmailService
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func NewContactService(repo repository.SubmissionRepository, email *EmailService) *ContactService {
	return &ContactService{
		repo:  repo,
		email: email,
	}
}

func (s *ContactService) Submit(req ContactRequest) (*model.Submission, error) {
	sub := &model.Submission{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(sub); err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}

	metric.CountContactSubmission()

	if err := s.email.SendContactNotification(sub); err != nil {
		slog.Error("contact notification failed, submission kept", "id", sub.ID, "error", err)
	}

	return sub, nil
}
