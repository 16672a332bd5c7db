package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalyondo/guardianre-website/internal/model"
	"github.com/kalyondo/guardianre-website/internal/repository"
)

type stubSubmissionRepo struct {
	created []*model.Submission
	err     error
}

func (r *stubSubmissionRepo) Create(sub *model.Submission) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, sub)
	return nil
}

func (r *stubSubmissionRepo) ByID(id string) (*model.Submission, error) {
	for _, sub := range r.created {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, repository.ErrSubmissionNotFound
}

func devEmailService() *EmailService {
	return NewEmailService("", "noreply@guardianre.test", "info@guardianre.test", "", "Guardian Re", true)
}

func TestSubmitPersistsTrimmedSubmission(t *testing.T) {
	repo := &stubSubmissionRepo{}
	svc := NewContactService(repo, devEmailService())

	sub, err := svc.Submit(ContactRequest{
		Name:    "  Amina Okoro  ",
		Email:   " amina@example.com ",
		Subject: " Facultative cover ",
		Message: "  We would like a quote for our property program.  ",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, sub, repo.created[0])
	assert.Equal(t, "Amina Okoro", sub.Name)
	assert.Equal(t, "amina@example.com", sub.Email)
	assert.Equal(t, "Facultative cover", sub.Subject)
	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestSubmitAssignsUniqueIDs(t *testing.T) {
	repo := &stubSubmissionRepo{}
	svc := NewContactService(repo, devEmailService())

	first, err := svc.Submit(ContactRequest{Name: "A", Email: "a@example.com", Message: "first message body"})
	require.NoError(t, err)
	second, err := svc.Submit(ContactRequest{Name: "B", Email: "b@example.com", Message: "second message body"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := &stubSubmissionRepo{err: errors.New("disk full")}
	svc := NewContactService(repo, devEmailService())

	_, err := svc.Submit(ContactRequest{
		Name:    "Amina",
		Email:   "amina@example.com",
		Message: "a long enough message",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store submission")
	assert.Empty(t, repo.created)
}
