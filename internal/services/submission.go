package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"icisdportal/internal/domain"
)

type submissionService struct {
	docs    domain.DocumentStore
	content domain.ContentProvider
	email   domain.EmailService
	logger  *slog.Logger
	now     func() time.Time

	mu sync.Mutex
}

// NewSubmissionService creates a SubmissionService. The content provider
// supplies the call-for-papers topic list used for validation; the email
// service, when non-nil, sends a receipt for each accepted submission.
func NewSubmissionService(docs domain.DocumentStore, content domain.ContentProvider, email domain.EmailService, logger *slog.Logger) domain.SubmissionService {
	return &submissionService{
		docs:    docs,
		content: content,
		email:   email,
		logger:  logger,
		now:     time.Now,
	}
}

// loadAll reads the submissions document. A missing or corrupt document is
// an empty list. Caller holds the lock.
func (s *submissionService) loadAll(ctx context.Context) []*domain.Submission {
	doc, err := s.docs.Load(ctx, domain.SubmissionsKey)
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			s.logger.Error("loading submissions", "err", err)
		}
		return nil
	}
	var subs []*domain.Submission
	if err := json.Unmarshal(doc, &subs); err != nil {
		s.logger.Error("submissions document is corrupt, starting empty", "err", err)
		return nil
	}
	return subs
}

func (s *submissionService) Submit(ctx context.Context, accountID, email string, in domain.SubmissionInput) (*domain.Submission, error) {
	if in.Title == "" || in.Authors == "" || in.Topic == "" || in.FileName == "" {
		return nil, domain.ErrSubmissionInvalid
	}
	valid := false
	for _, t := range s.content.Topics() {
		if t == in.Topic {
			valid = true
			break
		}
	}
	if !valid {
		return nil, domain.ErrUnknownTopic
	}

	sub := &domain.Submission{
		ID:          "sub-" + uuid.NewString(),
		AccountID:   accountID,
		Email:       email,
		Title:       in.Title,
		Authors:     in.Authors,
		Topic:       in.Topic,
		FileName:    in.FileName,
		Status:      domain.SubmissionStatusUnderReview,
		SubmittedAt: s.now(),
	}

	s.mu.Lock()
	subs := append(s.loadAll(ctx), sub)
	doc, err := json.Marshal(subs)
	if err == nil {
		err = s.docs.Save(ctx, domain.SubmissionsKey, doc)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("saving submission: %w", err)
	}

	if s.email != nil {
		data := &domain.SubmissionReceiptData{
			Email:    email,
			Name:     in.Authors,
			Title:    in.Title,
			Topic:    in.Topic,
			FileName: in.FileName,
		}
		// Receipt delivery is best-effort; the submission is already saved.
		if err := s.email.SendSubmissionReceipt(ctx, data); err != nil {
			s.logger.Error("sending submission receipt", "email", email, "err", err)
		}
	}

	cp := *sub
	return &cp, nil
}

func (s *submissionService) ListByAccount(ctx context.Context, accountID string) ([]*domain.Submission, error) {
	s.mu.Lock()
	subs := s.loadAll(ctx)
	s.mu.Unlock()

	out := []*domain.Submission{}
	for _, sub := range subs {
		if sub.AccountID == accountID {
			cp := *sub
			out = append(out, &cp)
		}
	}
	return out, nil
}
