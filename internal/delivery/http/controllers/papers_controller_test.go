package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"icisdportal/internal/delivery/http/helpers"
	"icisdportal/internal/delivery/http/middleware"
	"icisdportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmissionService implements domain.SubmissionService for handler tests.
type fakeSubmissionService struct {
	submitOut *domain.Submission
	submitErr error
	listOut   []*domain.Submission
	listErr   error

	lastAccountID string
	lastEmail     string
}

func (f *fakeSubmissionService) Submit(ctx context.Context, accountID, email string, in domain.SubmissionInput) (*domain.Submission, error) {
	f.lastAccountID = accountID
	f.lastEmail = email
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitOut, nil
}

func (f *fakeSubmissionService) ListByAccount(ctx context.Context, accountID string) ([]*domain.Submission, error) {
	f.lastAccountID = accountID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func TestPapersController_Submit(t *testing.T) {
	sub := &domain.Submission{
		ID:          "sub-1",
		AccountID:   "user-1",
		Email:       "user@example.com",
		Title:       "Edge Inference at Scale",
		Authors:     "A. Author",
		Topic:       "Machine Learning",
		FileName:    "paper.pdf",
		Status:      domain.SubmissionStatusUnderReview,
		SubmittedAt: time.Now(),
	}

	tests := []struct {
		name         string
		contextID    string
		body         string
		fakeErr      error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success",
			contextID:  "user-1",
			body:       `{"title":"Edge Inference at Scale","authors":"A. Author","topic":"Machine Learning","fileName":"paper.pdf"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:         "no identity in context",
			contextID:    "",
			body:         `{"title":"T","authors":"A","topic":"Machine Learning","fileName":"p.pdf"}`,
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "missing fields",
			contextID:    "user-1",
			body:         `{"title":"T"}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "unknown topic",
			contextID:    "user-1",
			body:         `{"title":"T","authors":"A","topic":"Basket Weaving","fileName":"p.pdf"}`,
			fakeErr:      domain.ErrUnknownTopic,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "storage failure",
			contextID:    "user-1",
			body:         `{"title":"T","authors":"A","topic":"Machine Learning","fileName":"p.pdf"}`,
			fakeErr:      assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSubmissionService{submitOut: sub, submitErr: tt.fakeErr}
			ctrl := NewPapersController(discardLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/papers", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.contextID != "" {
				req = req.WithContext(middleware.SetAccount(req.Context(), tt.contextID, "user@example.com"))
			}
			rr := httptest.NewRecorder()

			ctrl.Submit(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				assert.Equal(t, "user-1", fake.lastAccountID)
				assert.Equal(t, "user@example.com", fake.lastEmail)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var got domain.Submission
				require.NoError(t, json.Unmarshal(dataBytes, &got))
				assert.Equal(t, "sub-1", got.ID)
				assert.Equal(t, domain.SubmissionStatusUnderReview, got.Status)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
		})
	}
}

func TestPapersController_ListMine(t *testing.T) {
	var subs []*domain.Submission
	for i := 0; i < 25; i++ {
		subs = append(subs, &domain.Submission{
			ID:        fmt.Sprintf("sub-%d", i),
			AccountID: "user-1",
			Title:     fmt.Sprintf("Paper %d", i),
		})
	}

	tests := []struct {
		name       string
		contextID  string
		query      string
		listOut    []*domain.Submission
		listErr    error
		wantStatus int
		wantCount  int
		wantTotal  int
	}{
		{
			name:       "first page default size",
			contextID:  "user-1",
			listOut:    subs,
			wantStatus: http.StatusOK,
			wantCount:  20,
			wantTotal:  25,
		},
		{
			name:       "second page",
			contextID:  "user-1",
			query:      "?page=2&page_size=20",
			listOut:    subs,
			wantStatus: http.StatusOK,
			wantCount:  5,
			wantTotal:  25,
		},
		{
			name:       "empty list",
			contextID:  "user-1",
			listOut:    []*domain.Submission{},
			wantStatus: http.StatusOK,
			wantCount:  0,
			wantTotal:  0,
		},
		{
			name:       "no identity in context",
			contextID:  "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "service error",
			contextID:  "user-1",
			listErr:    assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSubmissionService{listOut: tt.listOut, listErr: tt.listErr}
			ctrl := NewPapersController(discardLogger(), fake)
			req := httptest.NewRequest(http.MethodGet, "http://test/papers"+tt.query, nil)
			if tt.contextID != "" {
				req = req.WithContext(middleware.SetAccount(req.Context(), tt.contextID, "user@example.com"))
			}
			rr := httptest.NewRecorder()

			ctrl.ListMine(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.Nil(t, envelope.Error)
			dataBytes, err := json.Marshal(envelope.Data)
			require.NoError(t, err)
			var resp PaperListResponse
			require.NoError(t, json.Unmarshal(dataBytes, &resp))
			assert.Len(t, resp.Papers, tt.wantCount)
			assert.Equal(t, tt.wantTotal, resp.Pagination.Total)
		})
	}
}
