package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"icisdportal/internal/delivery/http/helpers"
	"icisdportal/internal/delivery/http/middleware"
	"icisdportal/internal/domain"
)

// SubmitPaperRequest is the request body for POST /papers
type SubmitPaperRequest struct {
	Title    string `json:"title"`
	Authors  string `json:"authors"`
	Topic    string `json:"topic"`
	FileName string `json:"fileName"`
}

// Validate implements Validator.
func (s SubmitPaperRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(s.Authors) == "" {
		errs = append(errs, "authors is required")
	}
	if strings.TrimSpace(s.Topic) == "" {
		errs = append(errs, "topic is required")
	}
	if strings.TrimSpace(s.FileName) == "" {
		errs = append(errs, "fileName is required")
	}
	return errs
}

// PaperListResponse is the response body for GET /papers.
type PaperListResponse struct {
	Papers     []*domain.Submission   `json:"papers"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// PapersController handles paper submission endpoints.
type PapersController struct {
	Logger  *slog.Logger
	Service domain.SubmissionService
}

// NewPapersController creates a PapersController with the given logger and service.
func NewPapersController(logger *slog.Logger, svc domain.SubmissionService) *PapersController {
	return &PapersController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit a paper
// @Description Records a paper submission for the authenticated account. The topic must be one of the call-for-papers topics. The submission starts in "Under Review" status. Requires Bearer token.
// @Tags papers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitPaperRequest true "Submission data"
// @Success 201 {object} helpers.APIResponse "data contains the recorded submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /papers [post]
func (c *PapersController) Submit(w http.ResponseWriter, r *http.Request) {
	accountID, email, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req SubmitPaperRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Submit(r.Context(), accountID, email, domain.SubmissionInput{
		Title:    strings.TrimSpace(req.Title),
		Authors:  strings.TrimSpace(req.Authors),
		Topic:    strings.TrimSpace(req.Topic),
		FileName: strings.TrimSpace(req.FileName),
	})
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionInvalid) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "all submission fields are required")
			return
		}
		if errors.Is(err, domain.ErrUnknownTopic) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "topic is not in the call for papers")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sub)
}

// ListMine godoc
// @Summary List my submissions
// @Description Returns the authenticated account's paper submissions, newest page first by submission order. Requires Bearer token.
// @Tags papers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains papers and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /papers [get]
func (c *PapersController) ListMine(w http.ResponseWriter, r *http.Request) {
	accountID, _, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	subs, err := c.Service.ListByAccount(r.Context(), accountID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	params := helpers.ParsePagination(r)
	start, end := params.Slice(len(subs))
	helpers.WriteJSONSuccess(w, http.StatusOK, PaperListResponse{
		Papers:     subs[start:end],
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, len(subs)),
	})
}
