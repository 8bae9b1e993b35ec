package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"icisdportal/internal/delivery/http/helpers"
	"icisdportal/internal/domain"
)

// AccountListResponse is the response body for GET /admin/accounts.
type AccountListResponse struct {
	Accounts   []*domain.Account      `json:"accounts"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// AdminController exposes the administrative account tooling. Every route
// is gated by the X-Admin-Key header.
type AdminController struct {
	Logger *slog.Logger
	Store  domain.AccountStore
}

// NewAdminController creates an AdminController with the given logger and account store.
func NewAdminController(logger *slog.Logger, store domain.AccountStore) *AdminController {
	return &AdminController{
		Logger: logger,
		Store:  store,
	}
}

// ListAccounts godoc
// @Summary List accounts
// @Description Returns all accounts with passwords masked. Requires the X-Admin-Key header.
// @Tags admin
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains accounts and pagination"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/accounts [get]
func (c *AdminController) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := c.Store.ListAll(r.Context())
	params := helpers.ParsePagination(r)
	start, end := params.Slice(len(accounts))
	helpers.WriteJSONSuccess(w, http.StatusOK, AccountListResponse{
		Accounts:   accounts[start:end],
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, len(accounts)),
	})
}

// DeleteAccount godoc
// @Summary Delete an account
// @Description Removes the account with the given email. Requires the X-Admin-Key header.
// @Tags admin
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/accounts/{email} [delete]
func (c *AdminController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PathValue("email"))
	if email == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "email is required")
		return
	}
	if !c.Store.Delete(r.Context(), email) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "account not found")
		return
	}
	c.Logger.InfoContext(r.Context(), "account deleted", "email", email)
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Reset godoc
// @Summary Clear all accounts
// @Description Removes every account and the persisted collection. The fixture accounts are reseeded on the next initialization. Requires the X-Admin-Key header.
// @Tags admin
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/reset [post]
func (c *AdminController) Reset(w http.ResponseWriter, r *http.Request) {
	if err := c.Store.Reset(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	c.Logger.InfoContext(r.Context(), "account store reset")
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
