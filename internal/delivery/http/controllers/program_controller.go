package controllers

import (
	"log/slog"
	"net/http"

	"icisdportal/internal/delivery/http/helpers"
	"icisdportal/internal/domain"
)

// ProgramController serves the read-only conference program content.
type ProgramController struct {
	Logger  *slog.Logger
	Content domain.ContentProvider
}

// NewProgramController creates a ProgramController with the given logger and content provider.
func NewProgramController(logger *slog.Logger, content domain.ContentProvider) *ProgramController {
	return &ProgramController{
		Logger:  logger,
		Content: content,
	}
}

// About godoc
// @Summary Conference overview
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the conference overview"
// @Router /program/about [get]
func (c *ProgramController) About(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.About())
}

// Dates godoc
// @Summary Important dates
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the important dates"
// @Router /program/dates [get]
func (c *ProgramController) Dates(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.Dates())
}

// Speakers godoc
// @Summary Keynote speakers
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the keynote speakers"
// @Router /program/speakers [get]
func (c *ProgramController) Speakers(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.Speakers())
}

// Committees godoc
// @Summary Conference committees
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the committee rosters"
// @Router /program/committee [get]
func (c *ProgramController) Committees(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.Committees())
}

// Fees godoc
// @Summary Registration fees
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the fee categories"
// @Router /program/fees [get]
func (c *ProgramController) Fees(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.Fees())
}

// Schedule godoc
// @Summary Conference schedule
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the day-by-day schedule"
// @Router /program/schedule [get]
func (c *ProgramController) Schedule(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.Schedule())
}

// Venue godoc
// @Summary Venue and travel
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the venue details"
// @Router /program/venue [get]
func (c *ProgramController) Venue(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.Venue())
}

// Topics godoc
// @Summary Call-for-papers topics
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the topic list"
// @Router /program/topics [get]
func (c *ProgramController) Topics(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.Topics())
}
