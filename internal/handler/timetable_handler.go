package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-tools/timetable-api/internal/dto"
	appErrors "github.com/campus-tools/timetable-api/pkg/errors"
	"github.com/campus-tools/timetable-api/pkg/response"
)

type timetableService interface {
	Week(ctx context.Context) (*dto.WeekResponse, error)
	Upcoming(ctx context.Context) (*dto.UpcomingItem, error)
	ModeActive(ctx context.Context) (bool, error)
	SetMode(ctx context.Context, active bool) error
}

type exportService interface {
	WeekCSV(ctx context.Context) ([]byte, string, error)
	WeekPDF(ctx context.Context) ([]byte, string, error)
}

// TimetableHandler exposes the weekly view, the upcoming class, exports and
// the Ramadan mode setting.
type TimetableHandler struct {
	service timetableService
	exports exportService
}

// NewTimetableHandler builds a new handler.
func NewTimetableHandler(service timetableService, exports exportService) *TimetableHandler {
	return &TimetableHandler{service: service, exports: exports}
}

// Week godoc
// @Summary Class blocks for the current week
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable/week [get]
func (h *TimetableHandler) Week(c *gin.Context) {
	week, err := h.service.Week(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, week)
}

// Upcoming godoc
// @Summary The next or ongoing class
// @Tags Timetable
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetable/upcoming [get]
func (h *TimetableHandler) Upcoming(c *gin.Context) {
	item, err := h.service.Upcoming(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	// A null payload is the valid "no upcoming class" outcome.
	response.JSON(c, http.StatusOK, item)
}

// Export godoc
// @Summary Download the current week as CSV or PDF
// @Tags Timetable
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /timetable/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are not enabled"))
		return
	}

	var (
		payload     []byte
		filename    string
		contentType string
		err         error
	)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		payload, filename, err = h.exports.WeekCSV(c.Request.Context())
		contentType = "text/csv"
	case "pdf":
		payload, filename, err = h.exports.WeekPDF(c.Request.Context())
		contentType = "application/pdf"
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

// Mode godoc
// @Summary Read the Ramadan mode flag
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/ramadan-mode [get]
func (h *TimetableHandler) Mode(c *gin.Context) {
	active, err := h.service.ModeActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ModeResponse{Active: active})
}

// UpdateMode godoc
// @Summary Toggle the Ramadan mode flag
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.UpdateModeRequest true "Mode payload"
// @Success 200 {object} response.Envelope
// @Router /settings/ramadan-mode [put]
func (h *TimetableHandler) UpdateMode(c *gin.Context) {
	var req dto.UpdateModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mode payload"))
		return
	}
	if req.Active == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "active is required"))
		return
	}

	if err := h.service.SetMode(c.Request.Context(), *req.Active); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ModeResponse{Active: *req.Active})
}
