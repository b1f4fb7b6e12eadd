package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campus-tools/timetable-api/internal/dto"
	appErrors "github.com/campus-tools/timetable-api/pkg/errors"
	"github.com/campus-tools/timetable-api/pkg/response"
)

type courseService interface {
	Create(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseItem, error)
	List(ctx context.Context) ([]dto.CourseItem, error)
	Delete(ctx context.Context, position int) error
}

// CourseHandler exposes course management endpoints.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler builds a new handler.
func NewCourseHandler(service courseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List godoc
// @Summary List stored courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Save a course with its schedule text
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Delete godoc
// @Summary Delete the course at a list position
// @Tags Courses
// @Produce json
// @Param position path int true "Zero-based course position"
// @Success 204
// @Router /courses/{position} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "position must be an integer"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), position); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
