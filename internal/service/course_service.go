package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campus-tools/timetable-api/internal/dto"
	"github.com/campus-tools/timetable-api/internal/models"
	"github.com/campus-tools/timetable-api/internal/timetable"
	appErrors "github.com/campus-tools/timetable-api/pkg/errors"
)

type courseStore interface {
	Load(ctx context.Context) ([]models.Course, error)
	ReplaceAll(ctx context.Context, courses []models.Course) error
}

type projectionInvalidator interface {
	Delete(ctx context.Context, pattern string) error
}

// CourseService manages the stored course list. Every mutation is a full
// read-modify-replace of the single persisted document; deletion is a
// positional splice, so positions held by callers are stale after any delete.
type CourseService struct {
	repo      courseStore
	cache     projectionInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService instantiates CourseService.
func NewCourseService(repo courseStore, cache projectionInvalidator, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create parses the schedule text and appends the resulting course. A text
// with no recognizable entries still saves the course with an empty meeting
// list; that is the parser's permissive contract, not a failure.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	meetings := timetable.ParseScheduleString(req.ScheduleText)
	if len(meetings) == 0 {
		s.logger.Warn("schedule text produced no meetings", zap.String("course", req.Name))
	}

	course := models.Course{
		Name:     req.Name,
		Lecturer: req.Lecturer,
		Classes:  meetings,
	}

	courses, err := s.repo.Load(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}

	courses = append(courses, course)
	if err := s.repo.ReplaceAll(ctx, courses); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save course")
	}

	s.invalidateProjections(ctx)

	item := courseItem(len(courses)-1, course)
	return &item, nil
}

// List returns all stored courses in insertion order.
func (s *CourseService) List(ctx context.Context) ([]dto.CourseItem, error) {
	courses, err := s.repo.Load(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}

	items := make([]dto.CourseItem, 0, len(courses))
	for i, course := range courses {
		items = append(items, courseItem(i, course))
	}
	return items, nil
}

// Delete removes the course at the given position and shifts the remainder
// down by one.
func (s *CourseService) Delete(ctx context.Context, position int) error {
	courses, err := s.repo.Load(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}

	if position < 0 || position >= len(courses) {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}

	courses = append(courses[:position], courses[position+1:]...)
	if err := s.repo.ReplaceAll(ctx, courses); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}

	s.invalidateProjections(ctx)
	return nil
}

func (s *CourseService) invalidateProjections(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, "timetable:*"); err != nil {
		s.logger.Warn("failed to invalidate timetable cache", zap.Error(err))
	}
}

func courseItem(position int, course models.Course) dto.CourseItem {
	return dto.CourseItem{
		Position: position,
		Name:     course.Name,
		Lecturer: course.Lecturer,
		Classes:  course.Classes,
		Color:    models.CourseColors[position%len(models.CourseColors)],
	}
}
