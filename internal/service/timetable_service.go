package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campus-tools/timetable-api/internal/dto"
	"github.com/campus-tools/timetable-api/internal/models"
	"github.com/campus-tools/timetable-api/internal/timetable"
	appErrors "github.com/campus-tools/timetable-api/pkg/errors"
)

type timetableCourseReader interface {
	Load(ctx context.Context) ([]models.Course, error)
}

type modeStore interface {
	Active(ctx context.Context) (bool, error)
	SetActive(ctx context.Context, active bool) error
}

type timetableCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, pattern string) error
}

type cacheObserver interface {
	RecordCacheOperation(hit bool, duration time.Duration)
}

// TimetableService derives the week view and the upcoming class from the
// stored courses under the configured week convention, compressing slots when
// Ramadan mode is active. The week projection is cached per week start and
// mode; any course or mode mutation invalidates it.
type TimetableService struct {
	courses    timetableCourseReader
	mode       modeStore
	cache      timetableCache
	metrics    cacheObserver
	convention timetable.Convention
	cacheTTL   time.Duration
	logger     *zap.Logger

	// now is swapped in tests for deterministic instants.
	now func() time.Time
}

// NewTimetableService instantiates TimetableService.
func NewTimetableService(courses timetableCourseReader, mode modeStore, cache timetableCache, metrics cacheObserver, convention timetable.Convention, cacheTTL time.Duration, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		courses:    courses,
		mode:       mode,
		cache:      cache,
		metrics:    metrics,
		convention: convention,
		cacheTTL:   cacheTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Week returns the current week's class blocks.
func (s *TimetableService) Week(ctx context.Context) (*dto.WeekResponse, error) {
	now := s.now()
	ramadan, err := s.modeActive(ctx)
	if err != nil {
		return nil, err
	}

	bounds := s.convention.WeekBounds(now)
	cacheKey := fmt.Sprintf("timetable:week:%s:%s:ramadan=%t", s.convention.Name, bounds.Start.Format("2006-01-02"), ramadan)

	if s.cache != nil {
		start := time.Now()
		var cached dto.WeekResponse
		err := s.cache.Get(ctx, cacheKey, &cached)
		s.observeCache(err == nil, time.Since(start))
		if err == nil {
			return &cached, nil
		}
		if appErrors.FromError(err).Code != appErrors.ErrCacheMiss.Code {
			s.logger.Warn("timetable cache read failed", zap.Error(err))
		}
	}

	blocks, err := s.projectWeek(ctx, now, ramadan)
	if err != nil {
		return nil, err
	}

	response := &dto.WeekResponse{
		WeekStart:   bounds.Start.Format("2006-01-02"),
		WeekEnd:     bounds.End.Format("2006-01-02"),
		Convention:  s.convention.Name,
		RamadanMode: ramadan,
		Blocks:      blockItems(blocks),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, response, s.cacheTTL); err != nil {
			s.logger.Warn("timetable cache write failed", zap.Error(err))
		}
	}

	return response, nil
}

// Upcoming returns the next or ongoing class, or nil when the week holds
// nothing selectable; a nil result is a meaningful outcome, not an error.
func (s *TimetableService) Upcoming(ctx context.Context) (*dto.UpcomingItem, error) {
	now := s.now()
	ramadan, err := s.modeActive(ctx)
	if err != nil {
		return nil, err
	}

	blocks, err := s.projectWeek(ctx, now, ramadan)
	if err != nil {
		return nil, err
	}

	selected := s.convention.SelectUpcoming(blocks, now)
	if selected == nil {
		return nil, nil
	}

	item := &dto.UpcomingItem{
		ClassBlockItem: blockItem(selected.ClassBlock),
		Ongoing:        selected.Ongoing,
	}
	return item, nil
}

// ModeActive reports the persisted Ramadan mode flag.
func (s *TimetableService) ModeActive(ctx context.Context) (bool, error) {
	return s.modeActive(ctx)
}

// SetMode stores the Ramadan mode flag and drops cached projections so the
// change applies to the next query.
func (s *TimetableService) SetMode(ctx context.Context, active bool) error {
	if err := s.mode.SetActive(ctx, active); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store ramadan mode")
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, "timetable:*"); err != nil {
			s.logger.Warn("failed to invalidate timetable cache", zap.Error(err))
		}
	}
	return nil
}

func (s *TimetableService) modeActive(ctx context.Context) (bool, error) {
	active, err := s.mode.Active(ctx)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load ramadan mode")
	}
	return active, nil
}

func (s *TimetableService) projectWeek(ctx context.Context, now time.Time, ramadan bool) ([]timetable.ClassBlock, error) {
	courses, err := s.courses.Load(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	return s.convention.Project(courses, now, ramadan), nil
}

func (s *TimetableService) observeCache(hit bool, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordCacheOperation(hit, duration)
	}
}

func blockItems(blocks []timetable.ClassBlock) []dto.ClassBlockItem {
	items := make([]dto.ClassBlockItem, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, blockItem(block))
	}
	return items
}

func blockItem(block timetable.ClassBlock) dto.ClassBlockItem {
	return dto.ClassBlockItem{
		CourseName:  block.CourseName,
		Lecturer:    block.Lecturer,
		Day:         block.Day,
		StartHour:   block.StartHour,
		StartMinute: block.StartMinute,
		EndHour:     block.EndHour,
		EndMinute:   block.EndMinute,
		StartLabel:  timetable.FormatClock12(timetable.Clock{Hour: block.StartHour, Minute: block.StartMinute}),
		EndLabel:    timetable.FormatClock12(timetable.Clock{Hour: block.EndHour, Minute: block.EndMinute}),
		Room:        block.Room,
		ColorIndex:  block.ColorIndex,
		Color:       models.CourseColors[block.ColorIndex%len(models.CourseColors)],
	}
}
