package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-tools/timetable-api/internal/dto"
	"github.com/campus-tools/timetable-api/internal/models"
	"github.com/campus-tools/timetable-api/internal/timetable"
)

// Monday, February 23rd 2026, 08:30.
var fixedNow = time.Date(2026, time.February, 23, 8, 30, 0, 0, time.UTC)

func newTimetableService(store *courseStoreStub, mode *modeStoreStub, cache *cacheStub) *TimetableService {
	var tc timetableCache
	if cache != nil {
		tc = cache
	}
	svc := NewTimetableService(store, mode, tc, nil, timetable.MondayConvention, 5*time.Minute, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestTimetableServiceUpcomingEndToEnd(t *testing.T) {
	store := &courseStoreStub{}
	courses := NewCourseService(store, nil, validator.New(), nil)

	_, err := courses.Create(context.Background(), dto.CreateCourseRequest{
		Name:         "Algorithms",
		Lecturer:     "Dr. X",
		ScheduleText: "Mon(02/23/2026) 08:00:00 - 10:00:00 Block-A 101",
	})
	require.NoError(t, err)

	svc := newTimetableService(store, &modeStoreStub{}, nil)
	got, err := svc.Upcoming(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Ongoing)
	assert.Equal(t, "Algorithms", got.CourseName)
	assert.Equal(t, "Dr. X", got.Lecturer)
	assert.Equal(t, "Block-A 101", got.Room)
	assert.Equal(t, "8:00 AM", got.StartLabel)
}

func TestTimetableServiceUpcomingNone(t *testing.T) {
	svc := newTimetableService(&courseStoreStub{}, &modeStoreStub{}, nil)
	got, err := svc.Upcoming(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTimetableServiceWeek(t *testing.T) {
	store := &courseStoreStub{courses: []models.Course{{
		Name:     "Calculus",
		Lecturer: "Dr. Y",
		Classes: []models.ClassMeeting{
			{Day: "Tue", Time: "10:00:00 - 12:00:00", Room: "Block-B 2"},
		},
	}}}

	svc := newTimetableService(store, &modeStoreStub{}, nil)
	week, err := svc.Week(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-02-23", week.WeekStart)
	assert.Equal(t, "2026-03-01", week.WeekEnd)
	assert.Equal(t, "monday", week.Convention)
	assert.False(t, week.RamadanMode)
	require.Len(t, week.Blocks, 1)
	assert.Equal(t, "10:00 AM", week.Blocks[0].StartLabel)
	assert.Equal(t, models.CourseColors[0], week.Blocks[0].Color)
}

func TestTimetableServiceWeekRamadanCompression(t *testing.T) {
	store := &courseStoreStub{courses: []models.Course{{
		Name: "Fiqh",
		Classes: []models.ClassMeeting{
			{Day: "Wed", Time: "10:00:00 - 12:00:00", Room: "Hall-2 5"},
		},
	}}}

	svc := newTimetableService(store, &modeStoreStub{active: true}, nil)
	week, err := svc.Week(context.Background())
	require.NoError(t, err)
	assert.True(t, week.RamadanMode)
	require.Len(t, week.Blocks, 1)
	assert.Equal(t, 9, week.Blocks[0].StartHour)
	assert.Equal(t, 15, week.Blocks[0].StartMinute)
	assert.Equal(t, "9:15 AM", week.Blocks[0].StartLabel)
	assert.Equal(t, "10:30 AM", week.Blocks[0].EndLabel)
}

func TestTimetableServiceWeekWritesCache(t *testing.T) {
	cache := &cacheStub{}
	svc := newTimetableService(&courseStoreStub{}, &modeStoreStub{}, cache)

	_, err := svc.Week(context.Background())
	require.NoError(t, err)
	require.Len(t, cache.setKeys, 1)
	assert.Equal(t, "timetable:week:monday:2026-02-23:ramadan=false", cache.setKeys[0])
	assert.Equal(t, 5*time.Minute, cache.writeTTL)
}

func TestTimetableServiceSetModeInvalidatesCache(t *testing.T) {
	cache := &cacheStub{}
	mode := &modeStoreStub{}
	svc := newTimetableService(&courseStoreStub{}, mode, cache)

	require.NoError(t, svc.SetMode(context.Background(), true))
	assert.True(t, mode.active)
	assert.Equal(t, []string{"timetable:*"}, cache.deleted)

	active, err := svc.ModeActive(context.Background())
	require.NoError(t, err)
	assert.True(t, active)
}

func TestTimetableServiceModeDefaultsOff(t *testing.T) {
	svc := newTimetableService(&courseStoreStub{}, &modeStoreStub{}, nil)
	active, err := svc.ModeActive(context.Background())
	require.NoError(t, err)
	assert.False(t, active)
}
