package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBoundsMondayConvention(t *testing.T) {
	// Wednesday, February 25th 2026.
	now := time.Date(2026, time.February, 25, 15, 30, 0, 0, time.UTC)
	bounds := MondayConvention.WeekBounds(now)

	assert.Equal(t, time.Date(2026, time.February, 23, 0, 0, 0, 0, time.UTC), bounds.Start)
	assert.Equal(t, time.Date(2026, time.March, 1, 23, 59, 59, int(999*time.Millisecond), time.UTC), bounds.End)
}

func TestWeekBoundsSundayConvention(t *testing.T) {
	now := time.Date(2026, time.February, 25, 15, 30, 0, 0, time.UTC)
	bounds := SundayConvention.WeekBounds(now)

	assert.Equal(t, time.Date(2026, time.February, 22, 0, 0, 0, 0, time.UTC), bounds.Start)
	assert.Equal(t, time.Date(2026, time.February, 28, 23, 59, 59, int(999*time.Millisecond), time.UTC), bounds.End)
}

func TestWeekBoundsOnWeekStartDay(t *testing.T) {
	// A Monday maps to itself as the week start.
	now := time.Date(2026, time.February, 23, 0, 0, 0, 0, time.UTC)
	bounds := MondayConvention.WeekBounds(now)
	assert.Equal(t, now, bounds.Start)
}

func TestWeekBoundsAcrossYearEdge(t *testing.T) {
	// Thursday, January 1st 2026: the week began Monday December 29th 2025.
	now := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)
	bounds := MondayConvention.WeekBounds(now)

	assert.Equal(t, time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC), bounds.Start)
	assert.Equal(t, time.Date(2026, time.January, 4, 23, 59, 59, int(999*time.Millisecond), time.UTC), bounds.End)
}

func TestWeekBoundsContains(t *testing.T) {
	now := time.Date(2026, time.February, 25, 12, 0, 0, 0, time.UTC)
	bounds := MondayConvention.WeekBounds(now)

	assert.True(t, bounds.Contains(bounds.Start))
	assert.True(t, bounds.Contains(bounds.End))
	assert.False(t, bounds.Contains(bounds.Start.Add(-time.Millisecond)))
	assert.False(t, bounds.Contains(bounds.End.Add(time.Millisecond)))
}

func TestConventionDayOrder(t *testing.T) {
	assert.Equal(t, [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, MondayConvention.DayOrder())
	assert.Equal(t, [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, SundayConvention.DayOrder())

	assert.Equal(t, 0, MondayConvention.DayIndex("Mon"))
	assert.Equal(t, 6, MondayConvention.DayIndex("Sun"))
	assert.Equal(t, -1, MondayConvention.DayIndex("Xyz"))
}

func TestConventionByName(t *testing.T) {
	assert.Equal(t, SundayConvention, ConventionByName("sunday"))
	assert.Equal(t, MondayConvention, ConventionByName("monday"))
	assert.Equal(t, MondayConvention, ConventionByName(""))
	assert.Equal(t, MondayConvention, ConventionByName("friday"))
}
