// Package timetable implements the schedule normalization and temporal
// resolution engine: parsing free-text schedule strings, resolving week
// bounds under a configurable convention, projecting stored courses onto the
// current week and selecting the next or ongoing class. Everything here is a
// pure function of its inputs; persistence and caching live in the service
// layer.
package timetable

import (
	"time"

	"github.com/campus-tools/timetable-api/internal/models"
)

// dayTokens lists short weekday tokens indexed by time.Weekday.
var dayTokens = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Convention fixes the week cycle: which day opens the week and which
// weekday tokens count as recurring working days for undated meetings.
type Convention struct {
	Name      string
	WeekStart time.Weekday
	Recurring []string
}

var (
	// MondayConvention runs Monday through Sunday with a Mon-Fri working week.
	MondayConvention = Convention{
		Name:      "monday",
		WeekStart: time.Monday,
		Recurring: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
	}
	// SundayConvention runs Sunday through Saturday with a Sun-Thu working week.
	SundayConvention = Convention{
		Name:      "sunday",
		WeekStart: time.Sunday,
		Recurring: []string{"Sun", "Mon", "Tue", "Wed", "Thu"},
	}
)

// ConventionByName resolves a configured convention name, defaulting to
// Monday start for unrecognized values.
func ConventionByName(name string) Convention {
	if name == SundayConvention.Name {
		return SundayConvention
	}
	return MondayConvention
}

// DayOrder returns the 7-day token cycle beginning at the week start.
func (c Convention) DayOrder() [7]string {
	var order [7]string
	for i := 0; i < 7; i++ {
		order[i] = dayTokens[(int(c.WeekStart)+i)%7]
	}
	return order
}

// DayIndex returns the position of a weekday token within the cycle, or -1
// when the token is not a known weekday.
func (c Convention) DayIndex(token string) int {
	order := c.DayOrder()
	for i, day := range order {
		if day == token {
			return i
		}
	}
	return -1
}

// IsRecurring reports whether the token belongs to the recurring working-day
// set used for undated meetings.
func (c Convention) IsRecurring(token string) bool {
	for _, day := range c.Recurring {
		if day == token {
			return true
		}
	}
	return false
}

// ClassBlock is one projected class occurrence within the current week.
// Times are post-compression when Ramadan mode is active. ColorIndex is the
// course's position in the stored list modulo the palette size.
type ClassBlock struct {
	CourseName  string `json:"course_name"`
	Lecturer    string `json:"lecturer"`
	Day         string `json:"day"`
	StartHour   int    `json:"start_hour"`
	StartMinute int    `json:"start_minute"`
	EndHour     int    `json:"end_hour"`
	EndMinute   int    `json:"end_minute"`
	Room        string `json:"room"`
	ColorIndex  int    `json:"color_index"`
}

// UpcomingClass is the selector result: a block plus whether the current
// instant falls inside its time range.
type UpcomingClass struct {
	ClassBlock
	Ongoing bool `json:"ongoing"`
}

// PaletteSize is the number of course colors cycled through by ColorIndex.
func PaletteSize() int {
	return len(models.CourseColors)
}
