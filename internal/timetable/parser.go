package timetable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/campus-tools/timetable-api/internal/models"
)

// meetingPattern matches one schedule entry:
// "Mon(02/23/2026) 08:00:00 - 10:00:00 Block-A 101".
var meetingPattern = regexp.MustCompile(`(\w+)\((\d{2}/\d{2}/\d{4})\)\s+(\d{2}:\d{2}:\d{2})\s+-\s+(\d{2}:\d{2}:\d{2})\s+([\w-]+\s+\w+)`)

// datePattern extracts the explicit MM/DD/YYYY annotation from a day token.
var datePattern = regexp.MustCompile(`\((\d{2})/(\d{2})/(\d{4})\)`)

// ParseScheduleString extracts every meeting that fits the schedule grammar
// from a raw string. The scan is global and non-overlapping; text between
// entries that does not match is skipped rather than rejected, so a string
// with no entries yields an empty result, not an error. Day and time are kept
// in their original textual form for later re-parsing.
func ParseScheduleString(raw string) []models.ClassMeeting {
	matches := meetingPattern.FindAllStringSubmatch(raw, -1)
	meetings := make([]models.ClassMeeting, 0, len(matches))
	for _, m := range matches {
		meetings = append(meetings, models.ClassMeeting{
			Day:  m[1] + "(" + m[2] + ")",
			Time: m[3] + " - " + m[4],
			Room: strings.TrimSpace(m[5]),
		})
	}
	return meetings
}

// Clock is a minute-precision time of day.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// MinuteOfDay returns minutes elapsed since midnight.
func (c Clock) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// ParseClock reads "HH:MM:SS" (or "HH:MM") into a Clock. Seconds are parsed
// and discarded; downstream logic works at minute precision.
func ParseClock(s string) (Clock, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return Clock{}, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

// ParseTimeRange reads "HH:MM:SS - HH:MM:SS" into start and end clocks.
func ParseTimeRange(s string) (Clock, Clock, bool) {
	parts := strings.SplitN(s, " - ", 2)
	if len(parts) != 2 {
		return Clock{}, Clock{}, false
	}
	start, ok := ParseClock(parts[0])
	if !ok {
		return Clock{}, Clock{}, false
	}
	end, ok := ParseClock(parts[1])
	if !ok {
		return Clock{}, Clock{}, false
	}
	return start, end, true
}

// DayToken strips the date annotation: "Mon(02/23/2026)" becomes "Mon".
func DayToken(day string) string {
	if idx := strings.IndexByte(day, '('); idx >= 0 {
		return day[:idx]
	}
	return day
}

// MeetingDate extracts the explicit calendar date from a day token. The
// second return is false when the token carries no parseable date.
func MeetingDate(day string, loc *time.Location) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(day)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	d, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, loc), true
}

// FormatClock12 renders a 12-hour clock label like "8:05 AM".
func FormatClock12(c Clock) string {
	suffix := "AM"
	if c.Hour >= 12 {
		suffix = "PM"
	}
	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, suffix)
}
