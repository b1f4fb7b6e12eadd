package models

// ClassMeeting is one scheduled meeting of a course, kept in the textual
// form extracted from the schedule string so it can be re-parsed on every
// projection: day "Mon(02/23/2026)", time "08:00:00 - 10:00:00".
type ClassMeeting struct {
	Day  string `json:"day"`
	Time string `json:"time"`
	Room string `json:"room"`
}

// Course groups the meetings parsed from a single schedule string. The
// meeting list is replaced wholesale on every write, never edited in place.
type Course struct {
	Name     string         `json:"name"`
	Lecturer string         `json:"lecturer"`
	Classes  []ClassMeeting `json:"classes"`
}

// CourseColor is one palette entry used to tint a course in clients.
type CourseColor struct {
	Background string `json:"bg"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

// CourseColors is the display palette. A course's color is its position in
// the stored list modulo the palette size.
var CourseColors = []CourseColor{
	{Background: "#dbeafe", Border: "#3b82f6", Text: "#1e3a5f"},
	{Background: "#dcfce7", Border: "#22c55e", Text: "#14532d"},
	{Background: "#fef9c3", Border: "#eab308", Text: "#713f12"},
	{Background: "#fce7f3", Border: "#ec4899", Text: "#831843"},
	{Background: "#e0e7ff", Border: "#6366f1", Text: "#312e81"},
	{Background: "#ffedd5", Border: "#f97316", Text: "#7c2d12"},
	{Background: "#f3e8ff", Border: "#a855f7", Text: "#581c87"},
	{Background: "#ccfbf1", Border: "#14b8a6", Text: "#134e4a"},
}
