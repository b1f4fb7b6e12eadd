package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-tools/timetable-api/internal/dto"
)

type timetableServiceMock struct {
	week     *dto.WeekResponse
	upcoming *dto.UpcomingItem
	active   bool
	setErr   error
	lastSet  *bool
}

func (m *timetableServiceMock) Week(ctx context.Context) (*dto.WeekResponse, error) {
	return m.week, nil
}

func (m *timetableServiceMock) Upcoming(ctx context.Context) (*dto.UpcomingItem, error) {
	return m.upcoming, nil
}

func (m *timetableServiceMock) ModeActive(ctx context.Context) (bool, error) {
	return m.active, nil
}

func (m *timetableServiceMock) SetMode(ctx context.Context, active bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.lastSet = &active
	return nil
}

type exportServiceMock struct {
	csv []byte
	pdf []byte
}

func (m *exportServiceMock) WeekCSV(ctx context.Context) ([]byte, string, error) {
	return m.csv, "timetable-2026-02-23.csv", nil
}

func (m *exportServiceMock) WeekPDF(ctx context.Context) ([]byte, string, error) {
	return m.pdf, "timetable-2026-02-23.pdf", nil
}

func TestTimetableHandlerWeek(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &timetableServiceMock{week: &dto.WeekResponse{
		WeekStart:  "2026-02-23",
		WeekEnd:    "2026-03-01",
		Convention: "monday",
		Blocks:     []dto.ClassBlockItem{{CourseName: "Calculus", Day: "Mon"}},
	}}
	handler := NewTimetableHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/timetable/week", nil)

	handler.Week(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Calculus")
	assert.Contains(t, w.Body.String(), "2026-02-23")
}

func TestTimetableHandlerUpcomingEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/timetable/upcoming", nil)

	handler.Upcoming(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data *dto.UpcomingItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Data)
}

func TestTimetableHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{}, &exportServiceMock{csv: []byte("Day,Start,End\n")})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/timetable/export", nil)

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "timetable-2026-02-23.csv")
	assert.Contains(t, w.Body.String(), "Day,Start,End")
}

func TestTimetableHandlerExportPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{}, &exportServiceMock{pdf: []byte("%PDF-1.4")})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/timetable/export?format=pdf", nil)

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")
}

func TestTimetableHandlerExportBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{}, &exportServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/timetable/export?format=xlsx", nil)

	handler.Export(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimetableHandlerMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{active: true}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/settings/ramadan-mode", nil)

	handler.Mode(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":true`)
}

func TestTimetableHandlerUpdateMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &timetableServiceMock{}
	handler := NewTimetableHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(map[string]bool{"active": true})
	req, _ := http.NewRequest(http.MethodPut, "/settings/ramadan-mode", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.UpdateMode(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastSet)
	assert.True(t, *svc.lastSet)
}

func TestTimetableHandlerUpdateModeMissingField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/settings/ramadan-mode", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.UpdateMode(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
