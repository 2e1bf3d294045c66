package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tunestream/analytics/internal/domain"
)

func TestHandleAddEvent(t *testing.T) {
	InitValidator()

	validBody := `{
		"user_id": 7,
		"track_id": 42,
		"event_type": 1,
		"context_type": 2,
		"context_id": 9,
		"position_ms": 30000,
		"duration_ms": 180000,
		"timestamp_utc": "2025-06-01T12:30:00Z"
	}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockAnalyticsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: validBody,
			setupMock: func(m *MockAnalyticsService) {
				m.On("RecordEvent", mock.Anything, mock.MatchedBy(func(e domain.UserEvent) bool {
					return e.UserID == 7 &&
						e.TrackID != nil && *e.TrackID == 42 &&
						e.EventType == domain.EventPlayStart &&
						e.ContextType == domain.ContextPlaylist &&
						e.ContextID != nil && *e.ContextID == 9 &&
						e.PositionMs != nil && *e.PositionMs == 30000
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"success":true`,
		},
		{
			name: "Optional fields absent",
			body: `{"user_id": 7, "event_type": 4, "timestamp_utc": "2025-06-01T12:30:00Z"}`,
			setupMock: func(m *MockAnalyticsService) {
				m.On("RecordEvent", mock.Anything, mock.MatchedBy(func(e domain.UserEvent) bool {
					return e.TrackID == nil && e.ContextID == nil &&
						e.PositionMs == nil && e.DurationMs == nil && e.PayloadJSON == nil
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Unknown enum values collapse instead of failing",
			body: `{"user_id": 7, "event_type": 99, "context_type": -4, "timestamp_utc": "2025-06-01T12:30:00Z"}`,
			setupMock: func(m *MockAnalyticsService) {
				m.On("RecordEvent", mock.Anything, mock.MatchedBy(func(e domain.UserEvent) bool {
					return e.EventType == domain.EventUnknown && e.ContextType == domain.ContextUnknown
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Negative optional ids are treated as absent",
			body: `{"user_id": 7, "track_id": -5, "context_id": 0, "event_type": 1, "timestamp_utc": "2025-06-01T12:30:00Z"}`,
			setupMock: func(m *MockAnalyticsService) {
				m.On("RecordEvent", mock.Anything, mock.MatchedBy(func(e domain.UserEvent) bool {
					return e.TrackID == nil && e.ContextID == nil
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Malformed JSON",
			body:           `{"user_id": `,
			setupMock:      func(m *MockAnalyticsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing user id",
			body:           `{"event_type": 1, "timestamp_utc": "2025-06-01T12:30:00Z"}`,
			setupMock:      func(m *MockAnalyticsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Missing timestamp",
			body:           `{"user_id": 7, "event_type": 1}`,
			setupMock:      func(m *MockAnalyticsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Storage failure maps to 503",
			body: validBody,
			setupMock: func(m *MockAnalyticsService) {
				m.On("RecordEvent", mock.Anything, mock.Anything).Return(errors.New("pool exhausted"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockAnalyticsService{}
			tt.setupMock(mockSvc)

			handler := HandleAddEvent(mockSvc)

			req := httptest.NewRequest("POST", "/events", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleAddEvent_TimestampPassedThrough(t *testing.T) {
	InitValidator()

	mockSvc := &MockAnalyticsService{}
	want := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	mockSvc.On("RecordEvent", mock.Anything, mock.MatchedBy(func(e domain.UserEvent) bool {
		return e.TimestampUTC.Equal(want)
	})).Return(nil)

	body := `{"user_id": 7, "event_type": 1, "timestamp_utc": "2025-06-01T15:30:00+03:00"}`
	req := httptest.NewRequest("POST", "/events", strings.NewReader(body))
	w := httptest.NewRecorder()

	HandleAddEvent(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}
