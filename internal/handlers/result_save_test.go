package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSaveResultHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	quizID := uuid.New()
	resultID := uuid.New()

	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name          string
		reqBody       any
		mockSetup     func(m *MockResultSaver)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			reqBody: SaveResultRequest{
				QuizID:         quizID,
				Score:          intPtr(3),
				TotalQuestions: intPtr(5),
				TimeTaken:      intPtr(120),
				Answers:        json.RawMessage(`[0,1,2,3,0]`),
			},
			mockSetup: func(m *MockResultSaver) {
				m.EXPECT().
					Save(gomock.Any(), userID, quizID, 3, 5, 120, json.RawMessage(`[0,1,2,3,0]`)).
					Return(resultID, nil)
			},
			expectedCode: 200,
		},
		{
			name: "zero score is valid",
			reqBody: SaveResultRequest{
				QuizID:         quizID,
				Score:          intPtr(0),
				TotalQuestions: intPtr(5),
				TimeTaken:      intPtr(30),
			},
			mockSetup: func(m *MockResultSaver) {
				m.EXPECT().
					Save(gomock.Any(), userID, quizID, 0, 5, 30, gomock.Any()).
					Return(resultID, nil)
			},
			expectedCode: 200,
		},
		{
			name: "missing quizId",
			reqBody: SaveResultRequest{
				Score:          intPtr(3),
				TotalQuestions: intPtr(5),
				TimeTaken:      intPtr(120),
			},
			expectedCode:  400,
			expectedError: "quizId, score, totalQuestions and timeTaken are required",
		},
		{
			name: "missing score",
			reqBody: SaveResultRequest{
				QuizID:         quizID,
				TotalQuestions: intPtr(5),
				TimeTaken:      intPtr(120),
			},
			expectedCode:  400,
			expectedError: "quizId, score, totalQuestions and timeTaken are required",
		},
		{
			name: "missing timeTaken",
			reqBody: SaveResultRequest{
				QuizID:         quizID,
				Score:          intPtr(3),
				TotalQuestions: intPtr(5),
			},
			expectedCode:  400,
			expectedError: "quizId, score, totalQuestions and timeTaken are required",
		},
		{
			name:          "invalid json",
			reqBody:       "{not json",
			expectedCode:  400,
			expectedError: "Invalid request body",
		},
		{
			name: "internal server error",
			reqBody: SaveResultRequest{
				QuizID:         quizID,
				Score:          intPtr(3),
				TotalQuestions: intPtr(5),
				TimeTaken:      intPtr(120),
			},
			mockSetup: func(m *MockResultSaver) {
				m.EXPECT().
					Save(gomock.Any(), userID, quizID, 3, 5, 120, gomock.Any()).
					Return(uuid.Nil, errors.New("database failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockResultSaver(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSaveResultHandler(mockSvc)

			var body *bytes.Buffer
			if s, ok := tt.reqBody.(string); ok {
				body = bytes.NewBufferString(s)
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := authedRequest(http.MethodPost, "/api/quiz-results", body, userID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.expectedCode == 200 {
				var resp SaveResultResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, resultID, resp.ResultID)
			}
		})
	}

	t.Run("missing claims", func(t *testing.T) {
		mockSvc := NewMockResultSaver(ctrl)
		handler := NewSaveResultHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/api/quiz-results", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
