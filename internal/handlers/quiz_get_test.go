package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/quizforge/quizforge/internal/models"
	"github.com/quizforge/quizforge/internal/services"
)

func TestGetQuizHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	quizID := uuid.New()

	quiz := &models.Quiz{
		ID:        quizID,
		Title:     "T",
		TimeLimit: 10,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Questions: []models.Question{
			{ID: uuid.New(), Text: "Q1", Options: []string{"A", "B"}, Correct: 0},
		},
	}

	newRouter := func(svc QuizGetter) http.Handler {
		r := chi.NewRouter()
		r.Get("/api/quizzes/{id}", NewGetQuizHandler(svc))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockQuizGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), quizID).
			Return(quiz, nil)

		req := authedRequest(http.MethodGet, "/api/quizzes/"+quizID.String(), nil, userID)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.Quiz
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "T", resp.Title)
		assert.Len(t, resp.Questions, 1)
		assert.Equal(t, "Q1", resp.Questions[0].Text)
		assert.Equal(t, []string{"A", "B"}, resp.Questions[0].Options)
		assert.Equal(t, 0, resp.Questions[0].Correct)
	})

	t.Run("zero questions still returns quiz", func(t *testing.T) {
		empty := &models.Quiz{ID: quizID, Title: "Empty", TimeLimit: 10, Questions: []models.Question{}}

		mockSvc := NewMockQuizGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), quizID).
			Return(empty, nil)

		req := authedRequest(http.MethodGet, "/api/quizzes/"+quizID.String(), nil, userID)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]json.RawMessage
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.JSONEq(t, "[]", string(resp["questions"]))
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockQuizGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), quizID).
			Return(nil, services.ErrQuizNotFound)

		req := authedRequest(http.MethodGet, "/api/quizzes/"+quizID.String(), nil, userID)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unparseable id", func(t *testing.T) {
		mockSvc := NewMockQuizGetter(ctrl)

		req := authedRequest(http.MethodGet, "/api/quizzes/not-a-uuid", nil, userID)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockQuizGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), quizID).
			Return(nil, errors.New("database failure"))

		req := authedRequest(http.MethodGet, "/api/quizzes/"+quizID.String(), nil, userID)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
