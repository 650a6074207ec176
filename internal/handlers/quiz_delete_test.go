package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/quizforge/quizforge/internal/services"
)

func TestDeleteQuizHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	quizID := uuid.New()

	newRouter := func(svc QuizDeleter) http.Handler {
		r := chi.NewRouter()
		r.Delete("/api/quizzes/{id}", NewDeleteQuizHandler(svc))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockQuizDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), quizID, userID).
			Return(nil)

		req := authedRequest(http.MethodDelete, "/api/quizzes/"+quizID.String(), nil, userID)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp DeleteQuizResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Quiz deleted successfully", resp.Message)
	})

	t.Run("not found or not owned", func(t *testing.T) {
		mockSvc := NewMockQuizDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), quizID, userID).
			Return(services.ErrQuizNotFound)

		req := authedRequest(http.MethodDelete, "/api/quizzes/"+quizID.String(), nil, userID)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Quiz not found", resp.Error)
	})

	t.Run("missing claims", func(t *testing.T) {
		mockSvc := NewMockQuizDeleter(ctrl)

		req := httptest.NewRequest(http.MethodDelete, "/api/quizzes/"+quizID.String(), nil)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockQuizDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), quizID, userID).
			Return(errors.New("database failure"))

		req := authedRequest(http.MethodDelete, "/api/quizzes/"+quizID.String(), nil, userID)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
