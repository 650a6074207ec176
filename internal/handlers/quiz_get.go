package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/models"
	"github.com/quizforge/quizforge/internal/services"
)

// QuizGetter defines the interface that the service must implement.
type QuizGetter interface {
	Get(ctx context.Context, quizID uuid.UUID) (*models.Quiz, error)
}

// NewGetQuizHandler returns an HTTP handler fetching a quiz with its
// questions. Any authenticated caller may fetch any quiz; reads are not
// restricted to the owner.
// @Summary Get a quiz
// @Description Returns the quiz and its ordered questions.
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} models.Quiz "Quiz with questions"
// @Failure 404 {object} handlers.ErrorResponse "Quiz not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/quizzes/{id} [get]
// @Security BearerAuth
func NewGetQuizHandler(svc QuizGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		quizID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Quiz not found",
			})
			return
		}

		quiz, err := svc.Get(r.Context(), quizID)
		if err != nil {
			if errors.Is(err, services.ErrQuizNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Quiz not found",
				})
				return
			}
			logger.Log.Errorw("failed to get quiz", "quizID", quizID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(quiz)
	}
}
