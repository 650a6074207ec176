package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/middlewares"
	"github.com/quizforge/quizforge/internal/services"
)

// QuizDeleter defines the interface that the service must implement.
type QuizDeleter interface {
	Delete(ctx context.Context, quizID, userID uuid.UUID) error
}

// DeleteQuizResponse represents a successful quiz deletion response
// swagger:model DeleteQuizResponse
type DeleteQuizResponse struct {
	// Success message
	// example: Quiz deleted successfully
	Message string `json:"message"`
}

// NewDeleteQuizHandler returns an HTTP handler for quiz deletion. Only the
// owner's delete removes anything; a missing quiz and someone else's quiz
// both come back as 404.
// @Summary Delete a quiz
// @Description Deletes the caller's quiz together with all its questions.
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} handlers.DeleteQuizResponse "Quiz deleted"
// @Failure 404 {object} handlers.ErrorResponse "Quiz not found or not owned"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/quizzes/{id} [delete]
// @Security BearerAuth
func NewDeleteQuizHandler(svc QuizDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Authorization required",
			})
			return
		}

		quizID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Quiz not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), quizID, claims.UserID); err != nil {
			if errors.Is(err, services.ErrQuizNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Quiz not found",
				})
				return
			}
			logger.Log.Errorw("failed to delete quiz", "quizID", quizID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteQuizResponse{
			Message: "Quiz deleted successfully",
		})
	}
}
