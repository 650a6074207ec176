package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/middlewares"
	"github.com/quizforge/quizforge/internal/models"
)

// QuizLister defines the interface that the service must implement.
type QuizLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.QuizSummary, error)
}

// NewListQuizzesHandler returns an HTTP handler listing the caller's quizzes.
// @Summary List my quizzes
// @Description Returns the caller's quizzes in summary form, newest first.
// @Tags quizzes
// @Produce json
// @Success 200 {array} models.QuizSummary "Quiz list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/my-quizzes [get]
// @Security BearerAuth
func NewListQuizzesHandler(svc QuizLister) http.HandlerFunc {
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

		quizzes, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list quizzes", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(quizzes)
	}
}
