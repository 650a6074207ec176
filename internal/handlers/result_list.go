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

// ResultLister defines the interface that the service must implement.
type ResultLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.QuizResult, error)
}

// NewListResultsHandler returns an HTTP handler listing the caller's results.
// @Summary List my results
// @Description Returns the caller's quiz results joined with quiz titles, most recent first.
// @Tags results
// @Produce json
// @Success 200 {array} models.QuizResult "Result list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/my-results [get]
// @Security BearerAuth
func NewListResultsHandler(svc ResultLister) http.HandlerFunc {
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

		results, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list results", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(results)
	}
}
