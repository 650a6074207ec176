package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/middlewares"
)

// ResultSaver defines the interface that the service must implement.
type ResultSaver interface {
	Save(ctx context.Context, userID, quizID uuid.UUID, score, totalQuestions, timeTaken int, answers json.RawMessage) (uuid.UUID, error)
}

// SaveResultRequest represents the JSON body for recording a quiz attempt.
// Score, totalQuestions and timeTaken are pointers so that an explicit zero
// is distinguishable from a missing field.
// swagger:model SaveResultRequest
type SaveResultRequest struct {
	// Quiz taken
	// required: true
	QuizID uuid.UUID `json:"quizId"`

	// Achieved score, zero is valid
	// required: true
	// example: 3
	Score *int `json:"score"`

	// Question count at attempt time
	// required: true
	// example: 5
	TotalQuestions *int `json:"totalQuestions"`

	// Elapsed seconds
	// required: true
	// example: 120
	TimeTaken *int `json:"timeTaken"`

	// Per-question answers, stored verbatim
	Answers json.RawMessage `json:"answers"`
}

// SaveResultResponse represents a successful attempt recording response
// swagger:model SaveResultResponse
type SaveResultResponse struct {
	// New result id
	ResultID uuid.UUID `json:"resultId"`
}

// NewSaveResultHandler returns an HTTP handler recording a quiz attempt.
// @Summary Save a quiz result
// @Description Records a quiz attempt for the authenticated user.
// @Tags results
// @Accept json
// @Produce json
// @Param saveResultRequest body handlers.SaveResultRequest true "Quiz attempt"
// @Success 200 {object} handlers.SaveResultResponse "Result recorded"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/quiz-results [post]
// @Security BearerAuth
func NewSaveResultHandler(svc ResultSaver) http.HandlerFunc {
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

		var req SaveResultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.QuizID == uuid.Nil || req.Score == nil || req.TotalQuestions == nil || req.TimeTaken == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "quizId, score, totalQuestions and timeTaken are required",
			})
			return
		}

		resultID, err := svc.Save(r.Context(), claims.UserID, req.QuizID, *req.Score, *req.TotalQuestions, *req.TimeTaken, req.Answers)
		if err != nil {
			logger.Log.Errorw("failed to save result", "quizID", req.QuizID, "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SaveResultResponse{
			ResultID: resultID,
		})
	}
}
