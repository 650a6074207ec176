package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/middlewares"
	"github.com/quizforge/quizforge/internal/services"
)

// QuizCreator defines the interface that the service must implement.
type QuizCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, description string, timeLimit int, questions []services.QuestionInput) (uuid.UUID, error)
}

// QuestionPayload is a question as submitted on quiz creation
// swagger:model QuestionPayload
type QuestionPayload struct {
	// Question text
	// required: true
	// example: What is the capital of France?
	Text string `json:"text"`

	// 2 to 4 answer options
	// required: true
	// example: ["Paris","London"]
	Options []string `json:"options"`

	// Zero-based index of the correct option
	// example: 0
	Correct int `json:"correct"`
}

// CreateQuizRequest represents the JSON body for quiz creation
// swagger:model CreateQuizRequest
type CreateQuizRequest struct {
	// Quiz title
	// required: true
	// example: Geography basics
	Title string `json:"title"`

	// Optional description
	// example: Capitals of Europe
	Description string `json:"description"`

	// Time limit in minutes, defaults to 10
	// example: 15
	TimeLimit int `json:"timeLimit"`

	// Questions, at least one
	// required: true
	Questions []QuestionPayload `json:"questions"`
}

// CreateQuizResponse represents a successful quiz creation response
// swagger:model CreateQuizResponse
type CreateQuizResponse struct {
	// New quiz id
	QuizID uuid.UUID `json:"quizId"`
}

// NewCreateQuizHandler returns an HTTP handler for quiz creation. The quiz
// row and all question rows are written inside the request transaction, so
// a failed question write never leaves a partial quiz behind.
// @Summary Create a quiz
// @Description Creates a quiz with its questions for the authenticated user.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param createQuizRequest body handlers.CreateQuizRequest true "Quiz creation request"
// @Success 201 {object} handlers.CreateQuizResponse "Quiz created"
// @Failure 400 {object} handlers.ErrorResponse "Missing title or questions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/quizzes [post]
// @Security BearerAuth
func NewCreateQuizHandler(svc QuizCreator) http.HandlerFunc {
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

		var req CreateQuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" || len(req.Questions) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Title and at least one question are required",
			})
			return
		}

		questions := make([]services.QuestionInput, 0, len(req.Questions))
		for _, q := range req.Questions {
			if strings.TrimSpace(q.Text) == "" || len(q.Options) < 2 || len(q.Options) > 4 ||
				q.Correct < 0 || q.Correct >= len(q.Options) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Each question needs text, 2 to 4 options and a valid correct index",
				})
				return
			}
			questions = append(questions, services.QuestionInput{
				Text:    q.Text,
				Options: q.Options,
				Correct: q.Correct,
			})
		}

		quizID, err := svc.Create(r.Context(), claims.UserID, req.Title, req.Description, req.TimeLimit, questions)
		if err != nil {
			logger.Log.Errorw("failed to create quiz", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateQuizResponse{
			QuizID: quizID,
		})
	}
}
