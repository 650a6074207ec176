package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QuizResultDB represents a quiz attempt row in the database
type QuizResultDB struct {
	ResultID       uuid.UUID `db:"result_id"`       // Primary key
	QuizID         uuid.UUID `db:"quiz_id"`         // Quiz taken
	UserID         uuid.UUID `db:"user_id"`         // User who took it
	Score          int       `db:"score"`           // Achieved score, zero is valid
	TotalQuestions int       `db:"total_questions"` // Question count at attempt time
	TimeTaken      int       `db:"time_taken"`      // Elapsed seconds
	Answers        string    `db:"answers"`         // Per-question answers, JSON text
	CompletedAt    time.Time `db:"completed_at"`    // Completion timestamp
}

// QuizResultRow is a result row joined with its quiz title
type QuizResultRow struct {
	QuizResultDB
	QuizTitle string `db:"quiz_title"`
}

// QuizResult is the API view of a result annotated with the quiz title
type QuizResult struct {
	ID             uuid.UUID       `json:"id"`
	QuizID         uuid.UUID       `json:"quizId"`
	QuizTitle      string          `json:"quizTitle"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	TimeTaken      int             `json:"timeTaken"`
	Answers        json.RawMessage `json:"answers"`
	CompletedAt    time.Time       `json:"completedAt"`
}

// View converts a joined row to its API view. The answers column holds the
// JSON text exactly as it was submitted, so it is passed through verbatim.
func (r *QuizResultRow) View() QuizResult {
	return QuizResult{
		ID:             r.ResultID,
		QuizID:         r.QuizID,
		QuizTitle:      r.QuizTitle,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		TimeTaken:      r.TimeTaken,
		Answers:        json.RawMessage(r.Answers),
		CompletedAt:    r.CompletedAt,
	}
}
