package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTimeLimitMinutes is applied when a quiz is created without a time limit.
const DefaultTimeLimitMinutes = 10

// QuizDB represents a quiz row in the database
type QuizDB struct {
	QuizID      uuid.UUID `db:"quiz_id"`     // Primary key
	Title       string    `db:"title"`       // Required, non-empty after trimming
	Description string    `db:"description"` // Optional description
	TimeLimit   int       `db:"time_limit"`  // Time limit in minutes
	UserID      uuid.UUID `db:"user_id"`     // Owning user
	CreatedAt   time.Time `db:"created_at"`  // Creation timestamp
}

// QuizSummary is the list view of a quiz, without questions
type QuizSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TimeLimit   int       `json:"timeLimit"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Quiz is the full view of a quiz merged with its ordered questions
type Quiz struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TimeLimit   int        `json:"timeLimit"`
	CreatedAt   time.Time  `json:"createdAt"`
	Questions   []Question `json:"questions"`
}

// Summary converts a database row to its list view
func (q *QuizDB) Summary() QuizSummary {
	return QuizSummary{
		ID:          q.QuizID,
		Title:       q.Title,
		Description: q.Description,
		TimeLimit:   q.TimeLimit,
		CreatedAt:   q.CreatedAt,
	}
}
