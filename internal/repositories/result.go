package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/models"
)

// ResultWriteRepository handles quiz result write operations
type ResultWriteRepository struct {
	db *sqlx.DB
}

func NewResultWriteRepository(db *sqlx.DB) *ResultWriteRepository {
	return &ResultWriteRepository{db: db}
}

// Save inserts a quiz attempt and returns its id. The answers argument is
// the already-serialized JSON text of the user's per-question answers.
func (r *ResultWriteRepository) Save(ctx context.Context, quizID, userID uuid.UUID, score, totalQuestions, timeTaken int, answers string) (uuid.UUID, error) {
	query := `
		INSERT INTO quiz_results (result_id, quiz_id, user_id, score, total_questions, time_taken, answers, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING result_id
	`
	args := []any{uuid.New(), quizID, userID, score, totalQuestions, timeTaken, answers}

	var resultID uuid.UUID
	err := r.db.GetContext(ctx, &resultID, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizID, userID, score, totalQuestions, timeTaken},
		"result", resultID,
		"error", err,
	)

	return resultID, err
}

// ResultReadRepository handles quiz result read operations
type ResultReadRepository struct {
	db *sqlx.DB
}

func NewResultReadRepository(db *sqlx.DB) *ResultReadRepository {
	return &ResultReadRepository{db: db}
}

// ListByUserID returns a user's results annotated with each quiz's title,
// most recent completion first.
func (r *ResultReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.QuizResultRow, error) {
	const query = `
		SELECT r.result_id, r.quiz_id, r.user_id, r.score, r.total_questions, r.time_taken, r.answers, r.completed_at,
		       q.title AS quiz_title
		FROM quiz_results r
		JOIN quizzes q ON q.quiz_id = r.quiz_id
		WHERE r.user_id = $1
		ORDER BY r.completed_at DESC
	`

	var results []models.QuizResultRow
	err := r.db.SelectContext(ctx, &results, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(results),
		"error", err,
	)

	return results, err
}
