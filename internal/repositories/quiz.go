package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/models"
)

// QuizWriteRepository handles quiz write operations
type QuizWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQuizWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QuizWriteRepository {
	return &QuizWriteRepository{db: db, txGetter: txGetter}
}

func (r *QuizWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Save inserts a new quiz and returns its id.
func (r *QuizWriteRepository) Save(ctx context.Context, title, description string, timeLimit int, userID uuid.UUID) (uuid.UUID, error) {
	query := `
		INSERT INTO quizzes (quiz_id, title, description, time_limit, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING quiz_id
	`
	args := []any{uuid.New(), title, description, timeLimit, userID}

	var quizID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &quizID, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", quizID,
		"error", err,
	)

	return quizID, err
}

// Delete removes a quiz and all of its questions, returning the number of
// quiz rows removed (0 or 1). Questions go first so no orphan rows remain.
// Both statements are scoped to the owner: a non-owner's delete removes
// nothing, which callers cannot tell apart from a missing quiz.
func (r *QuizWriteRepository) Delete(ctx context.Context, quizID, userID uuid.UUID) (int64, error) {
	executor := r.executor(ctx)

	questionsQuery := `
		DELETE FROM questions
		WHERE quiz_id = $1
		  AND EXISTS (SELECT 1 FROM quizzes WHERE quiz_id = $1 AND user_id = $2)
	`
	_, err := executor.ExecContext(ctx, questionsQuery, quizID, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(questionsQuery), " "),
		"args", []any{quizID, userID},
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	quizQuery := `
		DELETE FROM quizzes
		WHERE quiz_id = $1 AND user_id = $2
	`
	res, err := executor.ExecContext(ctx, quizQuery, quizID, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(quizQuery), " "),
		"args", []any{quizID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}

// QuizReadRepository handles quiz read operations
type QuizReadRepository struct {
	db *sqlx.DB
}

func NewQuizReadRepository(db *sqlx.DB) *QuizReadRepository {
	return &QuizReadRepository{db: db}
}

// ListByUserID returns the quizzes owned by a user, newest first.
func (r *QuizReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.QuizDB, error) {
	const query = `
		SELECT quiz_id, title, description, time_limit, user_id, created_at
		FROM quizzes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var quizzes []models.QuizDB
	err := r.db.SelectContext(ctx, &quizzes, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(quizzes),
		"error", err,
	)

	return quizzes, err
}

// GetByID returns the quiz with the given id, or nil if none exists.
func (r *QuizReadRepository) GetByID(ctx context.Context, quizID uuid.UUID) (*models.QuizDB, error) {
	const query = `
		SELECT quiz_id, title, description, time_limit, user_id, created_at
		FROM quizzes
		WHERE quiz_id = $1
		LIMIT 1
	`

	var quiz models.QuizDB
	err := r.db.GetContext(ctx, &quiz, query, quizID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &quiz, nil
}
