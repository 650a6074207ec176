package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/models"
)

// QuestionWriteRepository handles question write operations
type QuestionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQuestionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QuestionWriteRepository {
	return &QuestionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a question for a quiz. The option list is stored as one JSON
// column, so its order and length round-trip as submitted.
func (r *QuestionWriteRepository) Save(ctx context.Context, quizID uuid.UUID, text string, options models.OptionList, correctAnswer, orderIndex int) error {
	query := `
		INSERT INTO questions (question_id, quiz_id, question_text, options, correct_answer, order_index)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{uuid.New(), quizID, text, options, correctAnswer, orderIndex}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizID, text, correctAnswer, orderIndex},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// QuestionReadRepository handles question read operations
type QuestionReadRepository struct {
	db *sqlx.DB
}

func NewQuestionReadRepository(db *sqlx.DB) *QuestionReadRepository {
	return &QuestionReadRepository{db: db}
}

// ListByQuizID returns a quiz's questions ordered by their display index.
func (r *QuestionReadRepository) ListByQuizID(ctx context.Context, quizID uuid.UUID) ([]models.QuestionDB, error) {
	const query = `
		SELECT question_id, quiz_id, question_text, options, correct_answer, order_index
		FROM questions
		WHERE quiz_id = $1
		ORDER BY order_index
	`

	var questions []models.QuestionDB
	err := r.db.SelectContext(ctx, &questions, query, quizID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{quizID},
		"result", len(questions),
		"error", err,
	)

	return questions, err
}
