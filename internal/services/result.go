package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/models"
)

// ResultWriter defines write operations for quiz results.
type ResultWriter interface {
	Save(ctx context.Context, quizID, userID uuid.UUID, score, totalQuestions, timeTaken int, answers string) (uuid.UUID, error)
}

// ResultReader defines read operations for quiz results.
type ResultReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.QuizResultRow, error)
}

// ResultService handles quiz attempt recording and history.
type ResultService struct {
	writer ResultWriter
	reader ResultReader
}

// NewResultService creates a new ResultService instance.
func NewResultService(writer ResultWriter, reader ResultReader) *ResultService {
	return &ResultService{
		writer: writer,
		reader: reader,
	}
}

// Save records a quiz attempt and returns the new result id. The answers
// payload is stored as JSON text exactly as submitted, so any future read
// deserializes to the identical value. A zero score is a valid score.
func (svc *ResultService) Save(ctx context.Context, userID, quizID uuid.UUID, score, totalQuestions, timeTaken int, answers json.RawMessage) (uuid.UUID, error) {
	if len(answers) == 0 {
		answers = json.RawMessage("null")
	}

	resultID, err := svc.writer.Save(ctx, quizID, userID, score, totalQuestions, timeTaken, string(answers))
	if err != nil {
		logger.Log.Errorw("failed to save result", "quizID", quizID, "userID", userID, "error", err)
		return uuid.Nil, err
	}

	return resultID, nil
}

// List returns a user's results joined with their quiz titles, most recent first.
func (svc *ResultService) List(ctx context.Context, userID uuid.UUID) ([]models.QuizResult, error) {
	rows, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list results", "userID", userID, "error", err)
		return nil, err
	}

	results := make([]models.QuizResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, row.View())
	}
	return results, nil
}
