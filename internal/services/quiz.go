package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/models"
)

var (
	// ErrQuizNotFound is returned when a quiz does not exist, or when a
	// delete targets a quiz the caller does not own. The two cases are
	// indistinguishable for the caller.
	ErrQuizNotFound = errors.New("quiz not found")
)

// QuestionInput is a question as submitted on quiz creation.
type QuestionInput struct {
	Text    string   // Question text
	Options []string // 2 to 4 answer options
	Correct int      // Zero-based index into Options
}

// QuizWriter defines write operations for quizzes.
type QuizWriter interface {
	Save(ctx context.Context, title, description string, timeLimit int, userID uuid.UUID) (uuid.UUID, error)
	Delete(ctx context.Context, quizID, userID uuid.UUID) (int64, error)
}

// QuizReader defines read operations for quizzes.
type QuizReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.QuizDB, error)
	GetByID(ctx context.Context, quizID uuid.UUID) (*models.QuizDB, error)
}

// QuestionWriter defines write operations for questions.
type QuestionWriter interface {
	Save(ctx context.Context, quizID uuid.UUID, text string, options models.OptionList, correctAnswer, orderIndex int) error
}

// QuestionReader defines read operations for questions.
type QuestionReader interface {
	ListByQuizID(ctx context.Context, quizID uuid.UUID) ([]models.QuestionDB, error)
}

// QuizService handles quiz authoring and retrieval.
type QuizService struct {
	quizWriter     QuizWriter
	quizReader     QuizReader
	questionWriter QuestionWriter
	questionReader QuestionReader
}

// NewQuizService creates a new QuizService instance.
func NewQuizService(quizWriter QuizWriter, quizReader QuizReader, questionWriter QuestionWriter, questionReader QuestionReader) *QuizService {
	return &QuizService{
		quizWriter:     quizWriter,
		quizReader:     quizReader,
		questionWriter: questionWriter,
		questionReader: questionReader,
	}
}

// Create persists a quiz and its questions. The caller runs this inside one
// transaction, so a failed question write rolls the quiz back with it.
func (svc *QuizService) Create(ctx context.Context, userID uuid.UUID, title, description string, timeLimit int, questions []QuestionInput) (uuid.UUID, error) {
	if timeLimit <= 0 {
		timeLimit = models.DefaultTimeLimitMinutes
	}

	quizID, err := svc.quizWriter.Save(ctx, title, description, timeLimit, userID)
	if err != nil {
		logger.Log.Errorw("failed to save quiz", "userID", userID, "title", title, "error", err)
		return uuid.Nil, err
	}

	for i, q := range questions {
		if err := svc.questionWriter.Save(ctx, quizID, q.Text, models.OptionList(q.Options), q.Correct, i); err != nil {
			logger.Log.Errorw("failed to save question", "quizID", quizID, "orderIndex", i, "error", err)
			return uuid.Nil, err
		}
	}

	return quizID, nil
}

// List returns the summaries of a user's quizzes, newest first.
func (svc *QuizService) List(ctx context.Context, userID uuid.UUID) ([]models.QuizSummary, error) {
	quizzes, err := svc.quizReader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list quizzes", "userID", userID, "error", err)
		return nil, err
	}

	summaries := make([]models.QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, q.Summary())
	}
	return summaries, nil
}

// Get returns a quiz merged with its ordered questions. A quiz with zero
// questions still returns, with an empty question list.
func (svc *QuizService) Get(ctx context.Context, quizID uuid.UUID) (*models.Quiz, error) {
	quiz, err := svc.quizReader.GetByID(ctx, quizID)
	if err != nil {
		logger.Log.Errorw("failed to get quiz", "quizID", quizID, "error", err)
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	rows, err := svc.questionReader.ListByQuizID(ctx, quizID)
	if err != nil {
		logger.Log.Errorw("failed to list questions", "quizID", quizID, "error", err)
		return nil, err
	}

	questions := make([]models.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, row.View())
	}

	return &models.Quiz{
		ID:          quiz.QuizID,
		Title:       quiz.Title,
		Description: quiz.Description,
		TimeLimit:   quiz.TimeLimit,
		CreatedAt:   quiz.CreatedAt,
		Questions:   questions,
	}, nil
}

// Delete removes a quiz and its questions if the caller owns it. A missing
// quiz and a quiz owned by someone else both report ErrQuizNotFound.
func (svc *QuizService) Delete(ctx context.Context, quizID, userID uuid.UUID) error {
	rows, err := svc.quizWriter.Delete(ctx, quizID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete quiz", "quizID", quizID, "userID", userID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrQuizNotFound
	}
	return nil
}
