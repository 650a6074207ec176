package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// OptionList is a question's ordered answer options, persisted as a single
// JSON text column so the list shape survives storage without positional
// column mapping.
type OptionList []string

// Value implements driver.Valuer.
func (o OptionList) Value() (driver.Value, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (o *OptionList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("cannot scan %T into OptionList", src)
	}
}

// QuestionDB represents a question row in the database
type QuestionDB struct {
	QuestionID    uuid.UUID  `db:"question_id"`    // Primary key
	QuizID        uuid.UUID  `db:"quiz_id"`        // Owning quiz
	QuestionText  string     `db:"question_text"`  // Question text
	Options       OptionList `db:"options"`        // 2 to 4 ordered options
	CorrectAnswer int        `db:"correct_answer"` // Zero-based index into Options
	OrderIndex    int        `db:"order_index"`    // Display order within the quiz
}

// Question is the API view of a question
type Question struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"text"`
	Options []string  `json:"options"`
	Correct int       `json:"correct"`
}

// View converts a database row to its API view
func (q *QuestionDB) View() Question {
	return Question{
		ID:      q.QuestionID,
		Text:    q.QuestionText,
		Options: []string(q.Options),
		Correct: q.CorrectAnswer,
	}
}
