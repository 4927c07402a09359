package bank

import (
	"fmt"

	"github.com/quiz-night/backend/internal/models"
)

// Bank is an immutable, fully validated collection of questions with an
// id index for O(1) lookup. Once constructed it is safe for unsynchronized
// concurrent reads, which is what lets the registry share one instance
// across every session playing the same quiz.
type Bank struct {
	questions []models.Question
	byID      map[string]int
}

// New builds a bank from already-validated questions. Empty banks and
// duplicate ids are construction errors; the id index and the ordered
// sequence always describe the same set.
func New(questions []models.Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz has no questions")
	}
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		byID[q.ID] = i
	}
	return &Bank{questions: questions, byID: byID}, nil
}

func (b *Bank) Total() int {
	return len(b.questions)
}

func (b *Bank) QuestionAt(index int) (models.Question, error) {
	if index < 0 || index >= len(b.questions) {
		return models.Question{}, fmt.Errorf("index %d: %w", index, ErrOutOfRange)
	}
	return b.questions[index], nil
}

func (b *Bank) QuestionByID(id string) (models.Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return models.Question{}, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	return b.questions[i], nil
}

// CheckAnswer reports whether choice (1-based) is the correct answer for
// the given question.
func (b *Bank) CheckAnswer(id string, choice int) (bool, error) {
	if choice < 1 || choice > 4 {
		return false, ErrInvalidChoice
	}
	q, err := b.QuestionByID(id)
	if err != nil {
		return false, err
	}
	return q.Answer == choice, nil
}

func (b *Bank) CorrectChoice(id string) (int, error) {
	q, err := b.QuestionByID(id)
	if err != nil {
		return 0, err
	}
	return q.Answer, nil
}
