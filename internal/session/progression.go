package session

import (
	"errors"
	"math/rand"

	"github.com/quiz-night/backend/internal/bank"
	"github.com/quiz-night/backend/internal/models"
)

// DefaultPlayer scores answers that arrive without an explicit player id.
const DefaultPlayer = "p0"

var (
	// ErrStaleAnswer rejects a submission whose question id does not match
	// the question at the current position — typically a client that fell
	// behind and is answering a question the session already moved past.
	ErrStaleAnswer = errors.New("submitted id does not match the current question")

	// ErrFinished rejects submissions once the cursor has passed the last
	// question.
	ErrFinished = errors.New("all questions have been answered")
)

// Progression is one session's walk through a bank: a fixed question order,
// a monotonically advancing cursor, per-player scores, and the set of
// question ids that have already been scored. It holds the bank's key, not
// the bank itself; callers pass the bank into each operation.
//
// Progression is not safe for concurrent use. The owning Session serializes
// access to it.
type Progression struct {
	BankKey  string
	Order    []int
	Position int
	Scores   map[string]int
	Answered map[string]bool
}

// NewProgression starts a progression over a bank with total questions,
// shuffling the order when randomize is set. rng may be nil when randomize
// is false.
func NewProgression(bankKey string, total int, randomize bool, rng *rand.Rand) *Progression {
	p := &Progression{BankKey: bankKey}
	p.Reset(total, randomize, rng)
	return p
}

// Reset re-initializes the order and cursor and clears all scoring state,
// returning the progression to a fresh InProgress state at position 0.
func (p *Progression) Reset(total int, randomize bool, rng *rand.Rand) {
	if randomize {
		p.Order = ShuffledOrder(total, rng)
	} else {
		p.Order = SequentialOrder(total)
	}
	p.Position = 0
	p.Scores = map[string]int{DefaultPlayer: 0}
	p.Answered = make(map[string]bool)
}

// Finished reports whether the cursor has moved past the last question.
func (p *Progression) Finished() bool {
	return p.Position >= len(p.Order)
}

// CurrentView returns the terminal summary when finished, otherwise the
// question at the current position with its 1-based display index. Pure
// read, no mutation.
func (p *Progression) CurrentView(b *bank.Bank) (models.QuestionView, error) {
	view := models.QuestionView{
		Total:        b.Total(),
		Score:        p.Scores[DefaultPlayer],
		Players:      p.playerStates(),
		SelectedQuiz: p.BankKey,
	}
	if p.Finished() {
		view.Finished = true
		return view, nil
	}
	q, err := b.QuestionAt(p.Order[p.Position])
	if err != nil {
		return models.QuestionView{}, err
	}
	view.ID = q.ID
	view.Question = q.Text
	view.Choices = q.Choices
	view.Index = p.Position + 1
	return view, nil
}

// SubmitAnswer scores a choice against the current question. Scoring is
// idempotent per question id: once an id is marked answered, repeat
// submissions — from any player — still report correctness but never change
// a score. Correct first submissions credit exactly one point to the
// submitting player, creating that player's entry at 0 if needed.
func (p *Progression) SubmitAnswer(b *bank.Bank, questionID string, choice int, playerID string) (models.AnswerResponse, error) {
	if playerID == "" {
		playerID = DefaultPlayer
	}
	if p.Finished() {
		return models.AnswerResponse{}, ErrFinished
	}
	current, err := b.QuestionAt(p.Order[p.Position])
	if err != nil {
		return models.AnswerResponse{}, err
	}
	if questionID != current.ID {
		return models.AnswerResponse{}, ErrStaleAnswer
	}

	correct, err := b.CheckAnswer(questionID, choice)
	if err != nil {
		return models.AnswerResponse{}, err
	}

	if _, ok := p.Scores[playerID]; !ok {
		p.Scores[playerID] = 0
	}
	if !p.Answered[questionID] && correct {
		p.Scores[playerID]++
	}
	p.Answered[questionID] = true

	return models.AnswerResponse{
		Correct:       correct,
		CorrectChoice: current.Answer,
		Explanation:   current.Explanation,
		Score:         p.Scores[DefaultPlayer],
		PlayerScore:   p.Scores[playerID],
		SelectedQuiz:  p.BankKey,
	}, nil
}

// Advance moves the cursor forward by exactly one question, reaching the
// finished state once it passes the last one. Advancing past the end is a
// no-op; advancing without answering forfeits scoring for that question.
func (p *Progression) Advance() {
	if p.Position < len(p.Order) {
		p.Position++
	}
}

func (p *Progression) playerStates() map[string]models.PlayerState {
	players := make(map[string]models.PlayerState, len(p.Scores))
	for id, score := range p.Scores {
		players[id] = models.PlayerState{Score: score}
	}
	return players
}
