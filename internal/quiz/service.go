package quiz

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/quiz-night/backend/internal/bank"
	"github.com/quiz-night/backend/internal/models"
	"github.com/quiz-night/backend/internal/session"
)

// Service wires the bank registry and per-session progressions together:
// quiz selection, lazy session initialization, and the shuffle source used
// when randomized order is enabled.
type Service struct {
	registry  *bank.Registry
	randomize bool

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewService(registry *bank.Registry, randomize bool) *Service {
	return &Service{
		registry:  registry,
		randomize: randomize,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Current returns the session's current question view, initializing the
// session to the first listed quiz if it has no progression yet.
func (s *Service) Current(sess *session.Session) (models.QuestionView, error) {
	sess.Lock()
	defer sess.Unlock()
	prog, b, err := s.ensure(sess)
	if err != nil {
		return models.QuestionView{}, err
	}
	return prog.CurrentView(b)
}

// Submit scores an answer against the session's current question.
func (s *Service) Submit(sess *session.Session, req models.AnswerRequest) (models.AnswerResponse, error) {
	sess.Lock()
	defer sess.Unlock()
	prog, b, err := s.ensure(sess)
	if err != nil {
		return models.AnswerResponse{}, err
	}
	return prog.SubmitAnswer(b, req.ID, *req.ChoiceIndex, req.PlayerID)
}

// Advance moves the session's cursor forward by one question.
func (s *Service) Advance(sess *session.Session) error {
	sess.Lock()
	defer sess.Unlock()
	prog, _, err := s.ensure(sess)
	if err != nil {
		return err
	}
	prog.Advance()
	return nil
}

// ListQuizzes returns the available quiz files and the session's current
// selection, which is empty for a session that has not started yet.
func (s *Service) ListQuizzes(sess *session.Session) (models.QuizListResponse, error) {
	files, err := s.registry.ListSources()
	if err != nil {
		return models.QuizListResponse{}, err
	}
	if files == nil {
		files = []string{}
	}
	sess.Lock()
	defer sess.Unlock()
	selected := ""
	if sess.Progression != nil {
		selected = sess.Progression.BankKey
	}
	return models.QuizListResponse{Files: files, Selected: selected}, nil
}

// SelectQuiz switches the session to the named quiz, resetting order,
// position, scores, and the answered set.
func (s *Service) SelectQuiz(sess *session.Session, filename string) (models.SelectQuizResponse, error) {
	b, err := s.registry.Get(filename)
	if err != nil {
		return models.SelectQuizResponse{}, err
	}
	sess.Lock()
	defer sess.Unlock()
	sess.Progression = s.newProgression(filename, b.Total())
	return models.SelectQuizResponse{OK: true, Selected: filename, Total: b.Total()}, nil
}

// ensure returns the session's progression and its bank. A session with no
// progression — or whose selected quiz has disappeared from the data
// directory — is reset onto the first listed quiz, mirroring a fresh visit.
// Callers must hold the session lock.
func (s *Service) ensure(sess *session.Session) (*session.Progression, *bank.Bank, error) {
	if sess.Progression != nil {
		b, err := s.registry.Get(sess.Progression.BankKey)
		if err == nil {
			return sess.Progression, b, nil
		}
		log.Printf("[quiz] selected quiz %q unavailable, falling back: %v", sess.Progression.BankKey, err)
	}

	files, err := s.registry.ListSources()
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, bank.ErrNoSources
	}
	selected := files[0]
	b, err := s.registry.Get(selected)
	if err != nil {
		return nil, nil, err
	}
	sess.Progression = s.newProgression(selected, b.Total())
	return sess.Progression, b, nil
}

// newProgression builds a fresh progression, holding the rng lock for the
// shuffle since rand.Rand is not safe for concurrent use.
func (s *Service) newProgression(key string, total int) *session.Progression {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return session.NewProgression(key, total, s.randomize, s.rng)
}
