package quiz

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quiz-night/backend/internal/bank"
	"github.com/quiz-night/backend/internal/middleware"
	"github.com/quiz-night/backend/internal/models"
	"github.com/quiz-night/backend/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes registers the quiz API on the router. The router is expected to
// carry the session middleware.
func (h *Handler) Routes(api *mux.Router) {
	api.HandleFunc("/quizzes", h.ListQuizzes).Methods("GET")
	api.HandleFunc("/select_quiz", h.SelectQuiz).Methods("POST")
	api.HandleFunc("/question", h.GetQuestion).Methods("GET")
	api.HandleFunc("/answer", h.SubmitAnswer).Methods("POST")
	api.HandleFunc("/next", h.Advance).Methods("POST")
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.getSession(w, r)
	if !ok {
		return
	}
	view, err := h.service.Current(sess)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.getSession(w, r)
	if !ok {
		return
	}

	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.ChoiceIndex == nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "choice_index must be an integer"})
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "id is required"})
		return
	}

	resp, err := h.service.Submit(sess, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.getSession(w, r)
	if !ok {
		return
	}
	if err := h.service.Advance(sess); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.AckResponse{OK: true})
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.getSession(w, r)
	if !ok {
		return
	}
	resp, err := h.service.ListQuizzes(sess)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SelectQuiz(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.getSession(w, r)
	if !ok {
		return
	}

	var req models.SelectQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Filename == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "filename is required"})
		return
	}

	resp, err := h.service.SelectQuiz(sess, req.Filename)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Session unavailable"})
		return nil, false
	}
	return sess, true
}

// writeError maps core error kinds onto HTTP statuses: rejected operations
// caused by client input are 400, everything else is 500. Loading and
// session state are never corrupted by a rejected request.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bank.ErrSourceNotFound),
		errors.Is(err, bank.ErrNotFound),
		errors.Is(err, bank.ErrInvalidChoice),
		errors.Is(err, session.ErrStaleAnswer),
		errors.Is(err, session.ErrFinished):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("[quiz] request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
