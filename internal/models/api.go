package models

type ErrorResponse struct {
	Error string `json:"error"`
}

// ── Request Types ─────────────────────────────────────

type AnswerRequest struct {
	ID          string `json:"id"`
	ChoiceIndex *int   `json:"choice_index"`
	PlayerID    string `json:"player_id,omitempty"`
}

type SelectQuizRequest struct {
	Filename string `json:"filename"`
}

// ── Response Types ────────────────────────────────────

type PlayerState struct {
	Score int `json:"score"`
}

// QuestionView is the state a client needs to render the quiz: either the
// current question with its 1-based display position, or the terminal
// summary once every question has been passed.
type QuestionView struct {
	Finished     bool                   `json:"finished"`
	ID           string                 `json:"id,omitempty"`
	Question     string                 `json:"question,omitempty"`
	Choices      []string               `json:"choices,omitempty"`
	Index        int                    `json:"index,omitempty"`
	Total        int                    `json:"total"`
	Score        int                    `json:"score"`
	Players      map[string]PlayerState `json:"players"`
	SelectedQuiz string                 `json:"selected_quiz"`
}

type AnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectChoice int    `json:"correct_choice"`
	Explanation   string `json:"explanation"`
	Score         int    `json:"score"`
	PlayerScore   int    `json:"player_score"`
	SelectedQuiz  string `json:"selected_quiz"`
}

type QuizListResponse struct {
	Files    []string `json:"files"`
	Selected string   `json:"selected"`
}

type SelectQuizResponse struct {
	OK       bool   `json:"ok"`
	Selected string `json:"selected"`
	Total    int    `json:"total"`
}

type AckResponse struct {
	OK bool `json:"ok"`
}
