package models

// Question is one validated quiz item. Choices are positionally significant
// and referenced 1-based in every external payload. A Question is never
// mutated after its bank is built.
type Question struct {
	ID          string            `json:"id"`
	Text        string            `json:"question"`
	Choices     []string          `json:"choices"`
	Answer      int               `json:"answer"` // 1-4
	Explanation string            `json:"explanation"`
	Extra       map[string]string `json:"extra,omitempty"`
}
