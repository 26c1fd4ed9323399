package model

// Passage is one retrievable chunk of framework guidance, as returned by the
// vector index for a query. Score is query-relative cosine similarity in
// [0,1] and is not persisted.
type Passage struct {
	ID      string  `json:"id"`
	Source  string  `json:"source"`
	Section string  `json:"section,omitempty"`
	Page    *int    `json:"page,omitempty"`
	Text    string  `json:"text"`
	Score   float64 `json:"score"`
}
