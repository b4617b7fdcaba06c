package similarity

import "office-assistant/internal/model"

// TextFeatures are the lexical features extracted from one short text.
// They are derived on demand and never persisted.
type TextFeatures struct {
	TimeMentioned bool
	Persons       map[string]struct{}
	Actions       map[string]struct{}
	ContentWords  map[string]struct{}
}

// Match is one duplicate candidate: an existing pending item together
// with its similarity to the new text.
type Match struct {
	Item       model.TodoItem
	Similarity float64
	// SimilarityPercent is int(Similarity*100), truncated not rounded.
	// Display-only; inclusion is always decided on the raw float.
	SimilarityPercent int
}
