package intent

// Supported categories. A result's category is always one of these or
// empty.
const (
	CategoryTodo    = "todo"
	CategoryMeeting = "meeting"
	CategoryInfo    = "info"
	CategoryModel   = "model"
)

// Result is the normalized outcome of classifying one message.
// Created fresh per message and never mutated after construction.
type Result struct {
	IsExistingFeature bool    `json:"is_existing_feature"`
	Category          string  `json:"category"`
	Action            string  `json:"action"`
	Content           string  `json:"content"`
	Confidence        float64 `json:"confidence"`
	Reason            string  `json:"reason,omitempty"`
}
