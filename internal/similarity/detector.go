package similarity

import (
	"sort"

	"office-assistant/internal/model"
)

const (
	// Threshold is the exclusive lower bound for duplicate candidates:
	// an item is a candidate only when its score is strictly greater.
	Threshold = 0.6

	// MaxCandidates caps how many candidates are surfaced to the user.
	MaxCandidates = 3
)

// Detector ranks a user's pending todos by similarity to a new
// candidate text. It is pure: no I/O, no state mutation, safe for
// concurrent use. Scoping the input to one user's pending items is the
// caller's job; the detector scores whatever it is given.
type Detector struct {
	scorer Scorer
}

// NewDetector creates a Detector. A nil scorer selects the default
// weighted scorer.
func NewDetector(scorer Scorer) *Detector {
	if scorer == nil {
		scorer = NewScorer()
	}
	return &Detector{scorer: scorer}
}

// FindSimilar returns at most MaxCandidates items scoring strictly above
// Threshold against candidate, ordered by descending similarity. Equal
// scores keep their input order.
func (d *Detector) FindSimilar(candidate string, pending []model.TodoItem) []Match {
	matches := make([]Match, 0, len(pending))

	for _, item := range pending {
		score := d.scorer.CalculateSimilarity(candidate, item.Content)
		if score > Threshold {
			matches = append(matches, Match{
				Item:              item,
				Similarity:        score,
				SimilarityPercent: int(score * 100),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > MaxCandidates {
		matches = matches[:MaxCandidates]
	}
	return matches
}
