package similarity

import "strings"

// Component weights. The score is normalized by the weights of the
// active components, so texts without a detected person or action are
// judged on the components they do have.
const (
	personWeight  = 0.4
	actionWeight  = 0.3
	contentWeight = 0.2
	timeWeight    = 0.1
)

// bothBlankScore is the fixed score for two blank texts, which carry no
// comparable features beyond agreeing that neither mentions a time.
const bothBlankScore = 0.1

// Scorer computes a similarity score in [0,1] between two texts.
type Scorer interface {
	CalculateSimilarity(a, b string) float64
}

// WeightedScorer blends Jaccard overlap of person, action and content
// word features with a time-mention agreement bonus. It deliberately
// favors named-entity and action agreement over raw lexical overlap:
// duplicate todos restate the same person+action with different wording.
type WeightedScorer struct{}

var _ Scorer = (*WeightedScorer)(nil)

// NewScorer creates the default weighted scorer.
func NewScorer() *WeightedScorer {
	return &WeightedScorer{}
}

// CalculateSimilarity is symmetric and bounded to [0,1]. A blank text
// scores 0.0 against any non-blank text; two blank texts score exactly
// 0.1. Otherwise the weighted component sum is divided by the weights
// of the active components: the person and action components only count
// when at least one side detected them, while word overlap and time
// agreement are always active. Identical texts therefore score 1.0 even
// when no person or action is recognized.
func (s *WeightedScorer) CalculateSimilarity(a, b string) float64 {
	aBlank := strings.TrimSpace(a) == ""
	bBlank := strings.TrimSpace(b) == ""
	if aBlank != bBlank {
		return 0.0
	}
	if aBlank && bBlank {
		return bothBlankScore
	}

	fa := ExtractFeatures(a)
	fb := ExtractFeatures(b)

	score := 0.0
	weightTotal := 0.0

	if len(fa.Persons) > 0 || len(fb.Persons) > 0 {
		score += personWeight * jaccard(fa.Persons, fb.Persons)
		weightTotal += personWeight
	}

	if len(fa.Actions) > 0 || len(fb.Actions) > 0 {
		score += actionWeight * jaccard(fa.Actions, fb.Actions)
		weightTotal += actionWeight
	}

	score += contentWeight * jaccard(fa.ContentWords, fb.ContentWords)
	weightTotal += contentWeight

	if fa.TimeMentioned == fb.TimeMentioned {
		score += timeWeight
	}
	weightTotal += timeWeight

	score /= weightTotal
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// CalculateSimilarity scores two texts with the default scorer.
func CalculateSimilarity(a, b string) float64 {
	return NewScorer().CalculateSimilarity(a, b)
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}
