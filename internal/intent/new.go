package intent

import (
	"context"

	"office-assistant/pkg/llmprovider"
	"office-assistant/pkg/log"
)

// Completer is the completion capability the classifier depends on.
// Satisfied by llmprovider.Manager; stubbed in tests.
type Completer interface {
	GenerateWithModel(ctx context.Context, model string, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Classifier maps free-form user messages onto the supported feature
// taxonomy.
type Classifier interface {
	// Analyze never returns an error; every failure mode resolves to
	// a zero-confidence Result with Reason set.
	Analyze(ctx context.Context, userMessage string) Result
}

type implClassifier struct {
	l                log.Logger
	llm              Completer
	model            string
	allowModelSwitch bool
}

var _ Classifier = (*implClassifier)(nil)

// New creates an intent classifier. model names the completion model
// used for classification, which is independent of the chat model.
func New(l log.Logger, llm Completer, model string, allowModelSwitch bool) Classifier {
	return &implClassifier{
		l:                l,
		llm:              llm,
		model:            model,
		allowModelSwitch: allowModelSwitch,
	}
}
