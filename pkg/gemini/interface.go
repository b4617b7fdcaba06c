package gemini

import "context"

// IGemini defines the interface for Gemini API operations
type IGemini interface {
	// GenerateContent sends a generation request and returns the model's reply.
	GenerateContent(ctx context.Context, req Request) (*Response, error)

	// Model returns the model name this client is configured for.
	Model() string
}

// New creates a new Gemini client
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
