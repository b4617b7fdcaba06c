package conversation

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"office-assistant/internal/model"
	"office-assistant/internal/user"
	"office-assistant/pkg/llmprovider"
	pkgLog "office-assistant/pkg/log"
)

// Completer is the completion capability the conversation layer
// depends on. Satisfied by llmprovider.Manager.
type Completer interface {
	GenerateWithModel(ctx context.Context, model string, req *llmprovider.Request) (*llmprovider.Response, error)
}

// UseCase defines the business logic interface for general
// conversation.
type UseCase interface {
	// Chat generates a reply, carrying per-user history and honoring
	// the user's preferred chat model.
	Chat(ctx context.Context, sc model.Scope, message string) (string, error)

	// Reset clears the user's history.
	Reset(ctx context.Context, sc model.Scope)
}

type implUseCase struct {
	l           pkgLog.Logger
	llm         Completer
	users       user.UseCase
	history     *expirable.LRU[string, []llmprovider.Message]
	maxMessages int
}

var _ UseCase = (*implUseCase)(nil)

// New creates a new conversation UseCase instance. Histories are
// evicted after historyTTL idle or once maxUsers are tracked.
func New(l pkgLog.Logger, llm Completer, users user.UseCase, maxUsers int, historyTTL time.Duration) *implUseCase {
	if maxUsers <= 0 {
		maxUsers = defaultMaxUsers
	}
	if historyTTL <= 0 {
		historyTTL = defaultHistoryTTL
	}
	return &implUseCase{
		l:           l,
		llm:         llm,
		users:       users,
		history:     expirable.NewLRU[string, []llmprovider.Message](maxUsers, nil, historyTTL),
		maxMessages: defaultMaxMessages,
	}
}
