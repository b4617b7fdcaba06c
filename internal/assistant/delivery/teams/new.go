package teams

import (
	"context"

	"github.com/gin-gonic/gin"

	"office-assistant/internal/assistant"
	pkgLog "office-assistant/pkg/log"
	pkgTeams "office-assistant/pkg/teams"
)

// Connector posts activities back to the Bot Framework connector.
// Satisfied by pkgTeams.Client; stubbed in tests.
type Connector interface {
	ReplyToActivity(ctx context.Context, incoming *pkgTeams.Activity, reply pkgTeams.Activity) error
	SendTyping(ctx context.Context, incoming *pkgTeams.Activity) error
}

type handler struct {
	l         pkgLog.Logger
	uc        assistant.UseCase
	connector Connector
	botID     string
}

// New creates the Teams delivery handler and registers its routes.
func New(l pkgLog.Logger, uc assistant.UseCase, connector Connector, botID string) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		connector: connector,
		botID:     botID,
	}
}

// MapRoutes registers the Bot Framework messaging endpoint.
func (h *handler) MapRoutes(r *gin.RouterGroup) {
	r.POST("/messages", h.HandleActivity)
}
