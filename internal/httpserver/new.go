package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"office-assistant/internal/webhook"
	"office-assistant/pkg/log"
)

// BotHandler registers the Bot Framework messaging routes.
// Satisfied by the Teams delivery handler.
type BotHandler interface {
	MapRoutes(r *gin.RouterGroup)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Bot channel
	botHandler BotHandler

	// Endpoint security
	webhookEnabled  bool
	webhookSecurity webhook.SecurityConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Bot channel
	BotHandler BotHandler

	// Endpoint security
	WebhookEnabled  bool
	WebhookSecurity webhook.SecurityConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		botHandler:      cfg.BotHandler,
		webhookEnabled:  cfg.WebhookEnabled,
		webhookSecurity: cfg.WebhookSecurity,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
