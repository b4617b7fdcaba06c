package httpserver

import (
	"context"

	"office-assistant/internal/model"
	"office-assistant/internal/webhook"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.botHandler == nil {
		srv.l.Infof(ctx, "Bot handler not configured, skipping messaging route")
		return nil
	}

	api := srv.gin.Group("/api")
	if srv.webhookEnabled {
		api.Use(webhook.Middleware(srv.l, srv.webhookSecurity))
		srv.l.Infof(ctx, "Endpoint security enabled for /api")
	}

	srv.botHandler.MapRoutes(api)
	srv.l.Infof(ctx, "Bot messaging route registered at POST /api/messages")

	return nil
}
