package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"office-assistant/config"
	_ "office-assistant/docs" // Swagger docs
	teamsDelivery "office-assistant/internal/assistant/delivery/teams"
	assistantUC "office-assistant/internal/assistant/usecase"
	"office-assistant/internal/conversation"
	"office-assistant/internal/httpserver"
	"office-assistant/internal/intent"
	meetingUsecase "office-assistant/internal/meeting/usecase"
	"office-assistant/internal/model"
	"office-assistant/internal/similarity"
	todoInmem "office-assistant/internal/todo/repository/inmem"
	todoUsecase "office-assistant/internal/todo/usecase"
	userInmem "office-assistant/internal/user/repository/inmem"
	userUsecase "office-assistant/internal/user/usecase"
	"office-assistant/internal/webhook"
	"office-assistant/pkg/datemath"
	"office-assistant/pkg/gcalendar"
	"office-assistant/pkg/llmprovider"
	"office-assistant/pkg/log"
	pkgTeams "office-assistant/pkg/teams"
)

// @title       Office Assistant API
// @description Conversational office assistant with Teams, LLM intent routing, todos and meeting room booking.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Office Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers ready: %v", manager.Models())

	// 4. DateMath parser
	timezone := cfg.GoogleCalendar.Timezone
	dateParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional; meeting booking degrades
	// gracefully when absent)
	var calendar meetingUsecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Warn(ctx, "Google Calendar not configured, meeting booking disabled")
	} else {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available, meeting booking disabled: %v", calErr)
		} else {
			calendar = calendarClient
		}
	}

	// 6. Repositories
	todoRepo := todoInmem.New()
	userRepo := userInmem.New()

	// 7. UseCases
	userUC := userUsecase.New(logger, userRepo, manager)
	todoUC := todoUsecase.New(logger, todoRepo, similarity.NewDetector(nil))
	meetingUC := meetingUsecase.New(logger, calendar, roomsFromConfig(cfg.Rooms), timezone)
	classifier := intent.New(logger, manager, cfg.LLM.IntentModel, cfg.LLM.AllowModelSwitching)
	chatUC := conversation.New(logger, manager, userUC,
		cfg.Assistant.HistoryMaxUsers, parseDuration(cfg.Assistant.HistoryTTL, 30*time.Minute))

	assistant := assistantUC.New(logger, classifier, todoUC, meetingUC, userUC, chatUC, dateParser)

	// 8. Teams channel
	teamsClient, err := pkgTeams.NewClient(pkgTeams.Config{
		AppID:       cfg.Teams.AppID,
		AppPassword: cfg.Teams.AppPassword,
		ServiceURL:  cfg.Teams.ServiceURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Teams client: ", err)
		return
	}
	botHandler := teamsDelivery.New(logger, assistant, teamsClient, cfg.Teams.BotID)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		BotHandler:      botHandler,
		WebhookEnabled:  cfg.Webhook.Enabled,
		WebhookSecurity: webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func roomsFromConfig(rooms []config.RoomConfig) []model.MeetingRoom {
	out := make([]model.MeetingRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, model.MeetingRoom{
			ID:       r.ID,
			Name:     r.Name,
			Mail:     r.Mail,
			Capacity: r.Capacity,
		})
	}
	return out
}
