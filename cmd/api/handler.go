package api

import (
	"context"
	"fmt"
	"log"

	authDelivery "household-backend/internal/auth/delivery"
	authUsecase "household-backend/internal/auth/usecase"
	"household-backend/internal/chat"
	"household-backend/internal/dailystatus"
	"household-backend/internal/imagegen"
	"household-backend/internal/notification"
	specialDelivery "household-backend/internal/specialtask/delivery"
	specialRepo "household-backend/internal/specialtask/repository"
	specialUsecase "household-backend/internal/specialtask/usecase"
	"household-backend/internal/store"
	taskDelivery "household-backend/internal/task/delivery"
	taskRepo "household-backend/internal/task/repository"
	taskUsecase "household-backend/internal/task/usecase"
	"household-backend/pkg/ai"
	"household-backend/pkg/config"
	"household-backend/pkg/fcm"
	"household-backend/pkg/gemini"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase        authUsecase.AuthUsecase
	authHandler        *authDelivery.AuthHandler
	taskHandler        *taskDelivery.TaskHandler
	specialTaskHandler *specialDelivery.SpecialTaskHandler
	chatHandler        *chat.Handler
	imageHandler       *imagegen.Handler
	deviceHandler      *notification.Handler
	clockHandler       *ClockHandler
	settings           *RuntimeSettings
	config             *config.Config
}

// NewHandler wires repositories, use cases and HTTP handlers. sender may
// be nil, which disables push notifications.
func NewHandler(ctx context.Context, cfg *config.Config, kv store.Store, clock dailystatus.Clock, sender notification.Sender) (*Handler, error) {
	// Initialize runtime config for settings API
	settings := NewRuntimeSettings(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize AI gateway with dynamic config getters for runtime updates
	gateway, err := ai.NewGateway(ctx, ai.DynamicConfig{
		Provider: ai.ProviderType(cfg.AIProvider),
		Gemini: gemini.Options{
			APIKey:         cfg.GeminiApiKey,
			BaseURL:        cfg.GeminiBaseURL,
			ChatModel:      cfg.GeminiChatModel,
			TranslateModel: cfg.GeminiTranslateModel,
			ImageModel:     cfg.GeminiImageModel,
		},
		GetOllamaBaseURL: settings.OllamaBaseURL,
		GetOllamaModel:   settings.OllamaModel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AI gateway: %w", err)
	}
	log.Printf("AI gateway initialized with provider: %s (dynamic config enabled)", cfg.AIProvider)

	authUc, err := authUsecase.NewAuthUsecase(cfg.AdminPIN, cfg.AdminSessionTTL)
	if err != nil {
		return nil, err
	}

	tracker := dailystatus.NewTracker(kv, clock)
	taskUc := taskUsecase.NewTaskUsecase(taskRepo.NewStoreTaskRepository(kv, tracker))

	notifier := notification.NewService(notification.NewDeviceTokenRepository(kv), sender)
	specialUc := specialUsecase.NewSpecialTaskUsecase(specialRepo.NewStoreSpecialTaskRepository(kv), gateway, notifier)

	return &Handler{
		authUsecase:        authUc,
		authHandler:        authDelivery.NewAuthHandler(authUc),
		taskHandler:        taskDelivery.NewTaskHandler(taskUc),
		specialTaskHandler: specialDelivery.NewSpecialTaskHandler(specialUc),
		chatHandler:        chat.NewHandler(chat.NewService(gateway)),
		imageHandler:       imagegen.NewHandler(imagegen.NewService(gateway)),
		deviceHandler:      notification.NewHandler(notifier),
		clockHandler:       NewClockHandler(clock),
		settings:           settings,
		config:             cfg,
	}, nil
}

// NewSender builds the FCM client when credentials are configured.
func NewSender(ctx context.Context, cfg *config.Config) notification.Sender {
	if cfg.FirebaseCredentials == "" {
		log.Println("[FCM] No Firebase credentials configured, push notifications disabled")
		return nil
	}
	client, err := fcm.NewClient(ctx, cfg.FirebaseCredentials)
	if err != nil {
		log.Printf("[FCM] Failed to initialize client (push notifications disabled): %v", err)
		return nil
	}
	return client
}

// Router builds the gin engine with middleware and routes.
func (h *Handler) Router() *gin.Engine {
	if h.config.GinMode != "" {
		gin.SetMode(h.config.GinMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Router().Run(addr)
}
