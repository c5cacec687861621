package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-studymate-be/internal/config"
	"ai-studymate-be/internal/controller"
	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/implementation"
	"ai-studymate-be/internal/repository/memory"
	"ai-studymate-be/internal/service"
	"ai-studymate-be/internal/websocket"
	"ai-studymate-be/pkg/gemini"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProfileController controller.IProfileController
	FileController    controller.IFileController
	ChatController    controller.IChatController

	// Background Services (Exposed for main.go to run)
	ExtractorService service.IExtractorService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Backend Client
	if cfg.Keys.GoogleGemini == "" {
		log.Printf("[WARN] GOOGLE_GEMINI_API_KEY is empty, every generation will fail")
	}
	geminiClient := gemini.NewClient(cfg.Keys.GoogleGemini, cfg.Ai.GeminiModel)
	log.Printf("[INFO] Using Gemini model: %s", geminiClient.Model())

	// 4. Repositories
	profileRepo := implementation.NewUserProfileRepository(db)
	convRepo := memory.NewConversationRepository()
	fileRepo := memory.NewStagedFileRepository()

	// 5. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/staging.log")
	wsHub := websocket.NewHub(wsLogger)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Staging.ExtractTopic, pubSub)
	extractorService := service.NewExtractorService(
		pubSub,
		cfg.Staging.ExtractTopic,
		fileRepo,
		wsHub,
		time.Duration(cfg.Staging.ExtractDelayMs)*time.Millisecond,
	)

	profileService := service.NewProfileService(profileRepo, convRepo, fileRepo)
	fileService := service.NewFileService(fileRepo, publisherService, wsHub)
	chatService := service.NewChatService(profileRepo, convRepo, fileRepo, geminiClient)

	// Re-seed the transcript for a returning profile before serving traffic.
	if err := profileService.Warmup(context.Background()); err != nil {
		log.Printf("[WARN] Profile warmup failed: %v", err)
	}

	sysLogger.Info("bootstrap", "Container initialized", map[string]interface{}{
		"model":         geminiClient.Model(),
		"extract_topic": cfg.Staging.ExtractTopic,
	})

	// 7. Controllers
	return &Container{
		ProfileController: controller.NewProfileController(profileService),
		FileController:    controller.NewFileController(fileService, wsHub),
		ChatController:    controller.NewChatController(chatService),
		ExtractorService:  extractorService,
		WebSocketHub:      wsHub,
	}
}
