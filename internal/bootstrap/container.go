package bootstrap

import (
	"context"
	"log"

	"petmedia-be/internal/config"
	"petmedia-be/internal/controller"
	"petmedia-be/internal/handler"
	"petmedia-be/internal/pkg/logger"
	"petmedia-be/internal/repository/unitofwork"
	"petmedia-be/internal/service"
	"petmedia-be/internal/websocket"
	pkgNats "petmedia-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	PetController       controller.IPetController
	MapSpotController   controller.IMapSpotController
	MessagingController controller.IMessagingController
	UploadController    controller.IUploadController

	// WebSockets & livesync
	LiveSyncHandler *handler.LiveSyncHandler
	WebSocketHub    *websocket.Hub
	LiveSyncService service.ILiveSyncService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub with its own log file
	wsLogger := logger.NewIsolatedLogger(cfg.App.LiveSyncLogPath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	liveSyncService := service.NewLiveSyncService(uowFactory, wsLogger)

	authService := service.NewAuthService(uowFactory, cfg)
	userService := service.NewUserService(uowFactory)
	petService := service.NewPetService(uowFactory)
	mapSpotService := service.NewMapSpotService(uowFactory, liveSyncService, natsPub, sysLogger)
	messagingService := service.NewMessagingService(uowFactory, liveSyncService, natsPub, cfg, sysLogger)
	uploadService := service.NewUploadService(cfg, sysLogger)

	// Notification worker (NATS -> hub)
	notifService := service.NewNotificationService(natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	// 4. Handlers & controllers
	liveSyncHandler := handler.NewLiveSyncHandler(wsHub, liveSyncService, messagingService, wsLogger)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		PetController:       controller.NewPetController(petService),
		MapSpotController:   controller.NewMapSpotController(mapSpotService),
		MessagingController: controller.NewMessagingController(messagingService),
		UploadController:    controller.NewUploadController(uploadService),

		LiveSyncHandler: liveSyncHandler,
		WebSocketHub:    wsHub,
		LiveSyncService: liveSyncService,
	}
}
