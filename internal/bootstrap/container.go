package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/abhi-r/verdant/internal/config"
	"github.com/abhi-r/verdant/internal/controller"
	"github.com/abhi-r/verdant/internal/handler"
	"github.com/abhi-r/verdant/internal/pkg/logger"
	"github.com/abhi-r/verdant/internal/repository/contract"
	"github.com/abhi-r/verdant/internal/repository/memory"
	redisrepo "github.com/abhi-r/verdant/internal/repository/redis"
	"github.com/abhi-r/verdant/internal/repository/unitofwork"
	"github.com/abhi-r/verdant/internal/service"
	"github.com/abhi-r/verdant/internal/websocket"
	"github.com/abhi-r/verdant/pkg/catalog"
	"github.com/abhi-r/verdant/pkg/flow"
	pktNats "github.com/abhi-r/verdant/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FlowController    controller.IFlowController
	CatalogController controller.ICatalogController
	AdminController   controller.IAdminController
	MetaController    controller.IMetaController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	NoticeHandler *handler.NoticeHandler
	WebSocketHub  *websocket.Hub
}

// NewContainer wires the application. db may be nil: the catalog then
// serves the JSON fallback and flow events are not persisted.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	}
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
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
	redisAvailable := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisAvailable = false
	}

	// Session storage: redis when reachable so sessions survive
	// restarts, process memory otherwise.
	sessionTTL := time.Duration(cfg.Flow.SessionTTLHours) * time.Hour
	var sessionRepo contract.FlowSessionRepository
	if redisAvailable {
		sessionRepo = redisrepo.NewFlowSessionRepository(rdb, sessionTTL)
	} else {
		log.Printf("[WARN] Using in-memory session storage")
		sessionRepo = memory.NewFlowSessionRepository(sessionTTL)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notices.log")
	var hubRedis *redis.Client
	if redisAvailable {
		hubRedis = rdb
	}
	wsHub := websocket.NewHub(hubRedis, wsLogger)
	go wsHub.Run()

	// 3. Question tree
	engine, err := flow.NewEngine(flow.DefaultTree())
	if err != nil {
		log.Fatalf("[FATAL] Invalid question tree: %v", err)
	}

	// Catalog fallback dataset
	fallback, err := catalog.LoadFile(cfg.Catalog.DataPath)
	if err != nil {
		log.Printf("[WARN] Failed to load catalog dataset %s: %v", cfg.Catalog.DataPath, err)
		fallback = catalog.Dataset{}
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Flow.CompletedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Flow.CompletedTopic,
		uowFactory,
	)

	flowService := service.NewFlowService(
		engine,
		sessionRepo,
		publisherService,
		natsPub,
		wsHub,
		sysLogger,
		sessionTTL,
	)
	catalogService := service.NewCatalogService(uowFactory, fallback, sysLogger)
	adminService := service.NewAdminService(cfg.Admin, uowFactory, sysLogger)

	noticeHandler := handler.NewNoticeHandler(wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		NoticeHandler: noticeHandler,
		WebSocketHub:  wsHub,

		FlowController:    controller.NewFlowController(flowService),
		CatalogController: controller.NewCatalogController(catalogService),
		AdminController:   controller.NewAdminController(adminService),
		MetaController:    controller.NewMetaController(),

		ConsumerService: consumerService,
	}
}
