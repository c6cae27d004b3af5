package bootstrap

import (
	"fmt"

	"maverik-copilot-be/internal/config"
	"maverik-copilot-be/internal/controller"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/pkg/mailer"
	"maverik-copilot-be/internal/pkg/serverutils"
	"maverik-copilot-be/internal/pkg/token"
	"maverik-copilot-be/internal/repository/memory"
	"maverik-copilot-be/internal/repository/unitofwork"
	"maverik-copilot-be/internal/service"
	pktNats "maverik-copilot-be/pkg/nats"
	"maverik-copilot-be/pkg/rag"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Container struct {
	// Controllers
	HealthController  controller.IHealthController
	UserController    controller.IUserController
	CopilotController controller.ICopilotController
	CatalogController controller.ICatalogController
	DebugController   controller.IDebugController

	AuthMiddleware fiber.Handler
	Logger         logger.ILogger

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

// NewContainer wires every component. db may be nil when cfg.App.Storage is "memory".
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.ILogger) (*Container, error) {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	switch cfg.App.Storage {
	case StorageMemory:
		uowFactory = memory.NewRepositoryFactory(memory.NewStore())
	case StoragePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres storage selected but no database connection")
		}
		uowFactory = unitofwork.NewRepositoryFactory(db)
	default:
		return nil, fmt.Errorf("unknown APP_STORAGE %q", cfg.App.Storage)
	}

	issuer, err := token.NewIssuer(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid SECRET_KEY: %w", err)
	}

	emailService := mailer.NewEmailService(cfg.Mail, cfg.App.FrontendURL)
	ragClient := rag.NewClient(cfg.Rag.BaseURL, cfg.Rag.Timeout)

	c := &Container{Logger: log}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NopLogger{},
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// NATS is optional; business events are still logged without it
	var eventPublisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Warn(logger.App, "Failed to connect to NATS, business events are log-only", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Services
	emitter := service.NewEventEmitter(log, eventPublisher)
	catalogService := service.NewCatalogService(uowFactory, memory.NewLookupCache())
	publisherService := service.NewPublisherService(cfg.Mail.WelcomeTopic, pubSub)
	userService := service.NewUserService(uowFactory, catalogService, publisherService, emitter, issuer, log, cfg.IsProduction())
	advisoryService := service.NewAdvisoryService(uowFactory, catalogService, emitter)
	relayService := service.NewChatRelayService(uowFactory, ragClient, emitter, log)

	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Mail.WelcomeTopic, emailService, log)
	c.AuthMiddleware = serverutils.BearerAuth(issuer, log)

	// 4. Controllers
	c.HealthController = controller.NewHealthController(cfg.App.Version)
	c.UserController = controller.NewUserController(userService)
	c.CopilotController = controller.NewCopilotController(advisoryService, relayService)
	c.CatalogController = controller.NewCatalogController(catalogService)
	if cfg.App.DebugEndpointsEnabled {
		c.DebugController = controller.NewDebugController(
			service.NewDebugService(uowFactory, advisoryService, ragClient, log),
		)
	}

	return c, nil
}

// Close releases the event bus and NATS connection.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
