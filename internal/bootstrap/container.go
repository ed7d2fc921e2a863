package bootstrap

import (
	"context"
	"log"
	"time"

	"research-gap-be/internal/config"
	"research-gap-be/internal/controller"
	"research-gap-be/internal/pkg/logger"
	"research-gap-be/internal/pkg/metrics"
	"research-gap-be/internal/repository/contract"
	"research-gap-be/internal/repository/implementation"
	"research-gap-be/internal/repository/memory"
	"research-gap-be/internal/service"
	"research-gap-be/pkg/events"
	"research-gap-be/pkg/gap"
	"research-gap-be/pkg/llm"
	"research-gap-be/pkg/llm/factory"
	pktNats "research-gap-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ResearchController   controller.IResearchController
	SavedQueryController controller.ISavedQueryController
	HistoryController    controller.IHistoryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Metrics *metrics.Metrics
	Logger  logger.ILogger

	closers []func()
}

// NewContainer builds the completion client from configuration and wires
// everything else around it. A missing credential is returned to the caller
// so the process can refuse to start.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	completer, err := factory.NewCompleter(factory.Config{
		Provider:      cfg.Ai.LLMProvider,
		APIKey:        cfg.Perplexity.APIKey,
		BaseURL:       cfg.Perplexity.BaseURL,
		Timeout:       cfg.Perplexity.Timeout,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		OllamaModel:   cfg.Ai.OllamaModel,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Using LLM Provider: %s", providerName(cfg.Ai.LLMProvider))

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	return Assemble(db, cfg, completer, sysLogger), nil
}

// Assemble wires the container around an already built completer.
func Assemble(db *gorm.DB, cfg *config.Config, completer llm.Completer, sysLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Observability
	met := metrics.NewMetrics()
	c.Metrics = met
	traced := llm.NewTracedCompleter(completer, func(m llm.Model, status string, elapsed time.Duration) {
		met.ObserveCompletion(string(m), status, elapsed)
	})

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Storage
	kv := c.keyValueStore(cfg)
	history := implementation.NewKVHistoryRepository(kv)

	var savedRepo contract.SavedQueryRepository
	if cfg.Store.Driver == "postgres" && db != nil {
		savedRepo = implementation.NewSavedQueryRepository(db)
		log.Printf("[INFO] Saved queries stored in PostgreSQL")
	} else {
		savedRepo = implementation.NewKVSavedQueryRepository(kv)
	}

	// 4. External forwarding
	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
		if natsPub != nil {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 5. Research pipeline
	fetchers := service.ResearchFetchers{
		Temporal:    gap.NewTemporalFetcher(traced, sysLogger, time.Now),
		Regional:    gap.NewRegionalFetcher(traced, sysLogger),
		Demographic: gap.NewDemographicFetcher(traced, sysLogger),
		Thematic:    gap.NewThematicFetcher(traced, sysLogger),
		Summary:     gap.NewSummaryFetcher(traced, sysLogger),
	}
	synthesizer := gap.NewSynthesizer(traced, sysLogger)

	eventPublisher := service.NewResearchEventPublisher(pubSub, events.TypeResearchCompleted, sysLogger)
	researchService := service.NewResearchService(fetchers, synthesizer, eventPublisher, met, sysLogger)
	savedQueryService := service.NewSavedQueryService(savedRepo, met, sysLogger)
	historyService := service.NewHistoryService(history)

	c.ConsumerService = service.NewConsumerService(
		pubSub,
		events.TypeResearchCompleted,
		history,
		forwarder,
		sysLogger,
	)

	// 6. Controllers
	c.ResearchController = controller.NewResearchController(researchService)
	c.SavedQueryController = controller.NewSavedQueryController(savedQueryService)
	c.HistoryController = controller.NewHistoryController(historyService)

	return c
}

// Close releases the event bus and broker connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func (c *Container) keyValueStore(cfg *config.Config) contract.KeyValueStore {
	if cfg.Store.Driver != "redis" {
		return memory.NewKeyValueStore()
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	return implementation.NewRedisKeyValueStore(rdb)
}

func providerName(p string) string {
	if p == "" {
		return "perplexity"
	}
	return p
}
