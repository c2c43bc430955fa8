package bootstrap

import (
	"log"

	"helpdesk-assistant-be/internal/config"
	"helpdesk-assistant-be/internal/controller"
	"helpdesk-assistant-be/internal/pkg/logger"
	"helpdesk-assistant-be/internal/repository/memory"
	"helpdesk-assistant-be/internal/repository/unitofwork"
	"helpdesk-assistant-be/internal/service"
	"helpdesk-assistant-be/pkg/ai/intent"
	"helpdesk-assistant-be/pkg/ai/pipeline"
	"helpdesk-assistant-be/pkg/ai/router"
	"helpdesk-assistant-be/pkg/ai/tools"
	"helpdesk-assistant-be/pkg/embedding"
	"helpdesk-assistant-be/pkg/kb"
	"helpdesk-assistant-be/pkg/llm/factory"
	"helpdesk-assistant-be/pkg/rag"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController

	// Background services (run from main)
	IndexerService service.IIndexerService

	// Observability
	SysLogger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	stdLogger := log.Default()

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Reference tables and tools
	kbStore := kb.NewStore(cfg.Paths.KbDefaultDir, cfg.Paths.KbDataDir, stdLogger)
	registry := tools.NewRegistry(kbStore)

	// 4. Answer pipelines. Without Azure credentials the service runs in
	// fallback mode and never touches a backend.
	backendReady := cfg.AzureAvailable()

	var graph *pipeline.GraphPipeline
	var embeddingProvider embedding.EmbeddingProvider
	if backendReady {
		llmProvider, err := factory.NewLLMProvider(
			"azure",
			cfg.Azure.Endpoint,
			cfg.Azure.APIKey,
			cfg.Azure.APIVersion,
			cfg.Azure.ChatDeployment,
		)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
		}
		embeddingProvider = embedding.NewAzureProvider(
			cfg.Azure.Endpoint,
			cfg.Azure.APIKey,
			cfg.Azure.APIVersion,
			cfg.Azure.EmbedDeployment,
		)

		classifier := intent.NewClassifier(llmProvider, cfg.Azure.ClassifierModel, stdLogger)
		retriever := rag.NewVectorRetriever(embeddingProvider, uowFactory, stdLogger)
		graph = pipeline.NewGraphPipeline(classifier, registry, retriever, llmProvider, cfg.Azure.ChatDeployment, stdLogger)
		log.Printf("[INFO] Answer mode: GRAPH (Azure OpenAI, chat=%s)", cfg.Azure.ChatDeployment)
	} else {
		log.Printf("[INFO] Answer mode: FALLBACK (no LLM backend configured)")
	}

	fallback := pipeline.NewFallbackPipeline(kbStore, registry)
	facade := router.NewFacade(graph, fallback, backendReady, stdLogger)

	// 5. Session storage
	sessionRepo := memory.NewSessionRepository()

	// 6. Services
	publisherService := service.NewPublisherService(cfg.App.IndexTopicName, pubSub)
	assistantService := service.NewAssistantService(facade, uowFactory, sessionRepo, sysLogger)
	indexerService := service.NewIndexerService(
		pubSub,
		cfg.App.IndexTopicName,
		uowFactory,
		embeddingProvider,
		publisherService,
		kbStore,
		cfg.Paths.KbDataDir,
		backendReady,
		sysLogger,
	)

	// 7. Controllers
	assistantController := controller.NewAssistantController(assistantService, indexerService)

	return &Container{
		AssistantController: assistantController,
		IndexerService:      indexerService,
		SysLogger:           sysLogger,
	}
}
