package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"helpdesk-assistant-be/internal/dto"
	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/pkg/logger"
	"helpdesk-assistant-be/internal/repository/specification"
	"helpdesk-assistant-be/internal/repository/unitofwork"
	"helpdesk-assistant-be/pkg/embedding"
	"helpdesk-assistant-be/pkg/events"
	"helpdesk-assistant-be/pkg/kb"
	"helpdesk-assistant-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Chunking parameters for knowledge-base documents.
const (
	chunkSize    = 800
	chunkOverlap = 120
)

var indexableExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".csv": true,
}

type IIndexerService interface {
	Consume(ctx context.Context) error
	Upload(ctx context.Context, fileName string, content []byte) (*dto.UploadResponse, error)
	Sync(ctx context.Context) (*dto.SyncResponse, error)
}

type indexerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	publisher         IPublisherService
	kbStore           *kb.Store
	kbDataDir         string
	backendReady      bool
	logger            logger.ILogger
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	publisher IPublisherService,
	kbStore *kb.Store,
	kbDataDir string,
	backendReady bool,
	logger logger.ILogger,
) IIndexerService {
	return &indexerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		publisher:         publisher,
		kbStore:           kbStore,
		kbDataDir:         kbDataDir,
		backendReady:      backendReady,
		logger:            logger,
	}
}

// Upload stores the file under the kb data dir, records it, and queues
// an indexing event. Indexing itself happens on the consumer side.
func (s *indexerService) Upload(ctx context.Context, fileName string, content []byte) (*dto.UploadResponse, error) {
	if !s.backendReady {
		return nil, fmt.Errorf("indexing requires a configured embedding backend")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !indexableExtensions[ext] {
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}

	safeName := filepath.Base(fileName)
	if err := os.MkdirAll(s.kbDataDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(s.kbDataDir, safeName), content, 0o644); err != nil {
		return nil, err
	}

	doc := &entity.KbDocument{
		Id:        uuid.New(),
		FileName:  safeName,
		Status:    entity.KbDocumentStatusPending,
		CreatedAt: time.Now(),
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KbDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.NewKbDocumentUploaded(doc.Id.String(), safeName)); err != nil {
		return nil, err
	}

	return &dto.UploadResponse{
		DocumentId: doc.Id,
		FileName:   safeName,
		Status:     doc.Status,
	}, nil
}

func (s *indexerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	if !s.backendReady {
		s.logger.Warn("indexer", "dropping index message, no embedding backend configured", nil)
		msg.Ack()
		return
	}

	var payload dto.PublishIndexDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("indexer", "invalid index message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads would loop forever on retry
		return
	}

	s.logger.Info("indexer", "indexing document", map[string]interface{}{
		"document_id": payload.DocumentId.String(),
		"file_name":   payload.FileName,
	})

	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.KbDocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		msg.Nack()
		return
	}
	if doc == nil {
		s.logger.Warn("indexer", "document record missing, skipping", map[string]interface{}{
			"document_id": payload.DocumentId.String(),
		})
		msg.Ack()
		return
	}

	content, err := os.ReadFile(filepath.Join(s.kbDataDir, payload.FileName))
	if err != nil {
		s.markFailed(ctx, doc)
		s.logger.Error("indexer", "failed to read uploaded file", map[string]interface{}{
			"file_name": payload.FileName,
			"error":     err.Error(),
		})
		msg.Ack() // the file is gone, retrying cannot help
		return
	}

	if _, err := s.indexSource(ctx, payload.FileName, string(content)); err != nil {
		s.markFailed(ctx, doc)
		s.logger.Error("indexer", "indexing failed", map[string]interface{}{
			"file_name": payload.FileName,
			"error":     err.Error(),
		})
		msg.Nack()
		return
	}

	doc.Status = entity.KbDocumentStatusIndexed
	if err := uow.KbDocumentRepository().Update(ctx, doc); err != nil {
		s.logger.Warn("indexer", "failed to mark document indexed", map[string]interface{}{
			"document_id": doc.Id.String(),
			"error":       err.Error(),
		})
	}
	msg.Ack()
}

func (s *indexerService) markFailed(ctx context.Context, doc *entity.KbDocument) {
	doc.Status = entity.KbDocumentStatusFailed
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KbDocumentRepository().Update(ctx, doc); err != nil {
		s.logger.Warn("indexer", "failed to mark document failed", map[string]interface{}{
			"document_id": doc.Id.String(),
			"error":       err.Error(),
		})
	}
}

// indexSource replaces every stored chunk of one source with freshly
// embedded chunks and reports how many were written. Page numbers are
// chunk ordinals, 1-based.
func (s *indexerService) indexSource(ctx context.Context, source, content string) (int, error) {
	chunks := utils.SplitText(content, chunkSize, chunkOverlap)

	embeddings := make([]*entity.KbEmbedding, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := s.embeddingProvider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			return 0, fmt.Errorf("embedding chunk %d of %s: %w", i, source, err)
		}
		page := i + 1
		embeddings = append(embeddings, &entity.KbEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			Source:         source,
			Page:           &page,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	if err := uow.KbEmbeddingRepository().DeleteBySource(ctx, source); err != nil {
		return 0, err
	}
	if len(embeddings) > 0 {
		if err := uow.KbEmbeddingRepository().CreateBulk(ctx, embeddings); err != nil {
			return 0, err
		}
	}
	if err := uow.Commit(); err != nil {
		return 0, err
	}
	return len(embeddings), nil
}

// Sync re-embeds the reference tables and any files already sitting in
// the kb data dir.
func (s *indexerService) Sync(ctx context.Context) (*dto.SyncResponse, error) {
	if !s.backendReady {
		return &dto.SyncResponse{Ok: false}, nil
	}

	res := &dto.SyncResponse{Ok: true}

	// Reference tables as row documents.
	var faqDoc strings.Builder
	for _, entry := range s.kbStore.FAQ() {
		faqDoc.WriteString(fmt.Sprintf("질문: %s\n답변: %s\n\n", entry.Question, entry.Answer))
	}
	if faqDoc.Len() > 0 {
		n, err := s.indexSource(ctx, "faq_data.csv", faqDoc.String())
		if err != nil {
			return nil, err
		}
		res.IndexedChunks += n
		res.IndexedSources++
	}

	var ownerDoc strings.Builder
	for _, o := range s.kbStore.Owners() {
		ownerDoc.WriteString(fmt.Sprintf("화면: %s\n담당자: %s\n이메일: %s\n연락처: %s\n\n", o.Screen, o.Owner, o.Email, o.Phone))
	}
	if ownerDoc.Len() > 0 {
		n, err := s.indexSource(ctx, "owners.csv", ownerDoc.String())
		if err != nil {
			return nil, err
		}
		res.IndexedChunks += n
		res.IndexedSources++
	}

	// Loose files in the kb data dir.
	entries, err := os.ReadDir(s.kbDataDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == "owners.csv" || name == "faq_data.csv" {
			continue // already indexed as row documents
		}
		if !indexableExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		content, err := os.ReadFile(filepath.Join(s.kbDataDir, name))
		if err != nil {
			return nil, err
		}
		n, err := s.indexSource(ctx, name, string(content))
		if err != nil {
			return nil, err
		}
		res.IndexedChunks += n
		res.IndexedSources++
	}

	return res, nil
}
