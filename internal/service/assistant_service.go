package service

import (
	"context"
	"time"

	"helpdesk-assistant-be/internal/constant"
	"helpdesk-assistant-be/internal/dto"
	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/pkg/logger"
	"helpdesk-assistant-be/internal/repository/memory"
	"helpdesk-assistant-be/internal/repository/unitofwork"
	"helpdesk-assistant-be/pkg/ai/router"
	"helpdesk-assistant-be/pkg/ai/state"
	"helpdesk-assistant-be/pkg/store"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Chat(ctx context.Context, req *dto.SendChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, sessionId string, limit int) ([]dto.ChatHistoryItemResponse, error)
	Status(ctx context.Context, sessionId string) (*dto.StatusResponse, error)
}

type assistantService struct {
	facade      *router.Facade
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
	logger      logger.ILogger
}

func NewAssistantService(
	facade *router.Facade,
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	logger logger.ILogger,
) IAssistantService {
	return &assistantService{
		facade:      facade,
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (s *assistantService) Chat(ctx context.Context, req *dto.SendChatRequest) (*dto.ChatResponse, error) {
	result := s.facade.Answer(ctx, req.Message, req.SessionId)

	// History and session bookkeeping must never take the reply down.
	s.persistTurn(ctx, req, result)
	s.recordSession(req, result)

	return &dto.ChatResponse{
		Reply:   result.Reply,
		Intent:  string(result.Intent),
		Sources: mapCitations(result.Sources),
	}, nil
}

func (s *assistantService) persistTurn(ctx context.Context, req *dto.SendChatRequest, result state.Result) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatMessageRepository()

	now := time.Now()
	messages := []*entity.ChatMessage{
		{
			Id:        uuid.New(),
			SessionId: req.SessionId,
			Role:      constant.ChatMessageRoleUser,
			Message:   req.Message,
			CreatedAt: now,
		},
		{
			Id:        uuid.New(),
			SessionId: req.SessionId,
			Role:      constant.ChatMessageRoleAssistant,
			Message:   result.Reply,
			Intent:    string(result.Intent),
			CreatedAt: now,
		},
	}

	for _, msg := range messages {
		if err := repo.Create(ctx, msg); err != nil {
			s.logger.Warn("assistant", "failed to persist chat message", map[string]interface{}{
				"session_id": req.SessionId,
				"role":       msg.Role,
				"error":      err.Error(),
			})
			return
		}
	}
}

func (s *assistantService) recordSession(req *dto.SendChatRequest, result state.Result) {
	mode := store.ModeFallback
	if s.facade.BackendReady() {
		mode = store.ModeGraph
	}

	session, found := s.sessionRepo.Get(req.SessionId)
	if !found {
		session = &store.Session{ID: req.SessionId}
	}
	session.Mode = mode
	session.LastIntent = string(result.Intent)
	session.LastQuery = req.Message
	session.Turns++
	s.sessionRepo.Save(session)
}

func (s *assistantService) History(ctx context.Context, sessionId string, limit int) ([]dto.ChatHistoryItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindBySession(ctx, sessionId, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatHistoryItemResponse, len(messages))
	for i, msg := range messages {
		items[i] = dto.ChatHistoryItemResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Message:   msg.Message,
			Intent:    msg.Intent,
			CreatedAt: msg.CreatedAt,
		}
	}
	return items, nil
}

func (s *assistantService) Status(ctx context.Context, sessionId string) (*dto.StatusResponse, error) {
	res := &dto.StatusResponse{
		Ok:             true,
		Mode:           store.ModeFallback,
		AzureAvailable: s.facade.BackendReady(),
	}
	if s.facade.BackendReady() {
		res.Mode = store.ModeGraph
	}
	if session, found := s.sessionRepo.Get(sessionId); found {
		res.LastIntent = session.LastIntent
	}
	return res, nil
}

// mapCitations converts pipeline citations to their transport shape,
// dropping repeats of the same (source, page) pair while keeping rank
// order.
func mapCitations(sources []state.Citation) []dto.CitationDTO {
	type key struct {
		source string
		page   int
		hasPg  bool
	}

	seen := make(map[key]bool, len(sources))
	out := make([]dto.CitationDTO, 0, len(sources))
	for _, c := range sources {
		k := key{source: c.Source}
		if c.Page != nil {
			k.page = *c.Page
			k.hasPg = true
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, dto.CitationDTO{
			Source: c.Source,
			Page:   c.Page,
			Index:  c.Index,
		})
	}
	return out
}
