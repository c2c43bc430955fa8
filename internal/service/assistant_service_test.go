package service

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"helpdesk-assistant-be/internal/dto"
	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/pkg/logger"
	"helpdesk-assistant-be/internal/repository/contract"
	"helpdesk-assistant-be/internal/repository/memory"
	"helpdesk-assistant-be/internal/repository/specification"
	"helpdesk-assistant-be/internal/repository/unitofwork"
	"helpdesk-assistant-be/pkg/ai/pipeline"
	"helpdesk-assistant-be/pkg/ai/router"
	"helpdesk-assistant-be/pkg/ai/state"
	"helpdesk-assistant-be/pkg/ai/tools"
	"helpdesk-assistant-be/pkg/kb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = noopLogger{}

type fakeChatMessageRepo struct {
	created []*entity.ChatMessage
	err     error
}

func (r *fakeChatMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, message)
	return nil
}

func (r *fakeChatMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	return r.created, nil
}

func (r *fakeChatMessageRepo) FindBySession(ctx context.Context, sessionId string, limit int) ([]*entity.ChatMessage, error) {
	return r.created, nil
}

func (r *fakeChatMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeUow struct {
	chatRepo *fakeChatMessageRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return u.chatRepo
}
func (u *fakeUow) KbDocumentRepository() contract.KbDocumentRepository   { return nil }
func (u *fakeUow) KbEmbeddingRepository() contract.KbEmbeddingRepository { return nil }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFallbackService(t *testing.T, chatRepo *fakeChatMessageRepo) (IAssistantService, *memory.SessionRepository) {
	t.Helper()
	stdLogger := log.New(os.Stderr, "", 0)
	store := kb.NewStore(t.TempDir(), t.TempDir(), stdLogger)
	registry := tools.NewRegistry(store)
	fallback := pipeline.NewFallbackPipeline(store, registry)
	facade := router.NewFacade(nil, fallback, false, stdLogger)

	sessionRepo := memory.NewSessionRepository()
	svc := NewAssistantService(facade, &fakeUowFactory{uow: &fakeUow{chatRepo: chatRepo}}, sessionRepo, noopLogger{})
	return svc, sessionRepo
}

func TestChatPersistsBothTurns(t *testing.T) {
	chatRepo := &fakeChatMessageRepo{}
	svc, _ := newFallbackService(t, chatRepo)

	res, err := svc.Chat(context.Background(), &dto.SendChatRequest{Message: "안녕", SessionId: "s1"})
	require.NoError(t, err)
	assert.Equal(t, string(state.IntentGreeting), res.Intent)

	require.Len(t, chatRepo.created, 2)
	assert.Equal(t, "user", chatRepo.created[0].Role)
	assert.Equal(t, "assistant", chatRepo.created[1].Role)
	assert.Equal(t, res.Reply, chatRepo.created[1].Message)
}

func TestChatSurvivesPersistFailure(t *testing.T) {
	chatRepo := &fakeChatMessageRepo{err: errors.New("db down")}
	svc, _ := newFallbackService(t, chatRepo)

	res, err := svc.Chat(context.Background(), &dto.SendChatRequest{Message: "안녕", SessionId: "s1"})
	require.NoError(t, err, "history failures must not fail the reply")
	assert.NotEmpty(t, res.Reply)
	assert.NotNil(t, res.Sources)
}

func TestChatRecordsSession(t *testing.T) {
	svc, sessionRepo := newFallbackService(t, &fakeChatMessageRepo{})

	_, err := svc.Chat(context.Background(), &dto.SendChatRequest{Message: "안녕", SessionId: "s9"})
	require.NoError(t, err)

	session, found := sessionRepo.Get("s9")
	require.True(t, found)
	assert.Equal(t, string(state.IntentGreeting), session.LastIntent)
	assert.Equal(t, 1, session.Turns)
}

func TestStatusReportsFallbackMode(t *testing.T) {
	svc, _ := newFallbackService(t, &fakeChatMessageRepo{})

	status, err := svc.Status(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, status.Ok)
	assert.False(t, status.AzureAvailable)
	assert.Equal(t, "FALLBACK", status.Mode)
}

func TestMapCitationsDedupKeepsRankOrder(t *testing.T) {
	p2, p3 := 2, 3
	sources := []state.Citation{
		{Source: "guide.md", Page: &p2, Index: 1},
		{Source: "guide.md", Page: &p3, Index: 2},
		{Source: "guide.md", Page: &p2, Index: 3}, // duplicate of the first
		{Source: "guide.md", Index: 4},            // pageless is distinct
	}

	got := mapCitations(sources)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, 4, got[2].Index)
}

func TestMapCitationsEmptyNeverNil(t *testing.T) {
	got := mapCitations([]state.Citation{})
	require.NotNil(t, got)
	assert.Empty(t, got)
}
