package service

import (
	"context"
	"log"
	"os"
	"testing"

	"helpdesk-assistant-be/pkg/kb"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackendlessIndexer(t *testing.T) IIndexerService {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	store := kb.NewStore(t.TempDir(), t.TempDir(), log.New(os.Stderr, "", 0))
	publisher := NewPublisherService("kb.index", pubSub)
	return NewIndexerService(
		pubSub,
		"kb.index",
		&fakeUowFactory{uow: &fakeUow{chatRepo: &fakeChatMessageRepo{}}},
		nil, // no embedding provider without Azure credentials
		publisher,
		store,
		t.TempDir(),
		false,
		noopLogger{},
	)
}

func TestSyncWithoutBackendReportsNotOk(t *testing.T) {
	svc := newBackendlessIndexer(t)

	res, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Ok)
	assert.Zero(t, res.IndexedChunks)
	assert.Zero(t, res.IndexedSources)
}

func TestUploadWithoutBackendIsRejected(t *testing.T) {
	svc := newBackendlessIndexer(t)

	_, err := svc.Upload(context.Background(), "notes.md", []byte("# 사내 규정"))
	require.Error(t, err)
}
