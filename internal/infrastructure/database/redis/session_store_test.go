package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/dialog"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

func newMockStore(t *testing.T, ttl time.Duration) (*SessionStore, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	client := NewClientWithRedis(db, logging.NewNopLogger())
	return NewSessionStore(client, logging.NewNopLogger(), "legalaid:", ttl), mock
}

func TestSessionStoreGetOrCreateMissingKey(t *testing.T) {
	store, mock := newMockStore(t, 0)

	mock.ExpectGet("legalaid:session:s1").RedisNil()

	session, err := store.GetOrCreate(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	assert.Empty(t, session.History)
	assert.False(t, session.Context.IssueIdentified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store, mock := newMockStore(t, time.Hour)

	session := &dialog.Session{
		ID: "s2",
		History: []dialog.Turn{
			{Role: dialog.RoleUser, Message: "I was arrested", Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		Context: dialog.Context{PrimaryIssue: dialog.FlowArrest, IssueIdentified: true},
	}
	data, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet("legalaid:session:s2", data, time.Hour).SetVal("OK")
	require.NoError(t, store.Save(context.Background(), session))

	mock.ExpectGet("legalaid:session:s2").SetVal(string(data))
	loaded, err := store.GetOrCreate(context.Background(), "s2")
	require.NoError(t, err)
	assert.Equal(t, session.History, loaded.History)
	assert.Equal(t, dialog.FlowArrest, loaded.Context.PrimaryIssue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStoreCorruptedBlobStartsFresh(t *testing.T) {
	store, mock := newMockStore(t, 0)

	mock.ExpectGet("legalaid:session:s3").SetVal("{not json")

	session, err := store.GetOrCreate(context.Background(), "s3")
	require.NoError(t, err)
	assert.Equal(t, "s3", session.ID)
	assert.Empty(t, session.History)
}

func TestSessionStoreGetError(t *testing.T) {
	store, mock := newMockStore(t, 0)

	mock.ExpectGet("legalaid:session:s4").SetErr(assert.AnError)

	_, err := store.GetOrCreate(context.Background(), "s4")
	assert.True(t, errors.IsCode(err, errors.CodeSessionStoreDown))
}

func TestSessionStoreClear(t *testing.T) {
	store, mock := newMockStore(t, 0)

	mock.ExpectDel("legalaid:session:s5").SetVal(1)
	require.NoError(t, store.Clear(context.Background(), "s5"))

	mock.ExpectDel("legalaid:session:unknown").SetVal(0)
	require.NoError(t, store.Clear(context.Background(), "unknown"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
