package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/dialog"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

const sessionKeySegment = "session:"

// SessionStore is the redis-backed dialog.SessionStore.  Sessions are stored
// as JSON blobs under "{prefix}session:{id}" and expire after the configured
// TTL; a zero TTL keeps them until explicitly cleared.
type SessionStore struct {
	client *Client
	logger logging.Logger
	prefix string
	ttl    time.Duration
}

// NewSessionStore builds a SessionStore over client.  prefix namespaces the
// keys, typically the application key prefix from config.
func NewSessionStore(client *Client, logger logging.Logger, prefix string, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, logger: logger, prefix: prefix, ttl: ttl}
}

func (s *SessionStore) key(id string) string {
	return s.prefix + sessionKeySegment + id
}

// GetOrCreate loads the stored session, or returns a fresh empty one when
// the key is missing or expired.
func (s *SessionStore) GetOrCreate(ctx context.Context, id string) (*dialog.Session, error) {
	data, err := s.client.rdb.Get(ctx, s.key(id)).Bytes()
	if err == goredis.Nil {
		return &dialog.Session{ID: id}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSessionStoreDown, "failed to load session")
	}

	var session dialog.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupted blob is unrecoverable.  Start the conversation over
		// rather than failing every turn on this id.
		s.logger.Warn("discarding corrupted session blob", logging.String("session_id", id), logging.Err(err))
		return &dialog.Session{ID: id}, nil
	}
	session.ID = id
	return &session, nil
}

// Save serializes the session and refreshes its TTL.
func (s *SessionStore) Save(ctx context.Context, session *dialog.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, errors.CodeSessionStoreDown, "failed to serialize session")
	}
	if err := s.client.rdb.Set(ctx, s.key(session.ID), data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, errors.CodeSessionStoreDown, "failed to save session")
	}
	return nil
}

// Clear removes the session key.  Unknown ids are a no-op.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if err := s.client.rdb.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Wrap(err, errors.CodeSessionStoreDown, "failed to clear session")
	}
	return nil
}
