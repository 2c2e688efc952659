package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"

	"go.uber.org/zap"
)

// SessionStore tracks the single interactive session under the fixed "user"
// key, the way the original kept the logged-in user.
type SessionStore interface {
	Get(ctx context.Context) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Clear(ctx context.Context) error
}

type sessionStore struct {
	kv  database.KVIface
	mu  *sync.Mutex
	log *zap.Logger
}

func NewSessionStore(kv database.KVIface, mu *sync.Mutex, log *zap.Logger) SessionStore {
	return &sessionStore{
		kv:  kv,
		mu:  mu,
		log: log.With(zap.String("store", "session")),
	}
}

func (r *sessionStore) Get(ctx context.Context) (*entity.Session, error) {
	raw, err := r.kv.Get(ctx, keyUser)
	if err != nil {
		r.log.Error("Failed to load session", zap.Error(err))
		return nil, fmt.Errorf("load session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (r *sessionStore) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := r.kv.Put(ctx, keyUser, raw); err != nil {
		r.log.Error("Failed to save session",
			zap.Error(err),
			zap.String("user_id", session.User.ID),
		)
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *sessionStore) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.kv.Delete(ctx, keyUser); err != nil {
		r.log.Error("Failed to clear session", zap.Error(err))
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
