package store

import (
	"context"

	"cinebook/internal/data/entity"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// TheaterStore serves static reference data; theaters are never mutated and
// never persisted, matching the fixed key set of the KV boundary.
type TheaterStore interface {
	List(ctx context.Context) ([]entity.Theater, error)
	FindByID(ctx context.Context, id string) (*entity.Theater, error)
}

type theaterStore struct {
	theaters []entity.Theater
	log      *zap.Logger
}

func NewTheaterStore(log *zap.Logger) TheaterStore {
	return &theaterStore{
		theaters: seedTheaters(),
		log:      log.With(zap.String("store", "theater")),
	}
}

func (r *theaterStore) List(ctx context.Context) ([]entity.Theater, error) {
	return r.theaters, nil
}

func (r *theaterStore) FindByID(ctx context.Context, id string) (*entity.Theater, error) {
	theater, found := lo.Find(r.theaters, func(t entity.Theater) bool { return t.ID == id })
	if !found {
		return nil, nil
	}
	return &theater, nil
}
