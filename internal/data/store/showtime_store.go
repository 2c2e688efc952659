package store

import (
	"context"
	"fmt"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ShowtimeStore is read-only; seat occupancy changes go through
// BookingStore so that they stay paired with booking records.
type ShowtimeStore interface {
	List(ctx context.Context) ([]entity.ShowTime, error)
	FindByID(ctx context.Context, id string) (*entity.ShowTime, error)
	FindByMovieID(ctx context.Context, movieID string) ([]entity.ShowTime, error)
}

type showtimeStore struct {
	kv  database.KVIface
	log *zap.Logger
}

func NewShowtimeStore(kv database.KVIface, log *zap.Logger) ShowtimeStore {
	return &showtimeStore{
		kv:  kv,
		log: log.With(zap.String("store", "showtime")),
	}
}

func (r *showtimeStore) List(ctx context.Context) ([]entity.ShowTime, error) {
	showtimes, err := loadCollection[entity.ShowTime](ctx, r.kv, keyShowtimes)
	if err != nil {
		r.log.Error("Failed to load showtimes", zap.Error(err))
		return nil, fmt.Errorf("list showtimes: %w", err)
	}
	return showtimes, nil
}

func (r *showtimeStore) FindByID(ctx context.Context, id string) (*entity.ShowTime, error) {
	showtimes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	showtime, found := lo.Find(showtimes, func(st entity.ShowTime) bool { return st.ID == id })
	if !found {
		return nil, nil
	}
	return &showtime, nil
}

func (r *showtimeStore) FindByMovieID(ctx context.Context, movieID string) ([]entity.ShowTime, error) {
	showtimes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Filter(showtimes, func(st entity.ShowTime, _ int) bool {
		return st.MovieID == movieID
	}), nil
}
