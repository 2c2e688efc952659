package store

import (
	"context"
	"fmt"
	"sync"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type MovieStore interface {
	List(ctx context.Context) ([]entity.Movie, error)
	FindByID(ctx context.Context, id string) (*entity.Movie, error)

	// Admin mutations
	Create(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id string) error
}

type movieStore struct {
	kv  database.KVIface
	mu  *sync.Mutex
	log *zap.Logger
}

func NewMovieStore(kv database.KVIface, mu *sync.Mutex, log *zap.Logger) MovieStore {
	return &movieStore{
		kv:  kv,
		mu:  mu,
		log: log.With(zap.String("store", "movie")),
	}
}

func (r *movieStore) List(ctx context.Context) ([]entity.Movie, error) {
	movies, err := loadCollection[entity.Movie](ctx, r.kv, keyMovies)
	if err != nil {
		r.log.Error("Failed to load movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (r *movieStore) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	movies, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	movie, found := lo.Find(movies, func(m entity.Movie) bool { return m.ID == id })
	if !found {
		return nil, nil
	}
	return &movie, nil
}

func (r *movieStore) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movies, err := loadCollection[entity.Movie](ctx, r.kv, keyMovies)
	if err != nil {
		return fmt.Errorf("create movie %s: %w", movie.ID, err)
	}

	if lo.ContainsBy(movies, func(m entity.Movie) bool { return m.ID == movie.ID }) {
		return fmt.Errorf("create movie %s: %w", movie.ID, entity.ErrDuplicateID)
	}

	movies = append(movies, *movie)

	if err := saveCollection(ctx, r.kv, keyMovies, movies); err != nil {
		r.log.Error("Failed to save movies",
			zap.Error(err),
			zap.String("movie_id", movie.ID),
		)
		return fmt.Errorf("create movie %s: %w", movie.ID, err)
	}

	r.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)
	return nil
}

func (r *movieStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movies, err := loadCollection[entity.Movie](ctx, r.kv, keyMovies)
	if err != nil {
		return fmt.Errorf("delete movie %s: %w", id, err)
	}

	remaining := lo.Filter(movies, func(m entity.Movie, _ int) bool { return m.ID != id })
	if len(remaining) == len(movies) {
		return fmt.Errorf("delete movie %s: %w", id, entity.ErrNotFound)
	}

	if err := saveCollection(ctx, r.kv, keyMovies, remaining); err != nil {
		r.log.Error("Failed to save movies",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("delete movie %s: %w", id, err)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}
