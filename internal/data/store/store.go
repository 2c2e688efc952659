package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cinebook/pkg/database"

	"go.uber.org/zap"
)

// Fixed collection keys in the local key-value store. Each key holds the
// whole collection as one JSON blob; there are no partial updates.
const (
	keyUser      = "user"
	keyMovies    = "movies"
	keyShowtimes = "showtimes"
	keyBookings  = "bookings"
)

type Store struct {
	Movies    MovieStore
	Theaters  TheaterStore
	Showtimes ShowtimeStore
	Bookings  BookingStore
	Sessions  SessionStore
}

// NewStore wires all collection stores over one KV boundary. A single mutex
// serializes mutations across collections; the booking flow assumes one
// interactive session at a time and the lock is what makes the commit-time
// seat re-check meaningful.
func NewStore(kv database.KVIface, log *zap.Logger) *Store {
	mu := &sync.Mutex{}

	return &Store{
		Movies:    NewMovieStore(kv, mu, log),
		Theaters:  NewTheaterStore(log),
		Showtimes: NewShowtimeStore(kv, log),
		Bookings:  NewBookingStore(kv, mu, log),
		Sessions:  NewSessionStore(kv, mu, log),
	}
}

// loadCollection reads and decodes a whole collection blob. A missing key
// yields an empty collection.
func loadCollection[T any](ctx context.Context, kv database.KVIface, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", key, err)
	}
	return items, nil
}

func encodeCollection[T any](key string, items []T) ([]byte, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode collection %s: %w", key, err)
	}
	return raw, nil
}

func saveCollection[T any](ctx context.Context, kv database.KVIface, key string, items []T) error {
	raw, err := encodeCollection(key, items)
	if err != nil {
		return err
	}
	return kv.Put(ctx, key, raw)
}
