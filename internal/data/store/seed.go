package store

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/data/entity"
)

// Seed populates absent collections with the initial catalog. Existing data
// is never touched, so the store survives restarts intact.
func (s *Store) Seed(ctx context.Context) error {
	movies, err := s.Movies.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if movies == nil {
		kvStore, ok := s.Movies.(*movieStore)
		if !ok {
			return nil
		}
		if err := saveCollection(ctx, kvStore.kv, keyMovies, seedMovies()); err != nil {
			return fmt.Errorf("seed movies: %w", err)
		}
	}

	showtimes, err := s.Showtimes.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if showtimes == nil {
		kvStore, ok := s.Showtimes.(*showtimeStore)
		if !ok {
			return nil
		}
		if err := saveCollection(ctx, kvStore.kv, keyShowtimes, seedShowtimes()); err != nil {
			return fmt.Errorf("seed showtimes: %w", err)
		}
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedMovies() []entity.Movie {
	return []entity.Movie{
		{
			ID:          "m1",
			Title:       "RRR (Rise Roar Revolt)",
			Genres:      []string{"Action", "Drama", "History"},
			Duration:    187,
			Language:    "Telugu / Hindi",
			ReleaseDate: date(2022, time.March, 25),
			Rating:      9.1,
			Description: "A fictional story about two legendary revolutionaries and their journey away from home before they started fighting for their country in the 1920s.",
			PosterURL:   "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?q=80&w=800&auto=format&fit=crop",
			Status:      entity.MovieStatusNowShowing,
			CreatedAt:   date(2022, time.March, 25),
		},
		{
			ID:          "m2",
			Title:       "Baahubali 2: The Conclusion",
			Genres:      []string{"Action", "Fantasy"},
			Duration:    167,
			Language:    "Telugu / Hindi",
			ReleaseDate: date(2017, time.April, 28),
			Rating:      8.2,
			Description: "When Shiva, the son of Bahubali, learns about his heritage, he begins to look for answers. His story is juxtaposed with past events that unfolded in the Mahishmati Kingdom.",
			PosterURL:   "https://images.unsplash.com/photo-1594909122845-11baa439b7bf?q=80&w=800&auto=format&fit=crop",
			Status:      entity.MovieStatusNowShowing,
			CreatedAt:   date(2017, time.April, 28),
		},
		{
			ID:          "m3",
			Title:       "Dangal",
			Genres:      []string{"Biography", "Drama", "Sport"},
			Duration:    161,
			Language:    "Hindi",
			ReleaseDate: date(2016, time.December, 23),
			Rating:      8.3,
			Description: "Former wrestler Mahavir Singh Phogat and his two wrestler daughters struggle towards glory at the Commonwealth Games in the face of societal oppression.",
			PosterURL:   "https://images.unsplash.com/photo-1536440136628-849c177e76a1?q=80&w=800&auto=format&fit=crop",
			Status:      entity.MovieStatusNowShowing,
			CreatedAt:   date(2016, time.December, 23),
		},
		{
			ID:          "m4",
			Title:       "Pathaan",
			Genres:      []string{"Action", "Adventure", "Thriller"},
			Duration:    146,
			Language:    "Hindi",
			ReleaseDate: date(2023, time.January, 25),
			Rating:      7.0,
			Description: "An Indian spy takes on the leader of a group of mercenaries who have a nefarious plan to target his homeland.",
			PosterURL:   "https://images.unsplash.com/photo-1485846234645-a62644f84728?q=80&w=800&auto=format&fit=crop",
			Status:      entity.MovieStatusComingSoon,
			CreatedAt:   date(2023, time.January, 25),
		},
	}
}

func seedTheaters() []entity.Theater {
	return []entity.Theater{
		{ID: "t1", Name: "PVR Director's Cut", Location: "Vasant Kunj, Delhi"},
		{ID: "t2", Name: "Inox Insignia", Location: "Nariman Point, Mumbai"},
		{ID: "t3", Name: "Prasad's IMAX", Location: "Hyderabad"},
	}
}

func seedShowtimes() []entity.ShowTime {
	return []entity.ShowTime{
		{ID: "s1", MovieID: "m1", TheaterID: "t1", StartTime: "13:00", Price: 450, OccupiedSeats: []string{}},
		{ID: "s2", MovieID: "m1", TheaterID: "t2", StartTime: "17:30", Price: 600, OccupiedSeats: []string{"A1", "A2"}},
		{ID: "s3", MovieID: "m2", TheaterID: "t3", StartTime: "10:00", Price: 350, OccupiedSeats: []string{}},
		{ID: "s4", MovieID: "m3", TheaterID: "t1", StartTime: "20:15", Price: 550, OccupiedSeats: []string{}},
	}
}
