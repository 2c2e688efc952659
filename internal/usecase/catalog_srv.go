package usecase

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/store"
	"cinebook/internal/dto/request"
	"cinebook/internal/dto/response"
	"cinebook/pkg/utils"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type CatalogService interface {
	// GetMovies lists the catalog, optionally filtered by release status
	// ("now_showing" or "coming_soon"), one page at a time.
	GetMovies(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetTheaters(ctx context.Context) ([]response.TheaterResponse, error)
	GetShowtimesByMovie(ctx context.Context, movieID string) ([]response.ShowTimeResponse, error)
	GetShowtimeByID(ctx context.Context, showTimeID string) (*response.ShowTimeDetailResponse, error)

	// Admin
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type catalogService struct {
	store *store.Store
	log   *zap.Logger
}

func NewCatalogService(st *store.Store, log *zap.Logger) CatalogService {
	return &catalogService{
		store: st,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetMovies(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.store.Movies.List(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	if status != "" {
		movies = lo.Filter(movies, func(m entity.Movie, _ int) bool {
			return m.Status == entity.MovieStatus(status)
		})
	}

	total := int64(len(movies))

	offset := page.Offset()
	limit := page.Limit()
	if offset > len(movies) {
		offset = len(movies)
	}
	end := offset + limit
	if end > len(movies) {
		end = len(movies)
	}

	movieResponses := lo.Map(movies[offset:end], func(m entity.Movie, _ int) response.MovieResponse {
		return response.MovieToResponse(&m)
	})

	return response.NewPaginatedResponse(movieResponses, page.Page, page.PerPage, total), nil
}

func (s *catalogService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.store.Movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, entity.ErrNotFound)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) GetTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	theaters, err := s.store.Theaters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list theaters: %w", err)
	}

	return lo.Map(theaters, func(t entity.Theater, _ int) response.TheaterResponse {
		return response.TheaterToResponse(&t)
	}), nil
}

func (s *catalogService) GetShowtimesByMovie(ctx context.Context, movieID string) ([]response.ShowTimeResponse, error) {
	movie, err := s.store.Movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get showtimes: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, entity.ErrNotFound)
	}

	showtimes, err := s.store.Showtimes.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	return lo.Map(showtimes, func(st entity.ShowTime, _ int) response.ShowTimeResponse {
		return response.ShowTimeToResponse(&st, movie.Title, s.theaterName(ctx, st.TheaterID))
	}), nil
}

func (s *catalogService) GetShowtimeByID(ctx context.Context, showTimeID string) (*response.ShowTimeDetailResponse, error) {
	showTime, err := s.store.Showtimes.FindByID(ctx, showTimeID)
	if err != nil {
		return nil, fmt.Errorf("get showtime: %w", err)
	}
	if showTime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showTimeID, entity.ErrNotFound)
	}

	var movieTitle string
	if movie, _ := s.store.Movies.FindByID(ctx, showTime.MovieID); movie != nil {
		movieTitle = movie.Title
	}

	resp := response.ShowTimeToDetailResponse(showTime, movieTitle, s.theaterName(ctx, showTime.TheaterID))
	return &resp, nil
}

func (s *catalogService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("parse release date: %w", err)
	}

	movie := &entity.Movie{
		ID:          req.ID,
		Title:       req.Title,
		Genres:      req.Genres,
		Duration:    req.Duration,
		Language:    req.Language,
		ReleaseDate: releaseDate,
		Rating:      req.Rating,
		Description: req.Description,
		PosterURL:   req.PosterURL,
		Status:      entity.MovieStatus(req.Status),
		CreatedAt:   time.Now(),
	}
	if movie.ID == "" {
		movie.ID = utils.GenerateID()
	}

	if err := s.store.Movies.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) DeleteMovie(ctx context.Context, movieID string) error {
	if err := s.store.Movies.Delete(ctx, movieID); err != nil {
		return err
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

func (s *catalogService) theaterName(ctx context.Context, theaterID string) string {
	theater, _ := s.store.Theaters.FindByID(ctx, theaterID)
	if theater == nil {
		return ""
	}
	return theater.Name
}
