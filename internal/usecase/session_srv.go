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

	"go.uber.org/zap"
)

type SessionService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context) error
}

type sessionService struct {
	sessions store.SessionStore
	log      *zap.Logger
}

func NewSessionService(sessions store.SessionStore, log *zap.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		log:      log.With(zap.String("service", "session")),
	}
}

// Login is demo-grade identity: any well-formed email signs in with the
// requested role, no credential check. The derived display name mirrors
// the local part of the address.
func (s *sessionService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user := entity.User{
		ID:    utils.GenerateID(),
		Name:  nameFromEmail(req.Email),
		Email: req.Email,
		Role:  entity.UserRole(req.Role),
	}

	session := &entity.Session{
		User:      user,
		Token:     utils.GenerateSessionToken(),
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("role", req.Role),
	)

	return &response.LoginResponse{
		User:  response.UserToResponse(&user),
		Token: session.Token,
	}, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info("User logged out")
	return nil
}

func nameFromEmail(email string) string {
	for i, c := range email {
		if c == '@' {
			return email[:i]
		}
	}
	return email
}
