package usecase

import (
	"context"
	"testing"

	"cinebook/internal/data/store"
	"cinebook/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessionService(t *testing.T) (SessionService, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	return NewSessionService(st.Sessions, zap.NewNop()), st
}

func TestLogin(t *testing.T) {
	svc, st := newTestSessionService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, &request.LoginRequest{
		Email: "priya@example.com",
		Role:  "customer",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "priya", result.User.Name)
	assert.Equal(t, "customer", result.User.Role)

	session, err := st.Sessions.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, result.Token, session.Token)
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	svc, st := newTestSessionService(t)
	ctx := context.Background()

	first, err := svc.Login(ctx, &request.LoginRequest{Email: "a@example.com", Role: "customer"})
	require.NoError(t, err)

	second, err := svc.Login(ctx, &request.LoginRequest{Email: "b@example.com", Role: "admin"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	session, err := st.Sessions.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Token, session.Token)
	assert.Equal(t, "b@example.com", session.User.Email)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &request.LoginRequest{Email: "not-an-email", Role: "customer"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "a@example.com", Role: "superuser"})
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	svc, st := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &request.LoginRequest{Email: "a@example.com", Role: "customer"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	session, err := st.Sessions.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}
