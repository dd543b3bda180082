package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/avc/quickflip-dashboard/internal/store"
	"github.com/avc/quickflip-dashboard/internal/utils/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubGateway реализует domain.GatewayClient для тестов
type stubGateway struct {
	loginReply *domain.LoginReply
	loginErr   error
	calls      int
}

func (g *stubGateway) Login(ctx context.Context, username, password string) (*domain.LoginReply, error) {
	g.calls++
	if g.loginErr != nil {
		return nil, g.loginErr
	}
	return g.loginReply, nil
}

func (g *stubGateway) SubmitIntake(ctx context.Context, fields map[string]string) (*domain.Result, error) {
	return &domain.Result{Success: true}, nil
}

func (g *stubGateway) RegisterSeller(ctx context.Context, form domain.SellerForm) (*domain.Result, error) {
	return &domain.Result{Success: true}, nil
}

// stubCoordinator всегда отвечает заранее заданным решением
type stubCoordinator struct {
	answer bool
}

func (c *stubCoordinator) Confirm(ctx context.Context, title, message string) (bool, error) {
	return c.answer, nil
}

func (c *stubCoordinator) Alert(ctx context.Context, title, message string) error { return nil }
func (c *stubCoordinator) Current() domain.ModalState                             { return domain.ModalState{} }
func (c *stubCoordinator) Resolve(id string, confirmed bool) error                { return nil }

func newAuthService(t *testing.T, gateway domain.GatewayClient, confirm bool) (*AuthService, *store.SessionStore) {
	t.Helper()

	session := store.NewSessionStore(storage.NewMemoryBridge())
	require.NoError(t, session.Init())

	svc := NewAuthService(
		gateway,
		session,
		&stubCoordinator{answer: confirm},
		token.NewManager("test-secret", time.Hour),
		time.Second,
		zap.NewNop(),
	)

	return svc, session
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		gateway := &stubGateway{loginReply: &domain.LoginReply{Result: "OK", SessionKey: "remote-key", CTS: "1718000000"}}
		svc, session := newAuthService(t, gateway, true)

		result, err := svc.Login(ctx, "  buyer@example.com ", "secret")
		require.NoError(t, err)
		assert.True(t, result.Success)

		current := session.Current()
		require.True(t, current.LoggedIn)
		assert.Equal(t, "buyer@example.com", current.User.Username)
		assert.Equal(t, "buyer@example.com", current.User.Email)
		assert.Equal(t, domain.RoleBuyer, current.User.Role)
		assert.Equal(t, "remote-key", current.User.SessionKey)
		assert.Equal(t, "1718000000", current.User.LoginTimestamp)
		assert.NotEmpty(t, current.APIToken)
	})

	t.Run("Username without email stays without email", func(t *testing.T) {
		gateway := &stubGateway{loginReply: &domain.LoginReply{Result: "OK", SessionKey: "key"}}
		svc, session := newAuthService(t, gateway, true)

		result, err := svc.Login(ctx, "buyer1", "secret")
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Empty(t, session.Current().User.Email)
	})

	t.Run("Missing credentials", func(t *testing.T) {
		gateway := &stubGateway{}
		svc, session := newAuthService(t, gateway, true)

		result, err := svc.Login(ctx, "", "secret")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Please enter both email/username and password", result.Message)
		assert.Zero(t, gateway.calls)
		assert.False(t, session.Current().LoggedIn)
	})

	t.Run("Network error leaves prior session unchanged", func(t *testing.T) {
		okGateway := &stubGateway{loginReply: &domain.LoginReply{Result: "OK", SessionKey: "first-key"}}
		svc, session := newAuthService(t, okGateway, true)
		_, err := svc.Login(ctx, "buyer@example.com", "secret")
		require.NoError(t, err)

		failing := &stubGateway{loginErr: errors.New("connection refused")}
		svc = NewAuthService(failing, session, &stubCoordinator{}, token.NewManager("test-secret", time.Hour), time.Second, zap.NewNop())

		result, err := svc.Login(ctx, "buyer@example.com", "secret")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, msgNetworkError, result.Message)

		current := session.Current()
		assert.True(t, current.LoggedIn)
		assert.Equal(t, "first-key", current.User.SessionKey)
	})

	t.Run("Timeout", func(t *testing.T) {
		gateway := &stubGateway{loginErr: fmt.Errorf("gateway client: %w", context.DeadlineExceeded)}
		svc, _ := newAuthService(t, gateway, true)

		result, err := svc.Login(ctx, "buyer@example.com", "secret")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, msgRequestTimeout, result.Message)
	})

	t.Run("HTTP status mapped to message", func(t *testing.T) {
		gateway := &stubGateway{loginErr: NewStatusError(401)}
		svc, _ := newAuthService(t, gateway, true)

		result, err := svc.Login(ctx, "buyer@example.com", "wrong")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid username or password", result.Message)
	})

	t.Run("Remote rejection uses server message", func(t *testing.T) {
		gateway := &stubGateway{loginReply: &domain.LoginReply{Result: "FAIL", Error: "Account locked"}}
		svc, _ := newAuthService(t, gateway, true)

		result, err := svc.Login(ctx, "buyer@example.com", "secret")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Account locked", result.Message)
	})

	t.Run("Remote rejection without message falls back", func(t *testing.T) {
		gateway := &stubGateway{loginReply: &domain.LoginReply{Result: "OK"}} // нет sessionkey
		svc, _ := newAuthService(t, gateway, true)

		result, err := svc.Login(ctx, "buyer@example.com", "secret")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, msgInvalidCredentials, result.Message)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	login := func(t *testing.T, confirm bool) (*AuthService, *store.SessionStore) {
		gateway := &stubGateway{loginReply: &domain.LoginReply{Result: "OK", SessionKey: "key"}}
		svc, session := newAuthService(t, gateway, confirm)
		_, err := svc.Login(ctx, "buyer@example.com", "secret")
		require.NoError(t, err)
		return svc, session
	}

	t.Run("Confirmed", func(t *testing.T) {
		svc, session := login(t, true)

		result, err := svc.Logout(ctx)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, session.Current().LoggedIn)
	})

	t.Run("Declined", func(t *testing.T) {
		svc, session := login(t, false)

		result, err := svc.Logout(ctx)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Logout cancelled", result.Message)
		assert.True(t, session.Current().LoggedIn)
	})
}
