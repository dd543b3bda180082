package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/store"
	"github.com/avc/quickflip-dashboard/internal/utils/token"
	"go.uber.org/zap"
)

// AuthService выполняет вход через удалённый шлюз и управляет сессией
type AuthService struct {
	gateway      domain.GatewayClient
	session      *store.SessionStore
	coordinator  domain.Coordinator
	tokenManager *token.Manager
	loginTimeout time.Duration
	logger       *zap.Logger
}

// NewAuthService создает новый AuthService
func NewAuthService(
	gateway domain.GatewayClient,
	session *store.SessionStore,
	coordinator domain.Coordinator,
	tokenManager *token.Manager,
	loginTimeout time.Duration,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		gateway:      gateway,
		session:      session,
		coordinator:  coordinator,
		tokenManager: tokenManager,
		loginTimeout: loginTimeout,
		logger:       logger,
	}
}

// Login аутентифицирует пользователя.
// Любая ошибка возвращается структурированным результатом,
// прежняя сессия при неудаче остаётся нетронутой
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Result, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.Result{Success: false, Message: msgMissingCredentials}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.loginTimeout)
	defer cancel()

	reply, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return domain.Result{Success: false, Message: loginFailureMessage(err)}, nil
	}

	if reply.Result != "OK" || reply.SessionKey == "" {
		message := reply.FailureMessage()
		if message == "" {
			message = msgInvalidCredentials
		}
		return domain.Result{Success: false, Message: message}, nil
	}

	user := domain.User{
		Username:       username,
		Name:           username,
		Role:           domain.RoleBuyer,
		SessionKey:     reply.SessionKey,
		LoginTimestamp: reply.CTS,
		LoginTime:      time.Now(),
	}
	if strings.Contains(username, "@") {
		user.Email = username
	}

	apiToken, err := s.tokenManager.Generate(username, user.Role)
	if err != nil {
		return domain.Result{}, fmt.Errorf("auth service: failed to generate token for user %q: %w", username, err)
	}

	if err := s.session.Establish(user, apiToken); err != nil {
		return domain.Result{}, fmt.Errorf("auth service: failed to establish session for user %q: %w", username, err)
	}

	s.logger.Info("user logged in", zap.String("username", username))
	return domain.Result{Success: true, Message: "Login successful"}, nil
}

// Logout завершает сессию после подтверждения пользователем
func (s *AuthService) Logout(ctx context.Context) (domain.Result, error) {
	confirmed, err := s.coordinator.Confirm(ctx, "Logout", "Are you sure you want to logout?")
	if err != nil {
		return domain.Result{}, fmt.Errorf("auth service: logout confirmation failed: %w", err)
	}

	if !confirmed {
		return domain.Result{Success: false, Message: "Logout cancelled"}, nil
	}

	if err := s.session.Clear(); err != nil {
		return domain.Result{}, fmt.Errorf("auth service: failed to clear session: %w", err)
	}

	s.logger.Info("user logged out")
	return domain.Result{Success: true, Message: "Logged out"}, nil
}

// loginFailureMessage превращает ошибку шлюза в сообщение пользователю
func loginFailureMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.UserMessage()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return msgRequestTimeout
	}

	return msgNetworkError
}
