package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/avc/quickflip-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// formGateway подсчитывает обращения к шлюзу и возвращает заданный результат
type formGateway struct {
	result      *domain.Result
	err         error
	intakeCalls int
	sellerCalls int
}

func (g *formGateway) Login(ctx context.Context, username, password string) (*domain.LoginReply, error) {
	return nil, errors.New("not implemented")
}

func (g *formGateway) SubmitIntake(ctx context.Context, fields map[string]string) (*domain.Result, error) {
	g.intakeCalls++
	return g.result, g.err
}

func (g *formGateway) RegisterSeller(ctx context.Context, form domain.SellerForm) (*domain.Result, error) {
	g.sellerCalls++
	return g.result, g.err
}

func loggedInSession(t *testing.T) *store.SessionStore {
	t.Helper()

	session := store.NewSessionStore(storage.NewMemoryBridge())
	require.NoError(t, session.Init())
	require.NoError(t, session.Establish(domain.User{Username: "buyer@example.com", Role: domain.RoleBuyer}, "token"))

	return session
}

func validIntakeFields() map[string]string {
	return map[string]string{
		"companyName":        "Demo Company Ltd",
		"registrationNumber": "REG123456",
		"email":              "demo@company.com",
	}
}

func TestIntakeService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success marks intake done", func(t *testing.T) {
		gateway := &formGateway{result: &domain.Result{Success: true}}
		session := loggedInSession(t)
		svc := NewIntakeService(gateway, session, zap.NewNop())

		result, err := svc.Submit(ctx, validIntakeFields())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, session.Current().User.BusinessIntakeDone)
		assert.Equal(t, 1, gateway.intakeCalls)
	})

	t.Run("Validation failure makes no request", func(t *testing.T) {
		gateway := &formGateway{result: &domain.Result{Success: true}}
		session := loggedInSession(t)
		svc := NewIntakeService(gateway, session, zap.NewNop())

		fields := validIntakeFields()
		fields["email"] = "  "

		result, err := svc.Submit(ctx, fields)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, `Field "email" is required`, result.Message)
		assert.Zero(t, gateway.intakeCalls)
		assert.False(t, session.Current().User.BusinessIntakeDone)
	})

	t.Run("Remote rejection uses server message", func(t *testing.T) {
		gateway := &formGateway{result: &domain.Result{Success: false, Message: "Duplicate registration"}}
		session := loggedInSession(t)
		svc := NewIntakeService(gateway, session, zap.NewNop())

		result, err := svc.Submit(ctx, validIntakeFields())
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Duplicate registration", result.Message)
		assert.False(t, session.Current().User.BusinessIntakeDone)
	})

	t.Run("Network error", func(t *testing.T) {
		gateway := &formGateway{err: errors.New("connection reset")}
		session := loggedInSession(t)
		svc := NewIntakeService(gateway, session, zap.NewNop())

		result, err := svc.Submit(ctx, validIntakeFields())
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Network error. Please check your connection and try again.", result.Message)
	})
}

func TestSellerService_Register(t *testing.T) {
	ctx := context.Background()

	validForm := func() domain.SellerForm {
		return domain.SellerForm{
			Fields: map[string]string{
				"businessName": "Fresh Goods",
				"businessType": "sole_proprietor",
			},
			ProductCategories: []string{"electronics"},
			ShippingOptions:   []string{"courier"},
		}
	}

	t.Run("Success", func(t *testing.T) {
		gateway := &formGateway{result: &domain.Result{Success: true}}
		svc := NewSellerService(gateway, zap.NewNop())

		result, err := svc.Register(ctx, validForm())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 1, gateway.sellerCalls)
	})

	t.Run("Company requires registration number", func(t *testing.T) {
		gateway := &formGateway{result: &domain.Result{Success: true}}
		svc := NewSellerService(gateway, zap.NewNop())

		form := validForm()
		form.Fields["businessType"] = "company"

		result, err := svc.Register(ctx, form)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, `Field "companyRegNumber" is required`, result.Message)
		assert.Zero(t, gateway.sellerCalls)
	})

	t.Run("At least one product category", func(t *testing.T) {
		gateway := &formGateway{result: &domain.Result{Success: true}}
		svc := NewSellerService(gateway, zap.NewNop())

		form := validForm()
		form.ProductCategories = nil

		result, err := svc.Register(ctx, form)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Please select at least one product category", result.Message)
	})

	t.Run("At least one shipping option", func(t *testing.T) {
		gateway := &formGateway{result: &domain.Result{Success: true}}
		svc := NewSellerService(gateway, zap.NewNop())

		form := validForm()
		form.ShippingOptions = nil

		result, err := svc.Register(ctx, form)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Please select at least one shipping/delivery option", result.Message)
	})
}
