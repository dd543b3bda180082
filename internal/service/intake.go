package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/store"
	"go.uber.org/zap"
)

// requiredIntakeFields перечисляет обязательные поля бизнес-анкеты
var requiredIntakeFields = []string{"companyName", "registrationNumber", "email"}

// IntakeService отправляет бизнес-анкету на удалённый шлюз
type IntakeService struct {
	gateway domain.GatewayClient
	session *store.SessionStore
	logger  *zap.Logger
}

// NewIntakeService создает новый IntakeService
func NewIntakeService(gateway domain.GatewayClient, session *store.SessionStore, logger *zap.Logger) *IntakeService {
	return &IntakeService{gateway: gateway, session: session, logger: logger}
}

// Submit проверяет и отправляет анкету.
// Ошибки валидации не порождают ни запроса, ни изменения состояния
func (s *IntakeService) Submit(ctx context.Context, fields map[string]string) (domain.Result, error) {
	for _, field := range requiredIntakeFields {
		if strings.TrimSpace(fields[field]) == "" {
			return domain.Result{Success: false, Message: fmt.Sprintf("Field %q is required", field)}, nil
		}
	}

	result, err := s.gateway.SubmitIntake(ctx, fields)
	if err != nil {
		s.logger.Warn("intake submission failed", zap.Error(err))
		return domain.Result{Success: false, Message: "Network error. Please check your connection and try again."}, nil
	}

	if !result.Success {
		message := result.Message
		if message == "" {
			message = msgIntakeFailed
		}
		return domain.Result{Success: false, Message: message}, nil
	}

	if _, err := s.session.MarkIntakeDone(); err != nil {
		return domain.Result{}, fmt.Errorf("intake service: failed to mark intake done: %w", err)
	}

	return domain.Result{
		Success: true,
		Message: "Business intake completed successfully! Redirecting to subscription selection...",
	}, nil
}

// SellerService отправляет заявку на регистрацию продавца
type SellerService struct {
	gateway domain.GatewayClient
	logger  *zap.Logger
}

// NewSellerService создает новый SellerService
func NewSellerService(gateway domain.GatewayClient, logger *zap.Logger) *SellerService {
	return &SellerService{gateway: gateway, logger: logger}
}

// Register проверяет и отправляет заявку продавца.
// Регистрационный номер обязателен для компаний
func (s *SellerService) Register(ctx context.Context, form domain.SellerForm) (domain.Result, error) {
	if strings.TrimSpace(form.Fields["businessName"]) == "" {
		return domain.Result{Success: false, Message: `Field "businessName" is required`}, nil
	}

	businessType := form.Fields["businessType"]
	if businessType == "company" || businessType == "close_corporation" {
		if strings.TrimSpace(form.Fields["companyRegNumber"]) == "" {
			return domain.Result{Success: false, Message: `Field "companyRegNumber" is required`}, nil
		}
	}

	if len(form.ProductCategories) == 0 {
		return domain.Result{Success: false, Message: "Please select at least one product category"}, nil
	}
	if len(form.ShippingOptions) == 0 {
		return domain.Result{Success: false, Message: "Please select at least one shipping/delivery option"}, nil
	}

	result, err := s.gateway.RegisterSeller(ctx, form)
	if err != nil {
		s.logger.Warn("seller registration failed", zap.Error(err))
		return domain.Result{Success: false, Message: "Network error. Please check your connection and try again."}, nil
	}

	if !result.Success {
		message := result.Message
		if message == "" {
			message = msgRegistrationFailed
		}
		return domain.Result{Success: false, Message: message}, nil
	}

	return domain.Result{
		Success: true,
		Message: "Registration submitted successfully! We will review your application and contact you within 2-3 business days.",
	}, nil
}
