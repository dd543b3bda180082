package app

import (
	"github.com/avc/quickflip-dashboard/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/auth/login", deps.handlers.auth.Login)
	r.Get("/api/modal", deps.handlers.modal.Current)
	r.Post("/api/modal/resolve", deps.handlers.modal.Resolve)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.tokenManager))

		r.Post("/api/auth/logout", deps.handlers.auth.Logout)
		r.Get("/api/session", deps.handlers.session.Me)
		r.Get("/api/ui/dark-mode", deps.handlers.session.DarkMode)
		r.Post("/api/ui/dark-mode/toggle", deps.handlers.session.ToggleDarkMode)

		r.Get("/api/dashboard/stats", deps.handlers.dashboard.Stats)
		r.Get("/api/dashboard/chart", deps.handlers.dashboard.Chart)
		r.Get("/api/dashboard/activity", deps.handlers.dashboard.Activity)

		r.Get("/api/plans", deps.handlers.subscription.Plans)
		r.Get("/api/subscription", deps.handlers.subscription.CurrentPlan)
		r.Post("/api/subscription/select", deps.handlers.subscription.SelectPlan)
		r.Post("/api/subscription/subscribe", deps.handlers.subscription.Subscribe)
		r.Post("/api/subscription/upgrade", deps.handlers.subscription.UpgradePlan)
		r.Post("/api/subscription/cancel", deps.handlers.subscription.CancelSubscription)

		r.Get("/api/invoices", deps.handlers.invoices.List)
		r.Post("/api/invoices/{invoiceID}/validate", deps.handlers.invoices.Validate)
		r.Get("/api/invoices/{invoiceID}/offers", deps.handlers.invoices.DiscountOffers)

		r.Get("/api/repayments", deps.handlers.repayments.List)
		r.Get("/api/repayments/pending", deps.handlers.repayments.Pending)
		r.Post("/api/repayments/{repaymentID}/pay", deps.handlers.repayments.Pay)

		r.Get("/api/notifications", deps.handlers.notifications.List)
		r.Get("/api/notifications/unread", deps.handlers.notifications.UnreadCount)
		r.Post("/api/notifications/{notificationID}/read", deps.handlers.notifications.MarkRead)
		r.Post("/api/notifications/read-all", deps.handlers.notifications.MarkAllRead)

		r.Get("/api/profile", deps.handlers.profile.Get)
		r.Post("/api/profile", deps.handlers.profile.Update)

		r.Get("/api/wallet/balance", deps.handlers.wallet.Balance)
		r.Get("/api/wallet/transactions", deps.handlers.wallet.Transactions)
		r.Post("/api/wallet/deposit", deps.handlers.wallet.Deposit)
		r.Post("/api/wallet/withdraw", deps.handlers.wallet.Withdraw)
		r.Post("/api/wallet/kyc", deps.handlers.wallet.CompleteKYC)

		r.Post("/api/intake", deps.handlers.intake.SubmitIntake)
		r.Post("/api/seller/register", deps.handlers.intake.RegisterSeller)
	})
}
