package app

import (
	"fmt"

	"github.com/avc/quickflip-dashboard/internal/config"
	"github.com/avc/quickflip-dashboard/internal/handlers"
	"github.com/avc/quickflip-dashboard/internal/modal"
	"github.com/avc/quickflip-dashboard/internal/service"
	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/avc/quickflip-dashboard/internal/store"
	"github.com/avc/quickflip-dashboard/internal/utils/token"
	"github.com/avc/quickflip-dashboard/internal/worker"
	"go.uber.org/zap"
)

// stores содержит все хранилища приложения
type stores struct {
	registry     *store.Registry
	session      *store.SessionStore
	ui           *store.UIStore
	dashboard    *store.DashboardStore
	subscription *store.SubscriptionStore
	invoice      *store.InvoiceStore
	repayment    *store.RepaymentStore
	notification *store.NotificationStore
	profile      *store.ProfileStore
	wallet       *store.WalletStore
}

// services содержит все сервисы приложения
type services struct {
	auth   *service.AuthService
	intake *service.IntakeService
	seller *service.SellerService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth          *handlers.AuthHandler
	session       *handlers.SessionHandler
	dashboard     *handlers.DashboardHandler
	subscription  *handlers.SubscriptionHandler
	invoices      *handlers.InvoicesHandler
	repayments    *handlers.RepaymentsHandler
	notifications *handlers.NotificationsHandler
	profile       *handlers.ProfileHandler
	wallet        *handlers.WalletHandler
	modal         *handlers.ModalHandler
	intake        *handlers.IntakeHandler
	health        *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	stores       *stores
	services     *services
	handlers     *handlerSet
	coordinator  *modal.Coordinator
	tokenManager *token.Manager
	workerPool   *worker.Pool
}

// buildStores создает хранилища и регистрирует их в фиксированном порядке
func buildStores(bridge storage.Bridge, seed bool) *stores {
	st := &stores{
		registry:     store.NewRegistry(),
		session:      store.NewSessionStore(bridge),
		ui:           store.NewUIStore(bridge),
		dashboard:    store.NewDashboardStore(bridge, seed),
		subscription: store.NewSubscriptionStore(bridge, seed),
		invoice:      store.NewInvoiceStore(bridge, seed),
		repayment:    store.NewRepaymentStore(bridge, seed),
		notification: store.NewNotificationStore(bridge, seed),
		profile:      store.NewProfileStore(bridge, seed),
		wallet:       store.NewWalletStore(bridge, seed),
	}

	st.registry.Register(st.session)
	st.registry.Register(st.ui)
	st.registry.Register(st.dashboard)
	st.registry.Register(st.subscription)
	st.registry.Register(st.invoice)
	st.registry.Register(st.repayment)
	st.registry.Register(st.notification)
	st.registry.Register(st.profile)
	st.registry.Register(st.wallet)

	return st
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, bridge storage.Bridge, logger *zap.Logger) (*dependencies, error) {
	// Создание хранилищ
	st := buildStores(bridge, cfg.SeedDemoData)
	if err := st.registry.InitAll(); err != nil {
		return nil, fmt.Errorf("failed to init stores: %w", err)
	}
	logger.Info("stores initialized", zap.Bool("seed_demo_data", cfg.SeedDemoData))

	// Создание утилит
	coordinator := modal.NewCoordinator(logger)
	tokenManager := token.NewManager(cfg.TokenSecret, cfg.TokenTTL)
	gateway := service.NewGatewayClient(cfg.GatewayAddress, cfg.GatewayAuthKey, cfg.LoginTimeout)

	// Создание сервисов
	svcs := &services{
		auth:   service.NewAuthService(gateway, st.session, coordinator, tokenManager, cfg.LoginTimeout, logger),
		intake: service.NewIntakeService(gateway, st.session, logger),
		seller: service.NewSellerService(gateway, logger),
	}

	// Создание worker pool
	workerPool := worker.NewPool(
		cfg.StatsWorkers,
		cfg.StatsQueueSize,
		cfg.StatsScanInterval,
		st.invoice,
		st.repayment,
		st.dashboard,
		logger,
	)

	// Создание handlers
	hdlrs := &handlerSet{
		auth:          handlers.NewAuthHandler(svcs.auth, st.session, logger),
		session:       handlers.NewSessionHandler(st.session, st.ui, logger),
		dashboard:     handlers.NewDashboardHandler(st.dashboard, logger),
		subscription:  handlers.NewSubscriptionHandler(st.subscription, st.dashboard, logger),
		invoices:      handlers.NewInvoicesHandler(st.invoice, workerPool, logger),
		repayments:    handlers.NewRepaymentsHandler(st.repayment, st.dashboard, workerPool, logger),
		notifications: handlers.NewNotificationsHandler(st.notification, logger),
		profile:       handlers.NewProfileHandler(st.profile, logger),
		wallet:        handlers.NewWalletHandler(st.wallet, logger),
		modal:         handlers.NewModalHandler(coordinator, logger),
		intake:        handlers.NewIntakeHandler(svcs.intake, svcs.seller, logger),
		health:        handlers.NewHealthHandler(bridge, logger),
	}

	return &dependencies{
		stores:       st,
		services:     svcs,
		handlers:     hdlrs,
		coordinator:  coordinator,
		tokenManager: tokenManager,
		workerPool:   workerPool,
	}, nil
}
