package domain

import "errors"

// Ошибки сессии и аутентификации
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки доменных сущностей
var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrRepaymentNotFound    = errors.New("repayment not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrNoPlanSelected       = errors.New("no plan selected")
	ErrInsufficientBalance  = errors.New("insufficient balance")
)

// Ошибки реестра хранилищ
var (
	ErrStoreNotRegistered = errors.New("store not registered")
)

// Ошибки координатора модальных окон
var (
	ErrModalNotPending = errors.New("modal request not pending")
)
