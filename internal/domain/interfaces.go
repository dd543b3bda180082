package domain

import "context"

// Store определяет общий контракт хранилища сущности.
// Init идемпотентен: повторный вызов не перезаписывает изменённое состояние
type Store interface {
	Name() string
	Init() error
}

// Coordinator определяет методы брокера модальных окон
type Coordinator interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
	Alert(ctx context.Context, title, message string) error
	Current() ModalState
	Resolve(id string, confirmed bool) error
}

// GatewayClient определяет методы взаимодействия с удалённым API QuickFlip
type GatewayClient interface {
	Login(ctx context.Context, username, password string) (*LoginReply, error)
	SubmitIntake(ctx context.Context, fields map[string]string) (*Result, error)
	RegisterSeller(ctx context.Context, form SellerForm) (*Result, error)
}

// SellerForm представляет поля формы регистрации продавца
type SellerForm struct {
	Fields            map[string]string `json:"fields"`
	ProductCategories []string          `json:"product_categories"`
	ShippingOptions   []string          `json:"shipping_options"`
}
