package domain

import "time"

// InvoiceStatus представляет статус счета
type InvoiceStatus string

const (
	InvoiceStatusPending          InvoiceStatus = "Pending"
	InvoiceStatusValidated        InvoiceStatus = "Validated"
	InvoiceStatusChangesRequested InvoiceStatus = "Changes Requested"
	InvoiceStatusPaid             InvoiceStatus = "Paid"
)

// RepaymentStatus представляет статус обязательства по выплате
type RepaymentStatus string

const (
	RepaymentStatusPending RepaymentStatus = "Pending"
	RepaymentStatusPaid    RepaymentStatus = "Paid"
)

// TransactionType представляет тип операции по кошельку
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
)

// TransactionStatus представляет статус операции по кошельку
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "Completed"
)

// ModalKind представляет тип модального окна
type ModalKind string

const (
	ModalKindAlert   ModalKind = "alert"
	ModalKindConfirm ModalKind = "confirm"
)

// Role представляет роль пользователя
type Role string

const (
	RoleBuyer Role = "Buyer"
	RoleAdmin Role = "Admin"
)

// User представляет вошедшего пользователя
type User struct {
	Username           string    `json:"username"`
	Name               string    `json:"name"`
	Role               Role      `json:"role"`
	Email              string    `json:"email,omitempty"`
	SessionKey         string    `json:"sessionkey"`
	LoginTimestamp     string    `json:"login_timestamp,omitempty"`
	LoginTime          time.Time `json:"login_time"`
	BusinessIntakeDone bool      `json:"business_intake_done"`
}

// Session представляет состояние аутентификации.
// User присутствует тогда и только тогда, когда LoggedIn == true
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	User     *User  `json:"user,omitempty"`
	APIToken string `json:"api_token,omitempty"`
}

// ModalState представляет видимое модальное окно
type ModalState struct {
	Visible bool      `json:"visible"`
	ID      string    `json:"id,omitempty"`
	Title   string    `json:"title,omitempty"`
	Message string    `json:"message,omitempty"`
	Kind    ModalKind `json:"kind,omitempty"`
}

// Stats представляет показатели дашборда
type Stats struct {
	InvoicesReceived int     `json:"invoices_received"`
	InvoicesSettled  int     `json:"invoices_settled"`
	AmountPaid       float64 `json:"amount_paid"`
	AmountPending    float64 `json:"amount_pending"`
}

// ChartPoint представляет точку графика платежей
type ChartPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// Activity представляет запись ленты последних действий
type Activity struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Plan представляет тарифный план подписки
type Plan struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
}

// Invoice представляет счет от продавца
type Invoice struct {
	ID              string        `json:"id"`
	Number          string        `json:"number"`
	Date            string        `json:"date"`
	Seller          string        `json:"seller"`
	Amount          float64       `json:"amount"`
	Status          InvoiceStatus `json:"status"`
	ValidationNotes string        `json:"validation_notes,omitempty"`
	ValidatedAt     *time.Time    `json:"validated_at,omitempty"`
}

// InvoiceFilter представляет фильтры списка счетов
type InvoiceFilter struct {
	Number    string   `json:"number"`
	MinAmount *float64 `json:"min_amount,omitempty"`
	DateFrom  string   `json:"date_from"`
}

// DiscountOffer представляет предложение дисконта от финансового института
type DiscountOffer struct {
	Institute       string  `json:"institute"`
	DiscountPercent float64 `json:"discount_percent"`
	Amount          float64 `json:"amount"`
}

// Repayment представляет обязательство по выплате финансовому институту.
// PayAmount всегда не превышает OriginalAmount
type Repayment struct {
	ID             string          `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Institute      string          `json:"institute"`
	OriginalAmount float64         `json:"original_amount"`
	PayAmount      float64         `json:"pay_amount"`
	DueDate        string          `json:"due_date"`
	Status         RepaymentStatus `json:"status"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
}

// Notification представляет уведомление пользователя
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
	Kind      string    `json:"kind"`
}

// Profile представляет бизнес-профиль пользователя
type Profile struct {
	Fields   map[string]string `json:"fields"`
	Approved bool              `json:"approved"`
}

// WalletTransaction представляет операцию по кошельку
type WalletTransaction struct {
	ID     string            `json:"id"`
	Type   TransactionType   `json:"type"`
	Amount float64           `json:"amount"`
	Method string            `json:"method"`
	Status TransactionStatus `json:"status"`
	Date   time.Time         `json:"date"`
}

// Result представляет исход мутации для отображения пользователю
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginReply представляет ответ шлюза аутентификации
type LoginReply struct {
	Result       string `json:"result"`
	SessionKey   string `json:"sessionkey"`
	CTS          string `json:"cts"`
	Message      string `json:"message"`
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
	Msg          string `json:"msg"`
}

// FailureMessage извлекает сообщение об ошибке из ответа шлюза.
// Порядок полей фиксирован: message > error > error_message > msg > result
func (r *LoginReply) FailureMessage() string {
	for _, msg := range []string{r.Message, r.Error, r.ErrorMessage, r.Msg, r.Result} {
		if msg != "" && msg != "OK" {
			return msg
		}
	}
	return ""
}
