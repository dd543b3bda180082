package modal

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// request представляет ожидающий запрос модального окна
type request struct {
	id      string
	title   string
	message string
	kind    domain.ModalKind
	reply   chan bool
}

// Coordinator брокирует модальные окна между вызывающим кодом и UI.
// Запросы выстраиваются в очередь и показываются по одному:
// одновременно видимо не более одного окна, каждый запрос
// разрешается ровно один раз
type Coordinator struct {
	mu     sync.Mutex
	queue  []*request
	logger *zap.Logger
}

// NewCoordinator создает новый координатор модальных окон
func NewCoordinator(logger *zap.Logger) *Coordinator {
	return &Coordinator{logger: logger}
}

// Confirm ставит в очередь запрос подтверждения и блокирует вызывающего
// до ответа пользователя или отмены контекста
func (c *Coordinator) Confirm(ctx context.Context, title, message string) (bool, error) {
	req := c.enqueue(title, message, domain.ModalKindConfirm)

	select {
	case confirmed := <-req.reply:
		return confirmed, nil
	case <-ctx.Done():
		c.abandon(req.id)
		return false, fmt.Errorf("modal: confirmation %q abandoned: %w", req.id, ctx.Err())
	}
}

// Alert ставит в очередь уведомление и блокирует вызывающего
// до подтверждения прочтения
func (c *Coordinator) Alert(ctx context.Context, title, message string) error {
	req := c.enqueue(title, message, domain.ModalKindAlert)

	select {
	case <-req.reply:
		return nil
	case <-ctx.Done():
		c.abandon(req.id)
		return fmt.Errorf("modal: alert %q abandoned: %w", req.id, ctx.Err())
	}
}

// Current возвращает снимок видимого модального окна.
// Видимым становится первый запрос очереди
func (c *Coordinator) Current() domain.ModalState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.queue) == 0 {
		return domain.ModalState{}
	}

	head := c.queue[0]
	return domain.ModalState{
		Visible: true,
		ID:      head.id,
		Title:   head.title,
		Message: head.message,
		Kind:    head.kind,
	}
}

// Resolve доставляет ответ пользователя видимому запросу.
// Идентификатор, не совпадающий с видимым запросом, отклоняется:
// устаревший ответ не может разрешить чужое окно
func (c *Coordinator) Resolve(id string, confirmed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.queue) == 0 || c.queue[0].id != id {
		return fmt.Errorf("modal: %q: %w", id, domain.ErrModalNotPending)
	}

	head := c.queue[0]
	c.queue = c.queue[1:]
	head.reply <- confirmed

	return nil
}

// enqueue добавляет запрос в конец очереди
func (c *Coordinator) enqueue(title, message string, kind domain.ModalKind) *request {
	req := &request{
		id:      uuid.New().String(),
		title:   title,
		message: message,
		kind:    kind,
		reply:   make(chan bool, 1),
	}

	c.mu.Lock()
	c.queue = append(c.queue, req)
	queued := len(c.queue)
	c.mu.Unlock()

	c.logger.Debug("modal request queued",
		zap.String("id", req.id),
		zap.String("kind", string(kind)),
		zap.Int("queued", queued),
	)

	return req
}

// abandon убирает отменённый запрос из очереди
func (c *Coordinator) abandon(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, req := range c.queue {
		if req.id == id {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}
