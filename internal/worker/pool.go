package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/store"
	"go.uber.org/zap"
)

// Pool представляет пул воркеров фонового пересчета показателей дашборда
type Pool struct {
	workers      int
	queue        chan struct{}
	invoices     *store.InvoiceStore
	repayments   *store.RepaymentStore
	dashboard    *store.DashboardStore
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	invoices *store.InvoiceStore,
	repayments *store.RepaymentStore,
	dashboard *store.DashboardStore,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      workers,
		queue:        make(chan struct{}, queueSize),
		invoices:     invoices,
		repayments:   repayments,
		dashboard:    dashboard,
		logger:       logger,
		scanInterval: scanInterval,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем плановый пересчет по таймеру
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// Refresh ставит внеплановый пересчет в очередь.
// Если очередь заполнена, запрос пропускается: плановый
// пересчет все равно догонит актуальное состояние.
func (p *Pool) Refresh() {
	select {
	case p.queue <- struct{}{}:
		// Успешно добавлено в очередь
	default:
		p.logger.Warn("refresh queue is full, skipping request")
	}
}

// worker обрабатывает запросы пересчета из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case _, ok := <-p.queue:
			if !ok {
				return
			}
			p.refreshStats()
		}
	}
}

// scanner периодически ставит пересчет в очередь
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			select {
			case p.queue <- struct{}{}:
				// Успешно добавлено в очередь
			case <-ctx.Done():
				return
			default:
				p.logger.Warn("refresh queue is full, skipping scheduled refresh")
			}
		}
	}
}

// refreshStats пересчитывает показатели по счетам и выплатам
// и сохраняет их только при изменении
func (p *Pool) refreshStats() {
	computed := p.computeStats()

	current := p.dashboard.Stats()
	if computed == current {
		return
	}

	if _, err := p.dashboard.UpdateStats(computed); err != nil {
		p.logger.Error("failed to update dashboard stats", zap.Error(err))
		return
	}

	p.logger.Debug("dashboard stats refreshed",
		zap.Int("invoices_received", computed.InvoicesReceived),
		zap.Int("invoices_settled", computed.InvoicesSettled),
	)
}

// computeStats собирает показатели из хранилищ счетов и выплат
func (p *Pool) computeStats() domain.Stats {
	stats := domain.Stats{
		InvoicesReceived: len(p.invoices.List()),
	}

	for _, repayment := range p.repayments.List() {
		if repayment.Status == domain.RepaymentStatusPaid {
			stats.InvoicesSettled++
			stats.AmountPaid += repayment.PayAmount
		} else {
			stats.AmountPending += repayment.PayAmount
		}
	}

	return stats
}
