package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/service"
	"github.com/fsdevblog/flashboard/internal/transport/payment/client"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout             = 3 * time.Second
	defaultOrderReconcileTimeout      = time.Second
	defaultAPITimeout                 = 10 * time.Second
	defaultLimitPerIteration     uint = 100
	defaultReconcileWorkers      uint = 5
	defaultPaymentWaitTTL             = 15 * time.Minute
	defaultReconcileInterval          = 30 * time.Second
)

// Processor сверяет заказы, которые слишком долго ждут оплату, с платежным шлюзом.
type Processor struct {
	gateway           *Gateway
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	paymentWaitTTL    time.Duration
	interval          time.Duration
}

// NewProcessor создает новый экземпляр процессора сверки платежей.
func NewProcessor(svs Servicer, gateway *Gateway, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "payment",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		gateway:           gateway,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultReconcileWorkers,
		paymentWaitTTL:    defaultPaymentWaitTTL,
		interval:          defaultReconcileInterval,
	}
}

// SetLimitPerIteration устанавливает кол-во заказов, обрабатываемых в одной итерации обработчика.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, опрашивающих шлюз.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetPaymentWaitTTL устанавливает, сколько заказ может ждать оплату, прежде чем попасть в сверку.
func (p *Processor) SetPaymentWaitTTL(ttl time.Duration) *Processor {
	if ttl > 0 {
		p.paymentWaitTTL = ttl
	}
	return p
}

func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// Run запускает сверку в цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации запрашивает через сервисный слой заказы в PAYMENT_WAIT старше paymentWaitTTL.
//     Объем списка лимитируется через SetLimitPerIteration.
//  2. N воркеров (SetWorkers) ищут платеж каждого заказа в шлюзе по merchant uid.
//  3. Найденные платежи (или их отсутствие) отправляются в сервисный слой. Заказы, по которым шлюз
//     ответил ошибкой, остаются до следующей итерации.
//  4. Если заказов не было, следующая итерация начнется через interval.
func (p *Processor) Run(ctx context.Context) error {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
		"paymentWaitTTL":    p.paymentWaitTTL,
		"interval":          p.interval,
	}).Info("Starting")

	for {
		err := p.process(ctx)
		if err != nil && !errors.Is(err, ErrNoOrders) {
			p.l.WithError(err).Error("process error")
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return nil
		case <-time.After(p.interval):
		}
	}
}

// process выполняет цикл сверки: получение списка, запрос данных через API и обновление заказов.
// Возвращает ErrNoOrders если нет заказов для обработки.
func (p *Processor) process(ctx context.Context) error {
	orders, ordersErr := p.produce(ctx)
	if ordersErr != nil {
		return fmt.Errorf("process: %w", ordersErr)
	}

	results := p.runWorkers(ctx, orders)

	var updates = make([]service.ReconcileArgs, 0, len(results))
	for _, result := range results {
		if result.Error != nil {
			p.l.WithError(result.Error).
				WithFields(logrus.Fields{"orderID": result.Order.ID, "workerID": result.WorkerID}).
				Warn("payment lookup failed, will retry")
			continue
		}
		updates = append(updates, service.ReconcileArgs{Order: *result.Order, Record: result.Record})
	}
	if len(updates) == 0 {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, reconcileTimeout(len(updates)))
	defer cancel()

	if updErr := p.svs.Reconcile(reqCtx, updates); updErr != nil {
		return fmt.Errorf("process: %s", updErr.Error())
	}
	return nil
}

// reconcileTimeout время на сверку пачки: каждый заказ закрывается в своей транзакции.
func reconcileTimeout(orders int) time.Duration {
	return max(defaultServiceTimeout, time.Duration(orders)*defaultOrderReconcileTimeout)
}

// workerResult результат поиска платежа по заказу. Record == nil и Error == nil - платеж в шлюзе не найден.
type workerResult struct {
	WorkerID uint
	Order    *domain.Order
	Record   *domain.PaymentRecord
	Error    error
}

// runWorkers запускает параллельных воркеров и ожидает конца их работы (fan-out/fan-in).
func (p *Processor) runWorkers(ctx context.Context, orders []domain.Order) []workerResult {
	var taskCh = make(chan *domain.Order, len(orders))
	for _, order := range orders {
		taskCh <- &order
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(orders))
	for i := range p.workers {
		go p.worker(ctx, i+1, wg, taskCh, resultCh)
	}

	wg.Wait()
	close(resultCh)

	results := make([]workerResult, 0, len(orders))
	for result := range resultCh {
		results = append(results, *result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	workerID uint,
	wg *sync.WaitGroup,
	taskCh <-chan *domain.Order,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask ищет платеж заказа. В случае ошибки 429 ждет указанное в Retry-After время с небольшим
// разбросом, чтобы воркеры не пришли в шлюз одновременно.
func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, task *domain.Order) *workerResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		record, err := p.gateway.FindByMerchantUID(reqCtx, task.MerchantUID())
		cancel()

		if err != nil {
			result := workerResult{WorkerID: workerID, Order: task}
			var tooManyReq *client.TooManyRequestError
			if !errors.As(err, &tooManyReq) {
				result.Error = err
				return &result
			}
			wait := spread(tooManyReq.RetryAfter, 0.2) //nolint:mnd
			select {
			case <-ctx.Done():
				result.Error = ctx.Err()
				return &result
			case <-time.After(wait):
				continue
			}
		}

		return &workerResult{WorkerID: workerID, Order: task, Record: record}
	}
}

// produce получает список зависших заказов. Возвращает ErrNoOrders, если заказы отсутствуют.
func (p *Processor) produce(ctx context.Context) ([]domain.Order, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	orders, ordersErr := p.svs.StaleOrders(produceCtx, p.paymentWaitTTL, p.limitPerIteration)
	if ordersErr != nil {
		return nil, fmt.Errorf("produce: %w", ordersErr)
	}

	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}
