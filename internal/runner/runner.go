package runner

import (
	"context"
	"errors"
	"time"

	"github.com/opentracing/opentracing-go"

	"unwind_bot/internal/engine"
	"unwind_bot/internal/models"
	"unwind_bot/internal/modules/config"
	"unwind_bot/internal/modules/gateway/service"
	healthsvc "unwind_bot/internal/modules/health/service"
	"unwind_bot/pkg/logger"
)

// ownOrdersPageSize is the gateway's hard cap per own-orders request.
const ownOrdersPageSize = 500

const defaultMaxAttempts = 3

// Gateway is the slice of the exchange gateway the run controller consumes.
type Gateway interface {
	GetStatus(ctx context.Context) (models.MarketStatus, error)
	GetOwnOrders(ctx context.Context, portfolioID, deliveryArea string, offset, limit int) ([]models.OwnOrder, error)
	DeleteOrder(ctx context.Context, orderID string, revisionNo int64) error
	GetOrderBooks(ctx context.Context, products []string, portfolioID, deliveryArea string, limit int) ([]models.Contract, error)
	AddOrders(ctx context.Context, intents []models.OrderIntent) error
}

type Notifier interface {
	Sendf(format string, args ...any)
}

// Runner drives one full unwind cycle: cancel stale orders, recompute intents
// per contract, submit the batch, retry from scratch on optimistic-concurrency
// conflicts. It keeps no state between runs.
type Runner struct {
	cfg   *config.Config
	gw    Gateway
	eng   *engine.Engine
	n     Notifier
	audit *Audit
	state *healthsvc.State
}

func New(cfg *config.Config, gw Gateway, eng *engine.Engine, n Notifier, audit *Audit, state *healthsvc.State) *Runner {
	return &Runner{
		cfg:   cfg,
		gw:    gw,
		eng:   eng,
		n:     n,
		audit: audit,
		state: state,
	}
}

// RunOnce executes one scheduled cycle. A cycle either completes (possibly
// placing zero orders), exits cleanly because the market is not ready, or
// fails after exhausting the attempt budget / hitting a non-retryable error.
// No error state survives into the next cycle.
func (r *Runner) RunOnce(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "run_once")
	defer span.Finish()

	logger.Info("starting new run")

	maxAttempts := r.cfg.Trading.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	report := models.RunReport{StartedAt: time.Now().UTC()}

	var runErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		report.Attempts = attempt

		intents, marketOK, err := r.attempt(ctx)
		if err == nil {
			if marketOK {
				report.Outcome = models.RunOutcomeOK
				report.OrdersPlaced = len(intents)
				report.Intents = intents
			} else {
				report.Outcome = models.RunOutcomeMarketDown
			}
			runErr = nil
			break
		}

		runErr = err
		if !errors.Is(err, service.ErrOutdated) {
			break
		}
		logger.Warn("attempt %d/%d hit outdated order state, restarting run: %v", attempt, maxAttempts, err)
	}

	report.FinishedAt = time.Now().UTC()
	if runErr != nil {
		report.Outcome = models.RunOutcomeFailed
		report.Error = runErr.Error()
		logger.Error("run failed after %d attempt(s): %v", report.Attempts, runErr)
		if r.n != nil {
			r.n.Sendf("run failed after %d attempt(s): %v", report.Attempts, runErr)
		}
	} else {
		logger.Info("run finished: outcome=%s orders=%d attempts=%d", report.Outcome, report.OrdersPlaced, report.Attempts)
	}

	if r.state != nil {
		r.state.SetLastRun(report.FinishedAt, report.Outcome)
	}
	if err := r.audit.Record(ctx, report); err != nil {
		logger.Error("recording run report: %v", err)
	}

	return runErr
}

// attempt is one pass of the state machine: status gate, fetch+cancel own
// orders, per-contract computation, bulk submit. marketOK is false for the
// clean no-op cycle when the market status gate fails.
func (r *Runner) attempt(ctx context.Context) (intents []models.OrderIntent, marketOK bool, err error) {
	status, err := r.gw.GetStatus(ctx)
	if err != nil {
		return nil, false, err
	}
	if status.Status != models.StatusOK {
		logger.Warn("market status is not OK: %q, skipping cycle", status.Status)
		return nil, false, nil
	}

	ownOrders, err := r.fetchOwnOrders(ctx)
	if err != nil {
		return nil, false, err
	}

	// Every open order goes before anything new is computed, so the net
	// position stays put while intents are built. Orders filled in the
	// meantime surface as ErrOutdated and restart the run.
	for _, order := range ownOrders {
		if err := r.gw.DeleteOrder(ctx, order.OrderID, order.RevisionNo); err != nil {
			return nil, false, err
		}
	}

	trading := r.cfg.Trading
	contracts, err := r.gw.GetOrderBooks(ctx, trading.Products, trading.PortfolioID, trading.DeliveryArea, trading.ContractLimit)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	for i := range contracts {
		batch, err := r.eng.Compute(ctx, &contracts[i], now)
		if err != nil {
			return nil, false, err
		}
		intents = append(intents, batch...)
	}

	if len(intents) > 0 {
		if err := r.gw.AddOrders(ctx, intents); err != nil {
			return nil, false, err
		}
	}

	return intents, true, nil
}

func (r *Runner) fetchOwnOrders(ctx context.Context) ([]models.OwnOrder, error) {
	var all []models.OwnOrder
	offset := 0
	for {
		page, err := r.gw.GetOwnOrders(ctx, r.cfg.Trading.PortfolioID, r.cfg.Trading.DeliveryArea, offset, ownOrdersPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < ownOrdersPageSize {
			return all, nil
		}
		offset += ownOrdersPageSize
	}
}
