package runner

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"

	"unwind_bot/internal/models"
	"unwind_bot/pkg/db"
)

const insertRunReport = `
INSERT INTO run_reports (started_at, finished_at, attempts, outcome, error, orders_placed, intents)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Audit persists one row per run. A nil Audit (no database configured) is a
// valid no-op sink.
type Audit struct {
	tx *db.PgTxManager
}

func NewAudit(tx *db.PgTxManager) *Audit {
	if tx == nil {
		return nil
	}
	return &Audit{tx: tx}
}

func (a *Audit) Record(ctx context.Context, report models.RunReport) error {
	if a == nil {
		return nil
	}

	intents, err := sonic.Marshal(report.Intents)
	if err != nil {
		return pkgerrors.Wrap(err, "marshal run intents")
	}

	return a.tx.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctxTx, insertRunReport,
			report.StartedAt,
			report.FinishedAt,
			report.Attempts,
			report.Outcome,
			report.Error,
			report.OrdersPlaced,
			intents,
		)
		return pkgerrors.Wrap(err, "insert run report")
	})
}
