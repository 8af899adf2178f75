package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farmastock/internal/application/auth"
	"github.com/tu-usuario/farmastock/internal/application/stock"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
)

// TxRunner satisface los puertos transaccionales de stock y auth.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ auth.SignupTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunIssue inicia una transacción para la salida de stock (decremento del lote
// + inserción del issue) y hace Commit o Rollback.
func (r *TxRunner) RunIssue(ctx context.Context, fn func(
	batchRepo repository.StockBatchRepository,
	issueRepo repository.IssueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batchRepo := NewStockBatchRepository(tx)
	issueRepo := NewIssueRepository(tx)

	if err := fn(batchRepo, issueRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSignup inicia una transacción para el registro (farmacia + usuario admin):
// si la segunda inserción falla, la farmacia tampoco se persiste.
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	pharmacyRepo repository.PharmacyRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pharmacyRepo := NewPharmacyRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(pharmacyRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
