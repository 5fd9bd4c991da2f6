package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	"github.com/courierdesk/merchant_admin_app/internal/models"
	"github.com/courierdesk/merchant_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReceiptRepository struct {
	BaseRepository
}

func newPgxReceiptRepository(db *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository{Pool: db}}
}

// Ensure PgxReceiptRepository implements the facade
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `receipt_id, merchant_id, pending_balance, amount_received, difference, created_by, created_at, seq`

func scanReceipt(row pgx.Row) (models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID,
		&m.MerchantID,
		&m.PendingBalance,
		&m.AmountReceived,
		&m.Difference,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.Seq,
	)
	return m, err
}

// SaveReceipt appends a receipt and returns it with the database-assigned seq,
// which fixes ledger order for receipts created in the same instant.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	m := mapping.ToModelReceipt(receipt)
	query := `
		INSERT INTO receipts (receipt_id, merchant_id, pending_balance, amount_received, difference, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.ReceiptID,
		m.MerchantID,
		m.PendingBalance,
		m.AmountReceived,
		m.Difference,
		m.CreatedBy,
		m.CreatedAt,
	).Scan(&m.Seq)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrDuplicate, receipt.ReceiptID)
		}
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	saved := mapping.ToDomainReceipt(m)
	return &saved, nil
}

// DeleteReceipts removes the given receipts in one transaction. If any ID is
// unknown nothing is deleted. Duplicate IDs count once; a repeated ID that
// exists must not trip the all-or-nothing check.
func (r *PgxReceiptRepository) DeleteReceipts(ctx context.Context, receiptIDs []string) error {
	ids := make([]string, 0, len(receiptIDs))
	seen := make(map[string]struct{}, len(receiptIDs))
	for _, id := range receiptIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM receipts WHERE receipt_id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete receipts: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("%w: %d of %d receipts found", apperrors.ErrNotFound, tag.RowsAffected(), len(ids))
	}

	return r.Commit(ctx, tx)
}

func (r *PgxReceiptRepository) ListAllReceipts(ctx context.Context) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts ORDER BY created_at, seq;`
	return r.queryReceipts(ctx, query)
}

func (r *PgxReceiptRepository) ListReceiptsByMerchant(ctx context.Context, merchantID string) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE merchant_id = $1 ORDER BY created_at, seq;`
	return r.queryReceipts(ctx, query, merchantID)
}

func (r *PgxReceiptRepository) FindReceiptsByIDs(ctx context.Context, receiptIDs []string) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_id = ANY($1) ORDER BY created_at, seq;`
	receipts, err := r.queryReceipts(ctx, query, receiptIDs)
	if err != nil {
		return nil, err
	}
	if len(receipts) != len(receiptIDs) {
		return nil, fmt.Errorf("%w: %d of %d receipts found", apperrors.ErrNotFound, len(receipts), len(receiptIDs))
	}
	return receipts, nil
}

func (r *PgxReceiptRepository) queryReceipts(ctx context.Context, query string, args ...any) ([]domain.Receipt, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipts = append(receipts, mapping.ToDomainReceipt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating receipt rows: %w", err)
	}
	return receipts, nil
}
