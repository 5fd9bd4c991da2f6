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

type PgxMerchantRepository struct {
	db *pgxpool.Pool
}

func newPgxMerchantRepository(db *pgxpool.Pool) portsrepo.MerchantRepositoryFacade {
	return &PgxMerchantRepository{db: db}
}

// Ensure PgxMerchantRepository implements the facade
var _ portsrepo.MerchantRepositoryFacade = (*PgxMerchantRepository)(nil)

const merchantColumns = `merchant_id, name, address, tip_per_transaction, lat, lng, last_payment_date, account_status, deletion_scheduled_at, created_at, created_by, last_updated_at, last_updated_by`

func scanMerchant(row pgx.Row) (models.Merchant, error) {
	var m models.Merchant
	err := row.Scan(
		&m.MerchantID,
		&m.Name,
		&m.Address,
		&m.TipPerTransaction,
		&m.Lat,
		&m.Lng,
		&m.LastPaymentDate,
		&m.AccountStatus,
		&m.DeletionScheduledAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMerchantRepository) SaveMerchant(ctx context.Context, merchant domain.Merchant) error {
	m := mapping.ToModelMerchant(merchant)
	query := `
		INSERT INTO merchants (` + merchantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.MerchantID,
		m.Name,
		m.Address,
		m.TipPerTransaction,
		m.Lat,
		m.Lng,
		m.LastPaymentDate,
		m.AccountStatus,
		m.DeletionScheduledAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: merchant %s", apperrors.ErrDuplicate, merchant.MerchantID)
		}
		return fmt.Errorf("failed to save merchant: %w", err)
	}
	return nil
}

func (r *PgxMerchantRepository) UpdateMerchant(ctx context.Context, merchant domain.Merchant) error {
	m := mapping.ToModelMerchant(merchant)
	query := `
		UPDATE merchants SET
			name = $2,
			address = $3,
			tip_per_transaction = $4,
			lat = $5,
			lng = $6,
			last_payment_date = $7,
			account_status = $8,
			deletion_scheduled_at = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE merchant_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.MerchantID,
		m.Name,
		m.Address,
		m.TipPerTransaction,
		m.Lat,
		m.Lng,
		m.LastPaymentDate,
		m.AccountStatus,
		m.DeletionScheduledAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update merchant %s: %w", merchant.MerchantID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: merchant %s", apperrors.ErrNotFound, merchant.MerchantID)
	}
	return nil
}

func (r *PgxMerchantRepository) DeleteMerchant(ctx context.Context, merchantID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM merchants WHERE merchant_id = $1;`, merchantID)
	if err != nil {
		return fmt.Errorf("failed to delete merchant %s: %w", merchantID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: merchant %s", apperrors.ErrNotFound, merchantID)
	}
	return nil
}

func (r *PgxMerchantRepository) FindMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE merchant_id = $1;`
	m, err := scanMerchant(r.db.QueryRow(ctx, query, merchantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: merchant %s", apperrors.ErrNotFound, merchantID)
		}
		return nil, fmt.Errorf("failed to find merchant by ID %s: %w", merchantID, err)
	}
	merchant := mapping.ToDomainMerchant(m)
	return &merchant, nil
}

func (r *PgxMerchantRepository) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants ORDER BY created_at, merchant_id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	defer rows.Close()

	var merchants []domain.Merchant
	for rows.Next() {
		m, err := scanMerchant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan merchant row: %w", err)
		}
		merchants = append(merchants, mapping.ToDomainMerchant(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating merchant rows: %w", err)
	}
	return merchants, nil
}
