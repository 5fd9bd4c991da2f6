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

type PgxAdminUserRepository struct {
	db *pgxpool.Pool
}

func newPgxAdminUserRepository(db *pgxpool.Pool) portsrepo.AdminUserRepositoryFacade {
	return &PgxAdminUserRepository{db: db}
}

// Ensure PgxAdminUserRepository implements the facade
var _ portsrepo.AdminUserRepositoryFacade = (*PgxAdminUserRepository)(nil)

const adminUserColumns = `admin_user_id, username, password_hash, created_at, created_by, last_updated_at, last_updated_by`

func scanAdminUser(row pgx.Row) (models.AdminUser, error) {
	var m models.AdminUser
	err := row.Scan(
		&m.AdminUserID,
		&m.Username,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxAdminUserRepository) SaveAdminUser(ctx context.Context, admin domain.AdminUser) error {
	m := mapping.ToModelAdminUser(admin)
	query := `
		INSERT INTO admin_users (` + adminUserColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		m.AdminUserID,
		m.Username,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, admin.Username)
		}
		return fmt.Errorf("failed to save admin user: %w", err)
	}
	return nil
}

func (r *PgxAdminUserRepository) FindAdminByID(ctx context.Context, adminUserID string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE admin_user_id = $1;`
	m, err := scanAdminUser(r.db.QueryRow(ctx, query, adminUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: admin %s", apperrors.ErrNotFound, adminUserID)
		}
		return nil, fmt.Errorf("failed to find admin by ID %s: %w", adminUserID, err)
	}
	admin := mapping.ToDomainAdminUser(m)
	return &admin, nil
}

func (r *PgxAdminUserRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE username = $1;`
	m, err := scanAdminUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: username %s", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}
	admin := mapping.ToDomainAdminUser(m)
	return &admin, nil
}
