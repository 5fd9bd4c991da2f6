package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/utils/dates"
	"github.com/google/uuid"
)

// deletionRetention is how long a DELETION_PENDING account is kept before it is
// purged. The purge runs lazily on collection reads; there is no background job.
const deletionRetention = 72 * time.Hour

// disabledSentinelDate is the last-payment date written by DisableMerchant.
// It is far enough in the past to exceed any plausible suspension threshold,
// so the next reconciliation pass suspends the account.
var disabledSentinelDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type merchantService struct {
	BaseService
	merchantRepo portsrepo.MerchantRepositoryFacade
	reconciler   portssvc.ReconcilerSvc
	now          func() time.Time
}

// MerchantOption is a functional option for the merchant service
type MerchantOption func(*merchantService)

// WithMerchantClock overrides the clock, used by tests.
func WithMerchantClock(now func() time.Time) MerchantOption {
	return func(s *merchantService) {
		s.now = now
	}
}

// NewMerchantService creates a new merchant service. Every mutation funnels
// through the reconciler so derived balances and statuses stay current.
func NewMerchantService(
	merchantRepo portsrepo.MerchantRepositoryFacade,
	reconciler portssvc.ReconcilerSvc,
	options ...MerchantOption,
) portssvc.MerchantSvcFacade {
	svc := &merchantService{
		merchantRepo: merchantRepo,
		reconciler:   reconciler,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MerchantSvcFacade = (*merchantService)(nil)

// ListMerchants returns every merchant. DELETION_PENDING accounts whose
// retention window has elapsed are purged before the list is returned, so the
// caller never sees an expired record.
func (s *merchantService) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	merchants, err := s.merchantRepo.ListMerchants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}

	now := s.now()
	kept := merchants[:0]
	purged := 0
	for _, m := range merchants {
		if m.IsDeletionPending() && m.DeletionScheduledAt != nil && now.Sub(*m.DeletionScheduledAt) >= deletionRetention {
			if err := s.merchantRepo.DeleteMerchant(ctx, m.MerchantID); err != nil {
				return nil, fmt.Errorf("failed to purge expired merchant %s: %w", m.MerchantID, err)
			}
			s.LogInfo(ctx, "Purged merchant past deletion retention", slog.String("merchant_id", m.MerchantID))
			purged++
			continue
		}
		kept = append(kept, m)
	}

	if purged > 0 {
		if err := s.reconciler.Recompute(ctx); err != nil {
			return nil, err
		}
	}
	return kept, nil
}

func (s *merchantService) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return merchant, nil
}

// OnboardMerchant registers a new merchant. The last-payment date is seeded
// with the registration time so aging starts from day zero.
func (s *merchantService) OnboardMerchant(ctx context.Context, req dto.CreateMerchantRequest, creatorUserID string) (*domain.Merchant, error) {
	if req.TipPerTransaction.IsNegative() {
		return nil, fmt.Errorf("%w: tipPerTransaction must not be negative", apperrors.ErrValidation)
	}

	now := s.now()
	merchant := domain.Merchant{
		MerchantID:        uuid.NewString(),
		Name:              req.Name,
		Address:           req.Address,
		TipPerTransaction: req.TipPerTransaction,
		Location:          domain.GeoPoint{Lat: req.Lat, Lng: req.Lng},
		LastPaymentDate:   now,
		AccountStatus:     domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.merchantRepo.SaveMerchant(ctx, merchant); err != nil {
		s.LogError(ctx, err, "Failed to save merchant", slog.String("name", req.Name))
		return nil, err
	}
	if err := s.reconciler.Recompute(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Merchant onboarded", slog.String("merchant_id", merchant.MerchantID))
	return &merchant, nil
}

// DisableMerchant force-suspends a merchant by aging its last payment date
// past any configurable suspension threshold. The suspension itself is still
// produced by the reconciliation pass, same as an organic one.
func (s *merchantService) DisableMerchant(ctx context.Context, merchantID string, actorUserID string) error {
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return err
	}
	if merchant.IsDeletionPending() {
		return fmt.Errorf("%w: merchant %s is pending deletion", apperrors.ErrValidation, merchantID)
	}

	merchant.LastPaymentDate = disabledSentinelDate
	merchant.LastUpdatedAt = s.now()
	merchant.LastUpdatedBy = actorUserID
	if err := s.merchantRepo.UpdateMerchant(ctx, *merchant); err != nil {
		return fmt.Errorf("failed to disable merchant %s: %w", merchantID, err)
	}
	if err := s.reconciler.Recompute(ctx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Merchant disabled", slog.String("merchant_id", merchantID), slog.String("actor", actorUserID))
	return nil
}

// ScheduleMerchantDeletion places the manual DELETION_PENDING override. The
// record stays readable for the retention window and is purged afterwards.
func (s *merchantService) ScheduleMerchantDeletion(ctx context.Context, merchantID string, actorUserID string) error {
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return err
	}
	if merchant.IsDeletionPending() {
		return fmt.Errorf("%w: merchant %s is already pending deletion", apperrors.ErrValidation, merchantID)
	}

	now := s.now()
	merchant.AccountStatus = domain.StatusDeletionPending
	merchant.DeletionScheduledAt = &now
	merchant.LastUpdatedAt = now
	merchant.LastUpdatedBy = actorUserID
	if err := s.merchantRepo.UpdateMerchant(ctx, *merchant); err != nil {
		return fmt.Errorf("failed to schedule deletion for merchant %s: %w", merchantID, err)
	}
	if err := s.reconciler.Recompute(ctx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Merchant deletion scheduled", slog.String("merchant_id", merchantID), slog.String("actor", actorUserID))
	return nil
}

// CancelMerchantDeletion clears the override. The last payment date is reset
// to today so the account re-enters the pipeline as current rather than being
// re-suspended on the spot for the days it sat in DELETION_PENDING.
func (s *merchantService) CancelMerchantDeletion(ctx context.Context, merchantID string, actorUserID string) error {
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return err
	}
	if !merchant.IsDeletionPending() {
		return fmt.Errorf("%w: merchant %s is not pending deletion", apperrors.ErrValidation, merchantID)
	}

	now := s.now()
	merchant.AccountStatus = domain.StatusActive
	merchant.DeletionScheduledAt = nil
	merchant.LastPaymentDate = dates.StartOfDay(now)
	merchant.LastUpdatedAt = now
	merchant.LastUpdatedBy = actorUserID
	if err := s.merchantRepo.UpdateMerchant(ctx, *merchant); err != nil {
		return fmt.Errorf("failed to cancel deletion for merchant %s: %w", merchantID, err)
	}
	if err := s.reconciler.Recompute(ctx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Merchant deletion cancelled", slog.String("merchant_id", merchantID), slog.String("actor", actorUserID))
	return nil
}
