package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
	portssvc "github.com/courierdesk/merchant_admin_app/internal/core/ports/services"
	"github.com/courierdesk/merchant_admin_app/internal/dto"
	"github.com/courierdesk/merchant_admin_app/internal/utils/tipmath"
	"github.com/google/uuid"
)

// reconciliationService owns the derived tip-balance state. It implements the
// full pipeline: tip accrual -> payment history -> balance synthesis -> status
// reconciliation. Derived balances are never persisted; they are recomputed
// from the order set and receipt ledger on every mutation and cached in an
// in-memory snapshot.
//
// Concurrency model: a single RWMutex serializes "mutate ledger -> recompute"
// against reads. Mutators hold the write lock across the repository write and
// the recomputation, so readers observe either the old snapshot or the new
// one, never a half-updated balance set. The snapshot map is replaced
// wholesale and never mutated in place, so references handed to readers stay
// consistent after release.
type reconciliationService struct {
	BaseService
	merchantRepo portsrepo.MerchantRepositoryFacade
	orderRepo    portsrepo.OrderRepositoryFacade
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade

	mu       sync.RWMutex
	balances map[string]domain.TipBalance
	computed bool

	now func() time.Time
}

// ReconciliationOption is a functional option for the reconciliation service
type ReconciliationOption func(*reconciliationService)

// WithReconciliationClock overrides the clock, used by tests to pin "today".
func WithReconciliationClock(now func() time.Time) ReconciliationOption {
	return func(s *reconciliationService) {
		s.now = now
	}
}

// NewReconciliationService creates the balance service backing the tip
// reconciliation pipeline.
func NewReconciliationService(
	merchantRepo portsrepo.MerchantRepositoryFacade,
	orderRepo portsrepo.OrderRepositoryFacade,
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	options ...ReconciliationOption,
) portssvc.BalanceSvcFacade {
	svc := &reconciliationService{
		merchantRepo: merchantRepo,
		orderRepo:    orderRepo,
		receiptRepo:  receiptRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BalanceSvcFacade = (*reconciliationService)(nil)

// Recompute runs the full pipeline to completion under the write lock.
func (s *reconciliationService) Recompute(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputeLocked(ctx)
}

// recomputeLocked replays the whole ledger and replaces the balance snapshot.
// Status changes are written back to merchant records so merchant reads stay
// consistent with the derived state. Callers must hold the write lock.
func (s *reconciliationService) recomputeLocked(ctx context.Context) error {
	merchants, err := s.merchantRepo.ListMerchants(ctx)
	if err != nil {
		return fmt.Errorf("failed to load merchants for reconciliation: %w", err)
	}
	orders, err := s.orderRepo.ListAllOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders for reconciliation: %w", err)
	}
	receipts, err := s.receiptRepo.ListAllReceipts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load receipts for reconciliation: %w", err)
	}
	settings, err := s.settingsRepo.GetFinancialSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load financial settings for reconciliation: %w", err)
	}

	now := s.now()
	accruals := tipmath.CalculateTotalTips(orders)
	history := tipmath.ResolvePaymentHistory(receipts, merchants)

	balances := make(map[string]domain.TipBalance, len(merchants))
	var priors, changed []domain.Merchant
	for i := range merchants {
		m := &merchants[i]
		balance := tipmath.SynthesizeBalance(m, orders, accruals[m.MerchantID], history[m.MerchantID], now)
		derived := tipmath.DeriveStatus(m, &balance, *settings)
		balance.Status = derived

		if derived != m.AccountStatus {
			priors = append(priors, *m)
			m.AccountStatus = derived
			m.LastUpdatedAt = now
			changed = append(changed, *m)
		}
		balances[m.MerchantID] = balance
	}

	// Status write-backs happen only once the whole ledger has been derived.
	// If one fails, the ones already applied are reverted so a failed pass
	// leaves merchant records as they were.
	for i := range changed {
		if err := s.merchantRepo.UpdateMerchant(ctx, changed[i]); err != nil {
			for j := i - 1; j >= 0; j-- {
				if revertErr := s.merchantRepo.UpdateMerchant(ctx, priors[j]); revertErr != nil {
					s.LogError(ctx, revertErr, "Failed to revert merchant status after reconciliation error",
						slog.String("merchant_id", priors[j].MerchantID))
				}
			}
			return fmt.Errorf("failed to update merchant %s status: %w", changed[i].MerchantID, err)
		}
	}

	s.balances = balances
	s.computed = true
	return nil
}

// snapshot returns the current balance map, computing it first if this is the
// first read since startup. The returned map is never mutated after release.
func (s *reconciliationService) snapshot(ctx context.Context) (map[string]domain.TipBalance, error) {
	s.mu.RLock()
	if s.computed {
		balances := s.balances
		s.mu.RUnlock()
		return balances, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.computed {
		if err := s.recomputeLocked(ctx); err != nil {
			return nil, err
		}
	}
	return s.balances, nil
}

func (s *reconciliationService) GetTipBalance(ctx context.Context, merchantID string) (*domain.TipBalance, error) {
	balances, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	balance, ok := balances[merchantID]
	if !ok {
		return nil, fmt.Errorf("%w: merchant %s", apperrors.ErrNotFound, merchantID)
	}
	return &balance, nil
}

func (s *reconciliationService) GetAllTipBalances(ctx context.Context) ([]domain.TipBalance, error) {
	balances, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TipBalance, 0, len(balances))
	for _, b := range balances {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MerchantID < out[j].MerchantID
	})
	return out, nil
}

func (s *reconciliationService) ListReceipts(ctx context.Context, merchantID string) ([]domain.Receipt, error) {
	if merchantID != "" {
		return s.receiptRepo.ListReceiptsByMerchant(ctx, merchantID)
	}
	return s.receiptRepo.ListAllReceipts(ctx)
}

// ConfirmTipPayment appends a payout receipt and recomputes. The receipt's
// pendingBalance captures the merchant's current balance before the payment.
func (s *reconciliationService) ConfirmTipPayment(ctx context.Context, merchantID string, req dto.ConfirmTipPaymentRequest, actorUserID string) (*domain.Receipt, error) {
	if req.AmountReceived.IsNegative() {
		return nil, fmt.Errorf("%w: amountReceived must not be negative", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.computed {
		if err := s.recomputeLocked(ctx); err != nil {
			return nil, err
		}
	}

	merchant, err := s.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		s.LogError(ctx, err, "Merchant not found for tip payment", slog.String("merchant_id", merchantID))
		return nil, err
	}

	pending := s.balances[merchantID].CurrentBalance
	receipt := domain.Receipt{
		ReceiptID:      uuid.NewString(),
		MerchantID:     merchantID,
		PendingBalance: pending,
		AmountReceived: req.AmountReceived,
		Difference:     req.Difference,
		CreatedBy:      actorUserID,
		CreatedAt:      s.now(),
	}

	saved, err := s.receiptRepo.SaveReceipt(ctx, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to save receipt for merchant %s: %w", merchantID, err)
	}

	// The merchant record carries the authoritative last payment date; a new
	// receipt advances it, which also lifts any standing disable sentinel.
	merchant.LastPaymentDate = saved.CreatedAt
	merchant.LastUpdatedAt = s.now()
	merchant.LastUpdatedBy = actorUserID
	if err := s.merchantRepo.UpdateMerchant(ctx, *merchant); err != nil {
		return nil, fmt.Errorf("failed to record payment date for merchant %s: %w", merchantID, err)
	}

	if err := s.recomputeLocked(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Tip payment confirmed",
		slog.String("merchant_id", merchantID),
		slog.String("receipt_id", saved.ReceiptID),
		slog.String("amount", saved.AmountReceived.String()),
	)
	return saved, nil
}

// DeleteReceipts removes receipts from the ledger and replays the remainder.
// The repository enforces all-or-nothing semantics: an unknown ID fails the
// whole request and leaves the ledger untouched. Duplicate IDs in the request
// count once. Affected merchants get their last payment date resynchronized
// to the newest surviving receipt, falling back to the registration date, so
// a replayed ledger ages exactly as if the deleted receipts never existed.
func (s *reconciliationService) DeleteReceipts(ctx context.Context, receiptIDs []string, actorUserID string) error {
	if len(receiptIDs) == 0 {
		return fmt.Errorf("%w: no receipt IDs given", apperrors.ErrValidation)
	}

	ids := make([]string, 0, len(receiptIDs))
	seen := make(map[string]struct{}, len(receiptIDs))
	for _, id := range receiptIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doomed, err := s.receiptRepo.FindReceiptsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	if err := s.receiptRepo.DeleteReceipts(ctx, ids); err != nil {
		return err
	}

	affected := make(map[string]struct{}, len(doomed))
	for i := range doomed {
		affected[doomed[i].MerchantID] = struct{}{}
	}
	for merchantID := range affected {
		if err := s.resyncLastPaymentDate(ctx, merchantID, actorUserID); err != nil {
			return err
		}
	}

	if err := s.recomputeLocked(ctx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Receipts deleted from ledger",
		slog.Int("count", len(ids)),
		slog.String("actor", actorUserID),
	)
	return nil
}

// resyncLastPaymentDate points a merchant's last payment date at its newest
// surviving receipt after a ledger deletion. With an empty ledger the date
// reverts to the registration seed. Merchants already purged are skipped.
func (s *reconciliationService) resyncLastPaymentDate(ctx context.Context, merchantID string, actorUserID string) error {
	merchant, err := s.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}

	remaining, err := s.receiptRepo.ListReceiptsByMerchant(ctx, merchantID)
	if err != nil {
		return fmt.Errorf("failed to list receipts for merchant %s: %w", merchantID, err)
	}

	last := merchant.CreatedAt
	if len(remaining) > 0 {
		last = remaining[len(remaining)-1].CreatedAt
	}
	if merchant.LastPaymentDate.Equal(last) {
		return nil
	}

	merchant.LastPaymentDate = last
	merchant.LastUpdatedAt = s.now()
	merchant.LastUpdatedBy = actorUserID
	if err := s.merchantRepo.UpdateMerchant(ctx, *merchant); err != nil {
		return fmt.Errorf("failed to resync payment date for merchant %s: %w", merchantID, err)
	}
	return nil
}
