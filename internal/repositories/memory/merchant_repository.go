package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
)

type merchantRepository struct {
	store *Store
}

var _ portsrepo.MerchantRepositoryFacade = (*merchantRepository)(nil)

func (r *merchantRepository) SaveMerchant(_ context.Context, merchant domain.Merchant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.merchants[merchant.MerchantID]; exists {
		return fmt.Errorf("%w: merchant %s", apperrors.ErrDuplicate, merchant.MerchantID)
	}
	r.store.merchants[merchant.MerchantID] = merchant
	return nil
}

func (r *merchantRepository) UpdateMerchant(_ context.Context, merchant domain.Merchant) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.merchants[merchant.MerchantID]; !exists {
		return fmt.Errorf("%w: merchant %s", apperrors.ErrNotFound, merchant.MerchantID)
	}
	r.store.merchants[merchant.MerchantID] = merchant
	return nil
}

func (r *merchantRepository) DeleteMerchant(_ context.Context, merchantID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.merchants[merchantID]; !exists {
		return fmt.Errorf("%w: merchant %s", apperrors.ErrNotFound, merchantID)
	}
	delete(r.store.merchants, merchantID)
	return nil
}

func (r *merchantRepository) FindMerchantByID(_ context.Context, merchantID string) (*domain.Merchant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	merchant, exists := r.store.merchants[merchantID]
	if !exists {
		return nil, fmt.Errorf("%w: merchant %s", apperrors.ErrNotFound, merchantID)
	}
	return &merchant, nil
}

func (r *merchantRepository) ListMerchants(_ context.Context) ([]domain.Merchant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	merchants := make([]domain.Merchant, 0, len(r.store.merchants))
	for _, m := range r.store.merchants {
		merchants = append(merchants, m)
	}
	sort.Slice(merchants, func(i, j int) bool {
		if merchants[i].CreatedAt.Equal(merchants[j].CreatedAt) {
			return merchants[i].MerchantID < merchants[j].MerchantID
		}
		return merchants[i].CreatedAt.Before(merchants[j].CreatedAt)
	})
	return merchants, nil
}
