package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/courierdesk/merchant_admin_app/internal/apperrors"
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	portsrepo "github.com/courierdesk/merchant_admin_app/internal/core/ports/repositories"
)

type receiptRepository struct {
	store *Store
}

var _ portsrepo.ReceiptRepositoryFacade = (*receiptRepository)(nil)

func (r *receiptRepository) SaveReceipt(_ context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.receipts[receipt.ReceiptID]; exists {
		return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrDuplicate, receipt.ReceiptID)
	}
	r.store.receiptSeq++
	receipt.Seq = r.store.receiptSeq
	r.store.receipts[receipt.ReceiptID] = receipt
	return &receipt, nil
}

func (r *receiptRepository) DeleteReceipts(_ context.Context, receiptIDs []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, id := range receiptIDs {
		if _, exists := r.store.receipts[id]; !exists {
			return fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, id)
		}
	}
	for _, id := range receiptIDs {
		delete(r.store.receipts, id)
	}
	return nil
}

func (r *receiptRepository) ListAllReceipts(_ context.Context) ([]domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	receipts := make([]domain.Receipt, 0, len(r.store.receipts))
	for _, rec := range r.store.receipts {
		receipts = append(receipts, rec)
	}
	sortReceipts(receipts)
	return receipts, nil
}

func (r *receiptRepository) ListReceiptsByMerchant(_ context.Context, merchantID string) ([]domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var receipts []domain.Receipt
	for _, rec := range r.store.receipts {
		if rec.MerchantID == merchantID {
			receipts = append(receipts, rec)
		}
	}
	sortReceipts(receipts)
	return receipts, nil
}

func (r *receiptRepository) FindReceiptsByIDs(_ context.Context, receiptIDs []string) ([]domain.Receipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	receipts := make([]domain.Receipt, 0, len(receiptIDs))
	for _, id := range receiptIDs {
		rec, exists := r.store.receipts[id]
		if !exists {
			return nil, fmt.Errorf("%w: receipt %s", apperrors.ErrNotFound, id)
		}
		receipts = append(receipts, rec)
	}
	sortReceipts(receipts)
	return receipts, nil
}

func sortReceipts(receipts []domain.Receipt) {
	sort.Slice(receipts, func(i, j int) bool {
		return receipts[i].Before(&receipts[j])
	})
}
