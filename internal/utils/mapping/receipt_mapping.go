package mapping

import (
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:      d.ReceiptID,
		MerchantID:     d.MerchantID,
		PendingBalance: d.PendingBalance,
		AmountReceived: d.AmountReceived,
		Difference:     d.Difference,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
		Seq:            d.Seq,
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:      m.ReceiptID,
		MerchantID:     m.MerchantID,
		PendingBalance: m.PendingBalance,
		AmountReceived: m.AmountReceived,
		Difference:     m.Difference,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		Seq:            m.Seq,
	}
}
