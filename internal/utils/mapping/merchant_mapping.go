package mapping

import (
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/models"
)

// ToModelMerchant converts a domain Merchant to a model Merchant
func ToModelMerchant(d domain.Merchant) models.Merchant {
	return models.Merchant{
		MerchantID:          d.MerchantID,
		Name:                d.Name,
		Address:             d.Address,
		TipPerTransaction:   d.TipPerTransaction,
		Lat:                 d.Location.Lat,
		Lng:                 d.Location.Lng,
		LastPaymentDate:     d.LastPaymentDate,
		AccountStatus:       models.AccountStatus(d.AccountStatus),
		DeletionScheduledAt: d.DeletionScheduledAt,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMerchant converts a model Merchant to a domain Merchant
func ToDomainMerchant(m models.Merchant) domain.Merchant {
	return domain.Merchant{
		MerchantID:          m.MerchantID,
		Name:                m.Name,
		Address:             m.Address,
		TipPerTransaction:   m.TipPerTransaction,
		Location:            domain.GeoPoint{Lat: m.Lat, Lng: m.Lng},
		LastPaymentDate:     m.LastPaymentDate,
		AccountStatus:       domain.AccountStatus(m.AccountStatus),
		DeletionScheduledAt: m.DeletionScheduledAt,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
