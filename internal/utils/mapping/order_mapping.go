package mapping

import (
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/models"
)

// ToModelOrder converts a domain Order to a model Order (without line items,
// which live in their own table).
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:     d.OrderID,
		MerchantID:  d.MerchantID,
		OrderDate:   d.OrderDate,
		Status:      models.OrderStatus(d.Status),
		MerchantTip: d.MerchantTip,
		PlatformTip: d.PlatformTip,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order plus its line item rows to a domain Order
func ToDomainOrder(m models.Order, items []models.OrderItem) domain.Order {
	domainItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return domain.Order{
		OrderID:     m.OrderID,
		MerchantID:  m.MerchantID,
		OrderDate:   m.OrderDate,
		Status:      domain.OrderStatus(m.Status),
		Items:       domainItems,
		MerchantTip: m.MerchantTip,
		PlatformTip: m.PlatformTip,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
