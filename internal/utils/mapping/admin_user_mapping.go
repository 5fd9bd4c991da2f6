package mapping

import (
	"github.com/courierdesk/merchant_admin_app/internal/core/domain"
	"github.com/courierdesk/merchant_admin_app/internal/models"
)

// ToModelAdminUser converts a domain AdminUser to a model AdminUser
func ToModelAdminUser(d domain.AdminUser) models.AdminUser {
	return models.AdminUser{
		AdminUserID:  d.AdminUserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdminUser converts a model AdminUser to a domain AdminUser
func ToDomainAdminUser(m models.AdminUser) domain.AdminUser {
	return domain.AdminUser{
		AdminUserID:  m.AdminUserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
