package domain

// AdminUser is a dashboard operator account. The service only authenticates
// admins; there is no self-service user management surface.
type AdminUser struct {
	AdminUserID  string `json:"adminUserID"` // Primary key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
