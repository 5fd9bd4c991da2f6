package models

// AdminUser is a dashboard operator row.
type AdminUser struct {
	AdminUserID  string `db:"admin_user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
