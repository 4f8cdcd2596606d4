package models

// User roles. DEVELOPER and ADMIN have full back-office access,
// EDITOR is limited to content they are allowed to manage.
const (
	RoleEditor    = "EDITOR"
	RoleAdmin     = "ADMIN"
	RoleDeveloper = "DEVELOPER"
)

// User represents a back-office account.
type User struct {
	BaseModel
	Username     string `json:"username"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:EDITOR" json:"role"`
	Avatar       string `json:"avatar"`
	IsGoogle     bool   `json:"is_google"`
}
