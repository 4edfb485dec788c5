package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an authenticated actor in the system.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// IsAdmin reports whether u carries the admin role. A nil user is never admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
