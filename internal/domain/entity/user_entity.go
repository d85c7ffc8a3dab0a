package entity

import "time"

// User roles. Signup always assigns the non-privileged role.
const (
	RoleAdmin = "admin"
	RoleSales = "sales"
)

// User is the aggregate root for the auth domain.
// Email is the unique key, normalized to lowercase before any lookup.
// Password holds a bcrypt hash and is never serialized to API responses.
type User struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
