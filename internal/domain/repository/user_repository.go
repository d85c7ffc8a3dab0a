package repository

import "github.com/oksasatya/procrm-api/internal/domain/entity"

// UserRepository defines the interface for the user directory.
// Emails passed in are expected to be lowercased by the caller.
type UserRepository interface {
	GetByEmail(email string) (*entity.User, error)
	Create(u *entity.User) error
}
