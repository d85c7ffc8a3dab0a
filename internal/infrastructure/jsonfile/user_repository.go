package jsonfile

import (
	"github.com/oksasatya/procrm-api/internal/domain/entity"
	"github.com/oksasatya/procrm-api/internal/domain/repository"
)

// UserRepository stores the user directory as a JSON object keyed by
// lowercased email.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) load() (map[string]entity.User, error) {
	users := map[string]entity.User{}
	if err := r.store.Load(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	u, ok := users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

// Create stores a new user. The existing record is never touched when the
// email is already registered.
func (r *UserRepository) Create(u *entity.User) error {
	return r.store.Update(func() error {
		users, err := r.load()
		if err != nil {
			return err
		}
		if _, ok := users[u.Email]; ok {
			return repository.ErrEmailTaken
		}
		users[u.Email] = *u
		return r.store.Save(users)
	})
}

var _ repository.UserRepository = (*UserRepository)(nil)
