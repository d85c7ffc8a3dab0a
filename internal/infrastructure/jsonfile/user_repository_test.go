package jsonfile_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/procrm-api/internal/domain/entity"
	"github.com/oksasatya/procrm-api/internal/domain/repository"
	"github.com/oksasatya/procrm-api/internal/infrastructure/jsonfile"
)

func newUserRepo(t *testing.T) *jsonfile.UserRepository {
	t.Helper()
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "users.json"))
	return jsonfile.NewUserRepository(store)
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := newUserRepo(t)
	u := &entity.User{Email: "admin@crm.com", Name: "Admin", Password: "hash", Role: entity.RoleAdmin, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(u))

	got, err := repo.GetByEmail("admin@crm.com")
	require.NoError(t, err)
	require.Equal(t, "Admin", got.Name)
	require.Equal(t, entity.RoleAdmin, got.Role)
}

func TestUserRepositoryGetUnknown(t *testing.T) {
	repo := newUserRepo(t)
	_, err := repo.GetByEmail("ghost@crm.com")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepositoryDuplicateEmailLeavesRecordIntact(t *testing.T) {
	repo := newUserRepo(t)
	u := &entity.User{Email: "admin@crm.com", Name: "Original", Password: "hash", Role: entity.RoleAdmin}
	require.NoError(t, repo.Create(u))

	dup := &entity.User{Email: "admin@crm.com", Name: "Impostor", Password: "other", Role: entity.RoleSales}
	require.ErrorIs(t, repo.Create(dup), repository.ErrEmailTaken)

	got, err := repo.GetByEmail("admin@crm.com")
	require.NoError(t, err)
	require.Equal(t, "Original", got.Name)
	require.Equal(t, "hash", got.Password)
}
