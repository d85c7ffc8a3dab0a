package application_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/procrm-api/internal/application"
	"github.com/oksasatya/procrm-api/internal/domain/entity"
	"github.com/oksasatya/procrm-api/internal/domain/repository"
	"github.com/oksasatya/procrm-api/internal/infrastructure/jsonfile"
	"github.com/oksasatya/procrm-api/pkg/helpers"
)

func newAuthService(t *testing.T) (*application.AuthService, *helpers.JWTManager) {
	t.Helper()
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "users.json"))
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := application.NewAuthService(jsonfile.NewUserRepository(store), jwt, nil, nil)
	return svc, jwt
}

func TestSignupThenLogin(t *testing.T) {
	svc, jwt := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, "admin@crm.com", "admin123", "Admin User")
	require.NoError(t, err)
	require.Equal(t, "admin@crm.com", res.User.Email)
	require.Equal(t, entity.RoleSales, res.User.Role, "signup assigns the non-privileged role")
	require.NotEmpty(t, res.Token)

	claims, err := jwt.ParseToken(res.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@crm.com", claims.Email)
	require.Equal(t, entity.RoleSales, claims.Role)

	login, err := svc.Login(ctx, "admin@crm.com", "admin123")
	require.NoError(t, err)
	require.Equal(t, "Admin User", login.User.Name)
	require.True(t, login.ExpiresAt.After(time.Now()))
}

func TestLoginNormalizesEmailCase(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Admin@CRM.com", "admin123", "Admin User")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "ADMIN@crm.COM", "admin123")
	require.NoError(t, err)
	require.Equal(t, "admin@crm.com", res.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "admin@crm.com", "admin123", "Admin User")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin@crm.com", "wrong")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Login(context.Background(), "ghost@crm.com", "whatever")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestSignupDuplicateEmailLeavesUserIntact(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "admin@crm.com", "admin123", "Admin User")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "ADMIN@crm.com", "hacked", "Impostor")
	require.ErrorIs(t, err, repository.ErrEmailTaken)

	// original credentials still work, impostor's do not
	_, err = svc.Login(ctx, "admin@crm.com", "admin123")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "admin@crm.com", "hacked")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestPasswordsAreStoredHashed(t *testing.T) {
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "users.json"))
	repo := jsonfile.NewUserRepository(store)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := application.NewAuthService(repo, jwt, nil, nil)

	_, err := svc.Signup(context.Background(), "admin@crm.com", "admin123", "Admin User")
	require.NoError(t, err)

	u, err := repo.GetByEmail("admin@crm.com")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", u.Password)
	require.True(t, helpers.CompareHashAndPassword(u.Password, "admin123"))
}

func TestProfile(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "sales@crm.com", "sales123", "Sales Rep")
	require.NoError(t, err)

	view, err := svc.Profile("sales@crm.com")
	require.NoError(t, err)
	require.Equal(t, "Sales Rep", view.Name)

	_, err = svc.Profile("ghost@crm.com")
	require.ErrorIs(t, err, application.ErrUserNotFound)
}
