package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/aaryaa4/civic-connectt/entity"
	"github.com/aaryaa4/civic-connectt/repository"
	"github.com/aaryaa4/civic-connectt/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testSecret     = "test-secret"
	testAdminEmail = "admin@example.com"
)

// newTestDB opens a per-test in-memory database with the default community
// and admin account already in place.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Community{}, &entity.User{},
		&entity.Report{}, &entity.Feedback{},
	))

	require.NoError(t, db.Create(&entity.Community{ID: 1, Name: "Downtown", City: "Pimpri-Chinchwad"}).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("AdminPass123!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{
		Email:          testAdminEmail,
		HashedPassword: string(hash),
		FullName:       "Municipal Admin",
		Role:           entity.RoleAdmin,
		CommunityID:    1,
		IsActive:       true,
	}).Error)

	return db
}

func newAuthService(db *gorm.DB, trustTokenRole bool) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour, testAdminEmail, trustTokenRole)
}

func TestRegisterThenLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, false)

	user, err := svc.Register("alice@example.com", "Alice A", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, uint(1), user.CommunityID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret", user.HashedPassword)

	token, loggedIn, err := svc.Login("alice@example.com", "s3cret", "user")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	email, role, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, entity.RoleUser, role)
}

func TestRegisterReservedEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, false)

	_, err := svc.Register(testAdminEmail, "Mallory", "pw")
	assert.ErrorIs(t, err, ErrReservedEmail)

	// case-insensitive reservation
	_, err = svc.Register("Admin@Example.COM", "Mallory", "pw")
	assert.ErrorIs(t, err, ErrReservedEmail)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, false)

	_, err := svc.Register("bob@example.com", "Bob", "pw1")
	require.NoError(t, err)

	_, err = svc.Register("bob@example.com", "Bob Again", "pw2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, false)

	_, err := svc.Register("carol@example.com", "Carol", "right-pw")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		userType string
		want     error
	}{
		{name: "unknown email", email: "nobody@example.com", password: "x", userType: "user", want: ErrInvalidCredentials},
		{name: "wrong password", email: "carol@example.com", password: "wrong", userType: "user", want: ErrInvalidCredentials},
		{name: "user posing as admin", email: "carol@example.com", password: "right-pw", userType: "admin", want: ErrNotAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(tt.email, tt.password, tt.userType)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, false)

	token, user, err := svc.Login(testAdminEmail, "AdminPass123!", "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.NotEmpty(t, token)
}

func TestResolveToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, false)

	_, err := svc.Register("dave@example.com", "Dave", "pw")
	require.NoError(t, err)
	token, _, err := svc.Login("dave@example.com", "pw", "user")
	require.NoError(t, err)

	user, role, err := svc.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, role)

	_, _, err = svc.ResolveToken("bogus-token")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

// A stale role claim must not win by default; only trust-token-role mode
// honors it.
func TestResolveTokenRoleSource(t *testing.T) {
	db := newTestDB(t)
	reload := newAuthService(db, false)
	trusting := newAuthService(db, true)

	_, err := reload.Register("eve@example.com", "Eve", "pw")
	require.NoError(t, err)
	token, _, err := reload.Login("eve@example.com", "pw", "user")
	require.NoError(t, err)

	// promote after the token was issued
	require.NoError(t, db.Model(&entity.User{}).
		Where("email = ?", "eve@example.com").
		Update("role", entity.RoleAdmin).Error)

	_, role, err := reload.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role, "reload mode uses the stored role")

	_, role, err = trusting.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role, "trusting mode uses the token claim")
}

func TestResolveTokenUnknownSubject(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, false)

	token, err := utils.GenerateToken("ghost@example.com", "user", testSecret, time.Hour)
	require.NoError(t, err)

	_, _, err = svc.ResolveToken(token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
