package services

import (
	"errors"
	"strings"
	"time"

	"github.com/aaryaa4/civic-connectt/entity"
	"github.com/aaryaa4/civic-connectt/repository"
	"github.com/aaryaa4/civic-connectt/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and token resolution.
type AuthService struct {
	userRepo       *repository.UserRepository
	jwtSecret      string
	jwtTTL         time.Duration
	adminEmail     string
	trustTokenRole bool
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration, adminEmail string, trustTokenRole bool) *AuthService {
	return &AuthService{
		userRepo:       repo,
		jwtSecret:      secret,
		jwtTTL:         ttl,
		adminEmail:     adminEmail,
		trustTokenRole: trustTokenRole,
	}
}

// Register creates a resident account in the default community. Emails are
// stored as given; only the reserved-admin check ignores case.
func (s *AuthService) Register(email, fullName, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)

	if strings.EqualFold(email, s.adminEmail) {
		return nil, ErrReservedEmail
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       strings.TrimSpace(fullName),
		Role:           entity.RoleUser,
		CommunityID:    1,
		IsActive:       true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a token. userType "admin" additionally
// requires the stored role to be admin.
func (s *AuthService) Login(email, password, userType string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if userType == entity.RoleAdmin && user.Role != entity.RoleAdmin {
		return "", nil, ErrNotAdmin
	}

	token, err := utils.GenerateToken(user.Email, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// ResolveToken validates a bearer token and loads the subject user. The
// returned role is the stored one unless trust-token-role mode is on, in
// which case the claim embedded in the token wins.
func (s *AuthService) ResolveToken(token string) (*entity.User, string, error) {
	email, claimRole, err := utils.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, "", utils.ErrInvalidToken
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", utils.ErrInvalidToken
		}
		return nil, "", err
	}

	role := user.Role
	if s.trustTokenRole {
		role = claimRole
	}
	return user, role, nil
}
