package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/gerai/catalog-api/internal/config"
	"github.com/gerai/catalog-api/internal/models"
	"github.com/gerai/catalog-api/internal/repository"
	"github.com/gerai/catalog-api/internal/utils"
)

// UserStore is the data access surface the auth service needs.
type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, credential checks, and token issuance.
// Access and refresh tokens are signed with distinct secrets.
type AuthService struct {
	userRepo UserStore
	jwt      config.JWTConfig
}

// NewAuthService constructs an AuthService.
func NewAuthService(userRepo UserStore, jwt config.JWTConfig) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt}
}

// Register creates a user account with a bcrypt-hashed password. The raw
// password never reaches the store.
func (s *AuthService) Register(email, fullName, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, utils.Conflict("User with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		FullName: fullName,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration can win between the pre-check and the
		// insert; the unique index reports it the same way.
		if repository.IsUniqueViolation(err) {
			return nil, utils.Conflict("User with this email already exists")
		}
		return nil, err
	}

	log.Info().Str("email", email).Msg("user registered")
	return user, nil
}

// ValidateCredentials returns the user on an email/password match, nil
// otherwise. The caller decides how to surface the failure.
func (s *AuthService) ValidateCredentials(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}

// Login issues an access token and a refresh token for the user.
func (s *AuthService) Login(user *models.User) (*TokenPair, error) {
	access, err := utils.GenerateToken(user.ID, user.Email, s.jwt.AccessSecret, s.jwt.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateToken(user.ID, user.Email, s.jwt.RefreshSecret, s.jwt.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshTokens issues a new access token only.
func (s *AuthService) RefreshTokens(user *models.User) (string, error) {
	return utils.GenerateToken(user.ID, user.Email, s.jwt.AccessSecret, s.jwt.AccessTTL)
}

// ValidateAccessToken verifies an access token and returns its claims.
func (s *AuthService) ValidateAccessToken(token string) (*utils.TokenClaims, error) {
	claims, err := utils.ValidateToken(token, s.jwt.AccessSecret)
	if err != nil {
		return nil, utils.Unauthorized("Invalid or expired token")
	}
	return claims, nil
}

// ValidateRefreshToken verifies a refresh token and resolves its subject to a
// live user. A valid signature over a deleted account still fails.
func (s *AuthService) ValidateRefreshToken(token string) (*models.User, error) {
	claims, err := utils.ValidateToken(token, s.jwt.RefreshSecret)
	if err != nil {
		return nil, utils.Unauthorized("Invalid refresh token")
	}

	user, err := s.userRepo.GetByID(claims.Subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.Unauthorized("Invalid refresh token")
		}
		return nil, err
	}
	return user, nil
}

// FindByID resolves a user id to its record or NotFound.
func (s *AuthService) FindByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
