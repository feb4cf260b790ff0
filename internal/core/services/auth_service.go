package services

import (
	"context"
	"errors"
	"log"

	"ooskills-backend/internal/adapters/persistence/models"
	"ooskills-backend/internal/adapters/persistence/repositories"
	"ooskills-backend/internal/config"
	"ooskills-backend/internal/core/domain"
	"ooskills-backend/internal/pkg/jwt"
	"ooskills-backend/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService is the token authority: it issues, validates, rotates and
// revokes the access/refresh pair for every session lineage.
type AuthService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	referralService  *ReferralService
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	referralService *ReferralService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		referralService:  referralService,
		cfg:              cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Wilaya       string `json:"wilaya"`
	ReferralCode string `json:"referral_code"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *models.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Register registers a new user, assigns a referral code and optionally
// records the referral link, then opens a fresh session lineage.
// Every input is checked before the row is inserted, so a rejected
// registration never leaves a half-created account holding the email.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	if !domain.ValidPhone(input.Phone) {
		return nil, domain.ErrInvalidPhone
	}

	var referrer *models.User
	if input.ReferralCode != "" {
		referrer, err = s.referralService.ResolveCode(ctx, input.ReferralCode)
		if err != nil {
			return nil, err
		}
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	code, err := s.referralService.GenerateCode(ctx, input.FirstName)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        input.Email,
		Password:     hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Wilaya:       input.Wilaya,
		Role:         string(domain.RoleUser),
		Status:       string(domain.StatusActive),
		ReferralCode: code,
	}
	if referrer != nil {
		user.ReferredByID = &referrer.ID
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.openLineage(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Email)

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Login authenticates a user and opens a new session lineage
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive() {
		return nil, domain.ErrUserInactive
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.openLineage(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Rotate exchanges a refresh token for a new pair in the same lineage.
// Strict one-time use: the old token is consumed atomically, and a replay
// of an already-consumed token revokes the whole lineage before failing.
func (s *AuthService) Rotate(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}

	tokenHash := password.HashToken(refreshToken)

	stored, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenMalformed
		}
		return nil, err
	}

	// A consumed token reports reuse on every replay, including replays
	// after the first one has already revoked the lineage.
	if stored.IsRotated() {
		if err := s.refreshTokenRepo.RevokeLineage(ctx, stored.LineageID); err != nil {
			return nil, err
		}
		log.Printf("⚠️ Refresh token reuse detected, lineage %s revoked", stored.LineageID)
		return nil, domain.ErrTokenReused
	}
	if stored.IsRevoked() {
		return nil, domain.ErrTokenRevoked
	}
	if stored.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	won, err := s.refreshTokenRepo.MarkRotated(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	if !won {
		// Replay of a consumed token signals possible theft: kill the
		// entire lineage before reporting the failure.
		if err := s.refreshTokenRepo.RevokeLineage(ctx, stored.LineageID); err != nil {
			return nil, err
		}
		log.Printf("⚠️ Refresh token reuse detected, lineage %s revoked", stored.LineageID)
		return nil, domain.ErrTokenReused
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsActive() {
		return nil, domain.ErrUserInactive
	}

	tokens, err := s.issueTokens(ctx, user, stored.LineageID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Token rotated for user: %s", user.Email)

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Validate checks an access token: signature and expiry first, then the
// revocation state of its lineage. Returns the embedded identity claims.
func (s *AuthService) Validate(ctx context.Context, accessToken string) (*jwt.AccessClaims, error) {
	claims, err := jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}

	revoked, err := s.refreshTokenRepo.IsLineageRevoked(ctx, claims.LineageID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	return claims, nil
}

// Logout revokes the lineage of the presented refresh token. Idempotent:
// revoking an already-revoked lineage is a no-op.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := password.HashToken(refreshToken)

	stored, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.refreshTokenRepo.RevokeLineage(ctx, stored.LineageID); err != nil {
		return err
	}

	log.Printf("✅ User logged out, lineage %s revoked", stored.LineageID)
	return nil
}

// LogoutAll revokes every session lineage of a user
func (s *AuthService) LogoutAll(ctx context.Context, userID uint) error {
	if err := s.refreshTokenRepo.RevokeAllByUserID(ctx, userID); err != nil {
		return err
	}

	log.Printf("✅ All sessions revoked for user ID: %d", userID)
	return nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// openLineage starts a brand new session lineage for a login/registration
func (s *AuthService) openLineage(ctx context.Context, user *models.User) (*TokenPair, error) {
	return s.issueTokens(ctx, user, uuid.New().String())
}

// issueTokens generates an access/refresh pair bound to one lineage and
// persists the refresh record for later revocation checks
func (s *AuthService) issueTokens(ctx context.Context, user *models.User, lineageID string) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		user.Role,
		lineageID,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()

	refreshToken, err := jwt.GenerateRefreshToken(
		user.ID,
		tokenID,
		lineageID,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		LineageID: lineageID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	if err := s.refreshTokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
