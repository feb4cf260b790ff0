package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"ooskills-backend/internal/adapters/persistence/models"
	"ooskills-backend/internal/adapters/persistence/repositories"
	"ooskills-backend/internal/core/domain"

	"gorm.io/gorm"
)

const (
	codeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeSuffixLen   = 5
	codePrefixLen   = 3
	defaultPrefix   = "OOS"
	maxCodeAttempts = 10
)

// ReferralService is the referral ledger: it mints unique codes at user
// creation and records who referred whom. A referral link is permanent.
type ReferralService struct {
	userRepo repositories.UserRepository
}

// NewReferralService creates a new referral service
func NewReferralService(userRepo repositories.UserRepository) *ReferralService {
	return &ReferralService{userRepo: userRepo}
}

// GenerateCode produces a referral code unique across all users.
// Codes are a 3-letter prefix from the owner's first name plus a random
// suffix; collisions retry with a new suffix.
func (s *ReferralService) GenerateCode(ctx context.Context, firstName string) (string, error) {
	prefix := codePrefix(firstName)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		suffix, err := randomSuffix(codeSuffixLen)
		if err != nil {
			return "", err
		}
		code := prefix + suffix

		taken, err := s.userRepo.ExistsByReferralCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}

	return "", fmt.Errorf("could not generate unique referral code after %d attempts", maxCodeAttempts)
}

// ResolveCode returns the owner of a referral code, or
// ErrUnknownReferralCode when nobody owns it. Registration calls this
// before the new account row exists, so a bad code never leaves a
// half-created user behind.
func (s *ReferralService) ResolveCode(ctx context.Context, code string) (*models.User, error) {
	owner, err := s.userRepo.GetByReferralCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownReferralCode
		}
		return nil, err
	}
	return owner, nil
}

// RecordReferral links newUser to the owner of code. Fails with
// ErrUnknownReferralCode when no user owns the code and ErrSelfReferral
// when the code belongs to newUser; neither failure mutates state.
// A direct pair cycle (the owner was referred by newUser) is rejected.
func (s *ReferralService) RecordReferral(ctx context.Context, newUser *models.User, code string) error {
	owner, err := s.ResolveCode(ctx, code)
	if err != nil {
		return err
	}

	if owner.ID == newUser.ID {
		return domain.ErrSelfReferral
	}
	if owner.ReferredByID != nil && *owner.ReferredByID == newUser.ID {
		return domain.ErrSelfReferral
	}

	newUser.ReferredByID = &owner.ID
	return s.userRepo.Update(ctx, newUser)
}

// ListReferrals returns every user referred by userID, in creation order
func (s *ReferralService) ListReferrals(ctx context.Context, userID uint) ([]*models.UserResponse, error) {
	users, err := s.userRepo.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		referrals = append(referrals, u.ToResponse())
	}
	return referrals, nil
}

// codePrefix derives the code prefix from a first name, uppercased and
// padded with the default prefix when the name is too short
func codePrefix(firstName string) string {
	name := strings.ToUpper(strings.TrimSpace(firstName))
	cleaned := make([]byte, 0, codePrefixLen)
	for i := 0; i < len(name) && len(cleaned) < codePrefixLen; i++ {
		if name[i] >= 'A' && name[i] <= 'Z' {
			cleaned = append(cleaned, name[i])
		}
	}
	if len(cleaned) < codePrefixLen {
		return defaultPrefix
	}
	return string(cleaned)
}

// randomSuffix draws n characters from the code alphabet
func randomSuffix(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf), nil
}
