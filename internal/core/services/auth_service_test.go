package services

import (
	"context"
	"sync"
	"testing"

	"ooskills-backend/internal/config"
	"ooskills-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()
	referralService := NewReferralService(userRepo)
	return NewAuthService(userRepo, tokenRepo, referralService, testConfig()), userRepo, tokenRepo
}

func registerTestUser(t *testing.T, svc *AuthService, email string) *AuthResponse {
	t.Helper()
	result, err := svc.Register(context.Background(), &RegisterInput{
		Email:     email,
		Password:  "password123",
		FirstName: "Samir",
		LastName:  "Benali",
		Wilaya:    "16",
	})
	require.NoError(t, err)
	return result
}

func TestRegisterIssuesTokensAndReferralCode(t *testing.T) {
	svc, _, _ := newTestAuthService()

	result := registerTestUser(t, svc, "samir@ooskills.com")

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Len(t, result.User.ReferralCode, 8)
	assert.Equal(t, "SAM", result.User.ReferralCode[:3])
	assert.Equal(t, string(domain.RoleUser), result.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc, "samir@ooskills.com")

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:     "samir@ooskills.com",
		Password:  "password123",
		FirstName: "Other",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestRegisterWithReferralCodeLinksReferrer(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	owner := registerTestUser(t, svc, "owner@ooskills.com")

	result, err := svc.Register(context.Background(), &RegisterInput{
		Email:        "lina@ooskills.com",
		Password:     "password123",
		FirstName:    "Lina",
		ReferralCode: owner.User.ReferralCode,
	})
	require.NoError(t, err)

	linked, err := userRepo.GetByID(context.Background(), result.User.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.ReferredByID)
	assert.Equal(t, owner.User.ID, *linked.ReferredByID)
}

func TestRegisterWithUnknownReferralCodeLeavesNoAccount(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:        "samir@ooskills.com",
		Password:     "password123",
		FirstName:    "Samir",
		ReferralCode: "NOPE0000",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownReferralCode)

	// The rejected registration must not have claimed the email
	_, err = userRepo.GetByEmail(context.Background(), "samir@ooskills.com")
	assert.Error(t, err)

	// A clean retry without the bad code succeeds
	result := registerTestUser(t, svc, "samir@ooskills.com")
	assert.NotEmpty(t, result.AccessToken)
}

func TestRegisterRejectsMalformedPhone(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()

	for _, phone := range []string{"12345", "+33612345678", "0412345678", "05123456", "phone"} {
		_, err := svc.Register(context.Background(), &RegisterInput{
			Email:     "samir@ooskills.com",
			Password:  "password123",
			FirstName: "Samir",
			Phone:     phone,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPhone, "phone %q", phone)
	}
	_, err := userRepo.GetByEmail(context.Background(), "samir@ooskills.com")
	assert.Error(t, err)

	for i, phone := range []string{"+213512345678", "0612345678", "0712345678", ""} {
		_, err := svc.Register(context.Background(), &RegisterInput{
			Email:     string(rune('a'+i)) + "@ooskills.com",
			Password:  "password123",
			FirstName: "Samir",
			Phone:     phone,
		})
		assert.NoError(t, err, "phone %q", phone)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc, "samir@ooskills.com")

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "samir@ooskills.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@ooskills.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestValidateAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	result := registerTestUser(t, svc, "samir@ooskills.com")

	claims, err := svc.Validate(context.Background(), result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.NotEmpty(t, claims.LineageID)

	_, err = svc.Validate(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrTokenMalformed)
}

func TestRotateKeepsLineage(t *testing.T) {
	svc, _, tokenRepo := newTestAuthService()
	result := registerTestUser(t, svc, "samir@ooskills.com")

	first, err := svc.Validate(context.Background(), result.AccessToken)
	require.NoError(t, err)

	rotated, err := svc.Rotate(context.Background(), result.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, result.RefreshToken, rotated.RefreshToken)

	second, err := svc.Validate(context.Background(), rotated.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, first.LineageID, second.LineageID)

	// Both the consumed and the fresh record share the lineage
	assert.Equal(t, 2, tokenRepo.countByLineage(first.LineageID))
}

func TestRotateReplayRevokesLineage(t *testing.T) {
	svc, _, _ := newTestAuthService()
	result := registerTestUser(t, svc, "samir@ooskills.com")

	rotated, err := svc.Rotate(context.Background(), result.RefreshToken)
	require.NoError(t, err)

	// Replaying the consumed token must fail and kill the whole session
	_, err = svc.Rotate(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenReused)

	// Further replays of the same token keep reporting reuse, not the
	// revocation the first replay triggered
	_, err = svc.Rotate(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenReused)

	// Even the legitimately rotated pair is now dead
	_, err = svc.Validate(context.Background(), rotated.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	_, err = svc.Rotate(context.Background(), rotated.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)
}

func TestConcurrentRotationSingleWinner(t *testing.T) {
	svc, _, _ := newTestAuthService()
	result := registerTestUser(t, svc, "samir@ooskills.com")

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Rotate(context.Background(), result.RefreshToken)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		// Every loser observes the consumed token
		assert.ErrorIs(t, err, domain.ErrTokenReused)
	}
	assert.Equal(t, 1, wins)
}

func TestLogoutRevokesLineageAndIsIdempotent(t *testing.T) {
	svc, _, _ := newTestAuthService()
	result := registerTestUser(t, svc, "samir@ooskills.com")

	require.NoError(t, svc.Logout(context.Background(), result.RefreshToken))

	_, err := svc.Validate(context.Background(), result.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	_, err = svc.Rotate(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	// Second logout with the same token is a no-op
	require.NoError(t, svc.Logout(context.Background(), result.RefreshToken))

	// Unknown token is also a no-op
	require.NoError(t, svc.Logout(context.Background(), "unknown-token"))
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	svc, _, _ := newTestAuthService()
	first := registerTestUser(t, svc, "samir@ooskills.com")

	second, err := svc.Login(context.Background(), &LoginInput{
		Email:    "samir@ooskills.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(context.Background(), first.User.ID))

	_, err = svc.Validate(context.Background(), first.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)
	_, err = svc.Validate(context.Background(), second.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)
}

func TestLoginOpensIndependentLineages(t *testing.T) {
	svc, _, _ := newTestAuthService()
	first := registerTestUser(t, svc, "samir@ooskills.com")

	second, err := svc.Login(context.Background(), &LoginInput{
		Email:    "samir@ooskills.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// Killing one session leaves the other alive
	require.NoError(t, svc.Logout(context.Background(), first.RefreshToken))

	_, err = svc.Validate(context.Background(), second.AccessToken)
	assert.NoError(t, err)
}

func TestInactiveUserCannotLoginOrRotate(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	result := registerTestUser(t, svc, "samir@ooskills.com")

	user, err := userRepo.GetByID(context.Background(), result.User.ID)
	require.NoError(t, err)
	user.Status = string(domain.StatusSuspended)
	require.NoError(t, userRepo.Update(context.Background(), user))

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "samir@ooskills.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrUserInactive)

	_, err = svc.Rotate(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}
