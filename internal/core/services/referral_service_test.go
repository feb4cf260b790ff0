package services

import (
	"context"
	"testing"

	"ooskills-backend/internal/adapters/persistence/models"
	"ooskills-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *fakeUserRepo, firstName, code string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        firstName + "@ooskills.com",
		FirstName:    firstName,
		Role:         string(domain.RoleUser),
		Status:       string(domain.StatusActive),
		ReferralCode: code,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGenerateCodeUsesNamePrefix(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewReferralService(repo)

	code, err := svc.GenerateCode(context.Background(), "Samir")
	require.NoError(t, err)
	assert.Len(t, code, 8)
	assert.Equal(t, "SAM", code[:3])

	for _, ch := range code {
		assert.Contains(t, codeAlphabet, string(ch))
	}
}

func TestGenerateCodeShortNameFallsBackToDefaultPrefix(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewReferralService(repo)

	for _, name := range []string{"", "Al", "42", " é "} {
		code, err := svc.GenerateCode(context.Background(), name)
		require.NoError(t, err)
		assert.Equal(t, defaultPrefix, code[:3], "name %q", name)
	}
}

func TestGenerateCodeAvoidsCollisions(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewReferralService(repo)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := svc.GenerateCode(context.Background(), "Samir")
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
		seedUser(t, repo, "Samir", code)
	}
}

func TestRecordReferralUnknownCode(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewReferralService(repo)
	newcomer := seedUser(t, repo, "Lina", "LIN11111")

	err := svc.RecordReferral(context.Background(), newcomer, "NOPE0000")
	assert.ErrorIs(t, err, domain.ErrUnknownReferralCode)
	assert.Nil(t, newcomer.ReferredByID)
}

func TestRecordReferralOwnCodeRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewReferralService(repo)
	user := seedUser(t, repo, "Samir", "SAM11111")

	err := svc.RecordReferral(context.Background(), user, "SAM11111")
	assert.ErrorIs(t, err, domain.ErrSelfReferral)
}

func TestRecordReferralPairCycleRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewReferralService(repo)
	alice := seedUser(t, repo, "Amel", "AME11111")
	bob := seedUser(t, repo, "Bilal", "BIL11111")

	require.NoError(t, svc.RecordReferral(context.Background(), bob, "AME11111"))

	// Now Amel trying to be referred by Bilal would close a direct cycle
	aliceRef, err := repo.GetByID(context.Background(), alice.ID)
	require.NoError(t, err)
	err = svc.RecordReferral(context.Background(), aliceRef, "BIL11111")
	assert.ErrorIs(t, err, domain.ErrSelfReferral)
}

func TestRecordReferralCodeIsCaseInsensitive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewReferralService(repo)
	owner := seedUser(t, repo, "Samir", "SAM11111")
	newcomer := seedUser(t, repo, "Lina", "LIN11111")

	require.NoError(t, svc.RecordReferral(context.Background(), newcomer, "  sam11111 "))
	require.NotNil(t, newcomer.ReferredByID)
	assert.Equal(t, owner.ID, *newcomer.ReferredByID)
}

func TestListReferralsInCreationOrder(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewReferralService(repo)
	owner := seedUser(t, repo, "Samir", "SAM11111")

	names := []string{"Amel", "Bilal", "Chafik"}
	for i, name := range names {
		u := seedUser(t, repo, name, "XXX0000"+string(rune('1'+i)))
		require.NoError(t, svc.RecordReferral(context.Background(), u, "SAM11111"))
	}

	referrals, err := svc.ListReferrals(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 3)
	for i, name := range names {
		assert.Equal(t, name, referrals[i].FirstName)
	}
}
