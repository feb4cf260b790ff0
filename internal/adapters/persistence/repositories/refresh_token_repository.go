package repositories

import (
	"context"
	"time"

	"ooskills-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// refreshTokenRepository implements RefreshTokenRepository interface
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create creates a new refresh token record
func (r *refreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// GetByTokenHash gets a refresh token by its hash, regardless of state.
// Callers inspect RotatedAt/RevokedAt to distinguish reuse from revocation.
func (r *refreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// MarkRotated consumes a live token with a single conditional update.
// The WHERE clause is the compare half of the compare-and-invalidate:
// only a token that is neither rotated nor revoked can be consumed,
// and the row lock guarantees at most one winner under concurrency.
func (r *refreshTokenRepository) MarkRotated(ctx context.Context, tokenHash string) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Where("rotated_at IS NULL").
		Where("revoked_at IS NULL").
		Update("rotated_at", &now)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// RevokeLineage revokes every token of one session lineage. Idempotent.
func (r *refreshTokenRepository) RevokeLineage(ctx context.Context, lineageID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("lineage_id = ?", lineageID).
		Where("revoked_at IS NULL").
		Update("revoked_at", &now).Error
}

// RevokeAllByUserID revokes every lineage of a user (logout from all devices)
func (r *refreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID uint) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("user_id = ?", userID).
		Where("revoked_at IS NULL").
		Update("revoked_at", &now).Error
}

// IsLineageRevoked reports whether a lineage has been blacklisted
func (r *refreshTokenRepository) IsLineageRevoked(ctx context.Context, lineageID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("lineage_id = ?", lineageID).
		Where("revoked_at IS NOT NULL").
		Count(&count).Error
	return count > 0, err
}

// DeleteExpired deletes all expired tokens (cleanup job)
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}
