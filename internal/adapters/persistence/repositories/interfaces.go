package repositories

import (
	"context"

	"ooskills-backend/internal/adapters/persistence/models"
)

// UserFilter narrows admin user listings
type UserFilter struct {
	Role   string
	Status string
	Wilaya string
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByReferralCode(ctx context.Context, code string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter UserFilter, offset, limit int) ([]*models.User, int64, error)
	ListByReferrer(ctx context.Context, referrerID uint) ([]*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByReferralCode(ctx context.Context, code string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	// MarkRotated atomically consumes a live token; reports whether this
	// caller won the rotation. Exactly one concurrent caller may win.
	MarkRotated(ctx context.Context, tokenHash string) (bool, error)
	RevokeLineage(ctx context.Context, lineageID string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	IsLineageRevoked(ctx context.Context, lineageID string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// ContentRepository defines CMS entity persistence.
// Active* readers return only is_active rows ordered for public display;
// the remaining methods back the admin CRUD endpoints.
type ContentRepository interface {
	ActiveHero(ctx context.Context) (*models.HeroSection, error)
	ActiveFeaturesSection(ctx context.Context) (*models.FeaturesSection, error)
	ActivePartners(ctx context.Context) ([]*models.Partner, error)
	ActiveFAQItems(ctx context.Context) ([]*models.FAQItem, error)
	ActiveTestimonials(ctx context.Context) ([]*models.Testimonial, error)

	ListHeroes(ctx context.Context) ([]*models.HeroSection, error)
	GetHero(ctx context.Context, id uint) (*models.HeroSection, error)
	SaveHero(ctx context.Context, hero *models.HeroSection) error
	DeleteHero(ctx context.Context, id uint) error

	ListFeaturesSections(ctx context.Context) ([]*models.FeaturesSection, error)
	GetFeaturesSection(ctx context.Context, id uint) (*models.FeaturesSection, error)
	SaveFeaturesSection(ctx context.Context, section *models.FeaturesSection) error
	DeleteFeaturesSection(ctx context.Context, id uint) error

	ListFeatureItems(ctx context.Context, sectionID uint) ([]*models.FeatureItem, error)
	GetFeatureItem(ctx context.Context, id uint) (*models.FeatureItem, error)
	SaveFeatureItem(ctx context.Context, item *models.FeatureItem) error
	DeleteFeatureItem(ctx context.Context, id uint) error

	ListPartners(ctx context.Context) ([]*models.Partner, error)
	GetPartner(ctx context.Context, id uint) (*models.Partner, error)
	SavePartner(ctx context.Context, partner *models.Partner) error
	DeletePartner(ctx context.Context, id uint) error

	ListFAQItems(ctx context.Context) ([]*models.FAQItem, error)
	GetFAQItem(ctx context.Context, id uint) (*models.FAQItem, error)
	SaveFAQItem(ctx context.Context, item *models.FAQItem) error
	DeleteFAQItem(ctx context.Context, id uint) error

	ListTestimonials(ctx context.Context) ([]*models.Testimonial, error)
	GetTestimonial(ctx context.Context, id uint) (*models.Testimonial, error)
	SaveTestimonial(ctx context.Context, testimonial *models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id uint) error
}
