package repositories

import (
	"context"

	"ooskills-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// contentRepository implements ContentRepository interface
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// ============================================================
// Public readers (active rows only, display order)
// ============================================================

// ActiveHero gets the currently active hero section
func (r *contentRepository) ActiveHero(ctx context.Context) (*models.HeroSection, error) {
	var hero models.HeroSection
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		First(&hero).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// ActiveFeaturesSection gets the active features section with its active items
func (r *contentRepository) ActiveFeaturesSection(ctx context.Context) (*models.FeaturesSection, error) {
	var section models.FeaturesSection
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("display_order ASC, id ASC")
		}).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// ActivePartners gets all active partners in display order
func (r *contentRepository) ActivePartners(ctx context.Context) ([]*models.Partner, error) {
	var partners []*models.Partner
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&partners).Error
	if err != nil {
		return nil, err
	}
	return partners, nil
}

// ActiveFAQItems gets all active FAQ items in display order
func (r *contentRepository) ActiveFAQItems(ctx context.Context) ([]*models.FAQItem, error) {
	var items []*models.FAQItem
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ActiveTestimonials gets all active testimonials in display order
func (r *contentRepository) ActiveTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

// ============================================================
// Admin CRUD (inactive rows included)
// ============================================================

func (r *contentRepository) ListHeroes(ctx context.Context) ([]*models.HeroSection, error) {
	var heroes []*models.HeroSection
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&heroes).Error
	return heroes, err
}

func (r *contentRepository) GetHero(ctx context.Context, id uint) (*models.HeroSection, error) {
	var hero models.HeroSection
	if err := r.db.WithContext(ctx).First(&hero, id).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *contentRepository) SaveHero(ctx context.Context, hero *models.HeroSection) error {
	return r.db.WithContext(ctx).Save(hero).Error
}

func (r *contentRepository) DeleteHero(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.HeroSection{}, id)
}

func (r *contentRepository) ListFeaturesSections(ctx context.Context) ([]*models.FeaturesSection, error) {
	var sections []*models.FeaturesSection
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Order("created_at DESC").
		Find(&sections).Error
	return sections, err
}

func (r *contentRepository) GetFeaturesSection(ctx context.Context, id uint) (*models.FeaturesSection, error) {
	var section models.FeaturesSection
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		First(&section, id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *contentRepository) SaveFeaturesSection(ctx context.Context, section *models.FeaturesSection) error {
	return r.db.WithContext(ctx).Omit("Items").Save(section).Error
}

func (r *contentRepository) DeleteFeaturesSection(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.FeaturesSection{}, id)
}

func (r *contentRepository) ListFeatureItems(ctx context.Context, sectionID uint) ([]*models.FeatureItem, error) {
	var items []*models.FeatureItem
	query := r.db.WithContext(ctx).Order("display_order ASC, id ASC")
	if sectionID != 0 {
		query = query.Where("section_id = ?", sectionID)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *contentRepository) GetFeatureItem(ctx context.Context, id uint) (*models.FeatureItem, error) {
	var item models.FeatureItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *contentRepository) SaveFeatureItem(ctx context.Context, item *models.FeatureItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *contentRepository) DeleteFeatureItem(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.FeatureItem{}, id)
}

func (r *contentRepository) ListPartners(ctx context.Context) ([]*models.Partner, error) {
	var partners []*models.Partner
	err := r.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&partners).Error
	return partners, err
}

func (r *contentRepository) GetPartner(ctx context.Context, id uint) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.WithContext(ctx).First(&partner, id).Error; err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *contentRepository) SavePartner(ctx context.Context, partner *models.Partner) error {
	return r.db.WithContext(ctx).Save(partner).Error
}

func (r *contentRepository) DeletePartner(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.Partner{}, id)
}

func (r *contentRepository) ListFAQItems(ctx context.Context) ([]*models.FAQItem, error) {
	var items []*models.FAQItem
	err := r.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&items).Error
	return items, err
}

func (r *contentRepository) GetFAQItem(ctx context.Context, id uint) (*models.FAQItem, error) {
	var item models.FAQItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *contentRepository) SaveFAQItem(ctx context.Context, item *models.FAQItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *contentRepository) DeleteFAQItem(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.FAQItem{}, id)
}

func (r *contentRepository) ListTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&testimonials).Error
	return testimonials, err
}

func (r *contentRepository) GetTestimonial(ctx context.Context, id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := r.db.WithContext(ctx).First(&testimonial, id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *contentRepository) SaveTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}

func (r *contentRepository) DeleteTestimonial(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.Testimonial{}, id)
}

// deleteByID soft deletes one row by primary key
func (r *contentRepository) deleteByID(ctx context.Context, model interface{}, id uint) error {
	return r.db.WithContext(ctx).Delete(model, id).Error
}
