package models

import (
	"time"

	"ooskills-backend/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Landing Page CMS Tables
// ============================================================
// Translatable fields are stored as JSON columns holding one
// entry per language; resolution happens in the content service.

// HeroSection represents hero_sections table.
// Only one active hero is served publicly at a time.
type HeroSection struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	Title              domain.Translation `gorm:"type:json" json:"title"`
	Subtitle           domain.Translation `gorm:"type:json" json:"subtitle"`
	Description        domain.Translation `gorm:"type:json" json:"description"`
	BackgroundImageURL string             `gorm:"size:500" json:"background_image_url"`
	IsActive           bool               `gorm:"default:true;index" json:"is_active"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (HeroSection) TableName() string {
	return "hero_sections"
}

// FeaturesSection represents features_sections table (section header)
type FeaturesSection struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Title     domain.Translation `gorm:"type:json" json:"title"`
	Subtitle  domain.Translation `gorm:"type:json" json:"subtitle"`
	IsActive  bool               `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`

	Items []FeatureItem `gorm:"foreignKey:SectionID" json:"items,omitempty"`
}

func (FeaturesSection) TableName() string {
	return "features_sections"
}

// FeatureItem represents feature_items table
type FeatureItem struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	SectionID   uint               `gorm:"not null;index" json:"section_id"`
	Icon        string             `gorm:"size:100" json:"icon"`
	Title       domain.Translation `gorm:"type:json" json:"title"`
	Description domain.Translation `gorm:"type:json" json:"description"`
	Order       int                `gorm:"column:display_order;default:0;index" json:"order"`
	IsActive    bool               `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (FeatureItem) TableName() string {
	return "feature_items"
}

// Partner represents partners table.
// The name is a brand name and is not translated.
type Partner struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"size:200;not null" json:"name"`
	LogoURL    string         `gorm:"size:500" json:"logo_url"`
	WebsiteURL string         `gorm:"size:500" json:"website_url"`
	Order      int            `gorm:"column:display_order;default:0;index" json:"order"`
	IsActive   bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Partner) TableName() string {
	return "partners"
}

// FAQItem represents faq_items table
type FAQItem struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Question  domain.Translation `gorm:"type:json" json:"question"`
	Answer    domain.Translation `gorm:"type:json" json:"answer"`
	Order     int                `gorm:"column:display_order;default:0;index" json:"order"`
	IsActive  bool               `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (FAQItem) TableName() string {
	return "faq_items"
}

// Testimonial represents testimonials table
type Testimonial struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	AuthorName     string             `gorm:"size:200;not null" json:"author_name"`
	AuthorTitle    domain.Translation `gorm:"type:json" json:"author_title"`
	AuthorImageURL string             `gorm:"size:500" json:"author_image_url"`
	Content        domain.Translation `gorm:"type:json" json:"content"`
	Rating         int                `gorm:"default:5" json:"rating"`
	Order          int                `gorm:"column:display_order;default:0;index" json:"order"`
	IsActive       bool               `gorm:"default:true;index" json:"is_active"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
