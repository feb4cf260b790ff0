package models

import (
	"time"

	"ooskills-backend/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	FirstName    string         `gorm:"size:150" json:"first_name"`
	LastName     string         `gorm:"size:150" json:"last_name"`
	Phone        string         `gorm:"size:15" json:"phone"`
	Wilaya       string         `gorm:"size:2" json:"wilaya"`
	Role         string         `gorm:"size:20;default:'USER';index" json:"role"`
	Status       string         `gorm:"size:20;default:'ACTIVE';index" json:"status"`
	ReferralCode string         `gorm:"uniqueIndex;size:20;not null" json:"referral_code"`
	ReferredByID *uint          `gorm:"index" json:"referred_by_id"`
	ReferredBy   *User          `gorm:"foreignKey:ReferredByID" json:"-"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account may log in
func (u *User) IsActive() bool {
	return u.Status == string(domain.StatusActive)
}

// IsAdmin reports whether the account has admin privileges
func (u *User) IsAdmin() bool {
	return domain.Role(u.Role).IsAdmin()
}

// UserResponse DTO
type UserResponse struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Wilaya       string    `json:"wilaya,omitempty"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	ReferralCode string    `json:"referral_code"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Wilaya:       u.Wilaya,
		Role:         u.Role,
		Status:       u.Status,
		ReferralCode: u.ReferralCode,
		CreatedAt:    u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table.
// Every rotation of one login shares a LineageID; revoking the lineage
// kills the whole session regardless of which rotation is presented.
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	LineageID string     `gorm:"size:36;not null;index" json:"lineage_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RotatedAt *time.Time `json:"rotated_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsRotated() bool {
	return rt.RotatedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&HeroSection{},
		&FeaturesSection{},
		&FeatureItem{},
		&Partner{},
		&FAQItem{},
		&Testimonial{},
	)
}
