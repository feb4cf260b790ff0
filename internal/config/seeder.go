package config

import (
	"log"

	"ooskills-backend/internal/adapters/persistence/models"
	"ooskills-backend/internal/core/domain"
	"ooskills-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedLandingContent(); err != nil {
		log.Printf("⚠️ Landing content seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", string(domain.RoleSuperAdmin)).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        "admin@ooskills.com",
		Password:     hashedPassword,
		FirstName:    "Admin",
		LastName:     "OOSkills",
		Role:         string(domain.RoleSuperAdmin),
		Status:       string(domain.StatusActive),
		ReferralCode: "ADM00001",
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("✅ Default admin user created (admin@ooskills.com)")
	return nil
}

// seedLandingContent seeds a minimal landing page so a fresh install
// renders something before the CMS is touched
func (s *Seeder) seedLandingContent() error {
	var count int64
	s.db.Model(&models.HeroSection{}).Count(&count)
	if count > 0 {
		return nil
	}

	hero := &models.HeroSection{
		Title: domain.Translation{
			FR: "Apprenez sans limites",
			EN: "Learn without limits",
			AR: "تعلم بلا حدود",
		},
		Subtitle: domain.Translation{
			FR: "Des formations en ligne pour tous les Algériens",
			EN: "Online courses for everyone in Algeria",
		},
		Description: domain.Translation{
			FR: "Accédez à des centaines de cours en ligne, où que vous soyez.",
		},
		IsActive: true,
	}
	if err := s.db.Create(hero).Error; err != nil {
		return err
	}

	features := &models.FeaturesSection{
		Title: domain.Translation{
			FR: "Pourquoi OOSkills",
			EN: "Why OOSkills",
		},
		Subtitle: domain.Translation{
			FR: "Une plateforme pensée pour vous",
		},
		IsActive: true,
	}
	if err := s.db.Create(features).Error; err != nil {
		return err
	}

	items := []models.FeatureItem{
		{
			SectionID: features.ID,
			Icon:      "certificate",
			Title:     domain.Translation{FR: "Certificats reconnus", EN: "Recognized certificates"},
			Description: domain.Translation{
				FR: "Obtenez un certificat à la fin de chaque formation.",
			},
			Order:    1,
			IsActive: true,
		},
		{
			SectionID: features.ID,
			Icon:      "devices",
			Title:     domain.Translation{FR: "Accessible partout", EN: "Available everywhere"},
			Description: domain.Translation{
				FR: "Suivez vos cours sur mobile, tablette ou ordinateur.",
			},
			Order:    2,
			IsActive: true,
		},
	}
	for i := range items {
		if err := s.db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	faq := &models.FAQItem{
		Question: domain.Translation{
			FR: "Comment créer un compte ?",
			EN: "How do I create an account?",
		},
		Answer: domain.Translation{
			FR: "Cliquez sur S'inscrire et remplissez le formulaire.",
		},
		Order:    1,
		IsActive: true,
	}
	if err := s.db.Create(faq).Error; err != nil {
		return err
	}

	log.Println("✅ Default landing content created")
	return nil
}
