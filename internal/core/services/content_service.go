package services

import (
	"context"
	"errors"

	"ooskills-backend/internal/adapters/persistence/repositories"
	"ooskills-backend/internal/core/cache"
	"ooskills-backend/internal/core/domain"

	"gorm.io/gorm"
)

// ContentService assembles public landing page payloads from CMS records,
// applying per-field language fallback, and caches the result per
// (section, language). A missing translation never fails a page; a missing
// entity (no active hero, say) yields a nil/empty payload.
type ContentService struct {
	contentRepo repositories.ContentRepository
	cache       *cache.Store
}

// NewContentService creates a new content service
func NewContentService(contentRepo repositories.ContentRepository, store *cache.Store) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		cache:       store,
	}
}

// ============================================================
// Public payload shapes
// ============================================================

// HeroPayload is the resolved hero section
type HeroPayload struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	Description        string `json:"description"`
	BackgroundImageURL string `json:"background_image_url,omitempty"`
}

// FeatureItemPayload is one resolved feature entry
type FeatureItemPayload struct {
	ID          uint   `json:"id"`
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeaturesPayload is the resolved features section with its items
type FeaturesPayload struct {
	ID       uint                 `json:"id"`
	Title    string               `json:"title"`
	Subtitle string               `json:"subtitle"`
	Items    []FeatureItemPayload `json:"items"`
}

// PartnerPayload is one partner entry (brand names are not translated)
type PartnerPayload struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url,omitempty"`
	WebsiteURL string `json:"website_url,omitempty"`
}

// FAQPayload is one resolved question/answer pair
type FAQPayload struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TestimonialPayload is one resolved testimonial
type TestimonialPayload struct {
	ID             uint   `json:"id"`
	AuthorName     string `json:"author_name"`
	AuthorTitle    string `json:"author_title,omitempty"`
	AuthorImageURL string `json:"author_image_url,omitempty"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
}

// LandingPagePayload aggregates every section for a single response
type LandingPagePayload struct {
	Hero         *HeroPayload         `json:"hero"`
	Features     *FeaturesPayload     `json:"features"`
	Partners     []PartnerPayload     `json:"partners"`
	FAQ          []FAQPayload         `json:"faq"`
	Testimonials []TestimonialPayload `json:"testimonials"`
	Meta         LandingMeta          `json:"meta"`
}

// LandingMeta describes the resolution context of a landing payload
type LandingMeta struct {
	Lang               domain.Language   `json:"lang"`
	SupportedLanguages []domain.Language `json:"supported_languages"`
	DefaultLanguage    domain.Language   `json:"default_language"`
}

// ============================================================
// Cached reads
// ============================================================

// ResolveSection returns the cached payload for one section, computing it
// on a miss
func (s *ContentService) ResolveSection(ctx context.Context, section domain.Section, lang domain.Language) (interface{}, error) {
	key := cache.Key{Section: section, Lang: lang}
	return s.cache.GetOrCompute(key, func() (interface{}, error) {
		return s.resolveSection(ctx, section, lang)
	})
}

// ResolveLandingPage composes every section into one aggregate. Sections
// are resolved (and cached) independently, so a partial cache still helps.
func (s *ContentService) ResolveLandingPage(ctx context.Context, lang domain.Language) (*LandingPagePayload, error) {
	page := &LandingPagePayload{
		Partners:     []PartnerPayload{},
		FAQ:          []FAQPayload{},
		Testimonials: []TestimonialPayload{},
		Meta: LandingMeta{
			Lang:               lang,
			SupportedLanguages: domain.SupportedLanguages,
			DefaultLanguage:    domain.DefaultLanguage,
		},
	}

	for _, section := range domain.Sections {
		payload, err := s.ResolveSection(ctx, section, lang)
		if err != nil {
			return nil, err
		}
		switch section {
		case domain.SectionHero:
			page.Hero, _ = payload.(*HeroPayload)
		case domain.SectionFeatures:
			page.Features, _ = payload.(*FeaturesPayload)
		case domain.SectionPartners:
			if v, ok := payload.([]PartnerPayload); ok {
				page.Partners = v
			}
		case domain.SectionFAQ:
			if v, ok := payload.([]FAQPayload); ok {
				page.FAQ = v
			}
		case domain.SectionTestimonials:
			if v, ok := payload.([]TestimonialPayload); ok {
				page.Testimonials = v
			}
		}
	}

	return page, nil
}

// InvalidateSection drops the cached payloads of one section
func (s *ContentService) InvalidateSection(section domain.Section) {
	s.cache.InvalidateSection(section)
}

// InvalidateAll drops every cached payload
func (s *ContentService) InvalidateAll() {
	s.cache.InvalidateAll()
}

// ============================================================
// Resolution (pure reads, no caching)
// ============================================================

func (s *ContentService) resolveSection(ctx context.Context, section domain.Section, lang domain.Language) (interface{}, error) {
	switch section {
	case domain.SectionHero:
		return s.resolveHero(ctx, lang)
	case domain.SectionFeatures:
		return s.resolveFeatures(ctx, lang)
	case domain.SectionPartners:
		return s.resolvePartners(ctx)
	case domain.SectionFAQ:
		return s.resolveFAQ(ctx, lang)
	case domain.SectionTestimonials:
		return s.resolveTestimonials(ctx, lang)
	}
	return nil, domain.ErrUnknownSection
}

func (s *ContentService) resolveHero(ctx context.Context, lang domain.Language) (*HeroPayload, error) {
	hero, err := s.contentRepo.ActiveHero(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &HeroPayload{
		ID:                 hero.ID,
		Title:              hero.Title.Resolve(lang),
		Subtitle:           hero.Subtitle.Resolve(lang),
		Description:        hero.Description.Resolve(lang),
		BackgroundImageURL: hero.BackgroundImageURL,
	}, nil
}

func (s *ContentService) resolveFeatures(ctx context.Context, lang domain.Language) (*FeaturesPayload, error) {
	section, err := s.contentRepo.ActiveFeaturesSection(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	payload := &FeaturesPayload{
		ID:       section.ID,
		Title:    section.Title.Resolve(lang),
		Subtitle: section.Subtitle.Resolve(lang),
		Items:    make([]FeatureItemPayload, 0, len(section.Items)),
	}
	for _, item := range section.Items {
		payload.Items = append(payload.Items, FeatureItemPayload{
			ID:          item.ID,
			Icon:        item.Icon,
			Title:       item.Title.Resolve(lang),
			Description: item.Description.Resolve(lang),
		})
	}
	return payload, nil
}

func (s *ContentService) resolvePartners(ctx context.Context) ([]PartnerPayload, error) {
	partners, err := s.contentRepo.ActivePartners(ctx)
	if err != nil {
		return nil, err
	}

	payload := make([]PartnerPayload, 0, len(partners))
	for _, p := range partners {
		payload = append(payload, PartnerPayload{
			ID:         p.ID,
			Name:       p.Name,
			LogoURL:    p.LogoURL,
			WebsiteURL: p.WebsiteURL,
		})
	}
	return payload, nil
}

func (s *ContentService) resolveFAQ(ctx context.Context, lang domain.Language) ([]FAQPayload, error) {
	items, err := s.contentRepo.ActiveFAQItems(ctx)
	if err != nil {
		return nil, err
	}

	payload := make([]FAQPayload, 0, len(items))
	for _, item := range items {
		payload = append(payload, FAQPayload{
			ID:       item.ID,
			Question: item.Question.Resolve(lang),
			Answer:   item.Answer.Resolve(lang),
		})
	}
	return payload, nil
}

func (s *ContentService) resolveTestimonials(ctx context.Context, lang domain.Language) ([]TestimonialPayload, error) {
	testimonials, err := s.contentRepo.ActiveTestimonials(ctx)
	if err != nil {
		return nil, err
	}

	payload := make([]TestimonialPayload, 0, len(testimonials))
	for _, t := range testimonials {
		payload = append(payload, TestimonialPayload{
			ID:             t.ID,
			AuthorName:     t.AuthorName,
			AuthorTitle:    t.AuthorTitle.Resolve(lang),
			AuthorImageURL: t.AuthorImageURL,
			Content:        t.Content.Resolve(lang),
			Rating:         t.Rating,
		})
	}
	return payload, nil
}

// ValidateTranslations rejects a write whose required fields are missing
// the canonical French entry
func ValidateTranslations(fields ...domain.Translation) error {
	for _, f := range fields {
		if !f.HasDefault() {
			return domain.ErrMissingDefaultTranslation
		}
	}
	return nil
}
