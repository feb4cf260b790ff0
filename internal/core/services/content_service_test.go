package services

import (
	"context"
	"sort"
	"testing"

	"ooskills-backend/internal/adapters/persistence/models"
	"ooskills-backend/internal/core/cache"
	"ooskills-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeContentRepo serves canned CMS rows. Active* readers apply the same
// is_active filter and display order as the gorm implementation.
type fakeContentRepo struct {
	heroes       []*models.HeroSection
	sections     []*models.FeaturesSection
	items        []*models.FeatureItem
	partners     []*models.Partner
	faqs         []*models.FAQItem
	testimonials []*models.Testimonial
}

func (r *fakeContentRepo) ActiveHero(context.Context) (*models.HeroSection, error) {
	for _, h := range r.heroes {
		if h.IsActive {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContentRepo) ActiveFeaturesSection(context.Context) (*models.FeaturesSection, error) {
	for _, s := range r.sections {
		if !s.IsActive {
			continue
		}
		cp := *s
		cp.Items = nil
		for _, item := range r.items {
			if item.SectionID == s.ID && item.IsActive {
				cp.Items = append(cp.Items, *item)
			}
		}
		sort.SliceStable(cp.Items, func(i, j int) bool {
			if cp.Items[i].Order != cp.Items[j].Order {
				return cp.Items[i].Order < cp.Items[j].Order
			}
			return cp.Items[i].ID < cp.Items[j].ID
		})
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContentRepo) ActivePartners(context.Context) ([]*models.Partner, error) {
	var out []*models.Partner
	for _, p := range r.partners {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeContentRepo) ActiveFAQItems(context.Context) ([]*models.FAQItem, error) {
	var out []*models.FAQItem
	for _, f := range r.faqs {
		if f.IsActive {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeContentRepo) ActiveTestimonials(context.Context) ([]*models.Testimonial, error) {
	var out []*models.Testimonial
	for _, tm := range r.testimonials {
		if tm.IsActive {
			out = append(out, tm)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeContentRepo) ListHeroes(context.Context) ([]*models.HeroSection, error) {
	return r.heroes, nil
}
func (r *fakeContentRepo) GetHero(_ context.Context, id uint) (*models.HeroSection, error) {
	for _, h := range r.heroes {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeContentRepo) SaveHero(_ context.Context, hero *models.HeroSection) error {
	for i, h := range r.heroes {
		if h.ID == hero.ID {
			r.heroes[i] = hero
			return nil
		}
	}
	r.heroes = append(r.heroes, hero)
	return nil
}
func (r *fakeContentRepo) DeleteHero(context.Context, uint) error { return nil }

func (r *fakeContentRepo) ListFeaturesSections(context.Context) ([]*models.FeaturesSection, error) {
	return r.sections, nil
}
func (r *fakeContentRepo) GetFeaturesSection(_ context.Context, id uint) (*models.FeaturesSection, error) {
	for _, s := range r.sections {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeContentRepo) SaveFeaturesSection(_ context.Context, section *models.FeaturesSection) error {
	r.sections = append(r.sections, section)
	return nil
}
func (r *fakeContentRepo) DeleteFeaturesSection(context.Context, uint) error { return nil }

func (r *fakeContentRepo) ListFeatureItems(context.Context, uint) ([]*models.FeatureItem, error) {
	return r.items, nil
}
func (r *fakeContentRepo) GetFeatureItem(_ context.Context, id uint) (*models.FeatureItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeContentRepo) SaveFeatureItem(_ context.Context, item *models.FeatureItem) error {
	r.items = append(r.items, item)
	return nil
}
func (r *fakeContentRepo) DeleteFeatureItem(context.Context, uint) error { return nil }

func (r *fakeContentRepo) ListPartners(context.Context) ([]*models.Partner, error) {
	return r.partners, nil
}
func (r *fakeContentRepo) GetPartner(_ context.Context, id uint) (*models.Partner, error) {
	for _, p := range r.partners {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeContentRepo) SavePartner(_ context.Context, partner *models.Partner) error {
	r.partners = append(r.partners, partner)
	return nil
}
func (r *fakeContentRepo) DeletePartner(context.Context, uint) error { return nil }

func (r *fakeContentRepo) ListFAQItems(context.Context) ([]*models.FAQItem, error) {
	return r.faqs, nil
}
func (r *fakeContentRepo) GetFAQItem(_ context.Context, id uint) (*models.FAQItem, error) {
	for _, f := range r.faqs {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeContentRepo) SaveFAQItem(_ context.Context, item *models.FAQItem) error {
	for i, f := range r.faqs {
		if f.ID == item.ID {
			r.faqs[i] = item
			return nil
		}
	}
	r.faqs = append(r.faqs, item)
	return nil
}
func (r *fakeContentRepo) DeleteFAQItem(context.Context, uint) error { return nil }

func (r *fakeContentRepo) ListTestimonials(context.Context) ([]*models.Testimonial, error) {
	return r.testimonials, nil
}
func (r *fakeContentRepo) GetTestimonial(_ context.Context, id uint) (*models.Testimonial, error) {
	for _, tm := range r.testimonials {
		if tm.ID == id {
			return tm, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeContentRepo) SaveTestimonial(_ context.Context, testimonial *models.Testimonial) error {
	r.testimonials = append(r.testimonials, testimonial)
	return nil
}
func (r *fakeContentRepo) DeleteTestimonial(context.Context, uint) error { return nil }

// ============================================================
// Tests
// ============================================================

func newTestContentService(repo *fakeContentRepo) *ContentService {
	return NewContentService(repo, cache.NewStore())
}

func TestResolveFAQWithMixedTranslations(t *testing.T) {
	repo := &fakeContentRepo{
		faqs: []*models.FAQItem{
			{
				ID:       1,
				Question: domain.Translation{FR: "Comment s'inscrire ?", EN: "How to sign up?"},
				Answer:   domain.Translation{FR: "Cliquez sur S'inscrire."},
				IsActive: true,
			},
			{
				ID:       2,
				Question: domain.Translation{FR: "Les cours sont-ils gratuits ?"},
				Answer:   domain.Translation{FR: "Certains cours sont gratuits.", AR: "بعض الدورات مجانية"},
				IsActive: true,
			},
		},
	}
	svc := newTestContentService(repo)

	payload, err := svc.ResolveSection(context.Background(), domain.SectionFAQ, domain.LangEN)
	require.NoError(t, err)
	faqs, ok := payload.([]FAQPayload)
	require.True(t, ok)
	require.Len(t, faqs, 2)

	// English where present, French where the English entry is missing
	assert.Equal(t, "How to sign up?", faqs[0].Question)
	assert.Equal(t, "Cliquez sur S'inscrire.", faqs[0].Answer)
	assert.Equal(t, "Les cours sont-ils gratuits ?", faqs[1].Question)
	assert.Equal(t, "Certains cours sont gratuits.", faqs[1].Answer)
}

func TestResolveOrdersByDisplayOrderThenID(t *testing.T) {
	repo := &fakeContentRepo{
		partners: []*models.Partner{
			{ID: 3, Name: "Gamma", Order: 2, IsActive: true},
			{ID: 1, Name: "Alpha", Order: 1, IsActive: true},
			{ID: 2, Name: "Beta", Order: 1, IsActive: true},
			{ID: 4, Name: "Hidden", Order: 0, IsActive: false},
		},
	}
	svc := newTestContentService(repo)

	payload, err := svc.ResolveSection(context.Background(), domain.SectionPartners, domain.LangFR)
	require.NoError(t, err)
	partners, ok := payload.([]PartnerPayload)
	require.True(t, ok)
	require.Len(t, partners, 3)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, []string{partners[0].Name, partners[1].Name, partners[2].Name})
}

func TestResolveMissingHeroYieldsNilPayload(t *testing.T) {
	svc := newTestContentService(&fakeContentRepo{})

	payload, err := svc.ResolveSection(context.Background(), domain.SectionHero, domain.LangFR)
	require.NoError(t, err)
	hero, ok := payload.(*HeroPayload)
	require.True(t, ok)
	assert.Nil(t, hero)
}

func TestResolveFeaturesNestsActiveItems(t *testing.T) {
	repo := &fakeContentRepo{
		sections: []*models.FeaturesSection{
			{ID: 1, Title: domain.Translation{FR: "Pourquoi nous"}, IsActive: true},
		},
		items: []*models.FeatureItem{
			{ID: 1, SectionID: 1, Title: domain.Translation{FR: "Deux"}, Order: 2, IsActive: true},
			{ID: 2, SectionID: 1, Title: domain.Translation{FR: "Un"}, Order: 1, IsActive: true},
			{ID: 3, SectionID: 1, Title: domain.Translation{FR: "Caché"}, Order: 0, IsActive: false},
			{ID: 4, SectionID: 9, Title: domain.Translation{FR: "Autre section"}, Order: 0, IsActive: true},
		},
	}
	svc := newTestContentService(repo)

	payload, err := svc.ResolveSection(context.Background(), domain.SectionFeatures, domain.LangFR)
	require.NoError(t, err)
	features, ok := payload.(*FeaturesPayload)
	require.True(t, ok)
	require.NotNil(t, features)
	require.Len(t, features.Items, 2)
	assert.Equal(t, "Un", features.Items[0].Title)
	assert.Equal(t, "Deux", features.Items[1].Title)
}

func TestResolveLandingPageComposesAllSections(t *testing.T) {
	repo := &fakeContentRepo{
		heroes: []*models.HeroSection{
			{ID: 1, Title: domain.Translation{FR: "Bienvenue"}, IsActive: true},
		},
		faqs: []*models.FAQItem{
			{ID: 1, Question: domain.Translation{FR: "Q"}, Answer: domain.Translation{FR: "R"}, IsActive: true},
		},
	}
	svc := newTestContentService(repo)

	page, err := svc.ResolveLandingPage(context.Background(), domain.LangAR)
	require.NoError(t, err)

	require.NotNil(t, page.Hero)
	assert.Equal(t, "Bienvenue", page.Hero.Title)
	assert.Nil(t, page.Features)
	assert.Empty(t, page.Partners)
	assert.Len(t, page.FAQ, 1)
	assert.Equal(t, domain.LangAR, page.Meta.Lang)
	assert.Equal(t, domain.DefaultLanguage, page.Meta.DefaultLanguage)
}

func TestCachedSectionSurvivesSourceChangeUntilInvalidated(t *testing.T) {
	repo := &fakeContentRepo{
		faqs: []*models.FAQItem{
			{ID: 1, Question: domain.Translation{FR: "V1"}, Answer: domain.Translation{FR: "R"}, IsActive: true},
		},
	}
	svc := newTestContentService(repo)

	payload, err := svc.ResolveSection(context.Background(), domain.SectionFAQ, domain.LangFR)
	require.NoError(t, err)
	assert.Equal(t, "V1", payload.([]FAQPayload)[0].Question)

	// Source changes without invalidation: the cache still serves V1
	repo.faqs[0].Question = domain.Translation{FR: "V2"}
	payload, err = svc.ResolveSection(context.Background(), domain.SectionFAQ, domain.LangFR)
	require.NoError(t, err)
	assert.Equal(t, "V1", payload.([]FAQPayload)[0].Question)

	// Invalidation exposes the new value to the next read
	svc.InvalidateSection(domain.SectionFAQ)
	payload, err = svc.ResolveSection(context.Background(), domain.SectionFAQ, domain.LangFR)
	require.NoError(t, err)
	assert.Equal(t, "V2", payload.([]FAQPayload)[0].Question)
}

func TestInvalidateAllFlushesEverySection(t *testing.T) {
	repo := &fakeContentRepo{
		partners: []*models.Partner{{ID: 1, Name: "Alpha", IsActive: true}},
	}
	svc := newTestContentService(repo)

	_, err := svc.ResolveSection(context.Background(), domain.SectionPartners, domain.LangFR)
	require.NoError(t, err)

	repo.partners = append(repo.partners, &models.Partner{ID: 2, Name: "Beta", IsActive: true})
	svc.InvalidateAll()

	payload, err := svc.ResolveSection(context.Background(), domain.SectionPartners, domain.LangFR)
	require.NoError(t, err)
	assert.Len(t, payload.([]PartnerPayload), 2)
}

func TestValidateTranslations(t *testing.T) {
	assert.NoError(t, ValidateTranslations(
		domain.Translation{FR: "a"},
		domain.Translation{FR: "b", EN: "c"},
	))
	assert.ErrorIs(t, ValidateTranslations(
		domain.Translation{FR: "a"},
		domain.Translation{EN: "only english"},
	), domain.ErrMissingDefaultTranslation)
}
