package handlers

import (
	"errors"
	"strconv"

	"ooskills-backend/internal/adapters/persistence/models"
	"ooskills-backend/internal/adapters/persistence/repositories"
	"ooskills-backend/internal/core/domain"
	"ooskills-backend/internal/core/services"
	"ooskills-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CMSHandler handles admin CRUD for landing page content. Every write
// invalidates the cached payloads of the touched section before the
// response is sent, so a read that follows the write never sees the
// stale version.
type CMSHandler struct {
	contentRepo    repositories.ContentRepository
	contentService *services.ContentService
}

// NewCMSHandler creates a new CMS handler
func NewCMSHandler(contentRepo repositories.ContentRepository, contentService *services.ContentService) *CMSHandler {
	return &CMSHandler{
		contentRepo:    contentRepo,
		contentService: contentService,
	}
}

// ============================================================
// Request bodies
// ============================================================

// HeroRequest represents hero section write body
type HeroRequest struct {
	Title              domain.Translation `json:"title"`
	Subtitle           domain.Translation `json:"subtitle"`
	Description        domain.Translation `json:"description"`
	BackgroundImageURL string             `json:"background_image_url"`
	IsActive           *bool              `json:"is_active"`
}

// FeaturesSectionRequest represents features section header write body
type FeaturesSectionRequest struct {
	Title    domain.Translation `json:"title"`
	Subtitle domain.Translation `json:"subtitle"`
	IsActive *bool              `json:"is_active"`
}

// FeatureItemRequest represents feature item write body
type FeatureItemRequest struct {
	SectionID   uint               `json:"section_id"`
	Icon        string             `json:"icon"`
	Title       domain.Translation `json:"title"`
	Description domain.Translation `json:"description"`
	Order       int                `json:"order"`
	IsActive    *bool              `json:"is_active"`
}

// PartnerRequest represents partner write body
type PartnerRequest struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
	Order      int    `json:"order"`
	IsActive   *bool  `json:"is_active"`
}

// FAQItemRequest represents FAQ item write body
type FAQItemRequest struct {
	Question domain.Translation `json:"question"`
	Answer   domain.Translation `json:"answer"`
	Order    int                `json:"order"`
	IsActive *bool              `json:"is_active"`
}

// TestimonialRequest represents testimonial write body
type TestimonialRequest struct {
	AuthorName     string             `json:"author_name"`
	AuthorTitle    domain.Translation `json:"author_title"`
	AuthorImageURL string             `json:"author_image_url"`
	Content        domain.Translation `json:"content"`
	Rating         int                `json:"rating"`
	Order          int                `json:"order"`
	IsActive       *bool              `json:"is_active"`
}

// ============================================================
// Hero
// ============================================================

// ListHeroes lists all hero sections
// @Summary List hero sections
// @Tags CMS
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/cms/heroes [get]
func (h *CMSHandler) ListHeroes(c *fiber.Ctx) error {
	heroes, err := h.contentRepo.ListHeroes(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list hero sections")
	}
	return response.Success(c, "Hero sections retrieved", heroes)
}

// GetHero gets one hero section
// @Summary Get hero section
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Hero ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/cms/heroes/{id} [get]
func (h *CMSHandler) GetHero(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	hero, err := h.contentRepo.GetHero(c.Context(), id)
	if err != nil {
		return notFoundOrInternal(c, err, "Hero section not found")
	}
	return response.Success(c, "Hero section retrieved", hero)
}

// CreateHero creates a hero section
// @Summary Create hero section
// @Tags CMS
// @Security BearerAuth
// @Param body body HeroRequest true "Hero data"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/cms/heroes [post]
func (h *CMSHandler) CreateHero(c *fiber.Ctx) error {
	var req HeroRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := services.ValidateTranslations(req.Title, req.Subtitle, req.Description); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for all fields")
	}

	hero := &models.HeroSection{
		Title:              req.Title,
		Subtitle:           req.Subtitle,
		Description:        req.Description,
		BackgroundImageURL: req.BackgroundImageURL,
		IsActive:           boolOrDefault(req.IsActive, true),
	}
	if err := h.contentRepo.SaveHero(c.Context(), hero); err != nil {
		return response.InternalServerError(c, "Failed to create hero section")
	}

	h.contentService.InvalidateSection(domain.SectionHero)
	return response.Created(c, "Hero section created", hero)
}

// UpdateHero updates a hero section
// @Summary Update hero section
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Hero ID"
// @Param body body HeroRequest true "Hero data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/cms/heroes/{id} [put]
func (h *CMSHandler) UpdateHero(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	hero, err := h.contentRepo.GetHero(c.Context(), id)
	if err != nil {
		return notFoundOrInternal(c, err, "Hero section not found")
	}

	var req HeroRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := services.ValidateTranslations(req.Title, req.Subtitle, req.Description); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for all fields")
	}

	hero.Title = req.Title
	hero.Subtitle = req.Subtitle
	hero.Description = req.Description
	hero.BackgroundImageURL = req.BackgroundImageURL
	hero.IsActive = boolOrDefault(req.IsActive, hero.IsActive)

	if err := h.contentRepo.SaveHero(c.Context(), hero); err != nil {
		return response.InternalServerError(c, "Failed to update hero section")
	}

	h.contentService.InvalidateSection(domain.SectionHero)
	return response.Success(c, "Hero section updated", hero)
}

// DeleteHero deletes a hero section
// @Summary Delete hero section
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Hero ID"
// @Success 200 {object} response.Response
// @Router /admin/cms/heroes/{id} [delete]
func (h *CMSHandler) DeleteHero(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.contentRepo.DeleteHero(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete hero section")
	}

	h.contentService.InvalidateSection(domain.SectionHero)
	return response.Success(c, "Hero section deleted", nil)
}

// ============================================================
// Features
// ============================================================

// ListFeaturesSections lists all features section headers
// @Summary List features sections
// @Tags CMS
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/cms/features [get]
func (h *CMSHandler) ListFeaturesSections(c *fiber.Ctx) error {
	sections, err := h.contentRepo.ListFeaturesSections(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list features sections")
	}
	return response.Success(c, "Features sections retrieved", sections)
}

// GetFeaturesSection gets one features section with its items
// @Summary Get features section
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/cms/features/{id} [get]
func (h *CMSHandler) GetFeaturesSection(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	section, err := h.contentRepo.GetFeaturesSection(c.Context(), id)
	if err != nil {
		return notFoundOrInternal(c, err, "Features section not found")
	}
	return response.Success(c, "Features section retrieved", section)
}

// CreateFeaturesSection creates a features section header
// @Summary Create features section
// @Tags CMS
// @Security BearerAuth
// @Param body body FeaturesSectionRequest true "Section data"
// @Success 201 {object} response.Response
// @Router /admin/cms/features [post]
func (h *CMSHandler) CreateFeaturesSection(c *fiber.Ctx) error {
	var req FeaturesSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := services.ValidateTranslations(req.Title, req.Subtitle); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for all fields")
	}

	section := &models.FeaturesSection{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		IsActive: boolOrDefault(req.IsActive, true),
	}
	if err := h.contentRepo.SaveFeaturesSection(c.Context(), section); err != nil {
		return response.InternalServerError(c, "Failed to create features section")
	}

	h.contentService.InvalidateSection(domain.SectionFeatures)
	return response.Created(c, "Features section created", section)
}

// UpdateFeaturesSection updates a features section header
// @Summary Update features section
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Param body body FeaturesSectionRequest true "Section data"
// @Success 200 {object} response.Response
// @Router /admin/cms/features/{id} [put]
func (h *CMSHandler) UpdateFeaturesSection(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	section, err := h.contentRepo.GetFeaturesSection(c.Context(), id)
	if err != nil {
		return notFoundOrInternal(c, err, "Features section not found")
	}

	var req FeaturesSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := services.ValidateTranslations(req.Title, req.Subtitle); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for all fields")
	}

	section.Title = req.Title
	section.Subtitle = req.Subtitle
	section.IsActive = boolOrDefault(req.IsActive, section.IsActive)

	if err := h.contentRepo.SaveFeaturesSection(c.Context(), section); err != nil {
		return response.InternalServerError(c, "Failed to update features section")
	}

	h.contentService.InvalidateSection(domain.SectionFeatures)
	return response.Success(c, "Features section updated", section)
}

// DeleteFeaturesSection deletes a features section header
// @Summary Delete features section
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} response.Response
// @Router /admin/cms/features/{id} [delete]
func (h *CMSHandler) DeleteFeaturesSection(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.contentRepo.DeleteFeaturesSection(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete features section")
	}

	h.contentService.InvalidateSection(domain.SectionFeatures)
	return response.Success(c, "Features section deleted", nil)
}

// ListFeatureItems lists feature items, optionally for one section
// @Summary List feature items
// @Tags CMS
// @Security BearerAuth
// @Param section_id query int false "Filter by section"
// @Success 200 {object} response.Response
// @Router /admin/cms/feature-items [get]
func (h *CMSHandler) ListFeatureItems(c *fiber.Ctx) error {
	sectionID, _ := strconv.Atoi(c.Query("section_id", "0"))

	items, err := h.contentRepo.ListFeatureItems(c.Context(), uint(sectionID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list feature items")
	}
	return response.Success(c, "Feature items retrieved", items)
}

// CreateFeatureItem creates a feature item
// @Summary Create feature item
// @Tags CMS
// @Security BearerAuth
// @Param body body FeatureItemRequest true "Item data"
// @Success 201 {object} response.Response
// @Router /admin/cms/feature-items [post]
func (h *CMSHandler) CreateFeatureItem(c *fiber.Ctx) error {
	var req FeatureItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.SectionID == 0 {
		return response.BadRequest(c, "section_id is required")
	}
	if err := services.ValidateTranslations(req.Title, req.Description); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for all fields")
	}

	// Parent must exist before an item can point at it
	if _, err := h.contentRepo.GetFeaturesSection(c.Context(), req.SectionID); err != nil {
		return notFoundOrInternal(c, err, "Features section not found")
	}

	item := &models.FeatureItem{
		SectionID:   req.SectionID,
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := h.contentRepo.SaveFeatureItem(c.Context(), item); err != nil {
		return response.InternalServerError(c, "Failed to create feature item")
	}

	h.contentService.InvalidateSection(domain.SectionFeatures)
	return response.Created(c, "Feature item created", item)
}

// UpdateFeatureItem updates a feature item
// @Summary Update feature item
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param body body FeatureItemRequest true "Item data"
// @Success 200 {object} response.Response
// @Router /admin/cms/feature-items/{id} [put]
func (h *CMSHandler) UpdateFeatureItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	item, err := h.contentRepo.GetFeatureItem(c.Context(), id)
	if err != nil {
		return notFoundOrInternal(c, err, "Feature item not found")
	}

	var req FeatureItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := services.ValidateTranslations(req.Title, req.Description); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for all fields")
	}

	if req.SectionID != 0 {
		item.SectionID = req.SectionID
	}
	item.Icon = req.Icon
	item.Title = req.Title
	item.Description = req.Description
	item.Order = req.Order
	item.IsActive = boolOrDefault(req.IsActive, item.IsActive)

	if err := h.contentRepo.SaveFeatureItem(c.Context(), item); err != nil {
		return response.InternalServerError(c, "Failed to update feature item")
	}

	h.contentService.InvalidateSection(domain.SectionFeatures)
	return response.Success(c, "Feature item updated", item)
}

// DeleteFeatureItem deletes a feature item
// @Summary Delete feature item
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} response.Response
// @Router /admin/cms/feature-items/{id} [delete]
func (h *CMSHandler) DeleteFeatureItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.contentRepo.DeleteFeatureItem(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete feature item")
	}

	h.contentService.InvalidateSection(domain.SectionFeatures)
	return response.Success(c, "Feature item deleted", nil)
}

// ============================================================
// Partners
// ============================================================

// ListPartners lists all partners
// @Summary List partners
// @Tags CMS
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/cms/partners [get]
func (h *CMSHandler) ListPartners(c *fiber.Ctx) error {
	partners, err := h.contentRepo.ListPartners(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list partners")
	}
	return response.Success(c, "Partners retrieved", partners)
}

// CreatePartner creates a partner
// @Summary Create partner
// @Tags CMS
// @Security BearerAuth
// @Param body body PartnerRequest true "Partner data"
// @Success 201 {object} response.Response
// @Router /admin/cms/partners [post]
func (h *CMSHandler) CreatePartner(c *fiber.Ctx) error {
	var req PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	partner := &models.Partner{
		Name:       req.Name,
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
		Order:      req.Order,
		IsActive:   boolOrDefault(req.IsActive, true),
	}
	if err := h.contentRepo.SavePartner(c.Context(), partner); err != nil {
		return response.InternalServerError(c, "Failed to create partner")
	}

	h.contentService.InvalidateSection(domain.SectionPartners)
	return response.Created(c, "Partner created", partner)
}

// UpdatePartner updates a partner
// @Summary Update partner
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Partner ID"
// @Param body body PartnerRequest true "Partner data"
// @Success 200 {object} response.Response
// @Router /admin/cms/partners/{id} [put]
func (h *CMSHandler) UpdatePartner(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	partner, err := h.contentRepo.GetPartner(c.Context(), id)
	if err != nil {
		return notFoundOrInternal(c, err, "Partner not found")
	}

	var req PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	partner.Name = req.Name
	partner.LogoURL = req.LogoURL
	partner.WebsiteURL = req.WebsiteURL
	partner.Order = req.Order
	partner.IsActive = boolOrDefault(req.IsActive, partner.IsActive)

	if err := h.contentRepo.SavePartner(c.Context(), partner); err != nil {
		return response.InternalServerError(c, "Failed to update partner")
	}

	h.contentService.InvalidateSection(domain.SectionPartners)
	return response.Success(c, "Partner updated", partner)
}

// DeletePartner deletes a partner
// @Summary Delete partner
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Partner ID"
// @Success 200 {object} response.Response
// @Router /admin/cms/partners/{id} [delete]
func (h *CMSHandler) DeletePartner(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.contentRepo.DeletePartner(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete partner")
	}

	h.contentService.InvalidateSection(domain.SectionPartners)
	return response.Success(c, "Partner deleted", nil)
}

// ============================================================
// FAQ
// ============================================================

// ListFAQItems lists all FAQ items
// @Summary List FAQ items
// @Tags CMS
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/cms/faq [get]
func (h *CMSHandler) ListFAQItems(c *fiber.Ctx) error {
	items, err := h.contentRepo.ListFAQItems(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list FAQ items")
	}
	return response.Success(c, "FAQ items retrieved", items)
}

// CreateFAQItem creates a FAQ item
// @Summary Create FAQ item
// @Tags CMS
// @Security BearerAuth
// @Param body body FAQItemRequest true "FAQ data"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/cms/faq [post]
func (h *CMSHandler) CreateFAQItem(c *fiber.Ctx) error {
	var req FAQItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := services.ValidateTranslations(req.Question, req.Answer); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for all fields")
	}

	item := &models.FAQItem{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
		IsActive: boolOrDefault(req.IsActive, true),
	}
	if err := h.contentRepo.SaveFAQItem(c.Context(), item); err != nil {
		return response.InternalServerError(c, "Failed to create FAQ item")
	}

	h.contentService.InvalidateSection(domain.SectionFAQ)
	return response.Created(c, "FAQ item created", item)
}

// UpdateFAQItem updates a FAQ item
// @Summary Update FAQ item
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Param body body FAQItemRequest true "FAQ data"
// @Success 200 {object} response.Response
// @Router /admin/cms/faq/{id} [put]
func (h *CMSHandler) UpdateFAQItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	item, err := h.contentRepo.GetFAQItem(c.Context(), id)
	if err != nil {
		return notFoundOrInternal(c, err, "FAQ item not found")
	}

	var req FAQItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := services.ValidateTranslations(req.Question, req.Answer); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for all fields")
	}

	item.Question = req.Question
	item.Answer = req.Answer
	item.Order = req.Order
	item.IsActive = boolOrDefault(req.IsActive, item.IsActive)

	if err := h.contentRepo.SaveFAQItem(c.Context(), item); err != nil {
		return response.InternalServerError(c, "Failed to update FAQ item")
	}

	h.contentService.InvalidateSection(domain.SectionFAQ)
	return response.Success(c, "FAQ item updated", item)
}

// DeleteFAQItem deletes a FAQ item
// @Summary Delete FAQ item
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "FAQ ID"
// @Success 200 {object} response.Response
// @Router /admin/cms/faq/{id} [delete]
func (h *CMSHandler) DeleteFAQItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.contentRepo.DeleteFAQItem(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete FAQ item")
	}

	h.contentService.InvalidateSection(domain.SectionFAQ)
	return response.Success(c, "FAQ item deleted", nil)
}

// ============================================================
// Testimonials
// ============================================================

// ListTestimonials lists all testimonials
// @Summary List testimonials
// @Tags CMS
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/cms/testimonials [get]
func (h *CMSHandler) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.contentRepo.ListTestimonials(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list testimonials")
	}
	return response.Success(c, "Testimonials retrieved", testimonials)
}

// CreateTestimonial creates a testimonial
// @Summary Create testimonial
// @Tags CMS
// @Security BearerAuth
// @Param body body TestimonialRequest true "Testimonial data"
// @Success 201 {object} response.Response
// @Router /admin/cms/testimonials [post]
func (h *CMSHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.AuthorName == "" {
		return response.BadRequest(c, "Author name is required")
	}
	if err := services.ValidateTranslations(req.Content); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for the content")
	}

	testimonial := &models.Testimonial{
		AuthorName:     req.AuthorName,
		AuthorTitle:    req.AuthorTitle,
		AuthorImageURL: req.AuthorImageURL,
		Content:        req.Content,
		Rating:         req.Rating,
		Order:          req.Order,
		IsActive:       boolOrDefault(req.IsActive, true),
	}
	if err := h.contentRepo.SaveTestimonial(c.Context(), testimonial); err != nil {
		return response.InternalServerError(c, "Failed to create testimonial")
	}

	h.contentService.InvalidateSection(domain.SectionTestimonials)
	return response.Created(c, "Testimonial created", testimonial)
}

// UpdateTestimonial updates a testimonial
// @Summary Update testimonial
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Param body body TestimonialRequest true "Testimonial data"
// @Success 200 {object} response.Response
// @Router /admin/cms/testimonials/{id} [put]
func (h *CMSHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	testimonial, err := h.contentRepo.GetTestimonial(c.Context(), id)
	if err != nil {
		return notFoundOrInternal(c, err, "Testimonial not found")
	}

	var req TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.AuthorName == "" {
		return response.BadRequest(c, "Author name is required")
	}
	if err := services.ValidateTranslations(req.Content); err != nil {
		return response.UnprocessableEntity(c, "French translation is required for the content")
	}

	testimonial.AuthorName = req.AuthorName
	testimonial.AuthorTitle = req.AuthorTitle
	testimonial.AuthorImageURL = req.AuthorImageURL
	testimonial.Content = req.Content
	testimonial.Rating = req.Rating
	testimonial.Order = req.Order
	testimonial.IsActive = boolOrDefault(req.IsActive, testimonial.IsActive)

	if err := h.contentRepo.SaveTestimonial(c.Context(), testimonial); err != nil {
		return response.InternalServerError(c, "Failed to update testimonial")
	}

	h.contentService.InvalidateSection(domain.SectionTestimonials)
	return response.Success(c, "Testimonial updated", testimonial)
}

// DeleteTestimonial deletes a testimonial
// @Summary Delete testimonial
// @Tags CMS
// @Security BearerAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} response.Response
// @Router /admin/cms/testimonials/{id} [delete]
func (h *CMSHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.contentRepo.DeleteTestimonial(c.Context(), id); err != nil {
		return response.InternalServerError(c, "Failed to delete testimonial")
	}

	h.contentService.InvalidateSection(domain.SectionTestimonials)
	return response.Success(c, "Testimonial deleted", nil)
}

// ============================================================
// Cache admin
// ============================================================

// FlushCache drops every cached landing payload
// @Summary Flush content cache
// @Description Drop all cached landing page payloads (recovery endpoint)
// @Tags CMS
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/cms/invalidate-cache [post]
func (h *CMSHandler) FlushCache(c *fiber.Ctx) error {
	h.contentService.InvalidateAll()
	return response.Success(c, "Content cache flushed", nil)
}

// ============================================================
// Helpers
// ============================================================

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}

func notFoundOrInternal(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NotFound(c, msg)
	}
	return response.InternalServerError(c, "Database error")
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
