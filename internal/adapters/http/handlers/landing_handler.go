package handlers

import (
	"ooskills-backend/internal/core/domain"
	"ooskills-backend/internal/core/services"
	"ooskills-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LandingHandler serves the public landing page content
type LandingHandler struct {
	contentService *services.ContentService
}

// NewLandingHandler creates a new landing handler
func NewLandingHandler(contentService *services.ContentService) *LandingHandler {
	return &LandingHandler{contentService: contentService}
}

// LandingPage returns every section resolved for one language
// @Summary Get landing page
// @Description Get all landing page sections resolved for the requested language (fr, en or ar; defaults to fr)
// @Tags Landing
// @Accept json
// @Produce json
// @Param lang query string false "Language code" Enums(fr, en, ar)
// @Success 200 {object} response.Response
// @Router /landing [get]
func (h *LandingHandler) LandingPage(c *fiber.Ctx) error {
	lang := domain.ParseLanguage(c.Query("lang"))

	page, err := h.contentService.ResolveLandingPage(c.Context(), lang)
	if err != nil {
		return response.InternalServerError(c, "Failed to load landing page")
	}

	return response.Success(c, "Landing page retrieved", page)
}

// Section returns one landing section resolved for one language
// @Summary Get one landing section
// @Description Get a single landing page section (hero, features, partners, faq or testimonials)
// @Tags Landing
// @Accept json
// @Produce json
// @Param section path string true "Section name" Enums(hero, features, partners, faq, testimonials)
// @Param lang query string false "Language code" Enums(fr, en, ar)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /landing/{section} [get]
func (h *LandingHandler) Section(c *fiber.Ctx) error {
	section, err := domain.ParseSection(c.Params("section"))
	if err != nil {
		return response.NotFound(c, "Unknown section")
	}
	lang := domain.ParseLanguage(c.Query("lang"))

	payload, err := h.contentService.ResolveSection(c.Context(), section, lang)
	if err != nil {
		return response.InternalServerError(c, "Failed to load section")
	}

	return response.Success(c, "Section retrieved", fiber.Map{
		"section": section,
		"lang":    lang,
		"data":    payload,
	})
}
