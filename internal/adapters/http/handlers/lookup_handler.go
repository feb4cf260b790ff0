package handlers

import (
	"ooskills-backend/internal/core/domain"
	"ooskills-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LookupHandler serves static reference data for registration forms
// and the admin dashboard
type LookupHandler struct{}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler() *LookupHandler {
	return &LookupHandler{}
}

// Wilaya is one Algerian province entry
type Wilaya struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// wilayas lists the 58 Algerian provinces by official numbering
var wilayas = []Wilaya{
	{"01", "Adrar"}, {"02", "Chlef"}, {"03", "Laghouat"}, {"04", "Oum El Bouaghi"},
	{"05", "Batna"}, {"06", "Béjaïa"}, {"07", "Biskra"}, {"08", "Béchar"},
	{"09", "Blida"}, {"10", "Bouira"}, {"11", "Tamanrasset"}, {"12", "Tébessa"},
	{"13", "Tlemcen"}, {"14", "Tiaret"}, {"15", "Tizi Ouzou"}, {"16", "Alger"},
	{"17", "Djelfa"}, {"18", "Jijel"}, {"19", "Sétif"}, {"20", "Saïda"},
	{"21", "Skikda"}, {"22", "Sidi Bel Abbès"}, {"23", "Annaba"}, {"24", "Guelma"},
	{"25", "Constantine"}, {"26", "Médéa"}, {"27", "Mostaganem"}, {"28", "M'Sila"},
	{"29", "Mascara"}, {"30", "Ouargla"}, {"31", "Oran"}, {"32", "El Bayadh"},
	{"33", "Illizi"}, {"34", "Bordj Bou Arréridj"}, {"35", "Boumerdès"}, {"36", "El Tarf"},
	{"37", "Tindouf"}, {"38", "Tissemsilt"}, {"39", "El Oued"}, {"40", "Khenchela"},
	{"41", "Souk Ahras"}, {"42", "Tipaza"}, {"43", "Mila"}, {"44", "Aïn Defla"},
	{"45", "Naâma"}, {"46", "Aïn Témouchent"}, {"47", "Ghardaïa"}, {"48", "Relizane"},
	{"49", "Timimoun"}, {"50", "Bordj Badji Mokhtar"}, {"51", "Ouled Djellal"}, {"52", "Béni Abbès"},
	{"53", "In Salah"}, {"54", "In Guezzam"}, {"55", "Touggourt"}, {"56", "Djanet"},
	{"57", "El M'Ghair"}, {"58", "El Meniaa"},
}

// Wilayas lists all Algerian provinces
// @Summary List wilayas
// @Tags Lookups
// @Produce json
// @Success 200 {object} response.Response
// @Router /lookups/wilayas [get]
func (h *LookupHandler) Wilayas(c *fiber.Ctx) error {
	return response.Success(c, "Wilayas retrieved", wilayas)
}

// Roles lists the user roles
// @Summary List roles
// @Tags Lookups
// @Produce json
// @Success 200 {object} response.Response
// @Router /lookups/roles [get]
func (h *LookupHandler) Roles(c *fiber.Ctx) error {
	return response.Success(c, "Roles retrieved", []domain.Role{
		domain.RoleUser,
		domain.RoleAdmin,
		domain.RoleSuperAdmin,
	})
}

// Statuses lists the account statuses
// @Summary List account statuses
// @Tags Lookups
// @Produce json
// @Success 200 {object} response.Response
// @Router /lookups/statuses [get]
func (h *LookupHandler) Statuses(c *fiber.Ctx) error {
	return response.Success(c, "Statuses retrieved", []domain.Status{
		domain.StatusPending,
		domain.StatusActive,
		domain.StatusSuspended,
		domain.StatusDeleted,
	})
}

// Languages lists the supported content languages
// @Summary List languages
// @Tags Lookups
// @Produce json
// @Success 200 {object} response.Response
// @Router /lookups/languages [get]
func (h *LookupHandler) Languages(c *fiber.Ctx) error {
	return response.Success(c, "Languages retrieved", fiber.Map{
		"languages": domain.SupportedLanguages,
		"default":   domain.DefaultLanguage,
	})
}
