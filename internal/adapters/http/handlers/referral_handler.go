package handlers

import (
	"ooskills-backend/internal/core/services"
	"ooskills-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReferralHandler handles referral endpoints
type ReferralHandler struct {
	referralService *services.ReferralService
	authService     *services.AuthService
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralService *services.ReferralService, authService *services.AuthService) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
		authService:     authService,
	}
}

// MyCode returns the caller's referral code
// @Summary Get my referral code
// @Description Get the referral code of the current user
// @Tags Referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /referrals/my-code [get]
func (h *ReferralHandler) MyCode(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.authService.GetUserByID(c.Context(), userID)
	if err != nil {
		return response.NotFound(c, "User not found")
	}

	return response.Success(c, "Referral code retrieved", fiber.Map{
		"referral_code": user.ReferralCode,
	})
}

// MyReferrals lists users the caller referred, oldest first
// @Summary List my referrals
// @Description List every user who registered with the current user's referral code
// @Tags Referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /referrals [get]
func (h *ReferralHandler) MyReferrals(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	referrals, err := h.referralService.ListReferrals(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list referrals")
	}

	return response.Success(c, "Referrals retrieved", fiber.Map{
		"referrals": referrals,
		"count":     len(referrals),
	})
}
