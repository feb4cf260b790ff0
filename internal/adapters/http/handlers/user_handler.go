package handlers

import (
	"errors"

	"ooskills-backend/internal/adapters/persistence/repositories"
	"ooskills-backend/internal/core/domain"
	"ooskills-backend/internal/core/services"
	"ooskills-backend/internal/pkg/pagination"
	"ooskills-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers lists users with filters (admin)
// @Summary List users
// @Description List users with optional role/status/wilaya filters
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param role query string false "Filter by role"
// @Param status query string false "Filter by status"
// @Param wilaya query string false "Filter by wilaya code"
// @Success 200 {object} response.Response
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	filter := repositories.UserFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Wilaya: c.Query("wilaya"),
	}

	result, err := h.userService.ListUsers(c.Context(), filter, params)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved", result)
}

// GetUser gets one user (admin)
// @Summary Get user
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	user, err := h.userService.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get user")
	}

	return response.Success(c, "User retrieved", user)
}

// UpdateUser updates a user's role or status (admin)
// @Summary Update user
// @Description Change a user's role or account status
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body services.UpdateUserByAdminInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	// Admins may not change their own role
	if callerID, ok := c.Locals("userID").(uint); ok && callerID == id {
		return response.Forbidden(c, "You cannot modify your own account here")
	}

	var input services.UpdateUserByAdminInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Role != nil && !validRole(*input.Role) {
		return response.BadRequest(c, "Invalid role")
	}
	if input.Status != nil && !validStatus(*input.Status) {
		return response.BadRequest(c, "Invalid status")
	}

	user, err := h.userService.UpdateUserByAdmin(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update user")
	}

	return response.Success(c, "User updated", user)
}

// DeleteUser soft deletes a user (admin)
// @Summary Delete user
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if callerID, ok := c.Locals("userID").(uint); ok && callerID == id {
		return response.Forbidden(c, "You cannot delete your own account")
	}

	if err := h.userService.DeleteUser(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.Success(c, "User deleted", nil)
}

// UpdateProfile updates the caller's own profile
// @Summary Update my profile
// @Tags Users
// @Security BearerAuth
// @Param body body services.UpdateProfileInput true "Profile data"
// @Success 200 {object} response.Response
// @Router /users/me [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrInvalidPhone):
			return response.BadRequest(c, "Phone must be in '+213XXXXXXXXX' or '0XXXXXXXXX' format")
		default:
			return response.InternalServerError(c, "Failed to update profile")
		}
	}

	return response.Success(c, "Profile updated", user)
}

// ChangePassword changes the caller's password
// @Summary Change my password
// @Tags Users
// @Security BearerAuth
// @Param body body services.ChangePasswordInput true "Password data"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/me/password [post]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.OldPassword == "" || input.NewPassword == "" {
		return response.BadRequest(c, "Old and new passwords are required")
	}

	if err := h.userService.ChangePassword(c.Context(), userID, &input); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Old password is incorrect")
		}
		return response.BadRequest(c, "Failed to change password")
	}

	return response.Success(c, "Password changed", nil)
}

func validRole(role string) bool {
	switch domain.Role(role) {
	case domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin:
		return true
	}
	return false
}

func validStatus(status string) bool {
	switch domain.Status(status) {
	case domain.StatusPending, domain.StatusActive, domain.StatusSuspended, domain.StatusDeleted:
		return true
	}
	return false
}
