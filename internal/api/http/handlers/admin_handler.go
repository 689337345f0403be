package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/iqoooow/TERRA-ACADEMY/internal/api/dto"
	"github.com/iqoooow/TERRA-ACADEMY/internal/auth"
	"github.com/iqoooow/TERRA-ACADEMY/internal/service"
	apperrors "github.com/iqoooow/TERRA-ACADEMY/pkg/util"
)

// AdminHandler exposes owner moderation endpoints.
type AdminHandler struct {
	moderation *service.ModerationService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(moderation *service.ModerationService) *AdminHandler {
	return &AdminHandler{moderation: moderation}
}

// ListRegistrationRequests handles GET /admin/registration-requests.
func (h *AdminHandler) ListRegistrationRequests(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	pending, err := h.moderation.ListPending(c.Context(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(pending))
}

// ApproveUser handles POST /admin/approve-user/:id.
func (h *AdminHandler) ApproveUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewNotFound("user", map[string]any{"id": c.Params("id")})
	}

	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	decision, err := h.moderation.Decide(c.Context(), principal.User, userID, req.Action, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"detail": decision.Detail})
}
