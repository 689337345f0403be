package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/iqoooow/TERRA-ACADEMY/internal/api/dto"
	"github.com/iqoooow/TERRA-ACADEMY/internal/auth"
	"github.com/iqoooow/TERRA-ACADEMY/internal/domain"
	"github.com/iqoooow/TERRA-ACADEMY/internal/service"
	apperrors "github.com/iqoooow/TERRA-ACADEMY/pkg/util"
)

func roleFromRequest(role string) domain.Role {
	return domain.Role(role)
}

// UsersHandler exposes registration, login, refresh and profile endpoints.
type UsersHandler struct {
	registration *service.RegistrationService
	auth         *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(registration *service.RegistrationService, authService *service.AuthService) *UsersHandler {
	return &UsersHandler{registration: registration, auth: authService}
}

// Register handles POST /register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	birthDate, err := req.BirthDateValue()
	if err != nil {
		return apperrors.NewValidationError("Invalid birth date.", map[string]any{"field": "birth_date"})
	}

	user, err := h.registration.Register(c.Context(), service.RegistrationInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Phone:           req.Phone,
		BirthDate:       birthDate,
		Role:            roleFromRequest(req.Role),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// Login handles POST /login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	user, pair, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user":    dto.NewUserResponse(user),
	})
}

// Refresh handles POST /token/refresh.
func (h *UsersHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	access, _, err := h.auth.Refresh(c.Context(), req.Refresh)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"access": access})
}

// Profile handles GET /profile.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(dto.NewUserResponse(principal.User))
}
