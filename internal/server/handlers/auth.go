package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kosdesign/game-center/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	if in.Username == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Username and password are required")
	}

	result, err := h.auth.Login(in.Username, in.Password)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, result, "Login successful")
}
