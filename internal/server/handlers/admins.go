package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kosdesign/game-center/internal/services"
)

type AdminHandler struct {
	admins *services.AdminService
}

func NewAdminHandler(admins *services.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

func (h *AdminHandler) List(c *fiber.Ctx) error {
	admins, err := h.admins.ListAdmins()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, admins, "")
}

func (h *AdminHandler) Get(c *fiber.Ctx) error {
	admin, err := h.admins.GetAdmin(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, admin, "")
}

func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in services.CreateAdminInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	admin, err := h.admins.CreateAdmin(in)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusCreated, admin, "Admin created successfully")
}

func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var in services.UpdateAdminInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	admin, err := h.admins.UpdateAdmin(c.Params("id"), in)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, admin, "Admin updated successfully")
}

func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.admins.DeleteAdmin(c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Admin deleted successfully")
}
