package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kosdesign/game-center/internal/registry"
)

type ParentHandler struct {
	reg *registry.Service
}

func NewParentHandler(reg *registry.Service) *ParentHandler {
	return &ParentHandler{reg: reg}
}

func (h *ParentHandler) List(c *fiber.Ctx) error {
	parents, err := h.reg.GetParents()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, parents, "")
}

func (h *ParentHandler) Get(c *fiber.Ctx) error {
	parent, err := h.reg.GetParent(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, parent, "")
}

func (h *ParentHandler) Create(c *fiber.Ctx) error {
	var in struct {
		GameID   string `json:"game_id"`
		GameName string `json:"game_name"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	parent, err := h.reg.CreateParent(in.GameID, in.GameName)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusCreated, parent, "Game created successfully")
}

func (h *ParentHandler) Update(c *fiber.Ctx) error {
	var in registry.ParentUpdate
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	parent, err := h.reg.UpdateParent(c.Params("id"), in)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, parent, "Game updated successfully")
}

func (h *ParentHandler) Delete(c *fiber.Ctx) error {
	if err := h.reg.DeleteParent(c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Game deleted successfully")
}
