package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kosdesign/game-center/internal/registry"
	"github.com/kosdesign/game-center/internal/server/middleware"
)

// GameHandler serves the legacy combined surface operating on a flattened
// parent+one-version view.
type GameHandler struct {
	reg *registry.Service
}

func NewGameHandler(reg *registry.Service) *GameHandler {
	return &GameHandler{reg: reg}
}

func (h *GameHandler) List(c *fiber.Ctx) error {
	games, err := h.reg.ListGames(c.Query("type"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, games, "")
}

func (h *GameHandler) Get(c *fiber.Ctx) error {
	game, err := h.reg.GetGame(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, game, "")
}

func (h *GameHandler) Create(c *fiber.Ctx) error {
	var in registry.CreateGameInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	game, err := h.reg.CreateGame(in, middleware.Actor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusCreated, game, "Game created successfully")
}

func (h *GameHandler) Update(c *fiber.Ctx) error {
	version := c.Query("version")
	if version == "" {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "version query parameter is required")
	}
	var in registry.UpdateGameInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	game, err := h.reg.UpdateGame(c.Params("id"), version, in, middleware.Actor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, game, "Game updated successfully")
}

func (h *GameHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.reg.DeleteGame(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if !deleted {
		return fail(c, fiber.StatusNotFound, "Not Found", "Game not found")
	}
	return ok(c, fiber.StatusOK, nil, "Game deleted successfully")
}
