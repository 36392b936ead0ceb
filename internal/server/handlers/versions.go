package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kosdesign/game-center/internal/registry"
	"github.com/kosdesign/game-center/internal/server/middleware"
)

type VersionHandler struct {
	reg *registry.Service
}

func NewVersionHandler(reg *registry.Service) *VersionHandler {
	return &VersionHandler{reg: reg}
}

func (h *VersionHandler) List(c *fiber.Ctx) error {
	versions, err := h.reg.ListVersions(c.Params("gameId"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, versions, "")
}

func (h *VersionHandler) Get(c *fiber.Ctx) error {
	version, err := h.reg.GetVersion(c.Params("gameId"), c.Params("version"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, version, "")
}

func (h *VersionHandler) Create(c *fiber.Ctx) error {
	var in registry.VersionData
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	version, err := h.reg.CreateVersion(c.Params("gameId"), in, middleware.Actor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusCreated, version, "Version created successfully")
}

func (h *VersionHandler) Update(c *fiber.Ctx) error {
	var in registry.VersionUpdate
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Validation Error", "Invalid input data")
	}
	version, err := h.reg.UpdateVersion(c.Params("gameId"), c.Params("version"), in, middleware.Actor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, version, "Version updated successfully")
}

func (h *VersionHandler) Delete(c *fiber.Ctx) error {
	err := h.reg.DeleteVersion(c.Params("gameId"), c.Params("version"), middleware.Actor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Version deleted successfully")
}

func (h *VersionHandler) VersionChangelog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	entries, err := h.reg.GetVersionChangelog(c.Params("gameId"), c.Params("version"), limit)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, entries, "")
}

func (h *VersionHandler) GameChangelog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	entries, err := h.reg.GetGameChangelog(c.Params("gameId"), limit)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, entries, "")
}
