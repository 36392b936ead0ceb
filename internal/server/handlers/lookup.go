package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kosdesign/game-center/internal/store"
	"github.com/kosdesign/game-center/internal/token"
)

// LookupHandler serves the public, token-authenticated endpoint external
// game clients call to fetch their deployment configuration. This is the
// actual authentication boundary: the presented token must exactly equal
// the parent's stored secret.
type LookupHandler struct {
	versions *store.VersionStore
	parents  *store.ParentStore
}

func NewLookupHandler(versions *store.VersionStore, parents *store.ParentStore) *LookupHandler {
	return &LookupHandler{versions: versions, parents: parents}
}

func (h *LookupHandler) GameInfo(c *fiber.Ctx) error {
	authz := c.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", "Bearer token is required")
	}
	apiToken := strings.TrimPrefix(authz, "Bearer ")

	var in struct {
		VersionID uint `json:"version_id"`
	}
	if err := c.BodyParser(&in); err != nil || in.VersionID == 0 {
		return fail(c, fiber.StatusBadRequest, "Bad Request", "version_id is required")
	}

	if token.ExtractGameID(apiToken) == "" {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid token format")
	}

	version, err := h.versions.FindByID(in.VersionID)
	if err != nil {
		return failErr(c, err)
	}
	if version == nil {
		return fail(c, fiber.StatusNotFound, "Not Found", "Version not found")
	}

	parent, err := h.parents.FindByGameID(version.GameID)
	if err != nil {
		return failErr(c, err)
	}
	if parent == nil {
		return fail(c, fiber.StatusNotFound, "Not Found", "Game not found")
	}

	// exact equality against the stored secret, not a structural check
	if parent.APIToken != apiToken {
		return fail(c, fiber.StatusForbidden, "Forbidden", "Invalid API token for this game")
	}

	return ok(c, fiber.StatusOK, version, "")
}
