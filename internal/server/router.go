package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kosdesign/game-center/internal/config"
	"github.com/kosdesign/game-center/internal/models"
	"github.com/kosdesign/game-center/internal/registry"
	"github.com/kosdesign/game-center/internal/server/handlers"
	"github.com/kosdesign/game-center/internal/server/middleware"
	"github.com/kosdesign/game-center/internal/services"
	"github.com/kosdesign/game-center/internal/store"
)

// New wires stores, services and handlers once and registers all routes.
func New(db *gorm.DB, cfg config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ServerHeader: "GameCenter",
		AppName:      "GameCenter API",
	})

	app.Use(middleware.Recover(log, cfg.Production()))
	app.Use(middleware.RequestLogger(log))

	parents := store.NewParentStore(db)
	versions := store.NewVersionStore(db)
	changelog := store.NewChangelogStore(db)
	admins := store.NewAdminStore(db)

	reg := registry.New(db, parents, versions, changelog, log, cfg.ChangelogLogCascade)
	authSvc := services.NewAuthService(admins, log)
	adminSvc := services.NewAdminService(admins, log)

	authH := handlers.NewAuthHandler(authSvc)
	parentH := handlers.NewParentHandler(reg)
	versionH := handlers.NewVersionHandler(reg)
	gameH := handlers.NewGameHandler(reg)
	lookupH := handlers.NewLookupHandler(versions, parents)
	adminH := handlers.NewAdminHandler(adminSvc)

	// Auth
	app.Post("/auth/login", authH.Login)

	// Parent CRUD
	gp := app.Group("/games/parents")
	gp.Get("/", parentH.List)
	gp.Post("/", middleware.Authenticate, parentH.Create)

	// Versions and changelog under a parent
	gp.Get("/:gameId/versions", versionH.List)
	gp.Post("/:gameId/versions", middleware.Authenticate, versionH.Create)
	gp.Get("/:gameId/versions/:version/changelog", versionH.VersionChangelog)
	gp.Get("/:gameId/versions/:version", versionH.Get)
	gp.Put("/:gameId/versions/:version", middleware.Authenticate, versionH.Update)
	gp.Delete("/:gameId/versions/:version", middleware.Authenticate, versionH.Delete)
	gp.Get("/:gameId/changelog", versionH.GameChangelog)

	gp.Get("/:id", parentH.Get)
	gp.Put("/:id", middleware.Authenticate, parentH.Update)
	gp.Delete("/:id", middleware.Authenticate, middleware.RequireRoles(models.RoleAdmin), parentH.Delete)

	// Legacy combined surface (flattened parent+one-version view)
	games := app.Group("/games")
	games.Get("/", gameH.List)
	games.Post("/", middleware.Authenticate, gameH.Create)
	games.Get("/:id", gameH.Get)
	games.Put("/:id", middleware.Authenticate, gameH.Update)
	games.Delete("/:id", middleware.Authenticate, gameH.Delete)

	// Public lookup for external game clients
	app.Post("/game/info", lookupH.GameInfo)

	// Admin management
	adm := app.Group("/admins", middleware.Authenticate, middleware.RequireRoles(models.RoleAdmin))
	adm.Get("/", adminH.List)
	adm.Post("/", adminH.Create)
	adm.Get("/:id", adminH.Get)
	adm.Put("/:id", adminH.Update)
	adm.Delete("/:id", adminH.Delete)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "time": time.Now()})
	})

	return app
}
