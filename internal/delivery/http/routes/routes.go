package routes

import (
	"logistaff/internal/config"
	"logistaff/internal/database"
	"logistaff/internal/delivery/http/handler"
	v1 "logistaff/internal/delivery/http/routes/v1"
	"logistaff/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.MatchCache
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(deps.DB).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), deps.Config, deps.DB, deps.Cache)
}
