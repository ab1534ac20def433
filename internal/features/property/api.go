package property

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PropertyApi struct {
	controller *PropertyController
	config     *config.Config
}

func NewPropertyApi(controller *PropertyController, config *config.Config) *PropertyApi {
	return &PropertyApi{
		controller: controller,
		config:     config,
	}
}

func (h *PropertyApi) Setup(app *fiber.App) {
	property := app.Group("/api/property", middleware.AuthMiddleware(h.config.SkipAuth), middleware.RequireRole(models.RoleAdmin))

	property.Get("/", h.controller.GetProperty)
	property.Put("/", h.controller.UpdateProperty)
}
