package exchange

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type ExchangeApi struct {
	controller *ExchangeController
	config     *config.Config
}

func NewExchangeApi(controller *ExchangeController, config *config.Config) *ExchangeApi {
	return &ExchangeApi{
		controller: controller,
		config:     config,
	}
}

var createExchangeRules = []validation.Rule{
	{Field: "requestedRoom", Tag: "required,len=24", Message: "Requested room is required"},
	{Field: "reason", Tag: "required", Message: "Reason is required"},
}

func (h *ExchangeApi) Setup(app *fiber.App) {
	requests := app.Group("/api/exchange-requests", middleware.AuthMiddleware(h.config.SkipAuth))

	requests.Get("/my-requests", middleware.RequireRole(models.RoleTenant, models.RoleAdmin), h.controller.GetMyRequests)

	requests.Get("/", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.ListRequests)
	requests.Get("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.GetRequest)

	requests.Post("/", middleware.RequireRole(models.RoleTenant, models.RoleAdmin), validation.Apply(createExchangeRules...), h.controller.CreateRequest)
	requests.Put("/:id/approve", middleware.RequireRole(models.RoleAdmin), h.controller.ApproveRequest)
	requests.Put("/:id/reject", middleware.RequireRole(models.RoleAdmin), h.controller.RejectRequest)
	requests.Put("/:id/complete", middleware.RequireRole(models.RoleAdmin), h.controller.CompleteRequest)
}
