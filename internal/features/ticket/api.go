package ticket

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type TicketApi struct {
	controller *TicketController
	config     *config.Config
}

func NewTicketApi(controller *TicketController, config *config.Config) *TicketApi {
	return &TicketApi{
		controller: controller,
		config:     config,
	}
}

var createTicketRules = []validation.Rule{
	{Field: "title", Tag: "required,min=3,max=200", Message: "Title must be between 3 and 200 characters"},
	{Field: "description", Tag: "required,min=3", Message: "Description is required"},
	{Field: "priority", Tag: "oneof=low medium high"},
	{Field: "category", Tag: "oneof=technical payment maintenance complaint security plumbing other"},
}

var updateTicketRules = []validation.Rule{
	{Field: "title", Tag: "min=3,max=200", Message: "Title must be between 3 and 200 characters"},
	{Field: "priority", Tag: "oneof=low medium high"},
	{Field: "category", Tag: "oneof=technical payment maintenance complaint security plumbing other"},
	{Field: "status", Tag: "oneof=open in_progress resolved closed"},
}

func (h *TicketApi) Setup(app *fiber.App) {
	tickets := app.Group("/api/tickets", middleware.AuthMiddleware(h.config.SkipAuth))

	tickets.Get("/tenant/my-tickets", middleware.RequireRole(models.RoleTenant, models.RoleAdmin), h.controller.GetMyTickets)

	tickets.Get("/", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.ListTickets)
	tickets.Get("/stats", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.GetStats)
	tickets.Get("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.GetTicket)

	tickets.Post("/", validation.Apply(createTicketRules...), h.controller.CreateTicket)
	tickets.Put("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), validation.Apply(updateTicketRules...), h.controller.UpdateTicket)
	tickets.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.controller.DeleteTicket)
}
