package vacating

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type VacatingApi struct {
	controller *VacatingController
	config     *config.Config
}

func NewVacatingApi(controller *VacatingController, config *config.Config) *VacatingApi {
	return &VacatingApi{
		controller: controller,
		config:     config,
	}
}

var createVacatingRules = []validation.Rule{
	{Field: "reason", Tag: "required", Message: "Reason is required"},
	{Field: "vacatingDate", Tag: "required", Message: "Vacating date is required"},
	{Field: "noticePeriod", Tag: "gte=0", Message: "Notice period cannot be negative"},
}

func (h *VacatingApi) Setup(app *fiber.App) {
	requests := app.Group("/api/vacating-requests", middleware.AuthMiddleware(h.config.SkipAuth))

	requests.Get("/my-requests", middleware.RequireRole(models.RoleTenant, models.RoleAdmin), h.controller.GetMyRequests)

	requests.Get("/", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.ListRequests)
	requests.Get("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.GetRequest)

	requests.Post("/", middleware.RequireRole(models.RoleTenant, models.RoleAdmin), validation.Apply(createVacatingRules...), h.controller.CreateRequest)
	requests.Put("/:id/approve", middleware.RequireRole(models.RoleAdmin), h.controller.ApproveRequest)
	requests.Put("/:id/reject", middleware.RequireRole(models.RoleAdmin), h.controller.RejectRequest)
	requests.Put("/:id/complete", middleware.RequireRole(models.RoleAdmin), h.controller.CompleteRequest)
}
