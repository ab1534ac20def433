package reports

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportsApi struct {
	controller *ReportsController
	config     *config.Config
}

func NewReportsApi(controller *ReportsController, config *config.Config) *ReportsApi {
	return &ReportsApi{
		controller: controller,
		config:     config,
	}
}

func (h *ReportsApi) Setup(app *fiber.App) {
	reports := app.Group("/api/reports", middleware.AuthMiddleware(h.config.SkipAuth), middleware.RequireRole(models.RoleAdmin))

	reports.Get("/overview", h.controller.Overview)
	reports.Get("/financial", h.controller.Financial)
	reports.Get("/occupancy", h.controller.Occupancy)
	reports.Get("/tenant-activity", h.controller.TenantActivity)
	reports.Get("/tenant-data", h.controller.TenantData)
	reports.Get("/tenant-data/export", h.controller.ExportTenantData)

	reports.Post("/reconcile-occupancy", h.controller.ReconcileOccupancy)
}
