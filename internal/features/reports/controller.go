package reports

import (
	"strconv"
	"time"

	"go-hms/internal/features/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportsController struct {
	ReportsService   ReportsService
	ReconcileService reconcile.Service
	Logger           *zap.Logger
}

func NewReportsController(reportsService ReportsService, reconcileService reconcile.Service, logger *zap.Logger) *ReportsController {
	return &ReportsController{
		ReportsService:   reportsService,
		ReconcileService: reconcileService,
		Logger:           logger,
	}
}

// Overview godoc
// @Summary      Current vs previous month overview
// @Tags         reports
// @Produce      json
// @Success      200 {object} OverviewReport
// @Router       /api/reports/overview [get]
func (ctrl *ReportsController) Overview(c *fiber.Ctx) error {
	report, err := ctrl.ReportsService.Overview(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to build overview report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(report)
}

// Financial godoc
// @Summary      Trailing months income/expense/profit
// @Tags         reports
// @Produce      json
// @Param        months query int false "Trailing months including the current one" default(6)
// @Success      200 {object} FinancialReport
// @Router       /api/reports/financial [get]
func (ctrl *ReportsController) Financial(c *fiber.Ctx) error {
	months, err := strconv.Atoi(c.Query("months", "6"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "months must be a number",
		})
	}

	report, err := ctrl.ReportsService.Financial(c.Context(), months)
	if err != nil {
		ctrl.Logger.Error("failed to build financial report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(report)
}

// Occupancy godoc
// @Summary      Per room-type occupancy rollup
// @Tags         reports
// @Produce      json
// @Success      200 {object} OccupancyReport
// @Router       /api/reports/occupancy [get]
func (ctrl *ReportsController) Occupancy(c *fiber.Ctx) error {
	report, err := ctrl.ReportsService.Occupancy(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to build occupancy report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(report)
}

// TenantActivity godoc
// @Summary      Tenant counts and most recent arrivals
// @Tags         reports
// @Produce      json
// @Success      200 {object} ActivityReport
// @Router       /api/reports/tenant-activity [get]
func (ctrl *ReportsController) TenantActivity(c *fiber.Ctx) error {
	report, err := ctrl.ReportsService.TenantActivity(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to build tenant activity report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(report)
}

// TenantData godoc
// @Summary      Full tenant roster with rooms populated
// @Tags         reports
// @Produce      json
// @Success      200 {object} TenantDataReport
// @Router       /api/reports/tenant-data [get]
func (ctrl *ReportsController) TenantData(c *fiber.Ctx) error {
	report, err := ctrl.ReportsService.TenantData(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to build tenant data report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(report)
}

// ExportTenantData godoc
// @Summary      Download tenant roster as xlsx
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} binary
// @Router       /api/reports/tenant-data/export [get]
func (ctrl *ReportsController) ExportTenantData(c *fiber.Ctx) error {
	data, err := ctrl.ReportsService.ExportTenantData(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to export tenant data", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	filename := "tenants-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ReconcileOccupancy godoc
// @Summary      Recompute room occupancy counters from tenant records
// @Tags         reports
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/reports/reconcile-occupancy [post]
func (ctrl *ReportsController) ReconcileOccupancy(c *fiber.Ctx) error {
	fixed, err := ctrl.ReconcileService.ReconcileOccupancy(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to reconcile occupancy", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Occupancy reconciled",
		"roomsFixed": fixed,
	})
}
