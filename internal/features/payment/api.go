package payment

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type PaymentApi struct {
	controller *PaymentController
	config     *config.Config
}

func NewPaymentApi(controller *PaymentController, config *config.Config) *PaymentApi {
	return &PaymentApi{
		controller: controller,
		config:     config,
	}
}

var createPaymentRules = []validation.Rule{
	{Field: "tenant", Tag: "required,len=24", Message: "Tenant is required"},
	{Field: "amount", Tag: "required,gt=0", Message: "Amount must be a positive number"},
	{Field: "method", Tag: "required,oneof=cash card online bank_transfer check", Message: "Invalid payment method"},
	{Field: "status", Tag: "oneof=pending completed failed refunded"},
	{Field: "type", Tag: "oneof=rent deposit maintenance other"},
}

var updatePaymentRules = []validation.Rule{
	{Field: "amount", Tag: "gt=0", Message: "Amount must be a positive number"},
	{Field: "method", Tag: "oneof=cash card online bank_transfer check", Message: "Invalid payment method"},
	{Field: "status", Tag: "oneof=pending completed failed refunded"},
	{Field: "type", Tag: "oneof=rent deposit maintenance other"},
}

func (h *PaymentApi) Setup(app *fiber.App) {
	payments := app.Group("/api/payments", middleware.AuthMiddleware(h.config.SkipAuth))

	payments.Get("/tenant/my-payments", middleware.RequireRole(models.RoleTenant, models.RoleAdmin), h.controller.GetMyPayments)

	payments.Get("/", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.ListPayments)
	payments.Get("/stats", middleware.RequireRole(models.RoleAdmin), h.controller.GetStats)
	payments.Get("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.GetPayment)

	payments.Post("/", middleware.RequireRole(models.RoleAdmin), validation.Apply(createPaymentRules...), h.controller.CreatePayment)
	payments.Put("/:id", middleware.RequireRole(models.RoleAdmin), validation.Apply(updatePaymentRules...), h.controller.UpdatePayment)
	payments.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.controller.DeletePayment)
}
