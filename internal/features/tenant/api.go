package tenant

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type TenantApi struct {
	controller *TenantController
	config     *config.Config
}

func NewTenantApi(controller *TenantController, config *config.Config) *TenantApi {
	return &TenantApi{
		controller: controller,
		config:     config,
	}
}

var createTenantRules = []validation.Rule{
	{Field: "firstName", Tag: "required,min=1,max=100", Message: "First name is required"},
	{Field: "lastName", Tag: "required,min=1,max=100", Message: "Last name is required"},
	{Field: "email", Tag: "required,email", Message: "A valid email is required"},
	{Field: "phone", Tag: "required,min=7,max=15", Message: "A valid phone number is required"},
	{Field: "securityDeposit", Tag: "gte=0", Message: "Security deposit must be non-negative"},
	{Field: "room", Tag: "len=24", Message: "Invalid room id"},
	{
		Field:   "aadharNumber",
		Message: "Aadhar number must be 12 digits",
		Check: func(v interface{}, present bool) bool {
			if !present || v == nil {
				return true // optional
			}
			s, ok := v.(string)
			if !ok || len(s) != 12 {
				return false
			}
			for _, c := range s {
				if c < '0' || c > '9' {
					return false
				}
			}
			return true
		},
	},
}

var updateTenantRules = []validation.Rule{
	{Field: "email", Tag: "email", Message: "A valid email is required"},
	{Field: "phone", Tag: "min=7,max=15", Message: "A valid phone number is required"},
	{Field: "securityDeposit", Tag: "gte=0", Message: "Security deposit must be non-negative"},
}

func (h *TenantApi) Setup(app *fiber.App) {
	tenants := app.Group("/api/tenants", middleware.AuthMiddleware(h.config.SkipAuth))

	tenants.Get("/dashboard/my-info", middleware.RequireRole(models.RoleTenant, models.RoleAdmin), h.controller.GetMyDashboard)

	tenants.Get("/", h.controller.ListTenants)
	tenants.Get("/stats", middleware.RequireRole(models.RoleAdmin), h.controller.GetStats)
	tenants.Get("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), h.controller.GetTenant)

	tenants.Post("/", middleware.RequireRole(models.RoleAdmin), validation.Apply(createTenantRules...), h.controller.CreateTenant)
	tenants.Put("/:id", middleware.RequireRole(models.RoleAdmin), validation.Apply(updateTenantRules...), h.controller.UpdateTenant)
	tenants.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.controller.DeleteTenant)
}
