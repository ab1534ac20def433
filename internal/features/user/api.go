package user

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	config     *config.Config
}

func NewUserApi(controller *UserController, config *config.Config) *UserApi {
	return &UserApi{
		controller: controller,
		config:     config,
	}
}

var changePasswordRules = []validation.Rule{
	{Field: "currentPassword", Tag: "required", Message: "Current password is required"},
	{Field: "newPassword", Tag: "required,min=6", Message: "New password must be at least 6 characters"},
}

func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/users", middleware.AuthMiddleware(h.config.SkipAuth))

	users.Get("/profile", h.controller.GetProfile)
	users.Put("/profile", h.controller.UpdateProfile)
	users.Put("/change-password", validation.Apply(changePasswordRules...), h.controller.ChangePassword)

	users.Get("/", middleware.RequireRole(models.RoleAdmin), h.controller.ListUsers)
}
