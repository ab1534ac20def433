package auth

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	config     *config.Config
}

func NewAuthApi(controller *AuthController, config *config.Config) *AuthApi {
	return &AuthApi{
		controller: controller,
		config:     config,
	}
}

var registerRules = []validation.Rule{
	{Field: "name", Tag: "required", Message: "Name is required"},
	{Field: "email", Tag: "required,email", Message: "A valid email is required"},
	{Field: "password", Tag: "required,min=6", Message: "Password must be at least 6 characters"},
	{Field: "role", Tag: "oneof=admin staff tenant"},
}

var loginRules = []validation.Rule{
	{Field: "email", Tag: "required,email", Message: "A valid email is required"},
	{Field: "password", Tag: "required", Message: "Password is required"},
}

func (h *AuthApi) Setup(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", validation.Apply(loginRules...), h.controller.Login)

	// Registration is an admin action: new staff and tenant logins are
	// provisioned, not self-served.
	authGroup.Post("/register",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireRole(models.RoleAdmin),
		validation.Apply(registerRules...),
		h.controller.Register)

	authGroup.Get("/me", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.Me)
}
