package expense

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type ExpenseApi struct {
	controller *ExpenseController
	config     *config.Config
}

func NewExpenseApi(controller *ExpenseController, config *config.Config) *ExpenseApi {
	return &ExpenseApi{
		controller: controller,
		config:     config,
	}
}

var createExpenseRules = []validation.Rule{
	{Field: "category", Tag: "required", Message: "Category is required"},
	{Field: "amount", Tag: "required,gt=0", Message: "Amount must be a positive number"},
	{Field: "status", Tag: "oneof=pending approved paid cancelled"},
}

var updateExpenseRules = []validation.Rule{
	{Field: "amount", Tag: "gt=0", Message: "Amount must be a positive number"},
	{Field: "status", Tag: "oneof=pending approved paid cancelled"},
}

func (h *ExpenseApi) Setup(app *fiber.App) {
	expenses := app.Group("/api/expenses", middleware.AuthMiddleware(h.config.SkipAuth), middleware.RequireRole(models.RoleAdmin))

	expenses.Get("/", h.controller.ListExpenses)
	expenses.Get("/:id", h.controller.GetExpense)
	expenses.Post("/", validation.Apply(createExpenseRules...), h.controller.CreateExpense)
	expenses.Put("/:id", validation.Apply(updateExpenseRules...), h.controller.UpdateExpense)
	expenses.Delete("/:id", h.controller.DeleteExpense)
}
