package expense

import (
	"errors"
	"time"

	"go-hms/internal/common/models"
	"go-hms/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ExpenseController struct {
	ExpenseService ExpenseService
	Logger         *zap.Logger
}

func NewExpenseController(expenseService ExpenseService, logger *zap.Logger) *ExpenseController {
	return &ExpenseController{
		ExpenseService: expenseService,
		Logger:         logger,
	}
}

type CreateExpenseRequest struct {
	Category      string     `json:"category"`
	Subcategory   string     `json:"subcategory"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description"`
	Supplier      string     `json:"supplier"`
	PaymentMethod string     `json:"paymentMethod"`
	Date          *time.Time `json:"date"`
	DueDate       *time.Time `json:"dueDate"`
	Status        string     `json:"status"`
}

// ListExpenses godoc
// @Summary      List expenses
// @Tags         expenses
// @Produce      json
// @Param        search query string false "Substring match on description or supplier"
// @Param        status query string false "Filter by status, 'all' for none"
// @Param        category query string false "Filter by category, 'all' for none"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} models.Paginated
// @Router       /api/expenses [get]
func (ctrl *ExpenseController) ListExpenses(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	expenses, total, err := ctrl.ExpenseService.ListExpenses(c.Context(), c.Query("search"), c.Query("status"), c.Query("category"), page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if expenses == nil {
		expenses = []Expense{}
	}

	return c.JSON(models.NewPaginated(expenses, total, page, limit))
}

// GetExpense godoc
// @Summary      Get expense by ID
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} Expense
// @Failure      404 {object} map[string]string
// @Router       /api/expenses/{id} [get]
func (ctrl *ExpenseController) GetExpense(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid expense id",
		})
	}

	expense, err := ctrl.ExpenseService.GetExpense(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Expense not found",
			})
		}
		ctrl.Logger.Error("failed to get expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(expense)
}

// CreateExpense godoc
// @Summary      Record expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        input body CreateExpenseRequest true "Expense fields"
// @Success      201 {object} Expense
// @Failure      400 {object} map[string]string
// @Router       /api/expenses [post]
func (ctrl *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	expense := &Expense{
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Amount:        req.Amount,
		Description:   req.Description,
		Supplier:      req.Supplier,
		PaymentMethod: req.PaymentMethod,
		DueDate:       req.DueDate,
		Status:        req.Status,
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}

	if err := ctrl.ExpenseService.CreateExpense(c.Context(), expense); err != nil {
		ctrl.Logger.Error("failed to create expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(expense)
}

// UpdateExpense godoc
// @Summary      Update expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID"
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/expenses/{id} [put]
func (ctrl *ExpenseController) UpdateExpense(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid expense id",
		})
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.ExpenseService.UpdateExpense(c.Context(), id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Expense not found",
			})
		}
		ctrl.Logger.Error("failed to update expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Expense updated successfully",
	})
}

// DeleteExpense godoc
// @Summary      Delete expense
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/expenses/{id} [delete]
func (ctrl *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid expense id",
		})
	}

	if err := ctrl.ExpenseService.DeleteExpense(c.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Expense not found",
			})
		}
		ctrl.Logger.Error("failed to delete expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Expense deleted successfully",
	})
}
