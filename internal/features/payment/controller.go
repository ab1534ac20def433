package payment

import (
	"errors"
	"time"

	"go-hms/internal/common/models"
	"go-hms/internal/middleware"
	"go-hms/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type PaymentController struct {
	PaymentService PaymentService
	Logger         *zap.Logger
}

func NewPaymentController(paymentService PaymentService, logger *zap.Logger) *PaymentController {
	return &PaymentController{
		PaymentService: paymentService,
		Logger:         logger,
	}
}

type CreatePaymentRequest struct {
	Tenant    string     `json:"tenant"`
	Amount    float64    `json:"amount"`
	Method    string     `json:"method"`
	Status    string     `json:"status"`
	Type      string     `json:"type"`
	DueDate   *time.Time `json:"dueDate"`
	PaidAt    *time.Time `json:"paidAt"`
	Reference string     `json:"reference"`
	Notes     string     `json:"notes"`
}

// ListPayments godoc
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Param        search query string false "Substring match on reference or notes"
// @Param        status query string false "Filter by status, 'all' for none"
// @Param        type query string false "Filter by type, 'all' for none"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} models.Paginated
// @Router       /api/payments [get]
func (ctrl *PaymentController) ListPayments(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	payments, total, err := ctrl.PaymentService.ListPayments(c.Context(), c.Query("search"), c.Query("status"), c.Query("type"), page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list payments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if payments == nil {
		payments = []Payment{}
	}

	return c.JSON(models.NewPaginated(payments, total, page, limit))
}

// GetPayment godoc
// @Summary      Get payment by ID
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID"
// @Success      200 {object} Payment
// @Failure      404 {object} map[string]string
// @Router       /api/payments/{id} [get]
func (ctrl *PaymentController) GetPayment(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid payment id",
		})
	}

	payment, err := ctrl.PaymentService.GetPayment(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Payment not found",
			})
		}
		ctrl.Logger.Error("failed to get payment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(payment)
}

// CreatePayment godoc
// @Summary      Record payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        input body CreatePaymentRequest true "Payment fields"
// @Success      201 {object} Payment
// @Failure      400 {object} map[string]string
// @Router       /api/payments [post]
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	tenantID, err := primitive.ObjectIDFromHex(req.Tenant)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid tenant id",
		})
	}

	payment := &Payment{
		Tenant:    tenantID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    req.Status,
		Type:      req.Type,
		DueDate:   req.DueDate,
		PaidAt:    req.PaidAt,
		Reference: req.Reference,
		Notes:     req.Notes,
	}

	if err := ctrl.PaymentService.CreatePayment(c.Context(), payment); err != nil {
		ctrl.Logger.Error("failed to create payment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// UpdatePayment godoc
// @Summary      Update payment
// @Description  Partial update; setting status=completed stamps paidAt
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment ID"
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/payments/{id} [put]
func (ctrl *PaymentController) UpdatePayment(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid payment id",
		})
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.PaymentService.UpdatePayment(c.Context(), id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Payment not found",
			})
		}
		ctrl.Logger.Error("failed to update payment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Payment updated successfully",
	})
}

// DeletePayment godoc
// @Summary      Delete payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/payments/{id} [delete]
func (ctrl *PaymentController) DeletePayment(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid payment id",
		})
	}

	if err := ctrl.PaymentService.DeletePayment(c.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Payment not found",
			})
		}
		ctrl.Logger.Error("failed to delete payment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Payment deleted successfully",
	})
}

// GetMyPayments godoc
// @Summary      Own payments
// @Description  Payments of the acting tenant (admins pass ?tenantId=)
// @Tags         payments
// @Produce      json
// @Param        tenantId query string false "Tenant ID (admin only)"
// @Success      200 {object} models.Paginated
// @Router       /api/payments/tenant/my-payments [get]
func (ctrl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	tenantID, errResp := resolveTenant(c)
	if errResp != nil {
		return errResp(c)
	}

	page, limit := utils.ParsePagination(c)
	payments, total, err := ctrl.PaymentService.GetTenantPayments(c.Context(), tenantID, page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list tenant payments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if payments == nil {
		payments = []Payment{}
	}

	return c.JSON(models.NewPaginated(payments, total, page, limit))
}

// GetStats godoc
// @Summary      Payment statistics
// @Tags         payments
// @Produce      json
// @Success      200 {object} Stats
// @Router       /api/payments/stats [get]
func (ctrl *PaymentController) GetStats(c *fiber.Ctx) error {
	stats, err := ctrl.PaymentService.GetStats(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to compute payment stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(stats)
}

// resolveTenant resolves the acting tenant once, up front: a tenant caller
// acts on their own record, an admin names the target via query param.
func resolveTenant(c *fiber.Ctx) (primitive.ObjectID, func(*fiber.Ctx) error) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return primitive.NilObjectID, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}
	}

	hex := claims.TenantID
	if claims.Role == models.RoleAdmin {
		hex = c.Query("tenantId")
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid tenant id"})
		}
	}
	return id, nil
}
