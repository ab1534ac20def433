package exchange

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

type ExchangeController struct {
	ExchangeService ExchangeService
	Logger          *zap.Logger
}

func NewExchangeController(exchangeService ExchangeService, logger *zap.Logger) *ExchangeController {
	return &ExchangeController{
		ExchangeService: exchangeService,
		Logger:          logger,
	}
}

type CreateExchangeRequest struct {
	Tenant        string     `json:"tenant"`
	RequestedRoom string     `json:"requestedRoom"`
	Reason        string     `json:"reason"`
	PreferredDate *time.Time `json:"preferredDate"`
}

type RejectExchangeRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

// ListRequests godoc
// @Summary      List exchange requests
// @Tags         exchange
// @Produce      json
// @Param        status query string false "Filter by status, 'all' for none"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} models.Paginated
// @Router       /api/exchange-requests [get]
func (ctrl *ExchangeController) ListRequests(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	requests, total, err := ctrl.ExchangeService.ListRequests(c.Context(), c.Query("status"), page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list exchange requests", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if requests == nil {
		requests = []ExchangeRequest{}
	}

	return c.JSON(models.NewPaginated(requests, total, page, limit))
}

// GetRequest godoc
// @Summary      Get exchange request by ID
// @Tags         exchange
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} ExchangeRequest
// @Failure      404 {object} map[string]string
// @Router       /api/exchange-requests/{id} [get]
func (ctrl *ExchangeController) GetRequest(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request id",
		})
	}

	request, err := ctrl.ExchangeService.GetRequest(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Exchange request not found",
			})
		}
		ctrl.Logger.Error("failed to get exchange request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(request)
}

// GetMyRequests godoc
// @Summary      Acting tenant's exchange requests
// @Tags         exchange
// @Produce      json
// @Param        tenantId query string false "Tenant ID (admin callers only)"
// @Success      200 {array} ExchangeRequest
// @Router       /api/exchange-requests/my-requests [get]
func (ctrl *ExchangeController) GetMyRequests(c *fiber.Ctx) error {
	tenantID, errResp := resolveTenant(c)
	if errResp != nil {
		return errResp(c)
	}

	requests, err := ctrl.ExchangeService.GetTenantRequests(c.Context(), tenantID)
	if err != nil {
		ctrl.Logger.Error("failed to list tenant exchange requests", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if requests == nil {
		requests = []ExchangeRequest{}
	}

	return c.JSON(requests)
}

// CreateRequest godoc
// @Summary      Submit exchange request
// @Tags         exchange
// @Accept       json
// @Produce      json
// @Param        input body CreateExchangeRequest true "Request fields"
// @Success      201 {object} ExchangeRequest
// @Failure      400 {object} map[string]string
// @Router       /api/exchange-requests [post]
func (ctrl *ExchangeController) CreateRequest(c *fiber.Ctx) error {
	var req CreateExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	tenantHex := req.Tenant
	if claims.Role == models.RoleTenant {
		tenantHex = claims.TenantID
	}
	tenantID, err := primitive.ObjectIDFromHex(tenantHex)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid tenant id",
		})
	}

	requestedRoom, err := primitive.ObjectIDFromHex(req.RequestedRoom)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid room id",
		})
	}

	request := &ExchangeRequest{
		Tenant:        tenantID,
		RequestedRoom: requestedRoom,
		Reason:        req.Reason,
		PreferredDate: req.PreferredDate,
	}

	if err := ctrl.ExchangeService.CreateRequest(c.Context(), request); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tenant or room not found",
			})
		}
		ctrl.Logger.Error("failed to create exchange request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// ApproveRequest godoc
// @Summary      Approve exchange request
// @Tags         exchange
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/exchange-requests/{id}/approve [put]
func (ctrl *ExchangeController) ApproveRequest(c *fiber.Ctx) error {
	id, adminID, errResp := ctrl.transitionIDs(c)
	if errResp != nil {
		return errResp(c)
	}

	if err := ctrl.ExchangeService.ApproveRequest(c.Context(), id, adminID); err != nil {
		return ctrl.transitionError(c, err, "approve")
	}

	return c.JSON(fiber.Map{
		"message": "Exchange request approved",
	})
}

// RejectRequest godoc
// @Summary      Reject exchange request
// @Tags         exchange
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        input body RejectExchangeRequest true "Rejection reason"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/exchange-requests/{id}/reject [put]
func (ctrl *ExchangeController) RejectRequest(c *fiber.Ctx) error {
	id, adminID, errResp := ctrl.transitionIDs(c)
	if errResp != nil {
		return errResp(c)
	}

	var req RejectExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.ExchangeService.RejectRequest(c.Context(), id, adminID, req.RejectionReason); err != nil {
		return ctrl.transitionError(c, err, "reject")
	}

	return c.JSON(fiber.Map{
		"message": "Exchange request rejected",
	})
}

// CompleteRequest godoc
// @Summary      Complete exchange request and move the tenant
// @Tags         exchange
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/exchange-requests/{id}/complete [put]
func (ctrl *ExchangeController) CompleteRequest(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request id",
		})
	}

	if err := ctrl.ExchangeService.CompleteRequest(c.Context(), id); err != nil {
		return ctrl.transitionError(c, err, "complete")
	}

	return c.JSON(fiber.Map{
		"message": "Exchange request completed",
	})
}

func (ctrl *ExchangeController) transitionIDs(c *fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, func(*fiber.Ctx) error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request id"})
		}
	}

	claims, ok := middleware.Claims(c)
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}
	}
	adminID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		adminID = primitive.NilObjectID
	}

	return id, adminID, nil
}

func (ctrl *ExchangeController) transitionError(c *fiber.Ctx, err error, action string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Exchange request not found",
		})
	}
	if errors.Is(err, ErrInvalidTransition) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request is no longer pending",
		})
	}
	ctrl.Logger.Error("failed to "+action+" exchange request", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}

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
