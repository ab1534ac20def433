package vacating

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

type VacatingController struct {
	VacatingService VacatingService
	Logger          *zap.Logger
}

func NewVacatingController(vacatingService VacatingService, logger *zap.Logger) *VacatingController {
	return &VacatingController{
		VacatingService: vacatingService,
		Logger:          logger,
	}
}

type CreateVacatingRequest struct {
	Tenant       string    `json:"tenant"`
	Reason       string    `json:"reason"`
	VacatingDate time.Time `json:"vacatingDate"`
	NoticePeriod int       `json:"noticePeriod"`
}

type RejectVacatingRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

// ListRequests godoc
// @Summary      List vacating requests
// @Tags         vacating
// @Produce      json
// @Param        status query string false "Filter by status, 'all' for none"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} models.Paginated
// @Router       /api/vacating-requests [get]
func (ctrl *VacatingController) ListRequests(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	requests, total, err := ctrl.VacatingService.ListRequests(c.Context(), c.Query("status"), page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list vacating requests", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if requests == nil {
		requests = []VacatingRequest{}
	}

	return c.JSON(models.NewPaginated(requests, total, page, limit))
}

// GetRequest godoc
// @Summary      Get vacating request by ID
// @Tags         vacating
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} VacatingRequest
// @Failure      404 {object} map[string]string
// @Router       /api/vacating-requests/{id} [get]
func (ctrl *VacatingController) GetRequest(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request id",
		})
	}

	request, err := ctrl.VacatingService.GetRequest(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Vacating request not found",
			})
		}
		ctrl.Logger.Error("failed to get vacating request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(request)
}

// GetMyRequests godoc
// @Summary      Acting tenant's vacating requests
// @Tags         vacating
// @Produce      json
// @Param        tenantId query string false "Tenant ID (admin callers only)"
// @Success      200 {array} VacatingRequest
// @Router       /api/vacating-requests/my-requests [get]
func (ctrl *VacatingController) GetMyRequests(c *fiber.Ctx) error {
	tenantID, errResp := resolveTenant(c)
	if errResp != nil {
		return errResp(c)
	}

	requests, err := ctrl.VacatingService.GetTenantRequests(c.Context(), tenantID)
	if err != nil {
		ctrl.Logger.Error("failed to list tenant vacating requests", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if requests == nil {
		requests = []VacatingRequest{}
	}

	return c.JSON(requests)
}

// CreateRequest godoc
// @Summary      Submit vacating request
// @Tags         vacating
// @Accept       json
// @Produce      json
// @Param        input body CreateVacatingRequest true "Request fields"
// @Success      201 {object} VacatingRequest
// @Failure      400 {object} map[string]string
// @Router       /api/vacating-requests [post]
func (ctrl *VacatingController) CreateRequest(c *fiber.Ctx) error {
	var req CreateVacatingRequest
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

	// Tenant callers always file for themselves; admins name the tenant.
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

	request := &VacatingRequest{
		Tenant:       tenantID,
		Reason:       req.Reason,
		VacatingDate: req.VacatingDate,
		NoticePeriod: req.NoticePeriod,
	}

	if err := ctrl.VacatingService.CreateRequest(c.Context(), request); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tenant not found",
			})
		}
		ctrl.Logger.Error("failed to create vacating request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// ApproveRequest godoc
// @Summary      Approve vacating request
// @Tags         vacating
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        input body Settlement true "Settlement entered by the approver"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/vacating-requests/{id}/approve [put]
func (ctrl *VacatingController) ApproveRequest(c *fiber.Ctx) error {
	id, adminID, errResp := ctrl.transitionIDs(c)
	if errResp != nil {
		return errResp(c)
	}

	var settlement Settlement
	if err := c.BodyParser(&settlement); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	err := ctrl.VacatingService.ApproveRequest(c.Context(), id, adminID, settlement)
	if err != nil {
		return ctrl.transitionError(c, err, "approve")
	}

	return c.JSON(fiber.Map{
		"message": "Vacating request approved",
	})
}

// RejectRequest godoc
// @Summary      Reject vacating request
// @Tags         vacating
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        input body RejectVacatingRequest true "Rejection reason"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/vacating-requests/{id}/reject [put]
func (ctrl *VacatingController) RejectRequest(c *fiber.Ctx) error {
	id, adminID, errResp := ctrl.transitionIDs(c)
	if errResp != nil {
		return errResp(c)
	}

	var req RejectVacatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	err := ctrl.VacatingService.RejectRequest(c.Context(), id, adminID, req.RejectionReason)
	if err != nil {
		return ctrl.transitionError(c, err, "reject")
	}

	return c.JSON(fiber.Map{
		"message": "Vacating request rejected",
	})
}

// CompleteRequest godoc
// @Summary      Mark vacating request completed
// @Tags         vacating
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/vacating-requests/{id}/complete [put]
func (ctrl *VacatingController) CompleteRequest(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request id",
		})
	}

	if err := ctrl.VacatingService.CompleteRequest(c.Context(), id); err != nil {
		return ctrl.transitionError(c, err, "complete")
	}

	return c.JSON(fiber.Map{
		"message": "Vacating request completed",
	})
}

func (ctrl *VacatingController) transitionIDs(c *fiber.Ctx) (primitive.ObjectID, primitive.ObjectID, func(*fiber.Ctx) error) {
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

func (ctrl *VacatingController) transitionError(c *fiber.Ctx, err error, action string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Vacating request not found",
		})
	}
	if errors.Is(err, ErrInvalidTransition) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request is no longer pending",
		})
	}
	ctrl.Logger.Error("failed to "+action+" vacating request", zap.Error(err))
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
