package tenant

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

type TenantController struct {
	TenantService TenantService
	Logger        *zap.Logger
}

func NewTenantController(tenantService TenantService, logger *zap.Logger) *TenantController {
	return &TenantController{
		TenantService: tenantService,
		Logger:        logger,
	}
}

type CreateTenantRequest struct {
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	AadharNumber     string           `json:"aadharNumber"`
	Room             string           `json:"room"`
	MoveInDate       *time.Time       `json:"moveInDate"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	SecurityDeposit  float64          `json:"securityDeposit"`
}

// ListTenants godoc
// @Summary      List tenants
// @Tags         tenants
// @Produce      json
// @Param        search query string false "Substring match on name, email or phone"
// @Param        status query string false "active, inactive or all"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} models.Paginated
// @Router       /api/tenants [get]
func (ctrl *TenantController) ListTenants(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	tenants, total, err := ctrl.TenantService.ListTenants(c.Context(), c.Query("search"), c.Query("status"), page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list tenants", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if tenants == nil {
		tenants = []TenantWithRoom{}
	}

	return c.JSON(models.NewPaginated(tenants, total, page, limit))
}

// GetTenant godoc
// @Summary      Get tenant by ID
// @Tags         tenants
// @Produce      json
// @Param        id path string true "Tenant ID"
// @Success      200 {object} TenantWithRoom
// @Failure      404 {object} map[string]string
// @Router       /api/tenants/{id} [get]
func (ctrl *TenantController) GetTenant(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid tenant id",
		})
	}

	tenant, err := ctrl.TenantService.GetTenant(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tenant not found",
			})
		}
		ctrl.Logger.Error("failed to get tenant", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(tenant)
}

// CreateTenant godoc
// @Summary      Create tenant
// @Description  Creates a tenant; assigning a room increments its occupancy
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        input body CreateTenantRequest true "Tenant fields"
// @Success      201 {object} Tenant
// @Failure      400 {object} map[string]string
// @Router       /api/tenants [post]
func (ctrl *TenantController) CreateTenant(c *fiber.Ctx) error {
	var req CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	tenant := &Tenant{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		AadharNumber:     req.AadharNumber,
		MoveInDate:       req.MoveInDate,
		EmergencyContact: req.EmergencyContact,
		SecurityDeposit:  req.SecurityDeposit,
	}

	if req.Room != "" {
		roomID, err := primitive.ObjectIDFromHex(req.Room)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid room id",
			})
		}
		tenant.Room = &roomID
	}

	if err := ctrl.TenantService.CreateTenant(c.Context(), tenant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Room not found",
			})
		}
		ctrl.Logger.Error("failed to create tenant", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(tenant)
}

// UpdateTenant godoc
// @Summary      Update tenant
// @Description  Partial update; a "room" key moves the tenant and adjusts occupancy counters
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id path string true "Tenant ID"
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/tenants/{id} [put]
func (ctrl *TenantController) UpdateTenant(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid tenant id",
		})
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.TenantService.UpdateTenant(c.Context(), id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tenant not found",
			})
		}
		if err.Error() == "invalid room id" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid room id",
			})
		}
		ctrl.Logger.Error("failed to update tenant", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Tenant updated successfully",
	})
}

// DeleteTenant godoc
// @Summary      Delete tenant
// @Description  Removes the tenant and decrements the room occupancy
// @Tags         tenants
// @Produce      json
// @Param        id path string true "Tenant ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/tenants/{id} [delete]
func (ctrl *TenantController) DeleteTenant(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid tenant id",
		})
	}

	if err := ctrl.TenantService.DeleteTenant(c.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tenant not found",
			})
		}
		ctrl.Logger.Error("failed to delete tenant", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Tenant deleted successfully",
	})
}

// GetStats godoc
// @Summary      Tenant statistics
// @Tags         tenants
// @Produce      json
// @Success      200 {object} Stats
// @Router       /api/tenants/stats [get]
func (ctrl *TenantController) GetStats(c *fiber.Ctx) error {
	stats, err := ctrl.TenantService.GetStats(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to compute tenant stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(stats)
}

// GetMyDashboard godoc
// @Summary      Tenant self-service dashboard
// @Description  The acting tenant's record, recent payments, open tickets and rent due. Admins pass ?tenantId=
// @Tags         tenants
// @Produce      json
// @Param        tenantId query string false "Tenant ID (admin only)"
// @Success      200 {object} Dashboard
// @Failure      404 {object} map[string]string
// @Router       /api/tenants/dashboard/my-info [get]
func (ctrl *TenantController) GetMyDashboard(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	// Caller context resolved once: a tenant acts on themselves, an admin
	// impersonates via query param.
	hex := claims.TenantID
	if claims.Role == models.RoleAdmin {
		hex = c.Query("tenantId")
	}
	tenantID, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid tenant id",
		})
	}

	dashboard, err := ctrl.TenantService.GetDashboard(c.Context(), tenantID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tenant not found",
			})
		}
		ctrl.Logger.Error("failed to build tenant dashboard", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(dashboard)
}
