package ticket

import (
	"errors"

	"go-hms/internal/common/models"
	"go-hms/internal/middleware"
	"go-hms/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type TicketController struct {
	TicketService TicketService
	Logger        *zap.Logger
}

func NewTicketController(ticketService TicketService, logger *zap.Logger) *TicketController {
	return &TicketController{
		TicketService: ticketService,
		Logger:        logger,
	}
}

type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Tenant      string `json:"tenant"`
}

// ListTickets godoc
// @Summary      List tickets
// @Tags         tickets
// @Produce      json
// @Param        search query string false "Substring match on title or description"
// @Param        status query string false "Filter by status, 'all' for none"
// @Param        category query string false "Filter by category, 'all' for none"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} models.Paginated
// @Router       /api/tickets [get]
func (ctrl *TicketController) ListTickets(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	tickets, total, err := ctrl.TicketService.ListTickets(c.Context(), c.Query("search"), c.Query("status"), c.Query("category"), page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list tickets", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if tickets == nil {
		tickets = []Ticket{}
	}

	return c.JSON(models.NewPaginated(tickets, total, page, limit))
}

// GetTicket godoc
// @Summary      Get ticket by ID
// @Tags         tickets
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Success      200 {object} Ticket
// @Failure      404 {object} map[string]string
// @Router       /api/tickets/{id} [get]
func (ctrl *TicketController) GetTicket(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid ticket id",
		})
	}

	ticket, err := ctrl.TicketService.GetTicket(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Ticket not found",
			})
		}
		ctrl.Logger.Error("failed to get ticket", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(ticket)
}

// CreateTicket godoc
// @Summary      Create ticket
// @Description  Tenants raise tickets for themselves; admins name a tenant in the body
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        input body CreateTicketRequest true "Ticket fields"
// @Success      201 {object} Ticket
// @Failure      400 {object} map[string]string
// @Router       /api/tickets [post]
func (ctrl *TicketController) CreateTicket(c *fiber.Ctx) error {
	var req CreateTicketRequest
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

	ticket := &Ticket{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		Tenant:      tenantID,
	}

	if err := ctrl.TicketService.CreateTicket(c.Context(), ticket); err != nil {
		ctrl.Logger.Error("failed to create ticket", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// UpdateTicket godoc
// @Summary      Update ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/tickets/{id} [put]
func (ctrl *TicketController) UpdateTicket(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid ticket id",
		})
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.TicketService.UpdateTicket(c.Context(), id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Ticket not found",
			})
		}
		ctrl.Logger.Error("failed to update ticket", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Ticket updated successfully",
	})
}

// DeleteTicket godoc
// @Summary      Delete ticket
// @Tags         tickets
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/tickets/{id} [delete]
func (ctrl *TicketController) DeleteTicket(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid ticket id",
		})
	}

	if err := ctrl.TicketService.DeleteTicket(c.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Ticket not found",
			})
		}
		ctrl.Logger.Error("failed to delete ticket", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Ticket deleted successfully",
	})
}

// GetMyTickets godoc
// @Summary      Own tickets
// @Tags         tickets
// @Produce      json
// @Param        tenantId query string false "Tenant ID (admin only)"
// @Success      200 {array} Ticket
// @Router       /api/tickets/tenant/my-tickets [get]
func (ctrl *TicketController) GetMyTickets(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

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

	tickets, err := ctrl.TicketService.GetTenantTickets(c.Context(), tenantID)
	if err != nil {
		ctrl.Logger.Error("failed to list tenant tickets", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if tickets == nil {
		tickets = []Ticket{}
	}

	return c.JSON(tickets)
}

// GetStats godoc
// @Summary      Ticket statistics
// @Tags         tickets
// @Produce      json
// @Success      200 {object} Stats
// @Router       /api/tickets/stats [get]
func (ctrl *TicketController) GetStats(c *fiber.Ctx) error {
	stats, err := ctrl.TicketService.GetStats(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to compute ticket stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(stats)
}
