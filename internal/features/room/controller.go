package room

import (
	"errors"

	"go-hms/internal/common/models"
	"go-hms/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type RoomController struct {
	RoomService RoomService
	Logger      *zap.Logger
}

func NewRoomController(roomService RoomService, logger *zap.Logger) *RoomController {
	return &RoomController{
		RoomService: roomService,
		Logger:      logger,
	}
}

type CreateRoomRequest struct {
	Number   string  `json:"number"`
	Type     string  `json:"type"`
	Rent     float64 `json:"rent"`
	Capacity int     `json:"capacity"`
	Status   string  `json:"status"`
}

// ListRooms godoc
// @Summary      List rooms
// @Description  Get a paginated room list with search and status/type filters
// @Tags         rooms
// @Produce      json
// @Param        search query string false "Substring match on room number"
// @Param        status query string false "Filter by status, 'all' for none"
// @Param        type query string false "Filter by type, 'all' for none"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} models.Paginated
// @Failure      500 {object} map[string]string
// @Router       /api/rooms [get]
func (ctrl *RoomController) ListRooms(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	rooms, total, err := ctrl.RoomService.ListRooms(c.Context(), c.Query("search"), c.Query("status"), c.Query("type"), page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list rooms", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if rooms == nil {
		rooms = []Room{}
	}

	return c.JSON(models.NewPaginated(rooms, total, page, limit))
}

// GetRoom godoc
// @Summary      Get room by ID
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Room ID"
// @Success      200 {object} Room
// @Failure      404 {object} map[string]string
// @Router       /api/rooms/{id} [get]
func (ctrl *RoomController) GetRoom(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid room id",
		})
	}

	room, err := ctrl.RoomService.GetRoom(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Room not found",
			})
		}
		ctrl.Logger.Error("failed to get room", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(room)
}

// CreateRoom godoc
// @Summary      Create room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        input body CreateRoomRequest true "Room fields"
// @Success      201 {object} Room
// @Failure      400 {object} map[string]string
// @Router       /api/rooms [post]
func (ctrl *RoomController) CreateRoom(c *fiber.Ctx) error {
	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	room := &Room{
		Number:   req.Number,
		Type:     req.Type,
		Rent:     req.Rent,
		Capacity: req.Capacity,
		Status:   req.Status,
	}

	if err := ctrl.RoomService.CreateRoom(c.Context(), room); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Room number already exists",
			})
		}
		ctrl.Logger.Error("failed to create room", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(room)
}

// UpdateRoom godoc
// @Summary      Update room
// @Description  Partial update; only allow-listed fields are applied
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id path string true "Room ID"
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/rooms/{id} [put]
func (ctrl *RoomController) UpdateRoom(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid room id",
		})
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.RoomService.UpdateRoom(c.Context(), id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Room not found",
			})
		}
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Room number already exists",
			})
		}
		ctrl.Logger.Error("failed to update room", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Room updated successfully",
	})
}

// DeleteRoom godoc
// @Summary      Delete room
// @Tags         rooms
// @Produce      json
// @Param        id path string true "Room ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/rooms/{id} [delete]
func (ctrl *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid room id",
		})
	}

	if err := ctrl.RoomService.DeleteRoom(c.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Room not found",
			})
		}
		ctrl.Logger.Error("failed to delete room", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Room deleted successfully",
	})
}

// GetStats godoc
// @Summary      Room statistics
// @Description  Counts grouped by type and status plus capacity/occupancy totals
// @Tags         rooms
// @Produce      json
// @Success      200 {object} Stats
// @Router       /api/rooms/stats [get]
func (ctrl *RoomController) GetStats(c *fiber.Ctx) error {
	stats, err := ctrl.RoomService.GetStats(c.Context())
	if err != nil {
		ctrl.Logger.Error("failed to compute room stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(stats)
}
