package room

import (
	"go-hms/internal/common/models"
	"go-hms/internal/config"
	"go-hms/internal/middleware"
	"go-hms/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type RoomApi struct {
	controller *RoomController
	config     *config.Config
}

func NewRoomApi(controller *RoomController, config *config.Config) *RoomApi {
	return &RoomApi{
		controller: controller,
		config:     config,
	}
}

var createRoomRules = []validation.Rule{
	{Field: "number", Tag: "required,min=1", Message: "Room number is required"},
	{Field: "type", Tag: "required,oneof=single double shared", Message: "Room type must be single, double or shared"},
	{Field: "rent", Tag: "required,gte=0", Message: "Rent must be a non-negative number"},
	{Field: "capacity", Tag: "gte=1", Message: "Capacity must be at least 1"},
	{Field: "status", Tag: "oneof=available occupied maintenance"},
}

var updateRoomRules = []validation.Rule{
	{Field: "type", Tag: "oneof=single double shared", Message: "Room type must be single, double or shared"},
	{Field: "rent", Tag: "gte=0", Message: "Rent must be a non-negative number"},
	{Field: "capacity", Tag: "gte=1", Message: "Capacity must be at least 1"},
	{Field: "status", Tag: "oneof=available occupied maintenance"},
}

// Setup registers the room routes. Reads are open to any authenticated
// principal; mutations and stats are admin-only.
func (h *RoomApi) Setup(app *fiber.App) {
	rooms := app.Group("/api/rooms", middleware.AuthMiddleware(h.config.SkipAuth))

	rooms.Get("/", h.controller.ListRooms)
	rooms.Get("/stats", middleware.RequireRole(models.RoleAdmin), h.controller.GetStats)
	rooms.Get("/:id", h.controller.GetRoom)

	rooms.Post("/", middleware.RequireRole(models.RoleAdmin), validation.Apply(createRoomRules...), h.controller.CreateRoom)
	rooms.Put("/:id", middleware.RequireRole(models.RoleAdmin), validation.Apply(updateRoomRules...), h.controller.UpdateRoom)
	rooms.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.controller.DeleteRoom)
}
