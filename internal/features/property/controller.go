package property

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type PropertyController struct {
	PropertyService PropertyService
	Logger          *zap.Logger
}

func NewPropertyController(propertyService PropertyService, logger *zap.Logger) *PropertyController {
	return &PropertyController{
		PropertyService: propertyService,
		Logger:          logger,
	}
}

// GetProperty godoc
// @Summary      Property profile
// @Tags         property
// @Produce      json
// @Success      200 {object} Property
// @Failure      404 {object} map[string]string
// @Router       /api/property [get]
func (ctrl *PropertyController) GetProperty(c *fiber.Ctx) error {
	property, err := ctrl.PropertyService.GetProperty(c.Context())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Property profile not found",
			})
		}
		ctrl.Logger.Error("failed to get property profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(property)
}

// UpdateProperty godoc
// @Summary      Update property profile
// @Tags         property
// @Accept       json
// @Produce      json
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200 {object} map[string]string
// @Router       /api/property [put]
func (ctrl *PropertyController) UpdateProperty(c *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.PropertyService.UpdateProperty(c.Context(), updates); err != nil {
		ctrl.Logger.Error("failed to update property profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Property updated successfully",
	})
}
