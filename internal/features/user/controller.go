package user

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

type UserController struct {
	UserService UserService
	Logger      *zap.Logger
}

func NewUserController(userService UserService, logger *zap.Logger) *UserController {
	return &UserController{
		UserService: userService,
		Logger:      logger,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// GetProfile godoc
// @Summary      Authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200 {object} models.User
// @Router       /api/users/profile [get]
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	id, errResp := callerID(c)
	if errResp != nil {
		return errResp(c)
	}

	user, err := ctrl.UserService.GetProfile(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		ctrl.Logger.Error("failed to get profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(user)
}

// UpdateProfile godoc
// @Summary      Update profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body map[string]interface{} true "Fields to update"
// @Success      200 {object} map[string]string
// @Router       /api/users/profile [put]
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	id, errResp := callerID(c)
	if errResp != nil {
		return errResp(c)
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.UserService.UpdateProfile(c.Context(), id, updates); err != nil {
		ctrl.Logger.Error("failed to update profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body ChangePasswordRequest true "Current and new password"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/users/change-password [put]
func (ctrl *UserController) ChangePassword(c *fiber.Ctx) error {
	id, errResp := callerID(c)
	if errResp != nil {
		return errResp(c)
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := ctrl.UserService.ChangePassword(c.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Current password is incorrect",
			})
		}
		ctrl.Logger.Error("failed to change password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Password changed successfully",
	})
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        role query string false "Filter by role, 'all' for none"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200 {object} models.Paginated
// @Router       /api/users [get]
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c)

	users, total, err := ctrl.UserService.ListUsers(c.Context(), c.Query("role"), page, limit)
	if err != nil {
		ctrl.Logger.Error("failed to list users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	if users == nil {
		users = []models.User{}
	}

	return c.JSON(models.NewPaginated(users, total, page, limit))
}

func callerID(c *fiber.Ctx) (primitive.ObjectID, func(*fiber.Ctx) error) {
	claims, ok := middleware.Claims(c)
	if !ok {
		return primitive.NilObjectID, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}
	}
	return id, nil
}
