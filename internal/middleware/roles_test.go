package middleware

import (
	"net/http/httptest"
	"testing"

	"go-hms/internal/common/models"
	"go-hms/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"admin in admin-only", models.RoleAdmin, []string{models.RoleAdmin}, true},
		{"staff in admin-only", models.RoleStaff, []string{models.RoleAdmin}, false},
		{"staff in admin or staff", models.RoleStaff, []string{models.RoleAdmin, models.RoleStaff}, true},
		{"tenant in admin or staff", models.RoleTenant, []string{models.RoleAdmin, models.RoleStaff}, false},
		{"empty role", "", []string{models.RoleAdmin}, false},
		{"empty allowed set", models.RoleAdmin, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.allowed))
		})
	}
}

func withClaims(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(utils.UserClaimsKey, &utils.UserClaims{UserID: "u1", Role: role})
		return c.Next()
	}
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", withClaims(models.RoleTenant), RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRolePassesAllowedRole(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", withClaims(models.RoleAdmin), RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleWithoutClaimsIsUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	app := fiber.New()
	app.Get("/", AuthMiddleware(false), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	utils.SetSecret("test-secret")
	token, err := utils.GenerateToken(primitive.NewObjectID(), models.RoleStaff, "")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", AuthMiddleware(false), func(c *fiber.Ctx) error {
		claims, ok := Claims(c)
		require.True(t, ok)
		assert.Equal(t, models.RoleStaff, claims.Role)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
