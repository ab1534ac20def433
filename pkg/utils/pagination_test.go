package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int64
		wantLimit int64
	}{
		{"defaults", "", 1, 10},
		{"explicit values", "?page=3&limit=25", 3, 25},
		{"zero page clamps to first", "?page=0", 1, 10},
		{"negative page clamps to first", "?page=-2", 1, 10},
		{"zero limit uses default", "?limit=0", 1, 10},
		{"garbage falls back", "?page=abc&limit=xyz", 1, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var page, limit int64
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				page, limit = ParsePagination(c)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/"+tc.query, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}
