package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParsePagination reads 1-based page/limit query params with the standard
// defaults (page=1, limit=10).
func ParsePagination(c *fiber.Ctx) (page, limit int64) {
	page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
