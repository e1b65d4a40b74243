package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePagination reads page and limit query parameters, applying the
// defaults (1, 10) and coercing both to at least 1.
func parsePagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = 10
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	return page, limit
}
