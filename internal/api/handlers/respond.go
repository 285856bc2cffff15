package handlers

import (
	"strconv"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

// fail writes a taxonomy error using the standard envelope. Errors
// raised by the services are passed through unmodified.
func fail(c *gin.Context, err error) {
	e := apierr.From(err, gin.Mode() != gin.ReleaseMode)
	c.AbortWithStatusJSON(e.Status, e.Envelope())
}

// parseID reads a numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		fail(c, apierr.Validation("Invalid "+name))
		return 0, false
	}
	return uint(id), true
}

// pageParams reads the page/per_page query parameters.
func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	return page, perPage
}

// paginated wraps one page of items in the list envelope.
func paginated(items any, pagination *services.Pagination) gin.H {
	return gin.H{
		"items":      items,
		"pagination": pagination,
	}
}
