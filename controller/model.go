package controller

import (
	"net/http"

	"github.com/dreamcanvas/dream-api/relay/catalog"
	"github.com/gin-gonic/gin"
)

// ListModels returns the full catalog, disabled entries included; the
// client grays them out.
func ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Groups())
}

func ListPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Prompts())
}
