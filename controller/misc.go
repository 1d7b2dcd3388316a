package controller

import (
	"net/http"

	"github.com/dreamcanvas/dream-api/common"
	"github.com/dreamcanvas/dream-api/common/config"
	"github.com/gin-gonic/gin"
)

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":           common.Version,
			"start_time":        common.StartTime,
			"system_name":       config.SystemName,
			"server_address":    config.ServerAddress,
			"password_required": config.PasswordRequired(),
		},
	})
}

// GetConfig is the client bootstrap: whether the access gate is enabled.
func GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"isPasswordRequired": config.PasswordRequired(),
	})
}
