package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dreamcanvas/dream-api/common/logger"
	"github.com/gin-gonic/gin"
)

func RelayPanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.SysError(fmt.Sprintf("panic detected: %v", err))
				logger.SysError(fmt.Sprintf("stacktrace from panic: %s", string(debug.Stack())))
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal server error",
					"details": fmt.Sprintf("panic detected: %v", err),
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
