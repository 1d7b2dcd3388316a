package middleware

import (
	"net/http"

	"github.com/dreamcanvas/dream-api/common"
	"github.com/dreamcanvas/dream-api/common/config"
	"github.com/dreamcanvas/dream-api/common/logger"
	"github.com/gin-gonic/gin"
)

type accessResult int

const (
	accessAllowed accessResult = iota
	accessUnauthorized
	accessForbidden
)

// checkAccess validates the shared-secret password against the allow-list.
// An empty allow-list disables the gate entirely. Comparison is exact and
// case-sensitive, no hashing.
func checkAccess(suppliedPassword string, allowList []string) accessResult {
	if len(allowList) == 0 {
		return accessAllowed
	}
	if suppliedPassword == "" {
		return accessUnauthorized
	}
	for _, p := range allowList {
		if p == suppliedPassword {
			return accessAllowed
		}
	}
	return accessForbidden
}

// PasswordAuth gates the generate endpoint. The password travels in the JSON
// body, so the body is read reusably and reset for the handler behind it.
func PasswordAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.PasswordRequired() {
			c.Next()
			return
		}
		var body struct {
			Password string `json:"password"`
		}
		// An unreadable body counts as no password supplied
		_ = common.UnmarshalBodyReusable(c, &body)
		switch checkAccess(body.Password, config.Passwords) {
		case accessUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Password is required",
			})
			c.Abort()
			return
		case accessForbidden:
			logger.Warn(c.Request.Context(), "rejected request with incorrect password")
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Incorrect password",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
