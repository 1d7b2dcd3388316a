package router

import (
	"embed"
	"fmt"
	"os"

	"github.com/dreamcanvas/dream-api/common/logger"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetRouter(router *gin.Engine, buildFS embed.FS) {
	SetApiRouter(router)

	// Swagger UI 按需开启，文档地址来自环境变量
	swaggerURL := os.Getenv("SWAGGER_JSON_URL")
	if swaggerURL != "" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL(swaggerURL),
		))
		logger.SysLog(fmt.Sprintf("Swagger UI enabled at /swagger/index.html (doc: %s)", swaggerURL))
	}

	SetWebRouter(router, buildFS)
}
