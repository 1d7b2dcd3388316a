package router

import (
	"github.com/dreamcanvas/dream-api/controller"
	"github.com/dreamcanvas/dream-api/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	apiRouter.Use(middleware.CORS())
	{
		// generate streams binary image data, keep it out of gzip
		apiRouter.GET("/status", gzip.Gzip(gzip.DefaultCompression), controller.GetStatus)
		apiRouter.GET("/config", gzip.Gzip(gzip.DefaultCompression), controller.GetConfig)
		apiRouter.GET("/models", gzip.Gzip(gzip.DefaultCompression), controller.ListModels)
		apiRouter.GET("/prompts", gzip.Gzip(gzip.DefaultCompression), controller.ListPrompts)
		apiRouter.POST("/generate", middleware.RelayPanicRecover(), middleware.PasswordAuth(), controller.RelayImageGenerate)
	}
}
