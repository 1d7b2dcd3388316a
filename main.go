package main

import (
	"embed"
	"fmt"
	"os"
	"strconv"

	"github.com/dreamcanvas/dream-api/common"
	"github.com/dreamcanvas/dream-api/common/config"
	"github.com/dreamcanvas/dream-api/common/logger"
	"github.com/dreamcanvas/dream-api/middleware"
	"github.com/dreamcanvas/dream-api/router"
	"github.com/gin-gonic/gin"
)

//go:embed web/build/*
var buildFS embed.FS

func main() {
	common.Init()
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("DreamCanvas API %s started", common.Version))
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}
	if config.PasswordRequired() {
		logger.SysLog(fmt.Sprintf("access gate enabled with %d password(s)", len(config.Passwords)))
	} else {
		logger.SysLog("access gate disabled, no PASSWORDS configured")
	}
	if config.AiAccountId == "" || config.AiApiToken == "" {
		logger.SysError("AI_ACCOUNT_ID or AI_API_TOKEN is not set, generation requests will fail")
	}

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)

	router.SetRouter(server, buildFS)

	port := os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}
	err := server.Run(":" + port)
	if err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
