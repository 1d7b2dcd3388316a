package controller

import (
	"net/http"

	"github.com/dreamcanvas/dream-api/common"
	"github.com/dreamcanvas/dream-api/common/config"
	img "github.com/dreamcanvas/dream-api/common/image"
	"github.com/dreamcanvas/dream-api/common/logger"
	"github.com/dreamcanvas/dream-api/relay/catalog"
	"github.com/dreamcanvas/dream-api/relay/engine"
	"github.com/dreamcanvas/dream-api/relay/model"
	"github.com/dreamcanvas/dream-api/relay/strategy"
	"github.com/gin-gonic/gin"
)

// imageEngine is swapped for a fake in tests.
var imageEngine engine.Engine = engine.NewWorkersAI()

// RelayImageGenerate drives one generation: catalog lookup, per-group input
// normalization, one synchronous engine call, per-group decode. The access
// gate has already run as middleware. Every failure branch is terminal.
func RelayImageGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	var request model.GenerateRequest
	if err := common.UnmarshalBodyReusable(c, &request); err != nil {
		abortWithError(c, model.NewErrorWithDetails(http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}
	if request.Prompt == nil || request.Model == nil {
		abortWithError(c, model.ErrMissingParam())
		return
	}

	selected, ok := catalog.Resolve(*request.Model)
	if !ok {
		abortWithError(c, model.ErrModelNotFound())
		return
	}
	if selected.Disabled {
		abortWithError(c, model.ErrModelDisabled())
		return
	}

	s := strategy.ForGroup(selected.Group)
	input, err := s.PrepareInputs(&request)
	if err != nil {
		abortWithError(c, model.ErrInference(err.Error()))
		return
	}

	logger.Infof(ctx, "generating image with %s and prompt: %.50s...", selected.Key, *request.Prompt)

	raw, err := imageEngine.Run(ctx, selected.Key, input)
	if err != nil {
		logger.Errorf(ctx, "inference call failed: %s", err.Error())
		abortWithError(c, model.ErrInference(err.Error()))
		return
	}

	data, decodeErr := s.DecodeResponse(raw)
	if decodeErr != nil {
		abortWithError(c, decodeErr)
		return
	}

	if config.DebugEnabled {
		if width, height, sizeErr := img.GetImageSize(data); sizeErr == nil {
			logger.Debugf(ctx, "decoded image %dx%d (%d bytes)", width, height, len(data))
		}
	}

	c.Data(http.StatusOK, "image/png", data)
}

func abortWithError(c *gin.Context, err *model.ErrorWithStatusCode) {
	logger.Warnf(c.Request.Context(), "request failed: %s", err.Error)
	c.JSON(err.StatusCode, err.ErrorEnvelope)
}
