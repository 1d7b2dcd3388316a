package strategy

import (
	"github.com/dreamcanvas/dream-api/relay/model"
)

// FastStrategy covers the low-latency low-step variants. The provider only
// accepts a prompt and a step count clamped into [4, 8]; everything else is
// dropped. The response is a JSON envelope with a base64 image.
type FastStrategy struct{}

func (s *FastStrategy) PrepareInputs(request *model.GenerateRequest) (*NormalizedInput, error) {
	steps := intOrDefault(request.NumSteps, 6)
	if steps >= 8 {
		steps = 8
	} else if steps <= 4 {
		steps = 4
	}
	return &NormalizedInput{
		Fields: map[string]any{
			"prompt": promptOrDefault(request.Prompt),
			"steps":  steps,
		},
	}, nil
}

func (s *FastStrategy) DecodeResponse(raw []byte) ([]byte, *model.ErrorWithStatusCode) {
	return decodeBase64Envelope(raw)
}
