package strategy

import (
	"github.com/dreamcanvas/dream-api/relay/model"
)

// DefaultStrategy covers the common scalar contract: every field defaulted
// (falsy included), response is the image byte stream itself.
type DefaultStrategy struct{}

func (s *DefaultStrategy) PrepareInputs(request *model.GenerateRequest) (*NormalizedInput, error) {
	seed := randomSeed()
	if request.Seed != nil && *request.Seed != 0 {
		seed = *request.Seed
	}
	return &NormalizedInput{
		Fields: map[string]any{
			"prompt":          promptOrDefault(request.Prompt),
			"negative_prompt": request.NegativePrompt,
			"height":          intOrDefault(request.Height, 1024),
			"width":           intOrDefault(request.Width, 1024),
			"num_steps":       intOrDefault(request.NumSteps, 20),
			"strength":        floatOrDefault(request.Strength, 0.1),
			"guidance":        floatOrDefault(request.Guidance, 7.5),
			"seed":            seed,
		},
	}, nil
}

// DecodeResponse passes the raw stream through untouched. Malformed bytes
// are the provider's responsibility.
func (s *DefaultStrategy) DecodeResponse(raw []byte) ([]byte, *model.ErrorWithStatusCode) {
	return raw, nil
}
