package strategy

import (
	"encoding/json"

	img "github.com/dreamcanvas/dream-api/common/image"
	"github.com/dreamcanvas/dream-api/relay/model"
)

type imageEnvelope struct {
	Image string `json:"image"`
}

// decodeBase64Envelope interprets the raw engine result as a JSON envelope
// carrying a base64 image. Shared by the fast and multipart contracts.
func decodeBase64Envelope(raw []byte) ([]byte, *model.ErrorWithStatusCode) {
	var envelope imageEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, model.ErrUpstreamParse(err.Error())
	}
	if envelope.Image == "" {
		return nil, model.ErrUpstreamFormat()
	}
	data, err := img.FromBase64(envelope.Image)
	if err != nil {
		return nil, model.ErrUpstreamDecode(err.Error())
	}
	return data, nil
}
