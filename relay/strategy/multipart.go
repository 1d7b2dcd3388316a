package strategy

import (
	"bytes"
	"mime/multipart"
	"strconv"

	"github.com/dreamcanvas/dream-api/relay/model"
)

// MultipartStrategy covers providers that require multipart form
// submission. Optional fields are omitted entirely when falsy instead of
// being substituted with defaults; the seed is the one exception and is
// always sent, keeping an explicit 0 if the caller supplied one.
type MultipartStrategy struct{}

func (s *MultipartStrategy) PrepareInputs(request *model.GenerateRequest) (*NormalizedInput, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("prompt", promptOrDefault(request.Prompt)); err != nil {
		return nil, err
	}
	if request.NegativePrompt != "" {
		if err := writer.WriteField("negative_prompt", request.NegativePrompt); err != nil {
			return nil, err
		}
	}
	if err := writeIntIfTruthy(writer, "width", request.Width); err != nil {
		return nil, err
	}
	if err := writeIntIfTruthy(writer, "height", request.Height); err != nil {
		return nil, err
	}
	if err := writeIntIfTruthy(writer, "num_steps", request.NumSteps); err != nil {
		return nil, err
	}
	if request.Guidance != nil && *request.Guidance != 0 {
		if err := writer.WriteField("guidance", strconv.FormatFloat(*request.Guidance, 'f', -1, 64)); err != nil {
			return nil, err
		}
	}
	seed := randomSeed()
	if request.Seed != nil {
		seed = *request.Seed
	}
	if err := writer.WriteField("seed", strconv.Itoa(seed)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return &NormalizedInput{
		Body:        buf.Bytes(),
		ContentType: writer.FormDataContentType(),
	}, nil
}

func (s *MultipartStrategy) DecodeResponse(raw []byte) ([]byte, *model.ErrorWithStatusCode) {
	return decodeBase64Envelope(raw)
}

func writeIntIfTruthy(writer *multipart.Writer, field string, v *int) error {
	if v == nil || *v == 0 {
		return nil
	}
	return writer.WriteField(field, strconv.Itoa(*v))
}
