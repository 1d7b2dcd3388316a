package strategy

import (
	"github.com/dreamcanvas/dream-api/relay/model"
)

// Kind enumerates the provider contract families. Dispatch is closed: new
// groups get a new Kind here instead of branching inside shared logic.
type Kind int

const (
	KindDefault Kind = iota
	KindFast
	KindMultipart
)

// KindByGroup maps a catalog group tag to its contract family. Unknown
// group tags fall back to the default scalar contract.
func KindByGroup(group string) Kind {
	switch group {
	case "black-forest-labs":
		return KindFast
	case "leonardo":
		return KindMultipart
	default:
		return KindDefault
	}
}

// NormalizedInput is the provider-specific payload, built fresh per request.
// Exactly one of the two forms is populated: the scalar field map (JSON
// encoded at invocation time) or a pre-encoded multipart body with its
// declared content type.
type NormalizedInput struct {
	Fields      map[string]any
	Body        []byte
	ContentType string
}

func (n *NormalizedInput) IsMultipart() bool {
	return n.ContentType != ""
}

// Strategy is the pair of input-normalization and response-decoding
// behaviors bound to a model group.
type Strategy interface {
	PrepareInputs(request *model.GenerateRequest) (*NormalizedInput, error)
	DecodeResponse(raw []byte) ([]byte, *model.ErrorWithStatusCode)
}

func ForGroup(group string) Strategy {
	switch KindByGroup(group) {
	case KindFast:
		return &FastStrategy{}
	case KindMultipart:
		return &MultipartStrategy{}
	default:
		return &DefaultStrategy{}
	}
}
