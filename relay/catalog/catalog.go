package catalog

// Model is one selectable model. Key is the provider-internal identifier
// passed to the engine; Group selects the normalization/decoding strategy.
type Model struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Key         string `json:"key"`
	Group       string `json:"group"`
	Disabled    bool   `json:"disabled"`
}

// ModelGroup is a provider family sharing one request/response contract.
type ModelGroup struct {
	Id     string  `json:"id"`
	Name   string  `json:"name"`
	Image  string  `json:"image,omitempty"`
	Models []Model `json:"models"`
}

// Groups returns the full catalog, disabled entries included. The client
// is responsible for graying disabled models out.
func Groups() []ModelGroup {
	return availableModels
}

// Prompts returns the example prompt list.
func Prompts() []string {
	return randomPrompts
}

// Resolve finds a model by its public id. Linear scan across all groups,
// first exact match wins; ids are unique by construction.
func Resolve(id string) (*Model, bool) {
	for i := range availableModels {
		for j := range availableModels[i].Models {
			if availableModels[i].Models[j].Id == id {
				return &availableModels[i].Models[j], true
			}
		}
	}
	return nil, false
}
