package model

// GenerateRequest is the inbound, untrusted generation request. Optional
// numeric fields are pointers so "absent", "zero" and "set" stay
// distinguishable; each strategy applies its own falsy rules on top.
type GenerateRequest struct {
	Prompt         *string  `json:"prompt"`
	Model          *string  `json:"model"`
	Password       string   `json:"password,omitempty"`
	NegativePrompt string   `json:"negative_prompt,omitempty"`
	Width          *int     `json:"width,omitempty"`
	Height         *int     `json:"height,omitempty"`
	NumSteps       *int     `json:"num_steps,omitempty"`
	Strength       *float64 `json:"strength,omitempty"`
	Guidance       *float64 `json:"guidance,omitempty"`
	Seed           *int     `json:"seed,omitempty"`
}
