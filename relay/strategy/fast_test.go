package strategy

import (
	"testing"

	"github.com/dreamcanvas/dream-api/relay/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastStrategyStepClamp(t *testing.T) {
	tests := []struct {
		steps int
		want  int
	}{
		{1, 4},
		{2, 4},
		{3, 4},
		{4, 4},
		{5, 5},
		{6, 6},
		{7, 7},
		{8, 8},
		{9, 8},
		{20, 8},
	}
	s := &FastStrategy{}
	for _, tt := range tests {
		input, err := s.PrepareInputs(&model.GenerateRequest{NumSteps: intPtr(tt.steps)})
		require.NoError(t, err)
		if input.Fields["steps"] != tt.want {
			t.Errorf("steps %d clamped to %v, want %d", tt.steps, input.Fields["steps"], tt.want)
		}
	}
}

func TestFastStrategyDefaults(t *testing.T) {
	s := &FastStrategy{}
	input, err := s.PrepareInputs(&model.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "cyberpunk cat", input.Fields["prompt"])
	assert.Equal(t, 6, input.Fields["steps"])

	// Zero steps is falsy, replaced by the default before clamping
	input, err = s.PrepareInputs(&model.GenerateRequest{NumSteps: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 6, input.Fields["steps"])
}

func TestFastStrategyDropsOtherFields(t *testing.T) {
	s := &FastStrategy{}
	input, err := s.PrepareInputs(&model.GenerateRequest{
		Prompt:         strPtr("a"),
		NegativePrompt: "ugly",
		Width:          intPtr(512),
		Height:         intPtr(512),
		Strength:       floatPtr(0.5),
		Guidance:       floatPtr(7),
		Seed:           intPtr(42),
	})
	require.NoError(t, err)
	assert.Len(t, input.Fields, 2)
	assert.Contains(t, input.Fields, "prompt")
	assert.Contains(t, input.Fields, "steps")
}
