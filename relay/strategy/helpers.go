package strategy

import "math/rand"

const defaultPrompt = "cyberpunk cat"

const seedRange = 1024 * 1024

func randomSeed() int {
	return rand.Intn(seedRange)
}

func promptOrDefault(p *string) string {
	if p == nil || *p == "" {
		return defaultPrompt
	}
	return *p
}

// Zero counts as absent on purpose: the original contract treats every
// falsy numeric as "not provided", so guidance 0 yields the default too.
func intOrDefault(v *int, def int) int {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

func floatOrDefault(v *float64, def float64) float64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}
