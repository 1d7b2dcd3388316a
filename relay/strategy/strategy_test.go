package strategy

import (
	"testing"
)

func TestKindByGroup(t *testing.T) {
	tests := []struct {
		group string
		want  Kind
	}{
		{"black-forest-labs", KindFast},
		{"leonardo", KindMultipart},
		{"stabilityai", KindDefault},
		{"bytedance", KindDefault},
		{"lykon", KindDefault},
		{"runwayml", KindDefault},
		{"some-future-provider", KindDefault},
		{"", KindDefault},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			if got := KindByGroup(tt.group); got != tt.want {
				t.Errorf("KindByGroup(%q) = %v, want %v", tt.group, got, tt.want)
			}
		})
	}
}

func TestForGroupNeverNil(t *testing.T) {
	for _, group := range []string{"black-forest-labs", "leonardo", "stabilityai", "unknown"} {
		if ForGroup(group) == nil {
			t.Errorf("ForGroup(%q) returned nil", group)
		}
	}
}
