package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNextOffset(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		elapsedMs float64
		speed     float64
		halfWidth float64
		want      float64
	}{
		{"below frame threshold", 10, 16, 30, 1000, 10},
		{"one frame at default speed", 0, 32, 30, 1000, 1},
		{"speed 60 over 160ms", 5, 160, 60, 1000, 15},
		{"reaches half width exactly", 998, 32, 60, 1000, 0},
		{"overshoots half width", 999, 48, 60, 1000, 0},
		{"just below half width", 997, 32, 60, 1000, 999},
		{"no scrollable width", 10, 100, 30, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextOffset(tt.current, tt.elapsedMs, tt.speed, tt.halfWidth))
		})
	}
}

func TestNextOffset_NeverNegativeOrRunaway(t *testing.T) {
	offset := 0.0
	half := 300.0
	for i := range 10_000 {
		offset = NextOffset(offset, 17+float64(i%40), 40, half)
		if offset < 0 || offset >= half {
			t.Fatalf("offset %v out of [0, %v) at step %d", offset, half, i)
		}
	}
}

func TestDuplicate(t *testing.T) {
	got := Duplicate([]string{"a", "b", "c"})
	if diff := cmp.Diff([]string{"a", "b", "c", "a", "b", "c"}, got); diff != "" {
		t.Errorf("Duplicate mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, Duplicate[string](nil))
}

func TestDuplicate_DoesNotAlias(t *testing.T) {
	in := []int{1, 2}
	out := Duplicate(in)
	out[0] = 9
	assert.Equal(t, []int{1, 2}, in)
}

func TestHalfWidth(t *testing.T) {
	assert.Equal(t, 1200.0, HalfWidth(4, 300))
	assert.Zero(t, HalfWidth(0, 300))
	assert.Zero(t, HalfWidth(4, 0))
}
