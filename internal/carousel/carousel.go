// Package carousel implements the seamless horizontal loop used by the slide
// sections. The slide list is rendered twice in a row; the track advances at
// a constant speed and jumps back to zero once the first copy has scrolled
// out, which is visually identical to the start of the second copy.
package carousel

// DefaultSpeed is the speed used when none is configured. Speeds are
// expressed as distance per 60 frame intervals.
const DefaultSpeed = 30.0

// MinFrameMs is the minimum elapsed time between two advances, capping the
// loop at roughly 60 updates per second.
const MinFrameMs = 16.0

// NextOffset returns the track offset after elapsedMs milliseconds.
//
// Nothing moves until more than MinFrameMs has elapsed. The offset then
// advances by speed/60 per 16ms and resets to 0 as soon as it reaches
// halfWidth. A non-positive halfWidth means there is nothing to scroll.
func NextOffset(current, elapsedMs, speed, halfWidth float64) float64 {
	if elapsedMs <= MinFrameMs || halfWidth <= 0 {
		return current
	}
	next := current + speed*elapsedMs/(60*MinFrameMs)
	if next >= halfWidth {
		return 0
	}
	return next
}

// Duplicate returns slides followed by a second copy of slides.
func Duplicate[T any](slides []T) []T {
	out := make([]T, 0, 2*len(slides))
	out = append(out, slides...)
	return append(out, slides...)
}

// HalfWidth is the width of one copy of n slides.
func HalfWidth(n int, slideWidth float64) float64 {
	if n <= 0 || slideWidth <= 0 {
		return 0
	}
	return float64(n) * slideWidth
}
