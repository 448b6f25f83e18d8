package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIntersection2D(t *testing.T) {
	tests := []struct {
		name         string
		a0, a1       Vec2
		b0, b1       Vec2
		relationship LineRelationship
		point        Vec2
	}{
		{
			name: "crossing diagonals",
			a0:   Vec2{0, 0}, a1: Vec2{2, 2},
			b0: Vec2{0, 2}, b1: Vec2{2, 0},
			relationship: LineIntersection,
			point:        Vec2{1, 1},
		},
		{
			name: "lines intersect outside the segments",
			a0:   Vec2{0, 0}, a1: Vec2{1, 0},
			b0: Vec2{5, 1}, b1: Vec2{5, 2},
			relationship: LineIntersection,
			point:        Vec2{5, 0},
		},
		{
			name: "collinear",
			a0:   Vec2{0, 0}, a1: Vec2{1, 0},
			b0: Vec2{2, 0}, b1: Vec2{5, 0},
			relationship: LineOverlap,
			point:        Vec2{0, 0},
		},
		{
			name: "collinear sharing the first point",
			a0:   Vec2{0, 0}, a1: Vec2{1, 0},
			b0: Vec2{0, 0}, b1: Vec2{-3, 0},
			relationship: LineOverlap,
			point:        Vec2{0, 0},
		},
		{
			name: "parallel",
			a0:   Vec2{0, 0}, a1: Vec2{1, 0},
			b0: Vec2{0, 1}, b1: Vec2{1, 1},
			relationship: LineNoIntersection,
			point:        Vec2{K_FLOAT_MAX, K_FLOAT_MAX},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, relationship := LineIntersection2D(tt.a0, tt.a1, tt.b0, tt.b1)
			assert.Equal(t, tt.relationship, relationship, relationship.String())
			assert.InDelta(t, tt.point.X, point.X, testEpsilon)
			assert.InDelta(t, tt.point.Y, point.Y, testEpsilon)
		})
	}
}
