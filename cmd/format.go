package cmd

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/spaghettifunk/gxmath/engine/math"
)

func formatVec3(v math.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func formatF32Vec3(v f32.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}
