package scene

import "github.com/spaghettifunk/gxmath/engine/math"

// Visibility is the frustum test result of one object.
type Visibility struct {
	ID      string
	Visible bool
	Bounds  math.AABB
}

/**
 * @brief Tests the world bounds of every object against the camera frustum.
 * Results keep the order of Objects.
 */
func (s *Scene) Cull() []Visibility {
	planes := s.Camera.ClipPlanes()
	out := make([]Visibility, len(s.Objects))
	forEach(len(s.Objects), func(i int) {
		bounds := s.Objects[i].WorldBounds()
		out[i] = Visibility{
			ID:      s.Objects[i].ID,
			Visible: planes.IsVisible(bounds),
			Bounds:  bounds,
		}
	})
	return out
}

// VisibleCount counts the visible entries.
func VisibleCount(visibility []Visibility) int {
	count := 0
	for _, v := range visibility {
		if v.Visible {
			count++
		}
	}
	return count
}
