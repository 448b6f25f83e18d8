package scene

import (
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/spaghettifunk/gxmath/engine/core"
	"github.com/spaghettifunk/gxmath/engine/math"
)

/**
 * @brief A set of boxes seen through a single camera. Scenes are usually
 * described in TOML:
 *
 *   [camera]
 *   position = [0.0, 2.0, 10.0]
 *   target = [0.0, 0.0, 0.0]
 *   fov = 60.0
 *   near = 0.1
 *   far = 100.0
 *   width = 800
 *   height = 600
 *
 *   [[objects]]
 *   id = "crate"
 *   min = [-1.0, -1.0, -1.0]
 *   max = [1.0, 1.0, 1.0]
 *   position = [2.0, 0.0, 0.0]
 */
type Scene struct {
	Camera  Camera   `toml:"camera"`
	Objects []Object `toml:"objects"`
}

/**
 * @brief An axis aligned box in object space placed in the world by a
 * position, an axis-angle rotation and a scale.
 */
type Object struct {
	ID string `toml:"id"`
	/** @brief The object space bounds. */
	Min [3]float32 `toml:"min"`
	Max [3]float32 `toml:"max"`
	/** @brief The world position of the object origin. */
	Position [3]float32 `toml:"position"`
	/** @brief The rotation axis, a zero axis means no rotation. */
	Axis [3]float32 `toml:"axis"`
	/** @brief The rotation angle in degrees. */
	Angle float32 `toml:"angle"`
	/** @brief The scale, zero components are replaced by 1. */
	Scale [3]float32 `toml:"scale"`
}

// Parse decodes and validates a TOML scene description.
func Parse(data []byte) (*Scene, error) {
	s := &Scene{}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, &decodeError{cause: err}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// decodeError is an ErrInvalidScene that keeps the TOML error, and with it
// the decode position, in the chain.
type decodeError struct {
	cause error
}

func (e *decodeError) Error() string {
	return core.ErrInvalidScene.Error() + ": " + e.cause.Error()
}

func (e *decodeError) Unwrap() error {
	return e.cause
}

func (e *decodeError) Is(target error) bool {
	return target == core.ErrInvalidScene
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load scene %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load scene %s", path)
	}
	core.LogDebug("scene %s loaded with %d objects", path, len(s.Objects))
	return s, nil
}

/**
 * @brief Checks the scene and fills in defaults: missing object IDs get a
 * random UUID, zero scales become 1 and a zero camera up becomes +Y.
 * Objects may be flat (min == max on an axis), such as a floor quad.
 */
func (s *Scene) Validate() error {
	if err := s.Camera.validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(s.Objects))
	for i := range s.Objects {
		o := &s.Objects[i]
		if o.ID == "" {
			o.ID = uuid.New().String()
		}
		if _, ok := seen[o.ID]; ok {
			return errors.Wrapf(core.ErrInvalidScene, "object %q is declared twice", o.ID)
		}
		seen[o.ID] = struct{}{}

		for axis := 0; axis < 3; axis++ {
			if o.Min[axis] > o.Max[axis] {
				return errors.Wrapf(core.ErrInvalidScene, "object %q: min %v is above max %v", o.ID, o.Min, o.Max)
			}
			if o.Scale[axis] == 0 {
				o.Scale[axis] = 1
			}
		}
	}
	return nil
}

// Object returns the object with the given ID.
func (s *Scene) Object(id string) (Object, bool) {
	for _, o := range s.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return Object{}, false
}

func vec3(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

// Transform builds the object to world transform.
func (o Object) Transform() *math.Transform {
	rotation := math.NewQuatIdentity()
	axis := vec3(o.Axis)
	if axis.SquaredLength() > 0 {
		rotation = math.NewQuatFromAxisAngle(axis.Normalized(), math.DegToRad(o.Angle))
	}
	return math.NewTransformFrom(vec3(o.Position), rotation, vec3(o.Scale))
}

// LocalBounds is the object space box.
func (o Object) LocalBounds() math.AABB {
	return math.NewAABBFromExtents(math.Extents3D{Min: vec3(o.Min), Max: vec3(o.Max)})
}

// WorldBounds is the tight world box around the transformed corners.
func (o Object) WorldBounds() math.AABB {
	return o.LocalBounds().Transformed(o.Transform().GetWorld())
}

// WorldCorners are the 8 corners of the object box in world space, in
// math.AABB.Corners order.
func (o Object) WorldCorners() [8]math.Vec3 {
	world := o.Transform().GetWorld()
	corners := o.LocalBounds().Corners()
	for i := range corners {
		corners[i] = world.MultiplyAsPoint(corners[i])
	}
	return corners
}
