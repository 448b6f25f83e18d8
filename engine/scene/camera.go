package scene

import (
	"github.com/pkg/errors"

	"github.com/spaghettifunk/gxmath/engine/core"
	"github.com/spaghettifunk/gxmath/engine/math"
)

/**
 * @brief A perspective camera looking from Position at Target.
 */
type Camera struct {
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
	/** @brief The up direction, +Y when omitted. */
	Up [3]float32 `toml:"up"`
	/** @brief The vertical field of view in degrees. */
	FOV  float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
	/** @brief The viewport size in pixels. */
	Width  uint16 `toml:"width"`
	Height uint16 `toml:"height"`
}

func (c *Camera) validate() error {
	if c.Width == 0 || c.Height == 0 {
		return errors.Wrapf(core.ErrInvalidScene, "camera viewport %dx%d", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return errors.Wrapf(core.ErrInvalidScene, "camera fov %v must be in (0, 180)", c.FOV)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return errors.Wrapf(core.ErrInvalidScene, "camera clip range near=%v far=%v", c.Near, c.Far)
	}

	if c.Up == [3]float32{} {
		c.Up = [3]float32{0, 1, 0}
	}

	direction := vec3(c.Target).Sub(vec3(c.Position))
	if direction.SquaredLength() == 0 {
		return errors.Wrapf(core.ErrInvalidScene, "camera target equals its position %v", c.Position)
	}
	if direction.Cross(vec3(c.Up)).SquaredLength() == 0 {
		return errors.Wrapf(core.ErrInvalidScene, "camera up %v is parallel to the view direction", c.Up)
	}
	return nil
}

func (c Camera) Eye() math.Vec3 {
	return vec3(c.Position)
}

func (c Camera) AspectRatio() float32 {
	return float32(c.Width) / float32(c.Height)
}

func (c Camera) View() math.Mat4 {
	return math.NewMat4LookAt(vec3(c.Position), vec3(c.Target), vec3(c.Up))
}

func (c Camera) Projection() math.Mat4 {
	return math.NewMat4Perspective(math.DegToRad(c.FOV), c.AspectRatio(), c.Near, c.Far)
}

// ViewProjection maps world space to clip space for row vectors.
func (c Camera) ViewProjection() math.Mat4 {
	return c.View().Mul(c.Projection())
}

func (c Camera) ClipPlanes() math.ProjectionClipPlanes {
	return math.NewProjectionClipPlanes(c.ViewProjection())
}

func (c Camera) Forward() math.Vec3 {
	return c.View().Forward()
}

func (c Camera) Right() math.Vec3 {
	return c.View().Right()
}

// MoveForward slides both the position and the target along the view axis.
func (c *Camera) MoveForward(amount float32) {
	c.translate(c.Forward().MulScalar(amount))
}

func (c *Camera) MoveRight(amount float32) {
	c.translate(c.Right().MulScalar(amount))
}

func (c *Camera) translate(offset math.Vec3) {
	position := vec3(c.Position).Add(offset)
	target := vec3(c.Target).Add(offset)
	c.Position = [3]float32{position.X, position.Y, position.Z}
	c.Target = [3]float32{target.X, target.Y, target.Z}
}
