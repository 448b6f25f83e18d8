package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gxmath/engine/core"
	"github.com/spaghettifunk/gxmath/engine/math"
)

const sceneDelta = 1e-3

const cameraSection = `
[camera]
position = [0.0, 0.0, 5.0]
target = [0.0, 0.0, 0.0]
fov = 60.0
near = 0.1
far = 100.0
width = 800
height = 600
`

func testCamera() Camera {
	return Camera{
		Position: [3]float32{0, 0, 5},
		Target:   [3]float32{0, 0, 0},
		Up:       [3]float32{0, 1, 0},
		FOV:      60,
		Near:     0.1,
		Far:      100,
		Width:    800,
		Height:   600,
	}
}

func unitBox(id string, position [3]float32) Object {
	return Object{
		ID:       id,
		Min:      [3]float32{-1, -1, -1},
		Max:      [3]float32{1, 1, 1},
		Position: position,
		Scale:    [3]float32{1, 1, 1},
	}
}

func assertVec3(t *testing.T, expected, actual math.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, sceneDelta, "x: expected %v, got %v", expected, actual)
	assert.InDelta(t, expected.Y, actual.Y, sceneDelta, "y: expected %v, got %v", expected, actual)
	assert.InDelta(t, expected.Z, actual.Z, sceneDelta, "z: expected %v, got %v", expected, actual)
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(cameraSection + `
[[objects]]
id = "crate"
min = [-1.0, -1.0, -1.0]
max = [1.0, 1.0, 1.0]
position = [2.0, 0.0, 0.0]
scale = [2.0, 0.0, 1.0]

[[objects]]
min = [0.0, 0.0, 0.0]
max = [0.5, 0.5, 0.5]
`))
	require.NoError(t, err)
	require.Len(t, s.Objects, 2)

	assert.Equal(t, [3]float32{0, 1, 0}, s.Camera.Up, "missing up defaults to +Y")
	assert.Equal(t, uint16(800), s.Camera.Width)

	crate, ok := s.Object("crate")
	require.True(t, ok)
	assert.Equal(t, [3]float32{2, 1, 1}, crate.Scale, "zero scale components become 1")
	assert.Equal(t, [3]float32{2, 0, 0}, crate.Position)

	generated := s.Objects[1].ID
	_, err = uuid.Parse(generated)
	assert.NoError(t, err, "missing id is replaced by a uuid, got %q", generated)
	assert.Equal(t, [3]float32{1, 1, 1}, s.Objects[1].Scale)

	_, ok = s.Object("missing")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	box := `
[[objects]]
id = "a"
min = [-1.0, -1.0, -1.0]
max = [1.0, 1.0, 1.0]
`
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed toml", input: "[camera\nfov = 60.0"},
		{name: "empty document", input: ""},
		{
			name: "zero viewport",
			input: `
[camera]
target = [0.0, 0.0, -1.0]
fov = 60.0
near = 0.1
far = 100.0
`,
		},
		{
			name: "fov out of range",
			input: `
[camera]
target = [0.0, 0.0, -1.0]
fov = 180.0
near = 0.1
far = 100.0
width = 10
height = 10
`,
		},
		{
			name: "far before near",
			input: `
[camera]
target = [0.0, 0.0, -1.0]
fov = 60.0
near = 10.0
far = 1.0
width = 10
height = 10
`,
		},
		{
			name: "target on the camera",
			input: `
[camera]
fov = 60.0
near = 0.1
far = 100.0
width = 10
height = 10
`,
		},
		{
			name: "up parallel to the view direction",
			input: `
[camera]
target = [0.0, -1.0, 0.0]
up = [0.0, 2.0, 0.0]
fov = 60.0
near = 0.1
far = 100.0
width = 10
height = 10
`,
		},
		{name: "duplicate object", input: cameraSection + box + box},
		{
			name: "inverted bounds",
			input: cameraSection + `
[[objects]]
min = [1.0, 0.0, 0.0]
max = [0.0, 1.0, 1.0]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidScene)
		})
	}
}

func TestParseKeepsDecodePosition(t *testing.T) {
	_, err := Parse([]byte(cameraSection + "\n[[objects]]\nid = @\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidScene)

	var decodeErr *toml.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	row, _ := decodeErr.Position()
	assert.Equal(t, 12, row)

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[camera\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, core.ErrInvalidScene)
	assert.ErrorAs(t, err, &decodeErr)
}

func TestParseFlatObject(t *testing.T) {
	s, err := Parse([]byte(cameraSection + `
[[objects]]
id = "floor"
min = [-50.0, -2.0, -50.0]
max = [50.0, -2.0, 10.0]
`))
	require.NoError(t, err)
	floor, ok := s.Object("floor")
	require.True(t, ok)
	assert.Zero(t, floor.WorldBounds().Height())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(cameraSection), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, s.Objects)
	assert.Equal(t, float32(60), s.Camera.FOV)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestObjectWorldBounds(t *testing.T) {
	o := unitBox("box", [3]float32{2, 0, 0})
	o.Axis = [3]float32{0, 0, 3}
	o.Angle = 90
	o.Scale = [3]float32{2, 1, 1}

	local := o.LocalBounds()
	assert.Equal(t, math.AABBBox, local.State())

	world := o.WorldBounds()
	assertVec3(t, math.NewVec3(1, -2, -1), world.Min)
	assertVec3(t, math.NewVec3(3, 2, 1), world.Max)

	for _, corner := range o.WorldCorners() {
		assert.True(t, world.IsOverlapedPoint(corner), "corner %v outside %v", corner, world)
	}
}

func TestObjectTransformWithoutAxis(t *testing.T) {
	o := unitBox("box", [3]float32{0, 1, 0})
	o.Angle = 45

	world := o.Transform().GetWorld()
	assertVec3(t, math.NewVec3(1, 2, 0), world.MultiplyAsPoint(math.NewVec3(1, 1, 0)))
}
