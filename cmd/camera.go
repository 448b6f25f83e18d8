package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/math/f32"

	"github.com/spaghettifunk/gxmath/engine/scene"
)

var cameraExample = `# print the camera uniforms of a scene as uploaded to the GPU
gxmath camera --scene=scene.toml
`

type CameraOpts struct {
	ScenePath string

	Out io.Writer
}

func NewCmdCamera(out io.Writer) *cobra.Command {
	opts := &CameraOpts{Out: out}

	cmd := &cobra.Command{
		Use:     "camera --scene=scene.toml",
		Short:   "Prints the camera basis and its view and projection matrices",
		Example: cameraExample,
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Run()
		},
	}

	cmd.Flags().StringVar(&opts.ScenePath, "scene", "", "path to the TOML scene.")
	return cmd
}

func (o *CameraOpts) Validate() error {
	if o.ScenePath == "" {
		return errors.New("a scene must be provided with --scene")
	}
	return nil
}

func (o *CameraOpts) Run() error {
	s, err := scene.Load(o.ScenePath)
	if err != nil {
		return err
	}
	c := s.Camera

	fmt.Fprintf(o.Out, "eye       %s\n", formatF32Vec3(c.Eye().F32()))
	fmt.Fprintf(o.Out, "forward   %s\n", formatF32Vec3(c.Forward().F32()))
	fmt.Fprintf(o.Out, "right     %s\n", formatF32Vec3(c.Right().F32()))
	fmt.Fprintf(o.Out, "aspect    %.4f\n", c.AspectRatio())

	for _, m := range []struct {
		name string
		data f32.Mat4
	}{
		{name: "view", data: c.View().F32()},
		{name: "projection", data: c.Projection().F32()},
		{name: "view-projection", data: c.ViewProjection().F32()},
	} {
		fmt.Fprintln(o.Out, m.name)
		for row := 0; row < 4; row++ {
			fmt.Fprintf(o.Out, "  %9.4f %9.4f %9.4f %9.4f\n", m.data[row*4], m.data[row*4+1], m.data[row*4+2], m.data[row*4+3])
		}
	}
	return nil
}
