package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/gxmath/engine/scene"
)

var pickExample = `# find the object under the centre of an 800x600 viewport
gxmath pick --scene=scene.toml --x=400 --y=300
`

type PickOpts struct {
	ScenePath string
	X, Y      uint16

	Out io.Writer
}

func NewCmdPick(out io.Writer) *cobra.Command {
	opts := &PickOpts{Out: out}

	cmd := &cobra.Command{
		Use:     "pick --scene=scene.toml --x=X --y=Y",
		Short:   "Casts a ray through a viewport pixel and reports the closest object hit",
		Example: pickExample,
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Run()
		},
	}

	cmd.Flags().StringVar(&opts.ScenePath, "scene", "", "path to the TOML scene.")
	cmd.Flags().Uint16Var(&opts.X, "x", 0, "pixel column, 0 is the left edge.")
	cmd.Flags().Uint16Var(&opts.Y, "y", 0, "pixel row, 0 is the bottom edge.")
	return cmd
}

func (o *PickOpts) Validate() error {
	if o.ScenePath == "" {
		return errors.New("a scene must be provided with --scene")
	}
	return nil
}

func (o *PickOpts) Run() error {
	s, err := scene.Load(o.ScenePath)
	if err != nil {
		return err
	}
	if o.X >= s.Camera.Width || o.Y >= s.Camera.Height {
		return errors.Errorf("pixel (%d, %d) is outside the %dx%d viewport", o.X, o.Y, s.Camera.Width, s.Camera.Height)
	}

	hit, ok := s.Pick(o.X, o.Y)
	if !ok {
		fmt.Fprintln(o.Out, "no hit")
		return nil
	}
	fmt.Fprintf(o.Out, "id          %s\n", hit.ID)
	fmt.Fprintf(o.Out, "distance    %.4f\n", hit.T)
	fmt.Fprintf(o.Out, "point       %s\n", formatVec3(hit.Point))
	fmt.Fprintf(o.Out, "barycentric %s\n", formatVec3(hit.Barycentric))
	return nil
}
