package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/gxmath/engine/scene"
)

var sampleExample = `# estimate how much of the scene volume the camera sees
gxmath sample --scene=scene.toml -n 10000

# print every sample, reproducible with [random] seed in the configuration
gxmath sample --scene=scene.toml -n 10 --points --config=gxmath.toml
`

type SampleOpts struct {
	ScenePath string
	Count     int
	Points    bool

	Out io.Writer
}

func NewCmdSample(out io.Writer) *cobra.Command {
	opts := &SampleOpts{Out: out, Count: 1000}

	cmd := &cobra.Command{
		Use:     "sample --scene=scene.toml",
		Short:   "Draws random points in the scene bounds and counts the visible ones",
		Example: sampleExample,
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Run()
		},
	}

	cmd.Flags().StringVar(&opts.ScenePath, "scene", "", "path to the TOML scene.")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", opts.Count, "number of points to draw.")
	cmd.Flags().BoolVar(&opts.Points, "points", false, "print every sampled point.")
	return cmd
}

func (o *SampleOpts) Validate() error {
	if o.ScenePath == "" {
		return errors.New("a scene must be provided with --scene")
	}
	if o.Count <= 0 {
		return errors.Errorf("invalid sample count %d", o.Count)
	}
	return nil
}

func (o *SampleOpts) Run() error {
	s, err := scene.Load(o.ScenePath)
	if err != nil {
		return err
	}
	if len(s.Objects) == 0 {
		return errors.Errorf("scene %s has no objects to sample", o.ScenePath)
	}

	samples := s.Sample(o.Count)
	if o.Points {
		for _, sample := range samples {
			fmt.Fprintf(o.Out, "%s %t\n", formatVec3(sample.Point), sample.Visible)
		}
	}
	visible := scene.CountVisible(samples)
	fmt.Fprintf(o.Out, "%d/%d visible (%.1f%%)\n", visible, len(samples), 100*float32(visible)/float32(len(samples)))
	return nil
}
