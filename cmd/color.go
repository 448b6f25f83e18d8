package cmd

import (
	"fmt"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/gxmath/engine/math"
)

var colorExample = `# hue 120, full saturation and value
gxmath color --hsv=120,100,100

# linear rgb channels in [0, 1], alpha optional
gxmath color --rgb=1,0.5,0,1

gxmath color --hex=#ff8000
`

type ColorOpts struct {
	RGB []float32
	HSV []float32
	Hex string

	Out io.Writer
}

func NewCmdColor(out io.Writer) *cobra.Command {
	opts := &ColorOpts{Out: out}

	cmd := &cobra.Command{
		Use:     "color (--rgb=R,G,B[,A] | --hsv=H,S,V[,A] | --hex=#RRGGBB)",
		Short:   "Converts a colour between RGB, HSV and hex notations",
		Example: colorExample,
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Run()
		},
	}

	cmd.Flags().Float32SliceVar(&opts.RGB, "rgb", nil, "red, green, blue and optional alpha in [0, 1].")
	cmd.Flags().Float32SliceVar(&opts.HSV, "hsv", nil, "hue in degrees, saturation, value and optional alpha in [0, 100].")
	cmd.Flags().StringVar(&opts.Hex, "hex", "", "a #rrggbb colour.")
	cmd.MarkFlagsMutuallyExclusive("rgb", "hsv", "hex")
	cmd.MarkFlagsOneRequired("rgb", "hsv", "hex")
	return cmd
}

func (o *ColorOpts) Validate() error {
	for name, channels := range map[string][]float32{"rgb": o.RGB, "hsv": o.HSV} {
		if channels != nil && (len(channels) < 3 || len(channels) > 4) {
			return errors.Errorf("--%s expects 3 or 4 components, got %d", name, len(channels))
		}
	}
	if o.HSV != nil {
		if err := math.ValidateHue(o.HSV[0]); err != nil {
			return errors.Wrap(err, "--hsv")
		}
	}
	return nil
}

func (o *ColorOpts) Run() error {
	rgb, err := o.resolve()
	if err != nil {
		return err
	}
	hsv := math.ColorHSV{}
	if err := hsv.FromRGB(rgb); err != nil {
		return err
	}
	r, g, b, a := rgb.ConvertToUByte()

	fmt.Fprintf(o.Out, "rgb   %.4f %.4f %.4f %.4f\n", rgb.R, rgb.G, rgb.B, rgb.A)
	fmt.Fprintf(o.Out, "hsv   %.2f %.2f %.2f %.2f\n", hsv.H, hsv.S, hsv.V, hsv.A)
	fmt.Fprintf(o.Out, "bytes %d %d %d %d\n", r, g, b, a)
	fmt.Fprintf(o.Out, "hex   %s\n", hexOf(rgb))
	return nil
}

func (o *ColorOpts) resolve() (math.ColorRGB, error) {
	switch {
	case o.HSV != nil:
		hsv := math.NewColorHSV(o.HSV[0], o.HSV[1], o.HSV[2], 100)
		if len(o.HSV) == 4 {
			hsv.A = o.HSV[3]
		}
		rgb := math.ColorRGB{}
		if err := rgb.FromHSV(hsv); err != nil {
			return math.ColorRGB{}, err
		}
		return rgb, nil

	case o.RGB != nil:
		rgb := math.NewColorRGB(o.RGB[0], o.RGB[1], o.RGB[2], 1)
		if len(o.RGB) == 4 {
			rgb.A = o.RGB[3]
		}
		return rgb, nil

	default:
		c, err := colorful.Hex(o.Hex)
		if err != nil {
			return math.ColorRGB{}, errors.Wrapf(err, "parse --hex %q", o.Hex)
		}
		return math.NewColorRGB(float32(c.R), float32(c.G), float32(c.B), 1), nil
	}
}

// hexOf drops alpha and clamps channels into [0, 1].
func hexOf(c math.ColorRGB) string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}
