package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/gxmath/engine/core"
	"github.com/spaghettifunk/gxmath/engine/scene"
)

var cullExample = `# report which objects of a scene are inside the camera frustum
gxmath cull --scene=scene.toml

# keep reporting every time the file is saved
gxmath cull --scene=scene.toml --watch
`

type CullOpts struct {
	ScenePath string
	Watch     bool

	Out io.Writer
}

func NewCmdCull(out io.Writer) *cobra.Command {
	opts := &CullOpts{Out: out}

	cmd := &cobra.Command{
		Use:     "cull --scene=scene.toml",
		Short:   "Tests every object of a scene against the camera frustum",
		Example: cullExample,
		RunE: func(c *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return opts.Run(c.Context())
		},
	}

	cmd.Flags().StringVar(&opts.ScenePath, "scene", "", "path to the TOML scene.")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "reload the scene and cull again on every change.")
	return cmd
}

func (o *CullOpts) Validate() error {
	if o.ScenePath == "" {
		return errors.New("a scene must be provided with --scene")
	}
	return nil
}

func (o *CullOpts) Run(ctx context.Context) error {
	s, err := scene.Load(o.ScenePath)
	if err != nil {
		return err
	}
	o.print(s)

	if !o.Watch {
		return nil
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return o.watch(ctx)
}

func (o *CullOpts) watch(ctx context.Context) error {
	w, err := scene.NewWatcher(o.ScenePath)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	core.LogInfo("watching %s", o.ScenePath)
	for {
		select {
		case s, ok := <-w.Scenes():
			if !ok {
				return <-done
			}
			o.print(s)
		case err, ok := <-w.Errors():
			if !ok {
				return <-done
			}
			core.LogWarn("scene reload failed: %v", err)
		}
	}
}

func (o *CullOpts) print(s *scene.Scene) {
	clock := core.NewClock()
	clock.Start()
	result := s.Cull()
	clock.Update()
	core.LogDebug("culled %d objects in %s", len(result), clock.Elapsed())

	tw := tabwriter.NewWriter(o.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVISIBLE\tMIN\tMAX")
	for _, v := range result {
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n", v.ID, v.Visible, formatVec3(v.Bounds.Min), formatVec3(v.Bounds.Max))
	}
	tw.Flush()
	fmt.Fprintf(o.Out, "%d/%d visible\n", scene.VisibleCount(result), len(result))
}
