package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/gxmath/engine/core"
	"github.com/spaghettifunk/gxmath/engine/math"
)

type rootFlags struct {
	ConfigPath string
	LogLevel   string
}

// NewCmdRoot builds the gxmath command tree writing results to out and
// logs to errout.
func NewCmdRoot(out, errout io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gxmath",
		Short:         "Geometry and colour utilities for 3D scenes",
		Long:          "Culls, picks and samples boxes described in a TOML scene and converts colours between RGB and HSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return flags.apply(errout)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "path to a TOML configuration file.")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "overrides the configured log level. One of: debug, info, warn, error.")

	cmd.AddCommand(NewCmdCull(out))
	cmd.AddCommand(NewCmdPick(out))
	cmd.AddCommand(NewCmdSample(out))
	cmd.AddCommand(NewCmdColor(out))
	cmd.AddCommand(NewCmdCamera(out))
	return cmd
}

func (f *rootFlags) apply(errout io.Writer) error {
	cfg := core.DefaultConfig()
	if f.ConfigPath != "" {
		loaded, err := core.LoadConfig(f.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}

	core.SetLogOutput(errout)
	if err := core.ConfigureLogger(cfg.Log); err != nil {
		return err
	}

	if cfg.Random.Seed != 0 {
		math.RandomizeWithSeed(cfg.Random.Seed)
	} else {
		math.Randomize()
	}
	core.LogDebug("configuration %+v", cfg)
	return nil
}

// Execute runs the command line against the process arguments and exits
// with status 1 on failure.
func Execute() {
	if err := NewCmdRoot(os.Stdout, os.Stderr).Execute(); err != nil {
		core.LogFatal("%v", err)
	}
}
