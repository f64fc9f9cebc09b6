package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shouni/dicebear-kit/pkg/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries the state shared by all subcommands.
type app struct {
	cfg    config.Config
	stderr io.Writer
	deps   dependencies
}

// Execute runs the dicebear CLI with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr, defaultDependencies()).ExecuteContext(ctx)
}

func newRootCmd(stderr io.Writer, deps dependencies) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)
	a := &app{cfg: config.Default(), stderr: stderr, deps: deps}

	root := &cobra.Command{
		Use:          "dicebear",
		Short:        "Generate avatars with the DiceBear HTTP API",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			installLogger(newLogger(a.stderr, level))

			if configPath == "" {
				return nil
			}
			reader, _, closeStorage, err := newStorage(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			defer closeStorage()
			cfg, err := config.Load(cmd.Context(), reader, configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dicebear %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml); local path, gs:// or s3://")

	root.AddCommand(newAvatarCmd(a))
	root.AddCommand(newURLCmd(a))
	root.AddCommand(newSchemaCmd(a))
	root.AddCommand(newStylesCmd())
	root.AddCommand(newFormatsCmd())
	root.AddCommand(newColorCmd())

	return root
}
