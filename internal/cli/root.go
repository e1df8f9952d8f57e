package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g. "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the information displayed by --version. The main
// package calls this with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the mimwidth CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose switches
// to debug. The logger is attached to the command context.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "mimwidth",
		Short:        "mimwidth computes heuristic mim-width tree decompositions",
		Long:         `mimwidth reads undirected graphs from edge-run expressions or PACE .gr files and computes caterpillar tree decompositions optimized for maximum-induced-matching width.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mimwidth %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	root.AddCommand(newDecomposeCmd(&configPath))
	root.AddCommand(newGenerateCmd())

	return root.ExecuteContext(context.Background())
}
