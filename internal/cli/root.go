// Package cli implements the gedstore command line.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X gedstore/internal/cli.Version=..."
var Version = "dev"

// flags holds the global flags. Set flags override the config file.
type flags struct {
	config    string
	document  string
	logLevel  string
	logFormat string
	mirror    string
	metrics   bool
}

// NewRootCommand builds the gedstore command tree writing to out and errOut
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gedstore",
		Short: "gedstore - a family tree store over GEDCOM documents",
		Long: `gedstore keeps a family tree in a GEDCOM document and exposes it as
individuals, families, sources and repositories.

Changes are applied in memory and written back to the document only when a
command commits them. The family an individual belongs to is derived from
their parents and kept consistent on every change.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.config, "config", "", "config file (default: search $GEDSTORE_CONFIG, ./gedstore.yaml, ~/.config/gedstore)")
	pf.StringVarP(&a.flags.document, "document", "d", "", "GEDCOM document path")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format (console, json)")
	pf.StringVar(&a.flags.mirror, "mirror", "", "SQLite mirror database path")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "print operation metrics on exit")

	root.AddCommand(
		newStatsCmd(a),
		newListCmd(a),
		newAddIndividualCmd(a),
		newSetParentsCmd(a),
		newDeleteIndividualCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command with args
func Execute(out, errOut io.Writer, args []string) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	return root.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No config needed to print the version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gedstore %s\n", Version)
		},
	}
}
