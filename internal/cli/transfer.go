package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gedstore/internal/codec"
)

func newExportCmd(a *app) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole tree as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec.ForFormat(formatFor(format, output))
			if err != nil {
				return err
			}
			uow, err := a.open()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			if err := c.Export(uow.Snapshot(), w); err != nil {
				return err
			}
			a.log.Info().Str("format", c.Format()).Str("output", output).Msg("tree exported")
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default: from --output extension, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add the individuals of a JSON or YAML export and commit",
		Long: `Import adds every individual of an exported tree with fresh ids.
Parent links are remapped so the matching families are built; links to
individuals missing from the file are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec.ForFormat(formatFor(format, args[0]))
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			snap, err := c.Parse(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			uow, err := a.open()
			if err != nil {
				return err
			}
			result, err := uow.Import(snap)
			if err != nil {
				return err
			}
			if err := uow.Commit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d individuals, %d families (%d unresolved parents)\n",
				result.IndividualsAdded, result.FamiliesAdded, result.UnresolvedParents)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default: from file extension)")
	return cmd
}

// formatFor picks the explicit format, else the file extension, else json
func formatFor(format, path string) string {
	if format != "" {
		return format
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		return ext
	}
	return "json"
}
