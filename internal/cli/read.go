package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gedstore/internal/domain"
	"gedstore/internal/repository"
	"gedstore/internal/service"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show entity counts of the document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uow, err := a.open()
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), uow.Snapshot())
			return nil
		},
	}
}

func printStats(w io.Writer, snap *domain.Snapshot) {
	st := snap.Stats()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if snap.Tree != nil {
		fmt.Fprintf(tw, "tree\t%s\n", snap.Tree.Name)
	}
	fmt.Fprintf(tw, "individuals\t%d\n", st.Individuals)
	fmt.Fprintf(tw, "families\t%d\n", st.Families)
	fmt.Fprintf(tw, "sources\t%d\n", st.Sources)
	fmt.Fprintf(tw, "repositories\t%d\n", st.Repositories)
	fmt.Fprintf(tw, "facts\t%d\n", st.Facts)
	fmt.Fprintf(tw, "notes\t%d\n", st.Notes)
	fmt.Fprintf(tw, "citations\t%d\n", st.Citations)
	tw.Flush()
}

func newListCmd(a *app) *cobra.Command {
	var (
		page     int
		pageSize int
		surname  string
	)
	cmd := &cobra.Command{
		Use:       "list {individuals|families|sources|repositories}",
		Short:     "List one kind of entity, a page at a time",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"individuals", "families", "sources", "repositories"},
		RunE: func(cmd *cobra.Command, args []string) error {
			uow, err := a.open()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer tw.Flush()

			switch args[0] {
			case "individuals":
				match := func(*domain.Individual) bool { return true }
				if surname != "" {
					match = func(i *domain.Individual) bool { return strings.EqualFold(i.LastName, surname) }
				}
				p, err := uow.Individuals.FindPage(match, page, pageSize)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "ID\tNAME\tSEX\tFATHER\tMOTHER")
				for _, i := range p.Items {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i.ID, i.FullName(), i.Sex, dash(i.FatherID), dash(i.MotherID))
				}
				return footer(tw, p)
			case "families":
				p, err := uow.Families.GetPage(page, pageSize)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "ID\tHUSBAND\tWIFE\tCHILDREN")
				for _, f := range p.Items {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", f.ID, dash(f.HusbandID), dash(f.WifeID), dash(strings.Join(f.ChildIDs, ",")))
				}
				return footer(tw, p)
			case "sources":
				p, err := uow.Sources.GetPage(page, pageSize)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tREPOSITORY")
				for _, s := range p.Items {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, dash(s.Title), dash(s.Author), dash(s.RepositoryID))
				}
				return footer(tw, p)
			case "repositories":
				p, err := uow.Repositories.GetPage(page, pageSize)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "ID\tNAME")
				for _, r := range p.Items {
					fmt.Fprintf(tw, "%d\t%s\n", r.ID, dash(r.Name))
				}
				return footer(tw, p)
			default:
				return fmt.Errorf("unknown kind %q: %w", args[0], repository.ErrInvalidArgument)
			}
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "entities per page")
	cmd.Flags().StringVar(&surname, "surname", "", "only individuals with this last name (case-insensitive)")
	return cmd
}

func footer[T any](w io.Writer, p *service.Page[T]) error {
	_, err := fmt.Fprintf(w, "\npage %d of %d, %d total\n", p.PageIndex+1, max(p.TotalPages(), 1), p.TotalCount)
	return err
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
