package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gedstore/internal/domain"
	"gedstore/internal/repository"
)

func newAddIndividualCmd(a *app) *cobra.Command {
	var first, last, sex, father, mother string
	cmd := &cobra.Command{
		Use:   "add-individual",
		Short: "Add an individual and commit",
		Long: `Add an individual to the document. When parents are given the
individual joins the family of those parents, which is created if needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uow, err := a.open()
			if err != nil {
				return err
			}
			ind := &domain.Individual{
				FirstName: first,
				LastName:  last,
				Sex:       domain.ParseSex(sex),
				FatherID:  father,
				MotherID:  mother,
			}
			if err := uow.Individuals.Add(ind); err != nil {
				return err
			}
			if err := uow.Commit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added individual %d\n", ind.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "first", "", "first name")
	cmd.Flags().StringVar(&last, "last", "", "last name")
	cmd.Flags().StringVar(&sex, "sex", "", "male, female or unknown")
	cmd.Flags().StringVar(&father, "father", "", "father id")
	cmd.Flags().StringVar(&mother, "mother", "", "mother id")
	return cmd
}

func newSetParentsCmd(a *app) *cobra.Command {
	var father, mother string
	cmd := &cobra.Command{
		Use:   "set-parents <id>",
		Short: "Replace the parents of an individual and commit",
		Long: `Replace both parents of an individual. An omitted parent becomes
unknown, so set-parents with no flags detaches the individual from their
family.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			uow, err := a.open()
			if err != nil {
				return err
			}
			ind, err := uow.Individuals.Get(id)
			if err != nil {
				return err
			}
			ind.FatherID, ind.MotherID = father, mother
			if err := uow.Individuals.Update(ind); err != nil {
				return err
			}
			if err := uow.Commit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "individual %d: father %s, mother %s\n", id, dash(ind.FatherID), dash(ind.MotherID))
			return nil
		},
	}
	cmd.Flags().StringVar(&father, "father", "", "father id")
	cmd.Flags().StringVar(&mother, "mother", "", "mother id")
	return cmd
}

func newDeleteIndividualCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-individual <id>",
		Short: "Delete an individual and commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			uow, err := a.open()
			if err != nil {
				return err
			}
			ind, err := uow.Individuals.Get(id)
			if err != nil {
				return err
			}
			if err := uow.Individuals.Delete(ind); err != nil {
				return err
			}
			if err := uow.Commit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted individual %d\n", id)
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q: %w", s, repository.ErrInvalidArgument)
	}
	return id, nil
}
