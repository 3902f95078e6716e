package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"grogetter/internal/domain"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Show and add categories",
	}
	cmd.AddCommand(categoryLsCmd(), categoryAddCmd())
	return cmd
}

func categoryLsCmd() *cobra.Command {
	var (
		list  string
		inUse bool
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Show standard and custom categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := appCtx.Grocery.Categories()
			if inUse {
				l, err := appCtx.ResolveList(list)
				if err != nil {
					return err
				}
				cats = appCtx.Grocery.CategoriesInUse(l.ID)
			}
			out := cmd.OutOrStdout()
			for _, c := range cats {
				kind := "standard"
				if c.IsCustom() {
					kind = "custom"
				}
				fmt.Fprintf(out, "%-20s %s\n", c.Name, kind)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&inUse, "in-use", false, "only categories used by a list, plus custom ones")
	cmd.Flags().StringVar(&list, "list", "", "list for --in-use (default selected list)")
	return cmd
}

func categoryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, added := appCtx.Grocery.AddCategory(args[0])
			if c == (domain.Category{}) {
				return fmt.Errorf("category name required")
			}
			if err := appCtx.Persisted(); err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(cmd.OutOrStdout(), "Category %q already exists\n", c.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category %q added\n", c.Name)
			return nil
		},
	}
}
