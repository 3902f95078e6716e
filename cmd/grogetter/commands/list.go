package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage grocery lists",
	}
	cmd.AddCommand(listLsCmd(), listCreateCmd(), listRmCmd(), listRenameCmd(), listSelectCmd(), listClearCompletedCmd())
	return cmd
}

func listLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Show all lists; the selected one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			selected := appCtx.Grocery.SelectedListID()
			for _, l := range appCtx.Grocery.Lists() {
				mark := " "
				if l.ID == selected {
					mark = "*"
				}
				done := 0
				for _, it := range l.Items {
					if it.Completed {
						done++
					}
				}
				fmt.Fprintf(out, "%s %s  %d/%d  %s\n", mark, l.Name, done, len(l.Items), l.ID)
			}
			return nil
		},
	}
}

func listCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := appCtx.Grocery.CreateList(args[0])
			if err := appCtx.Persisted(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "List created.\nID: %s\n", l.ID)
			return nil
		},
	}
}

func listRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <list>",
		Short: "Delete a list and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := appCtx.ResolveList(args[0])
			if err != nil {
				return err
			}
			appCtx.Grocery.DeleteList(l.ID)
			if err := appCtx.Persisted(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", l.Name)
			return nil
		},
	}
}

func listRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <list> <name>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := appCtx.ResolveList(args[0])
			if err != nil {
				return err
			}
			appCtx.Grocery.RenameList(l.ID, args[1])
			return appCtx.Persisted()
		},
	}
}

func listSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <list>",
		Short: "Make a list the target of item commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := appCtx.ResolveList(args[0])
			if err != nil {
				return err
			}
			appCtx.Grocery.SelectList(l.ID)
			if err := appCtx.Persisted(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected %q\n", l.Name)
			return nil
		},
	}
}

func listClearCompletedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed [<list>]",
		Short: "Remove completed items",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			l, err := appCtx.ResolveList(ref)
			if err != nil {
				return err
			}
			appCtx.Grocery.ClearCompleted(l.ID)
			return appCtx.Persisted()
		},
	}
}
