package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"grogetter/internal/services/share"
)

func shareCmd() *cobra.Command {
	var (
		list     string
		markdown bool
	)
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a list in a form ready to paste elsewhere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := appCtx.ResolveList(list)
			if err != nil {
				return err
			}
			text := share.Text(l)
			if markdown {
				text = share.Markdown(l, appCtx.Grocery.Categories())
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "list id or name (default selected list)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "group by category as markdown")
	return cmd
}
