package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"grogetter/internal/app"
	"grogetter/internal/domain"
	"grogetter/internal/filter"
)

// itemFlags are the editable item fields shared by add and update.
type itemFlags struct {
	list     string
	name     string
	qty      float64
	unit     string
	category string
	notes    string
}

func (f *itemFlags) register(cmd *cobra.Command, withName bool) {
	cmd.Flags().StringVar(&f.list, "list", "", "list id or name (default selected list)")
	cmd.Flags().Float64Var(&f.qty, "qty", 1, "quantity")
	cmd.Flags().StringVar(&f.unit, "unit", string(domain.UnitPiece), "unit name or label, e.g. kg or kilogram")
	cmd.Flags().StringVar(&f.category, "category", domain.DefaultCategory().Name, "category name")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-text notes")
	if withName {
		cmd.Flags().StringVar(&f.name, "name", "", "new item name")
	}
}

// apply copies the flags the user set onto it.
func (f *itemFlags) apply(cmd *cobra.Command, it domain.Item) (domain.Item, error) {
	changed := cmd.Flags().Changed
	if changed("name") {
		it.Name = f.name
	}
	if changed("qty") {
		it.Quantity = f.qty
	}
	if changed("unit") {
		u, err := domain.ParseUnit(f.unit)
		if err != nil {
			return it, err
		}
		it.Unit = u
	}
	if changed("category") {
		it.Category = domain.NewCategory(f.category)
	}
	if changed("notes") {
		it.Notes = f.notes
	}
	return it, it.Validate()
}

func itemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the items of a list",
	}
	cmd.AddCommand(itemLsCmd(), itemAddCmd(), itemUpdateCmd(), itemRmCmd(), itemToggleCmd(), itemMoveCmd())
	return cmd
}

func itemLsCmd() *cobra.Command {
	var (
		list   string
		where  string
		sorted bool
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Show the items of a list with their positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := appCtx.ResolveList(list)
			if err != nil {
				return err
			}
			f, err := filter.Compile(where)
			if err != nil {
				return err
			}
			items := l.Items
			if sorted {
				items = l.Sorted()
			}
			items, err = f.Apply(items)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", l.Name)
			for _, it := range items {
				mark := " "
				if it.Completed {
					mark = "x"
				}
				line := fmt.Sprintf("%3d. [%s] ", l.IndexOf(it.ID)+1, mark)
				if q := it.DisplayQuantity(); q != "" {
					line += q + " "
				}
				line += it.Name + "  (" + it.Category.Name + ")"
				if it.Notes != "" {
					line += "  " + it.Notes
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "list id or name (default selected list)")
	cmd.Flags().StringVar(&where, "where", "", `filter expression, e.g. '!completed && category == "Dairy"'`)
	cmd.Flags().BoolVar(&sorted, "sorted", false, "show incomplete items first, then by name")
	return cmd
}

func itemAddCmd() *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := appCtx.ResolveList(f.list)
			if err != nil {
				return err
			}
			it, err := f.apply(cmd, domain.NewItem(args[0]))
			if err != nil {
				return err
			}
			if !appCtx.Grocery.AddItem(it, l.ID) {
				return fmt.Errorf("item %q not added", it.Name)
			}
			return appCtx.Persisted()
		},
	}
	f.register(cmd, false)
	return cmd
}

func itemUpdateCmd() *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "update <n>",
		Short: "Change the fields of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, it, err := itemAt(f.list, args[0])
			if err != nil {
				return err
			}
			it, err = f.apply(cmd, it)
			if err != nil {
				return err
			}
			appCtx.Grocery.UpdateItem(it, l.ID)
			return appCtx.Persisted()
		},
	}
	f.register(cmd, true)
	return cmd
}

func itemRmCmd() *cobra.Command {
	var list string
	cmd := &cobra.Command{
		Use:   "rm <n>...",
		Short: "Remove items by position",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := appCtx.ResolveList(list)
			if err != nil {
				return err
			}
			idx, err := positions(l, args)
			if err != nil {
				return err
			}
			appCtx.Grocery.DeleteItems(idx, l.ID)
			return appCtx.Persisted()
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "list id or name (default selected list)")
	return cmd
}

func itemToggleCmd() *cobra.Command {
	var list string
	cmd := &cobra.Command{
		Use:   "toggle <n>",
		Short: "Mark an item done or not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, it, err := itemAt(list, args[0])
			if err != nil {
				return err
			}
			appCtx.Grocery.ToggleCompletion(it.ID, l.ID)
			return appCtx.Persisted()
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "list id or name (default selected list)")
	return cmd
}

func itemMoveCmd() *cobra.Command {
	var (
		list string
		to   int
	)
	cmd := &cobra.Command{
		Use:   "move <n>... --to <pos>",
		Short: "Move items so they sit before position --to (last position + 1 for the end)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := appCtx.ResolveList(list)
			if err != nil {
				return err
			}
			idx, err := positions(l, args)
			if err != nil {
				return err
			}
			if to < 1 || to > len(l.Items)+1 {
				return fmt.Errorf("--to must be between 1 and %d", len(l.Items)+1)
			}
			appCtx.Grocery.MoveItems(idx, to-1, l.ID)
			return appCtx.Persisted()
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "list id or name (default selected list)")
	cmd.Flags().IntVar(&to, "to", 0, "target position")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// itemAt resolves a list reference and a 1-based position argument.
func itemAt(listRef, pos string) (domain.List, domain.Item, error) {
	l, err := appCtx.ResolveList(listRef)
	if err != nil {
		return domain.List{}, domain.Item{}, err
	}
	idx, err := positions(l, []string{pos})
	if err != nil {
		return domain.List{}, domain.Item{}, err
	}
	it, err := app.ItemAt(l, idx[0]+1)
	return l, it, err
}

// positions converts 1-based position arguments to indices into l.Items.
func positions(l domain.List, args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q", a)
		}
		if _, err := app.ItemAt(l, n); err != nil {
			return nil, err
		}
		out = append(out, n-1)
	}
	return out, nil
}
