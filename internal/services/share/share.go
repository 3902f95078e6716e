// Package share renders grocery lists as plain text for sending elsewhere.
package share

import (
	"sort"
	"strings"

	"grogetter/internal/domain"
)

// Text renders l as a header line with the list name followed by one line
// per item in list order:
//
//	✓ 2 kg Flour (organic)
//	- Milk
func Text(l domain.List) string {
	var b strings.Builder
	b.WriteString(l.Name)
	b.WriteByte('\n')
	for _, it := range l.Items {
		if it.Completed {
			b.WriteString("✓ ")
		} else {
			b.WriteString("- ")
		}
		if q := it.DisplayQuantity(); q != "" {
			b.WriteString(q)
			b.WriteByte(' ')
		}
		b.WriteString(it.Name)
		if it.Notes != "" {
			b.WriteString(" (")
			b.WriteString(it.Notes)
			b.WriteByte(')')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Markdown renders l grouped by category. Groups follow categories; any
// category of l missing from it comes after, by name. Items within a group
// are ordered by name.
func Markdown(l domain.List, categories []domain.Category) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(l.Name)
	b.WriteString("\n\n")

	for _, g := range l.GroupByCategory(categories) {
		b.WriteString("## ")
		b.WriteString(g.Category.Name)
		b.WriteByte('\n')

		items := g.Items
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		for _, it := range items {
			if it.Completed {
				b.WriteString("- ✅ ")
			} else {
				b.WriteString("- ◻️ ")
			}
			b.WriteString(markdownQuantity(it))
			b.WriteString(it.Name)
			b.WriteByte('\n')
			if it.Notes != "" {
				b.WriteString("  - ")
				b.WriteString(it.Notes)
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// markdownQuantity always names the unit, except for a single piece.
func markdownQuantity(it domain.Item) string {
	if it.Unit == domain.UnitPiece && it.Quantity == 1 {
		return ""
	}
	return domain.FormatQuantity(it.Quantity) + " " + it.Unit.Label() + " "
}
