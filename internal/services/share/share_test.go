package share_test

import (
	"testing"
	"time"

	"grogetter/internal/domain"
	"grogetter/internal/services/share"
)

func sample() domain.List {
	l := domain.NewList("Weekend", time.Unix(0, 0))

	milk := domain.NewItem("Milk")
	milk.Category = domain.NewCategory("dairy")

	flour := domain.NewItem("Flour")
	flour.Quantity = 2
	flour.Unit = domain.UnitKilogram
	flour.Notes = "organic"
	flour.Completed = true

	eggs := domain.NewItem("Eggs")
	eggs.Quantity = 6
	eggs.Category = domain.NewCategory("Dairy")

	chips := domain.NewItem("Chips")
	chips.Category = domain.NewCategory("Snacks")

	l.Items = []domain.Item{milk, flour, eggs, chips}
	return l
}

func TestText(t *testing.T) {
	want := "Weekend\n" +
		"- Milk\n" +
		"✓ 2 kg Flour (organic)\n" +
		"- 6 Eggs\n" +
		"- Chips\n"
	if got := share.Text(sample()); got != want {
		t.Fatalf("Text:\n%s\nwant:\n%s", got, want)
	}
}

func TestText_EmptyList(t *testing.T) {
	l := domain.NewList("Empty", time.Unix(0, 0))
	if got := share.Text(l); got != "Empty\n" {
		t.Fatalf("Text = %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	want := "# Weekend\n\n" +
		"## Produce\n" +
		"- ✅ 2 kg Flour\n" +
		"  - organic\n" +
		"\n" +
		"## Dairy\n" +
		"- ◻️ 6 piece(s) Eggs\n" +
		"- ◻️ Milk\n" +
		"\n" +
		"## Snacks\n" +
		"- ◻️ Chips\n" +
		"\n"
	if got := share.Markdown(sample(), domain.StandardCategories()); got != want {
		t.Fatalf("Markdown:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdown_DoesNotReorderList(t *testing.T) {
	l := sample()
	share.Markdown(l, domain.StandardCategories())
	if l.Items[0].Name != "Milk" || l.Items[2].Name != "Eggs" {
		t.Fatal("Markdown reordered the caller's items")
	}
}
