package filter_test

import (
	"testing"

	"grogetter/internal/domain"
	"grogetter/internal/filter"
)

func items() []domain.Item {
	milk := domain.NewItem("Milk")
	milk.Category = domain.NewCategory("Dairy")

	flour := domain.NewItem("Flour")
	flour.Quantity = 2
	flour.Unit = domain.UnitKilogram
	flour.Notes = "organic"
	flour.Completed = true

	chips := domain.NewItem("Chips")
	chips.Category = domain.NewCategory("Snacks")

	return []domain.Item{milk, flour, chips}
}

func names(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestApply(t *testing.T) {
	cases := []struct {
		expr string
		want []string
	}{
		{"", []string{"Milk", "Flour", "Chips"}},
		{"!completed", []string{"Milk", "Chips"}},
		{`category == "Dairy"`, []string{"Milk"}},
		{`quantity > 1 && unit == "kg"`, []string{"Flour"}},
		{`notes contains "organic"`, []string{"Flour"}},
		{"custom", []string{"Chips"}},
		{`name startsWith "Z"`, nil},
	}
	for _, tc := range cases {
		f, err := filter.Compile(tc.expr)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tc.expr, err)
		}
		got, err := f.Apply(items())
		if err != nil {
			t.Fatalf("Apply(%q): %v", tc.expr, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.expr, names(got), tc.want)
		}
		for i := range got {
			if got[i].Name != tc.want[i] {
				t.Fatalf("%q: got %v, want %v", tc.expr, names(got), tc.want)
			}
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, bad := range []string{"quantity +", "quantity * 2", "unknownField == 1"} {
		if _, err := filter.Compile(bad); err == nil {
			t.Errorf("Compile(%q) succeeded", bad)
		}
	}
}

func TestNilFilterMatchesAll(t *testing.T) {
	var f *filter.Filter
	ok, err := f.Match(domain.NewItem("x"))
	if err != nil || !ok {
		t.Fatalf("nil filter: %v, %v", ok, err)
	}
}
