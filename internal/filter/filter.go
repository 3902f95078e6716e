// Package filter selects items with boolean expressions such as
//
//	!completed && category == "Dairy"
//	quantity > 1 || notes contains "organic"
//
// Expressions are compiled with github.com/expr-lang/expr against the fields
// of a single item: name, category, quantity, unit, completed, notes and
// custom (true when the category is user-defined).
package filter

import (
	"errors"
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"grogetter/internal/domain"
)

// ErrNotBoolean is returned when an expression evaluates to something other
// than true or false.
var ErrNotBoolean = errors.New("filter: expression is not boolean")

// env is the view of an item that expressions see.
type env struct {
	Name      string  `expr:"name"`
	Category  string  `expr:"category"`
	Quantity  float64 `expr:"quantity"`
	Unit      string  `expr:"unit"`
	Completed bool    `expr:"completed"`
	Notes     string  `expr:"notes"`
	Custom    bool    `expr:"custom"`
}

func newEnv(it domain.Item) env {
	return env{
		Name:      it.Name,
		Category:  it.Category.Name,
		Quantity:  it.Quantity,
		Unit:      it.Unit.Label(),
		Completed: it.Completed,
		Notes:     it.Notes,
		Custom:    it.Category.IsCustom(),
	}
}

// Filter is a compiled expression. The zero value and nil match everything.
type Filter struct {
	expression string
	program    *exprvm.Program
}

// Compile parses and type-checks expression. An empty expression yields a
// filter that matches every item.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &Filter{}, nil
	}
	program, err := exprlang.Compile(expression, exprlang.Env(env{}), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter: compile %q: %w", expression, err)
	}
	return &Filter{expression: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.expression
}

// Match evaluates the filter against it.
func (f *Filter) Match(it domain.Item) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}
	out, err := exprlang.Run(f.program, newEnv(it))
	if err != nil {
		return false, fmt.Errorf("filter: evaluate %q: %w", f.expression, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %q returned %T", ErrNotBoolean, f.expression, out)
	}
	return ok, nil
}

// Apply returns the items that match, in their original order. It stops at
// the first evaluation error.
func (f *Filter) Apply(items []domain.Item) ([]domain.Item, error) {
	var out []domain.Item
	for _, it := range items {
		ok, err := f.Match(it)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, it)
		}
	}
	return out, nil
}
