package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Unit is a measurement unit. Its value is the display label, which is also
// the persisted form.
type Unit string

const (
	UnitPiece      Unit = "piece(s)"
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "L"
	UnitCup        Unit = "cup(s)"
	UnitTablespoon Unit = "tbsp"
	UnitTeaspoon   Unit = "tsp"
	UnitPinch      Unit = "pinch(es)"
	UnitBunch      Unit = "bunch(es)"
	UnitPack       Unit = "pack(s)"
	UnitCan        Unit = "can(s)"
	UnitBottle     Unit = "bottle(s)"
	UnitJar        Unit = "jar(s)"
	UnitBox        Unit = "box(es)"
	UnitBag        Unit = "bag(s)"
)

var unitNames = []struct {
	name string
	unit Unit
}{
	{"piece", UnitPiece},
	{"gram", UnitGram},
	{"kilogram", UnitKilogram},
	{"milliliter", UnitMilliliter},
	{"liter", UnitLiter},
	{"cup", UnitCup},
	{"tablespoon", UnitTablespoon},
	{"teaspoon", UnitTeaspoon},
	{"pinch", UnitPinch},
	{"bunch", UnitBunch},
	{"pack", UnitPack},
	{"can", UnitCan},
	{"bottle", UnitBottle},
	{"jar", UnitJar},
	{"box", UnitBox},
	{"bag", UnitBag},
}

// Units returns every unit in declaration order.
func Units() []Unit {
	out := make([]Unit, len(unitNames))
	for i, u := range unitNames {
		out[i] = u.unit
	}
	return out
}

// ParseUnit accepts a unit name ("kilogram") or label ("kg"), ignoring case.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	for _, u := range unitNames {
		if strings.EqualFold(s, u.name) || strings.EqualFold(s, string(u.unit)) {
			return u.unit, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Label returns the display label.
func (u Unit) Label() string { return string(u) }

// Name returns the enumeration name, e.g. "kilogram".
func (u Unit) Name() string {
	for _, n := range unitNames {
		if n.unit == u {
			return n.name
		}
	}
	return ""
}

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool { return u.Name() != "" }

// UnmarshalJSON rejects labels outside the enumeration.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Unit(s).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	*u = Unit(s)
	return nil
}
