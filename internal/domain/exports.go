package domain

import (
	interfaces "grogetter/internal/domain/interfaces"
	types "grogetter/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Category      = types.Category
	CategorySet   = types.CategorySet
	CategoryGroup = types.CategoryGroup
	Unit          = types.Unit
	Item          = types.Item
	List          = types.List
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KVStore = interfaces.KVStore
)

// Units re-exported for callers that only import domain.
const (
	UnitPiece      = types.UnitPiece
	UnitGram       = types.UnitGram
	UnitKilogram   = types.UnitKilogram
	UnitMilliliter = types.UnitMilliliter
	UnitLiter      = types.UnitLiter
	UnitCup        = types.UnitCup
	UnitTablespoon = types.UnitTablespoon
	UnitTeaspoon   = types.UnitTeaspoon
	UnitPinch      = types.UnitPinch
	UnitBunch      = types.UnitBunch
	UnitPack       = types.UnitPack
	UnitCan        = types.UnitCan
	UnitBottle     = types.UnitBottle
	UnitJar        = types.UnitJar
	UnitBox        = types.UnitBox
	UnitBag        = types.UnitBag

	DefaultListName = types.DefaultListName
)

// Constructors and helpers from the types subpackage.
var (
	NewCategory        = types.NewCategory
	NewCategorySet     = types.NewCategorySet
	StandardCategories = types.StandardCategories
	DefaultCategory    = types.DefaultCategory
	IsStandard         = types.IsStandard
	NewItem            = types.NewItem
	NewList            = types.NewList
	ParseUnit          = types.ParseUnit
	Units              = types.Units
	SortItems          = types.SortItems
	FormatQuantity     = types.FormatQuantity
)

// Errors from the types subpackage.
var (
	ErrUnknownUnit     = types.ErrUnknownUnit
	ErrInvalidQuantity = types.ErrInvalidQuantity
	ErrEmptyName       = types.ErrEmptyName
)
