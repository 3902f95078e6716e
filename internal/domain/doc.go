// Package domain defines the grocery data model and the contracts shared
// across the app. It contains plain types and interfaces only.
package domain
