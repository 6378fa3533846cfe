package model

// Category is a labeled grouping for transactions and budgets.
// Names are not required to be unique.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Type  TxType `json:"type"`
	Color string `json:"color"`
}

// UnknownCategoryName is displayed for transactions whose category
// reference is dangling.
const UnknownCategoryName = "Unknown"

// UnknownCategoryColor is the display color paired with UnknownCategoryName.
const UnknownCategoryColor = "#6b7280"
