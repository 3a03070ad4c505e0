package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryKind describes which transaction types a category applies to.
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindBoth    CategoryKind = "both"
)

// Category represents a transaction category of a user.
//
// Savings categories are tagged with the IsSavings flag. Earlier versions of
// the app found them by substring-matching the category name, which broke as
// soon as a user renamed the category.
type Category struct {
	DefaultModel
	UserID    uuid.UUID `gorm:"uniqueIndex:category_user_name"`
	Name      string    `gorm:"uniqueIndex:category_user_name"`
	Kind      CategoryKind
	Note      string
	Color     string
	IsSavings bool
	Archived  bool
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.Kind == "" {
		c.Kind = CategoryKindExpense
	}

	return nil
}
