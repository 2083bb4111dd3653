package models

import (
	"github.com/google/uuid"

	"github.com/bytebites/backend/internal/audit"
)

// Recipe is a user-authored recipe. Ownership and timestamps live in the
// embedded audit fields and are stamped by the audit plugin, never by callers.
type Recipe struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:250;not null" json:"description"`
	Ingredients string    `gorm:"type:text;not null" json:"ingredients"`
	Steps       string    `gorm:"type:text;not null" json:"steps"`
	CookingTime int       `gorm:"not null" json:"cookingTime"`
	DietaryTags string    `gorm:"size:255" json:"dietaryTags"`

	audit.Fields
	audit.SoftDelete
}

func (Recipe) TableName() string {
	return "recipes"
}

// ContentColumns maps the caller-editable columns to their current values.
// Identity, audit and soft-delete columns are deliberately absent.
func (r *Recipe) ContentColumns() map[string]interface{} {
	return map[string]interface{}{
		"title":        r.Title,
		"description":  r.Description,
		"ingredients":  r.Ingredients,
		"steps":        r.Steps,
		"cooking_time": r.CookingTime,
		"dietary_tags": r.DietaryTags,
	}
}
