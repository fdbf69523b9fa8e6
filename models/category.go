package models

import (
	"strings"

	"gorm.io/gorm"
)

type Subcategory struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Category is administrator-managed. The slug is always derived from the
// name, never set by callers.
type Category struct {
	gorm.Model
	Name          string        `json:"name" gorm:"unique"`
	Slug          string        `json:"slug" gorm:"unique"`
	Description   string        `json:"description"`
	Icon          string        `json:"icon"`
	Image         string        `json:"image"`
	ParentID      *uint         `json:"parent_id,omitempty"`
	Subcategories []Subcategory `json:"subcategories" gorm:"serializer:json"`
}

// Slugify lowercases a name and collapses whitespace runs into hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Slug = Slugify(c.Name)
	for i := range c.Subcategories {
		c.Subcategories[i].Slug = Slugify(c.Subcategories[i].Name)
	}
	return nil
}
