package models

import "gorm.io/gorm"

// Tag labels articles. Name keeps the display text exactly as it was first
// submitted; Slug is the normalized form and is the identity tags are
// resolved by, so "Next.js" and "next js" map to one row.
type Tag struct {
	gorm.Model
	Name string `gorm:"size:100;not null"`
	Slug string `gorm:"size:120;uniqueIndex;not null"`

	Articles []*Article `gorm:"many2many:article_tags;"`
}
