package models

import "gorm.io/gorm"

// ShareResource is a single shared link filed under a share category.
// CustomData holds whatever the category's schema asked for at write time;
// the stored keys are not kept in sync with later schema edits.
type ShareResource struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Description string
	Link        string     `gorm:"size:512;not null"`
	CategoryKey string     `gorm:"size:100;not null;index"`
	IconName    string     `gorm:"size:100"`
	Order       int        `gorm:"not null;default:0"`
	CustomData  CustomData `gorm:"type:jsonb"`

	Category ShareCategory `gorm:"foreignKey:CategoryKey;references:Key"`
}
