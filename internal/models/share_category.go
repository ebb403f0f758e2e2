package models

import "time"

// ShareCategory groups share resources and declares the dynamic field schema
// used to collect their custom data. The key is the human-chosen identifier
// and doubles as the primary key; it never changes after creation.
type ShareCategory struct {
	Key          string `gorm:"primaryKey;size:100"`
	Name         string `gorm:"size:255;not null"`
	Description  string
	Icon         string       `gorm:"size:100"`
	Color        string       `gorm:"size:50"`
	SortOrder    int          `gorm:"not null;default:0"`
	FieldsSchema FieldDefList `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Resources []ShareResource `gorm:"foreignKey:CategoryKey;references:Key"`
}
