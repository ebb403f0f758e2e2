package models

import "gorm.io/gorm"

// Project is a portfolio entry.
type Project struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Slug        string `gorm:"size:255;uniqueIndex;not null"`
	Description string `gorm:"not null"`
	Content     string `gorm:"type:text"`
	Thumbnail   string `gorm:"size:512"`
	DemoURL     string `gorm:"size:512"`
	GithubURL   string `gorm:"size:512"`
	Featured    bool   `gorm:"not null;default:false;index"`
	Order       int    `gorm:"not null;default:0"`
}
