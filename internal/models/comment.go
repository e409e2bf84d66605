// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment is an anonymous remark attached to a post. There is no foreign key
// constraint on PostID: deleting a post leaves its comments orphaned, matching
// the historical behavior of the schema.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
