// Package models contains data structures for the application's domain models.
package models

import "time"

// Task is a to-do item. The schema predates any routes that use it; it is kept
// so existing databases keep their table and the seed tooling can populate it.
type Task struct {
	ID      uint   `gorm:"primaryKey"`
	Task    string `gorm:"size:200;not null"`
	DueDate *time.Time
}
