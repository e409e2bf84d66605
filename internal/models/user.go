// Package models contains data structures for the application's domain models.
package models

import "time"

// User is an account created through signup. Accounts are never updated or
// deleted once created.
//
// Password is stored and compared as plain text. This mirrors the legacy
// system verbatim; hardening it is out of scope until explicitly requested.
type User struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"size:80;uniqueIndex;not null"`
	Password    string `gorm:"size:120;not null"`
	Gender      string `gorm:"size:10"`
	PhoneNumber string `gorm:"size:20"`
	Email       string `gorm:"size:120"`
	Name        string `gorm:"size:100"`
	UserType    string `gorm:"size:10"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
