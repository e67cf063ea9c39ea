package model

import (
	"time"
)

// Teacher and Student live in separate tables; authentication picks the
// table from the caller's declared role.
//
// Passwords are stored and compared in plaintext to match the deployed
// schema. Hashing is tracked separately from this service.
type Teacher struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type Student struct {
	ID        string    `gorm:"primarykey" json:"id"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
