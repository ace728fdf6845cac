package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	DisplayName  string    `json:"name"`
	Age          int       `json:"age"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
