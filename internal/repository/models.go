package repository

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey"`
	FullName string `gorm:"size:100;not null"`
	VitID    string `gorm:"size:20;uniqueIndex;not null"`
	Email    string `gorm:"size:100;uniqueIndex;not null"`
	Password string `gorm:"size:100;not null"` // stored as submitted; the legacy contest form never hashed it
}

type PhotoSubmission struct {
	ID            uint   `gorm:"primaryKey"`
	FullName      string `gorm:"size:100;not null"`
	VitID         string `gorm:"size:20;not null"` // not a foreign key; submissions are accepted without a matching user
	PhotoTitle    string `gorm:"size:200;not null"`
	Theme         string `gorm:"size:50;not null"`
	Description   string `gorm:"type:text"`
	PhotoFilename string `gorm:"size:200;not null"`
	CreatedAt     time.Time
}
