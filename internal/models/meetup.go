package models

import (
	"time"
)

type Meetup struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	FileID      *uint     `json:"file_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	File *File `json:"file,omitempty" gorm:"foreignKey:FileID"`
}

type MeetupRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date" validate:"required"`
	FileID      *uint     `json:"file_id"`
}

type UpdateMeetupRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Date        *time.Time `json:"date"`
	FileID      *uint      `json:"file_id"`
}
