package models

import (
	"time"
)

// Attendance links a user to a meetup they intend to attend. MeetupDate is a
// denormalized copy of the meetup's date so the database can enforce the
// one-meetup-per-instant rule with a plain unique index; meetup date updates
// must rewrite the copies.
type Attendance struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_attendances_user_meetup;uniqueIndex:idx_attendances_user_date"`
	MeetupID   uint      `json:"meetup_id" gorm:"not null;uniqueIndex:idx_attendances_user_meetup"`
	MeetupDate time.Time `json:"-" gorm:"not null;uniqueIndex:idx_attendances_user_date"`
	CreatedAt  time.Time `json:"created_at"`

	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Meetup Meetup `json:"meetup,omitempty" gorm:"foreignKey:MeetupID"`
}

type AttendanceRequest struct {
	MeetupID uint `json:"meetup_id" validate:"required"`
}

// AttendedMeetupResponse is one row of GET /attendances: the meetup enriched
// with its banner, its owner and a marker for the caller's attendance.
type AttendedMeetupResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Date        time.Time        `json:"date"`
	Avatar      *AvatarResponse  `json:"avatar"`
	User        MeetupOwner      `json:"user"`
	Attendance  AttendanceMarker `json:"attendance"`
}

type AvatarResponse struct {
	ID   uint   `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type MeetupOwner struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AttendanceMarker struct {
	ID uint `json:"id"`
}
