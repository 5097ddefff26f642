package models

import (
	"time"
)

// FileUploadRequest carries the upload's content type through validation.
type FileUploadRequest struct {
	MimeType string `validate:"required,supported_image"`
}

type File struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Path      string    `json:"path" gorm:"unique;not null"`
	URL       string    `json:"url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
