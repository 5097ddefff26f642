package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRService renders QR codes pointing at meetup pages on the frontend.
type QRService struct {
	baseURL string
}

func NewQRService(baseURL string) *QRService {
	return &QRService{baseURL: baseURL}
}

// GenerateMeetupQR returns a PNG QR code for the meetup's page.
func (s *QRService) GenerateMeetupQR(meetupID uint, size int) ([]byte, error) {
	fullURL := fmt.Sprintf("%s/meetups/%d", s.baseURL, meetupID)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
