package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders shareable QR codes.
type QRCodeService interface {
	// GenerateRestaurantQR returns a PNG encoding the public link of a restaurant.
	GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error)
}
