package entity

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Photo is an image of a restaurant hosted in the image bucket.
type Photo struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	URL          string    `json:"url"`                   // Public URL returned by the image storage.
	Description  string    `json:"description,omitempty"` // At most 300 characters.
	IsCover      bool      `json:"is_cover"`              // At most one cover per restaurant.
	UploadedAt   time.Time `json:"uploaded_at"`
}

// PhotoUpload is an image received from a client, before it is stored.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}
