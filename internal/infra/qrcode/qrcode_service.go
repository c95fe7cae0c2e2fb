// Package qrcode renders restaurant share codes.
package qrcode

import (
	"strings"

	"food/config"
	"food/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:3000/restaurants"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode section. Missing values use defaults.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	svc := &qrcodeService{
		size:                 defaultSize,
		errorCorrectionLevel: qrcode.Medium,
		baseURL:              defaultBaseURL,
	}
	if cfg == nil || cfg.QRCode == nil {
		return svc
	}

	if cfg.QRCode.Size > 0 {
		svc.size = cfg.QRCode.Size
	}
	if cfg.QRCode.BaseURL != "" {
		svc.baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}
	svc.errorCorrectionLevel = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)

	return svc
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateRestaurantQR returns a PNG encoding {baseURL}/{restaurantID}.
func (s *qrcodeService) GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.RestaurantURL(restaurantID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// RestaurantURL is the public link encoded in a restaurant QR code.
func (s *qrcodeService) RestaurantURL(restaurantID uuid.UUID) string {
	return s.baseURL + "/" + restaurantID.String()
}
