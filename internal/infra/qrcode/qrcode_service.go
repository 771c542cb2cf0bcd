// Package qrcode renders order-tracking QR codes.
package qrcode

import (
	"strings"

	"maison/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service that encodes tracking URLs
// under the given public base URL.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		baseURL:              strings.TrimSuffix(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateTrackingQR returns a PNG QR code pointing at the order's public
// tracking page.
func (s *qrcodeService) GenerateTrackingQR(orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, errors.New("order id must not be empty")
	}

	png, err := qrcode.Encode(s.baseURL+"/"+orderID, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode tracking QR")
	}

	return png, nil
}
