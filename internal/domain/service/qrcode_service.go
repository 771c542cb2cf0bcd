package service

// QRCodeService renders tracking QR codes for placed orders.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG QR code pointing at the public
	// tracking page for the order.
	GenerateTrackingQR(orderID string) ([]byte, error)
}
