package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code that identifies an order at pickup.
	GeneratePickupQR(orderID int64) ([]byte, error)

	// ParsePickupQR returns the order id encoded in scanned QR data.
	ParsePickupQR(qrData string) (int64, error)
}
