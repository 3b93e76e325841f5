package service

import "github.com/google/uuid"

// QRCodeService defines the interface for generating and parsing the QR codes
// that stores display at the point of sale.
type QRCodeService interface {
	// GenerateStoreQR renders the scan payload for a store as a PNG image.
	GenerateStoreQR(storeID uuid.UUID) ([]byte, error)

	// ParseStoreQR parses QR payload data and returns the encoded store ID.
	ParseStoreQR(qrData string) (uuid.UUID, error)
}
