package qrcode

import (
	"encoding/json"
	"fmt"

	"stamply/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	StoreID string `json:"store_id"`
	Type    string `json:"type"`
}

// scanQRType marks a payload as a point-of-sale scan code. Parsing rejects
// any other type so unrelated QR codes never resolve to a store.
const scanQRType = "scan"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateStoreQR renders the scan payload for a store as a PNG image.
func (s *qrcodeService) GenerateStoreQR(storeID uuid.UUID) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		StoreID: storeID.String(),
		Type:    scanQRType,
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStoreQR parses QR payload data and returns the encoded store ID.
func (s *qrcodeService) ParseStoreQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != scanQRType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUID
	storeID, err := uuid.Parse(data.StoreID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse store ID: %w", err)
	}

	return storeID, nil
}
