package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stamply/internal/delivery/http/response"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	ScanUC usecase.ScanUsecase
	Logger *slog.Logger
}

// ScanHandler holds dependencies for scan-related handlers
type ScanHandler struct {
	scanUC usecase.ScanUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		scanUC: params.ScanUC,
		logger: params.Logger,
	}
}

// SubmitScanRequest represents the request body for submitting a QR scan
type SubmitScanRequest struct {
	StoreID           string  `json:"store_id" validate:"required,uuid"`
	DeviceFingerprint string  `json:"device_fingerprint" validate:"required"`
	Latitude          float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude         float64 `json:"longitude" validate:"min=-180,max=180"`
	OccurredAt        string  `json:"occurred_at,omitempty"` // RFC3339; defaults to now
}

// ResolveScanRequest represents the request body for resolving a QR payload
type ResolveScanRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// SubmitScan handles a reported QR scan and returns the classification outcome
func (h *ScanHandler) SubmitScan(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req SubmitScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var occurredAt time.Time
	if req.OccurredAt != "" {
		occurredAt, err = time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			return response.BadRequest(c, "INVALID_TIMESTAMP", "occurred_at must be RFC3339")
		}
	}

	input := &usecase.ScanInput{
		UserID:            userID,
		StoreID:           storeID,
		DeviceFingerprint: req.DeviceFingerprint,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		OccurredAt:        occurredAt,
	}

	result, err := h.scanUC.ProcessScan(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Scan processed")
}

// ResolveScanTarget parses a QR payload and returns the store it points at
func (h *ScanHandler) ResolveScanTarget(c echo.Context) error {
	var req ResolveScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR payload input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	store, err := h.scanUC.ResolveScanTarget(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store, "Scan target resolved")
}

// getUserID extracts the user ID from the context
func (h *ScanHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}
