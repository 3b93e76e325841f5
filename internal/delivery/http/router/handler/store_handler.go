package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"stamply/internal/delivery/http/response"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for store-related handlers
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// GetStore returns a single store by ID
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// GetScanQR renders the PNG QR code the store prints at the counter
func (h *StoreHandler) GetScanQR(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	png, err := h.storeUC.GenerateScanQR(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// FindNearbyStores returns active stores around a coordinate, nearest first
func (h *StoreHandler) FindNearbyStores(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "lat must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATE", "lng must be a number")
	}

	radiusM, err := strconv.ParseFloat(c.QueryParam("radius_m"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_RADIUS", "radius_m must be a number")
	}

	limit := parseIntOrZero(c.QueryParam("limit"))

	stores, err := h.storeUC.FindNearbyStores(c.Request().Context(), lat, lng, radiusM, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores, "Nearby stores retrieved successfully")
}
