package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"stamply/internal/delivery/http/response"
	"stamply/internal/domain/entity"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// LedgerHandler holds dependencies for ledger-related handlers
type LedgerHandler struct {
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// ManualEntryRequest represents the request body for an operator-issued entry
type ManualEntryRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	StoreID string `json:"store_id" validate:"required,uuid"`
	Delta   int64  `json:"delta" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=bonus adjustment"`
	Note    string `json:"note,omitempty"`
}

// ReconcileRequest represents the request body for a balance reconciliation run
type ReconcileRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	StoreID string `json:"store_id" validate:"required,uuid"`
}

// GetBalance returns the caller's point balance at a store
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	storeID, err := uuid.Parse(c.QueryParam("store_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	balance, err := h.ledgerUC.GetBalance(c.Request().Context(), userID, storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, balance, "Balance retrieved successfully")
}

// GetHistory returns the caller's ledger entries at a store, newest first
func (h *LedgerHandler) GetHistory(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	storeID, err := uuid.Parse(c.QueryParam("store_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	limit := parseIntOrZero(c.QueryParam("limit"))
	offset := parseIntOrZero(c.QueryParam("offset"))

	entries, err := h.ledgerUC.GetHistory(c.Request().Context(), userID, storeID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "History retrieved successfully")
}

// AppendManualEntry handles an operator-issued bonus or adjustment
func (h *LedgerHandler) AppendManualEntry(c echo.Context) error {
	var req ManualEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid manual entry input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	entry, err := h.ledgerUC.AppendManualEntry(c.Request().Context(), &usecase.ManualEntryInput{
		UserID:  userID,
		StoreID: storeID,
		Delta:   req.Delta,
		Type:    entity.EntryType(req.Type),
		Note:    req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Ledger entry appended successfully")
}

// ReconcileBalance recomputes one denormalized balance from the ledger fold
func (h *LedgerHandler) ReconcileBalance(c echo.Context) error {
	var req ReconcileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reconcile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	result, err := h.ledgerUC.ReconcileBalance(c.Request().Context(), userID, storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Balance reconciled")
}

// getUserID extracts the user ID from the context
func (h *LedgerHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// parseIntOrZero parses a query parameter as int, treating junk as zero so
// the use case layer applies its own defaults.
func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return v
}
