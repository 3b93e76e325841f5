package handler

import (
	"context"
	"log/slog"
	"net/http"

	"stamply/internal/delivery/http/response"
	"stamply/internal/domain/entity"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review queue handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ListPendingScans lists the pending review queue
func (h *ReviewHandler) ListPendingScans(c echo.Context) error {
	input := &usecase.PendingScanListInput{
		Limit:  parseIntOrZero(c.QueryParam("limit")),
		Offset: parseIntOrZero(c.QueryParam("offset")),
	}

	if raw := c.QueryParam("store_id"); raw != "" {
		storeID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
		}
		input.StoreID = &storeID
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.PendingStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown pending status")
		}
		input.Status = &status
	}

	scans, err := h.reviewUC.ListPendingScans(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scans, "Pending scans retrieved successfully")
}

// ApprovePendingScan credits a pending scan
func (h *ReviewHandler) ApprovePendingScan(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pending scan ID")
	}

	result, err := h.reviewUC.ApprovePendingScan(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Pending scan approved")
}

// RejectPendingScan discards a pending scan without ledger effect
func (h *ReviewHandler) RejectPendingScan(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pending scan ID")
	}

	if err := h.reviewUC.RejectPendingScan(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "rejected"}, "Pending scan rejected")
}

// ListSuspiciousScans lists the suspicious review queue
func (h *ReviewHandler) ListSuspiciousScans(c echo.Context) error {
	input := &usecase.SuspiciousScanListInput{
		Limit:  parseIntOrZero(c.QueryParam("limit")),
		Offset: parseIntOrZero(c.QueryParam("offset")),
	}

	if raw := c.QueryParam("store_id"); raw != "" {
		storeID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
		}
		input.StoreID = &storeID
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.SuspiciousStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown suspicious status")
		}
		input.Status = &status
	}

	scans, err := h.reviewUC.ListSuspiciousScans(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scans, "Suspicious scans retrieved successfully")
}

// MarkSuspiciousScanReviewed marks a suspicious scan as looked at
func (h *ReviewHandler) MarkSuspiciousScanReviewed(c echo.Context) error {
	return h.transitionSuspicious(c, h.reviewUC.MarkSuspiciousScanReviewed, "reviewed")
}

// DismissSuspiciousScan closes a suspicious scan as harmless
func (h *ReviewHandler) DismissSuspiciousScan(c echo.Context) error {
	return h.transitionSuspicious(c, h.reviewUC.DismissSuspiciousScan, "dismissed")
}

// BlockSuspiciousScan closes a suspicious scan as fraudulent and deny-lists
// the user and device for future scans
func (h *ReviewHandler) BlockSuspiciousScan(c echo.Context) error {
	return h.transitionSuspicious(c, h.reviewUC.BlockSuspiciousScan, "blocked")
}

func (h *ReviewHandler) transitionSuspicious(c echo.Context, transition func(ctx context.Context, id uuid.UUID) error, status string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid suspicious scan ID")
	}

	if err := transition(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": status}, "Suspicious scan "+status)
}
