package handler

import (
	"log/slog"
	"net/http"

	"stamply/internal/delivery/http/response"
	"stamply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
	Logger       *slog.Logger
}

// RedemptionHandler holds dependencies for redemption-related handlers
type RedemptionHandler struct {
	redemptionUC usecase.RedemptionUsecase
	logger       *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionUC: params.RedemptionUC,
		logger:       params.Logger,
	}
}

// RedeemRequest represents the request body for redeeming a reward
type RedeemRequest struct {
	StoreID     string `json:"store_id" validate:"required,uuid"`
	RewardTitle string `json:"reward_title" validate:"required"`
	PointsCost  int64  `json:"points_cost" validate:"required,gt=0"`
}

// Redeem handles spending points on a reward
func (h *RedemptionHandler) Redeem(c echo.Context) error {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	result, err := h.redemptionUC.Redeem(c.Request().Context(), &usecase.RedeemInput{
		UserID:      userID,
		StoreID:     storeID,
		RewardTitle: req.RewardTitle,
		PointsCost:  req.PointsCost,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Reward redeemed successfully")
}
