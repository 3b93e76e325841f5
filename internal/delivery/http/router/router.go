// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stamply/internal/delivery/http/middleware"
	"stamply/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ScanHandler         *handler.ScanHandler
	RedemptionHandler   *handler.RedemptionHandler
	LedgerHandler       *handler.LedgerHandler
	StoreHandler        *handler.StoreHandler
	ReviewHandler       *handler.ReviewHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	scanHandler         *handler.ScanHandler
	redemptionHandler   *handler.RedemptionHandler
	ledgerHandler       *handler.LedgerHandler
	storeHandler        *handler.StoreHandler
	reviewHandler       *handler.ReviewHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		scanHandler:         params.ScanHandler,
		redemptionHandler:   params.RedemptionHandler,
		ledgerHandler:       params.LedgerHandler,
		storeHandler:        params.StoreHandler,
		reviewHandler:       params.ReviewHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Store directory; readable without authentication so the app can show
	// nearby stores before login.
	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("/nearby", r.storeHandler.FindNearbyStores)
		storeGroup.GET("/:id", r.storeHandler.GetStore)
		storeGroup.GET("/:id/qrcode", r.storeHandler.GetScanQR)
	}

	// Scan routes for authenticated customers
	scanGroup := e.Group("/scans")
	scanGroup.Use(r.authMiddleware.Authenticate)
	{
		scanGroup.POST("", r.scanHandler.SubmitScan)
		scanGroup.POST("/resolve", r.scanHandler.ResolveScanTarget)
	}

	// Redemption routes for authenticated customers
	redemptionGroup := e.Group("/redemptions")
	redemptionGroup.Use(r.authMiddleware.Authenticate)
	{
		redemptionGroup.POST("", r.redemptionHandler.Redeem)
	}

	// Ledger routes for authenticated customers
	ledgerGroup := e.Group("/ledger")
	ledgerGroup.Use(r.authMiddleware.Authenticate)
	{
		ledgerGroup.GET("/balance", r.ledgerHandler.GetBalance)
		ledgerGroup.GET("/history", r.ledgerHandler.GetHistory)
	}

	// Admin routes: review queues, manual ledger entries and reconciliation
	// require the "admin" role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/ledger/entries", r.ledgerHandler.AppendManualEntry)
		adminGroup.POST("/ledger/reconcile", r.ledgerHandler.ReconcileBalance)

		adminGroup.GET("/review/pending", r.reviewHandler.ListPendingScans)
		adminGroup.POST("/review/pending/:id/approve", r.reviewHandler.ApprovePendingScan)
		adminGroup.POST("/review/pending/:id/reject", r.reviewHandler.RejectPendingScan)

		adminGroup.GET("/review/suspicious", r.reviewHandler.ListSuspiciousScans)
		adminGroup.POST("/review/suspicious/:id/review", r.reviewHandler.MarkSuspiciousScanReviewed)
		adminGroup.POST("/review/suspicious/:id/dismiss", r.reviewHandler.DismissSuspiciousScan)
		adminGroup.POST("/review/suspicious/:id/block", r.reviewHandler.BlockSuspiciousScan)
	}
}
