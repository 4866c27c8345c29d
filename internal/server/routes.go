package server

import (
	"github.com/labstack/echo/v4"

	"example.com/debt-payoff-planner/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	debtHandler *handlers.DebtHandler,
	paymentHandler *handlers.PaymentHandler,
	payoffHandler *handlers.PayoffHandler,
	statsHandler *handlers.StatsHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	authMiddleware echo.MiddlewareFunc,
	adminMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	payoffRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	debts := api.Group("/debts", authMiddleware)
	debts.GET("", debtHandler.List)
	debts.POST("", debtHandler.Create)
	debts.GET("/:debtId", debtHandler.Get)
	debts.PUT("/:debtId", debtHandler.Update)
	debts.DELETE("/:debtId", debtHandler.Delete)
	debts.PATCH("/:debtId/close", debtHandler.Close)
	debts.PATCH("/:debtId/reopen", debtHandler.Reopen)
	debts.POST("/:debtId/payments", paymentHandler.Record)
	debts.GET("/:debtId/payments", paymentHandler.List)

	payoffGroup := api.Group("/payoff", authMiddleware, payoffRateLimiter)
	payoffGroup.POST("/strategies", payoffHandler.Strategies)
	payoffGroup.POST("/preview", payoffHandler.Preview)
	payoffGroup.GET("/strategies/export/csv", payoffHandler.ExportCSV)

	stats := api.Group("/stats", authMiddleware)
	stats.GET("/overview", statsHandler.Overview)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)

	admin := api.Group("/admin", authMiddleware, adminMiddleware)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/usage", adminHandler.Usage)
}
