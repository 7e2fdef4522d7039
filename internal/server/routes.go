package server

import (
	"github.com/labstack/echo/v4"

	"example.com/fitness4all/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	questionnaireHandler *handlers.QuestionnaireHandler,
	planHandler *handlers.PlanHandler,
	calendarHandler *handlers.CalendarHandler,
	notificationHandler *handlers.NotificationHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	users := api.Group("/users", authMiddleware)
	users.PUT("/profile", userHandler.UpdateProfile)

	questionnaires := api.Group("/questionnaires", authMiddleware)
	questionnaires.POST("", questionnaireHandler.Submit)
	questionnaires.GET("", questionnaireHandler.List)
	questionnaires.GET("/:id", questionnaireHandler.Get)

	plans := api.Group("/plans", authMiddleware)
	plans.GET("", planHandler.List)
	plans.GET("/latest", planHandler.Latest)
	plans.POST("/generate", planHandler.Generate, aiRateLimiter)
	plans.POST("/email", planHandler.Email)

	cal := api.Group("/calendar", authMiddleware)
	cal.GET("/:year/:month", calendarHandler.GetMonth)
	cal.POST("/:year/:month/import", calendarHandler.Import, aiRateLimiter)
	cal.PUT("/:year/:month/days/:day/meals/:meal", calendarHandler.SetMeal)
	cal.DELETE("/:year/:month/days/:day/meals/:meal", calendarHandler.DeleteMeal)

	notificationsGroup := api.Group("/notifications", authMiddleware)
	notificationsGroup.GET("/stream", notificationHandler.Stream)
}
