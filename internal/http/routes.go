package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	middleware "time-management.com/time-management/internal/http/middlewares"
	"time-management.com/time-management/internal/services"
)

func Register(e *echo.Echo, h *Handler, auth *services.AuthService, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "time management API is running"})
	})

	api := e.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	authed := api.Group("", middleware.RequireAuth(auth))

	authed.GET("/auth/me", h.Me)

	authed.POST("/tasks", h.CreateTask)
	authed.GET("/tasks/my-tasks", h.GetMyTasks)
	authed.GET("/tasks/assigned-to-me", h.GetAssignedTasks)
	authed.GET("/tasks/all", h.GetAllTasks)
	authed.GET("/tasks/:id", h.GetTask)
	authed.PUT("/tasks/:id", h.UpdateTask)
	authed.DELETE("/tasks/:id", h.DeleteTask)
	authed.POST("/tasks/:id/assign", h.AssignTask)
	authed.POST("/tasks/:id/accept-reject", h.AcceptRejectTask)
	authed.PATCH("/tasks/:id/status", h.UpdateTaskStatus)
	authed.POST("/tasks/:id/complete", h.CompleteTask)
	authed.POST("/tasks/:id/approve-reject", h.ApproveRejectTask)
	authed.GET("/tasks/:id/history", h.GetTaskHistory)

	authed.GET("/tags", h.ListTags)
	authed.GET("/tags/:id", h.GetTag)
	authed.POST("/tags", h.CreateTag)
	authed.PUT("/tags/:id", h.UpdateTag)
	authed.DELETE("/tags/:id", h.DeleteTag)

	authed.GET("/users", h.ListUsers)
	authed.DELETE("/users/:id", h.DeleteUser)
}
