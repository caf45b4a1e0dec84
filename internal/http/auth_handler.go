package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "time-management.com/time-management/internal/data_models"
	middleware "time-management.com/time-management/internal/http/middlewares"
	"time-management.com/time-management/internal/http/validators"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	resp, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ListUsers(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return asHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) requireAdmin(c echo.Context) error {
	caller, err := h.userService.GetUser(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return asHTTPError(err)
	}
	if caller.Role != "admin" {
		return echo.NewHTTPError(http.StatusForbidden, "admin role required")
	}
	return nil
}
