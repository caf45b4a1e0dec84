package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "time-management.com/time-management/internal/data_models"
)

const minPasswordLength = 6

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" || r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	return nil
}
