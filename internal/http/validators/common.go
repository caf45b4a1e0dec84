package validators

import (
	"net/http"
	"net/mail"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	maxTitleLength = 200
	maxTextLength  = 1000
)

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid email address")
	}
	return nil
}

func validateSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return echo.NewHTTPError(http.StatusBadRequest, "scheduled end must not be before scheduled start")
	}
	return nil
}
