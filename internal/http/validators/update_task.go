package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "time-management.com/time-management/internal/data_models"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if len(r.Title) > maxTitleLength {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 200 characters")
	}
	if r.Description != nil && len(*r.Description) > maxTextLength {
		return echo.NewHTTPError(http.StatusBadRequest, "description must be at most 1000 characters")
	}
	return validateSchedule(r.ScheduledStart, r.ScheduledEnd)
}
