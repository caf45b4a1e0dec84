package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "time-management.com/time-management/internal/data_models"
)

func ValidateCompleteTaskRequest(r *dto.CompleteTaskRequest) error {
	if r.ActualStart == nil || r.ActualEnd == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "actual_start and actual_end are required")
	}
	if r.ActualEnd.Before(*r.ActualStart) {
		return echo.NewHTTPError(http.StatusBadRequest, "actual_end must not be before actual_start")
	}
	return nil
}
