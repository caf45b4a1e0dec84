package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "time-management.com/time-management/internal/data_models"
)

func ValidateTagRequest(r *dto.TagRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if r.Color == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "color is required")
	}
	return nil
}
