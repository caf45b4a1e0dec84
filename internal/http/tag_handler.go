package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "time-management.com/time-management/internal/data_models"
	"time-management.com/time-management/internal/http/validators"
)

func (h *Handler) ListTags(c echo.Context) error {
	tags, err := h.tagService.ListTags(c.Request().Context())
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, tags)
}

func (h *Handler) GetTag(c echo.Context) error {
	id, err := tagID(c)
	if err != nil {
		return err
	}

	tag, err := h.tagService.GetTagByID(c.Request().Context(), id)
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *Handler) CreateTag(c echo.Context) error {
	var req dto.TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTagRequest(&req); err != nil {
		return err
	}

	tag, err := h.tagService.CreateTag(c.Request().Context(), req)
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusCreated, tag)
}

func (h *Handler) UpdateTag(c echo.Context) error {
	id, err := tagID(c)
	if err != nil {
		return err
	}

	var req dto.TagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTagRequest(&req); err != nil {
		return err
	}

	tag, err := h.tagService.UpdateTag(c.Request().Context(), id, req)
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *Handler) DeleteTag(c echo.Context) error {
	id, err := tagID(c)
	if err != nil {
		return err
	}

	if err := h.tagService.DeleteTag(c.Request().Context(), id); err != nil {
		return asHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func tagID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "tag id must be a positive integer")
	}
	return uint(id), nil
}
