package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"time-management.com/time-management/internal/constants"
	dto "time-management.com/time-management/internal/data_models"
	apperrors "time-management.com/time-management/internal/errors"
	middleware "time-management.com/time-management/internal/http/middlewares"
	"time-management.com/time-management/internal/http/validators"
	"time-management.com/time-management/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	tagService  *services.TagService
	authService *services.AuthService
	userService *services.UserService
}

func NewHandler(
	taskService *services.TaskService,
	tagService *services.TagService,
	authService *services.AuthService,
	userService *services.UserService,
) *Handler {
	return &Handler{
		taskService: taskService,
		tagService:  tagService,
		authService: authService,
		userService: userService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), middleware.CallerID(c), req)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTaskByID(c.Request().Context(), middleware.CallerID(c), id)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) GetMyTasks(c echo.Context) error {
	tasks, err := h.taskService.ListMine(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetAssignedTasks(c echo.Context) error {
	tasks, err := h.taskService.ListAssigned(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetAllTasks(c echo.Context) error {
	tasks, err := h.taskService.ListAll(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return asHTTPError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), middleware.CallerID(c), id, req)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), middleware.CallerID(c), id); err != nil {
		return asHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AssignTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.AssignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateAssignTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.AssignTask(c.Request().Context(), middleware.CallerID(c), id, req.AssigneeEmail)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) AcceptRejectTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.AcceptRejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.AcceptRejectTask(c.Request().Context(), middleware.CallerID(c), id, req)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.UpdateTaskStatus(
		c.Request().Context(), middleware.CallerID(c), id, constants.TaskStatus(req.Status),
	)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CompleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.CompleteTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCompleteTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CompleteTask(c.Request().Context(), middleware.CallerID(c), id, req)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ApproveRejectTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req dto.ApproveRejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.ApproveRejectTask(c.Request().Context(), middleware.CallerID(c), id, req)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) GetTaskHistory(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	history, err := h.taskService.GetTaskHistory(c.Request().Context(), middleware.CallerID(c), id)
	if err != nil {
		return asHTTPError(err)
	}

	return c.JSON(http.StatusOK, history)
}

func taskID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, asHTTPError(apperrors.ErrTaskIDRequired)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "task id must be a positive integer")
	}
	return uint(id), nil
}

func asHTTPError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}
