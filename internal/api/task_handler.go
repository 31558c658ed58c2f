package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitlife/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskHandler holds the task service dependency.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type ToggleTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// TodayTasks godoc
// @Summary Get today's task checklist
// @Description Returns today's tasks, seeding the default checklist on the first call of the day.
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.DailyTask
// @Router /tasks/today [get]
func (h *TaskHandler) TodayTasks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.TodayTasks(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load today's tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ToggleTask godoc
// @Summary Toggle a task's completion flag
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Param request body ToggleTaskRequest true "Completion state"
// @Success 204 "Updated"
// @Failure 404 {object} gin.H "Task not found"
// @Router /tasks/{taskId} [patch]
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	taskID, err := primitive.ObjectIDFromHex(c.Param("taskId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req ToggleTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.taskService.Toggle(c.Request.Context(), userID, taskID, *req.Completed); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update task")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Streak godoc
// @Summary Get the current daily completion streak
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "streak count"
// @Router /tasks/streak [get]
func (h *TaskHandler) Streak(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	streak, err := h.taskService.Streak(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to calculate streak")
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
