package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitlife/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler holds the progress service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

type LogWeightRequest struct {
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
}

// LogWeight godoc
// @Summary Record a weight measurement
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogWeightRequest true "Weight in kilograms"
// @Success 201 {object} domain.WeightLog
// @Failure 400 {object} gin.H "Validation error"
// @Router /progress/weight [post]
func (h *ProgressHandler) LogWeight(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req LogWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.progressService.LogWeight(c.Request.Context(), userID, req.WeightKg)
	if err != nil {
		if errors.Is(err, service.ErrProfileValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log weight")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// WeightHistory godoc
// @Summary Get weight history with trend summary
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.WeightProgress
// @Router /progress/weight [get]
func (h *ProgressHandler) WeightHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	progress, err := h.progressService.WeightHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load weight history")
		return
	}
	c.JSON(http.StatusOK, progress)
}

// WorkoutHistory godoc
// @Summary Get workout history with weekly minutes
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.WorkoutProgress
// @Router /progress/workouts [get]
func (h *ProgressHandler) WorkoutHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	progress, err := h.progressService.WorkoutHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workout history")
		return
	}
	c.JSON(http.StatusOK, progress)
}

// MealHistory godoc
// @Summary Get meal history with weekly calories
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.MealProgress
// @Router /progress/meals [get]
func (h *ProgressHandler) MealHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	progress, err := h.progressService.MealHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load meal history")
		return
	}
	c.JSON(http.StatusOK, progress)
}
