package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- Request Structs ---

// CompleteExerciseRequest carries the plan context alongside the index so
// plans never need server-side persistence.
type CompleteExerciseRequest struct {
	Workout       domain.WorkoutPlan `json:"workout" binding:"required"`
	ExerciseIndex *int               `json:"exerciseIndex" binding:"required"`
}

type CompleteMealRequest struct {
	Meals domain.MealPlan `json:"meals" binding:"required"`
	Slot  string          `json:"slot" binding:"required,oneof=breakfast lunch dinner"`
}

// --- Handler Methods ---

// Generate godoc
// @Summary Generate personalized daily plans
// @Description Asks the AI model for workout, meal, and sleep plans and replaces today's task list with the plan's suggestions.
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.GeneratedPlans
// @Failure 402 {object} gin.H "AI credits exhausted"
// @Failure 404 {object} gin.H "Profile not found"
// @Failure 429 {object} gin.H "Rate limited"
// @Failure 502 {object} gin.H "AI gateway failure"
// @Router /plans/generate [post]
func (h *PlanHandler) Generate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plans, err := h.planService.Generate(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithAIError(c, err, "Failed to generate plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// CompleteExercise godoc
// @Summary Log a completed exercise from the workout plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompleteExerciseRequest true "Workout plan and exercise index"
// @Success 201 "Logged"
// @Router /plans/workout/complete [post]
func (h *PlanHandler) CompleteExercise(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CompleteExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.planService.CompleteExercise(c.Request.Context(), userID, req.Workout, *req.ExerciseIndex)
	if err != nil {
		if errors.Is(err, service.ErrPlanItemOutOfRange) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log exercise")
		}
		return
	}
	c.Status(http.StatusCreated)
}

// CompleteMeal godoc
// @Summary Log an eaten meal from the meal plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompleteMealRequest true "Meal plan and slot"
// @Success 201 "Logged"
// @Router /plans/meals/complete [post]
func (h *PlanHandler) CompleteMeal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CompleteMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.planService.CompleteMeal(c.Request.Context(), userID, req.Meals, req.Slot)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMealSlot) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log meal")
		}
		return
	}
	c.Status(http.StatusCreated)
}
