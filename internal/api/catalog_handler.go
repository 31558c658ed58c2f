package api

import (
	"net/http"

	"fitlife/fitness-api/internal/health"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static onboarding option catalogs.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Options godoc
// @Summary Get the onboarding option catalogs
// @Description Body types, activity levels, dietary restrictions, allergies, and fitness goals as shown during onboarding.
// @Tags Catalog
// @Produce json
// @Success 200 {object} gin.H
// @Router /catalog/options [get]
func (h *CatalogHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"bodyTypes":           health.BodyTypes,
		"activityLevels":      health.ActivityLevels,
		"dietaryRestrictions": health.DietaryRestrictions,
		"commonAllergies":     health.CommonAllergies,
		"fitnessGoals":        health.FitnessGoals,
	})
}
