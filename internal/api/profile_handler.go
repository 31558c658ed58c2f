package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/health"
	"fitlife/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request Structs ---

// UpdateProfileRequest mirrors service.ProfileUpdate; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	FullName            *string                   `json:"fullName"`
	Age                 *int                      `json:"age"`
	Gender              *domain.Gender            `json:"gender"`
	HeightCm            *float64                  `json:"heightCm"`
	WeightKg            *float64                  `json:"weightKg"`
	BodyType            *domain.BodyType          `json:"bodyType"`
	DietaryRestrictions []string                  `json:"dietaryRestrictions"`
	Allergies           []string                  `json:"allergies"`
	EatingHabits        *domain.EatingHabits      `json:"eatingHabits"`
	ActivityLevel       *domain.ActivityLevel     `json:"activityLevel"`
	WorkoutExperience   *domain.WorkoutExperience `json:"workoutExperience"`
	Injuries            []string                  `json:"injuries"`
	FitnessGoals        []string                  `json:"fitnessGoals"`
	SleepHours          *float64                  `json:"sleepHours"`
	WorkSchedule        *domain.WorkSchedule      `json:"workSchedule"`
	StressLevel         *domain.StressLevel       `json:"stressLevel"`
	OnboardingStep      *int                      `json:"onboardingStep"`
	OnboardingCompleted *bool                     `json:"onboardingCompleted"`
}

type AvatarUploadRequest struct {
	ContentType string `json:"contentType"`
}

type AvatarUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type SetAvatarRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

// ProfileResponse adds display strings alongside the raw profile.
type ProfileResponse struct {
	*domain.Profile
	HeightDisplay string `json:"heightDisplay,omitempty"`
	WeightDisplay string `json:"weightDisplay,omitempty"`
}

func mapProfileToResponse(p *domain.Profile) ProfileResponse {
	resp := ProfileResponse{Profile: p}
	if p.HeightCm != nil {
		resp.HeightDisplay = health.FormatHeight(*p.HeightCm)
	}
	if p.WeightKg != nil {
		resp.WeightDisplay = health.FormatWeight(*p.WeightKg)
	}
	return resp
}

// --- Handler Methods ---

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} gin.H "Profile not found"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		}
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Applies a partial update, validates it, and recomputes derived health metrics.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} gin.H "Validation error"
// @Failure 404 {object} gin.H "Profile not found"
// @Router /profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	update := service.ProfileUpdate{
		FullName:            req.FullName,
		Age:                 req.Age,
		Gender:              req.Gender,
		HeightCm:            req.HeightCm,
		WeightKg:            req.WeightKg,
		BodyType:            req.BodyType,
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
		EatingHabits:        req.EatingHabits,
		ActivityLevel:       req.ActivityLevel,
		WorkoutExperience:   req.WorkoutExperience,
		Injuries:            req.Injuries,
		FitnessGoals:        req.FitnessGoals,
		SleepHours:          req.SleepHours,
		WorkSchedule:        req.WorkSchedule,
		StressLevel:         req.StressLevel,
		OnboardingStep:      req.OnboardingStep,
		OnboardingCompleted: req.OnboardingCompleted,
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}

// AvatarUploadURL godoc
// @Summary Request a presigned avatar upload URL
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AvatarUploadRequest true "Upload content type"
// @Success 200 {object} AvatarUploadResponse
// @Router /profile/avatar/upload-url [post]
func (h *ProfileHandler) AvatarUploadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	uploadURL, objectKey, err := h.profileService.AvatarUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}
	c.JSON(http.StatusOK, AvatarUploadResponse{UploadURL: uploadURL, ObjectKey: objectKey})
}

// SetAvatar godoc
// @Summary Confirm an uploaded avatar
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetAvatarRequest true "Uploaded object key"
// @Success 200 {object} ProfileResponse
// @Router /profile/avatar [put]
func (h *ProfileHandler) SetAvatar(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SetAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.SetAvatar(c.Request.Context(), userID, req.ObjectKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to set avatar")
		}
		return
	}
	c.JSON(http.StatusOK, mapProfileToResponse(profile))
}
