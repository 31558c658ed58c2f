package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"fitlife/fitness-api/internal/ai"
	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/service"

	"github.com/gin-gonic/gin"
)

// PostureHandler holds the posture service dependency.
type PostureHandler struct {
	postureService service.PostureService
}

// NewPostureHandler creates a new PostureHandler.
func NewPostureHandler(postureService service.PostureService) *PostureHandler {
	return &PostureHandler{postureService: postureService}
}

// --- Request/Response Structs ---

type QuestionnaireRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

type AnalyzeSnapshotRequest struct {
	Image string `json:"image" binding:"required"` // base64, optionally a data URL
}

type AnalyzeSnapshotResponse struct {
	Assessment *domain.PostureAssessment `json:"assessment"`
	Details    string                    `json:"details,omitempty"`
}

type HistoryResponse struct {
	Assessments []domain.PostureAssessment `json:"assessments"`
	Stats       *service.PostureStats      `json:"stats"`
}

type ExercisesRequest struct {
	Issues []string `json:"issues"`
}

// --- Handler Methods ---

// Questions godoc
// @Summary Get the self-assessment questionnaire
// @Tags Posture
// @Produce json
// @Security BearerAuth
// @Success 200 {array} posture.Question
// @Router /posture/questions [get]
func (h *PostureHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.postureService.Questions())
}

// SubmitQuestionnaire godoc
// @Summary Submit self-assessment answers
// @Description Scores the answers, derives issues and recommendations, and records the assessment.
// @Tags Posture
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuestionnaireRequest true "Question ID to option value map"
// @Success 201 {object} domain.PostureAssessment
// @Router /posture/questionnaire [post]
func (h *PostureHandler) SubmitQuestionnaire(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	assessment, err := h.postureService.SubmitQuestionnaire(c.Request.Context(), userID, req.Answers)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save assessment")
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

// AnalyzeSnapshot godoc
// @Summary Analyze a camera snapshot with AI
// @Tags Posture
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AnalyzeSnapshotRequest true "Base64 encoded frame"
// @Success 201 {object} AnalyzeSnapshotResponse
// @Failure 402 {object} gin.H "AI credits exhausted"
// @Failure 429 {object} gin.H "Rate limited"
// @Failure 502 {object} gin.H "AI gateway failure"
// @Router /posture/analyze [post]
func (h *PostureHandler) AnalyzeSnapshot(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req AnalyzeSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	assessment, details, err := h.postureService.AnalyzeSnapshot(c.Request.Context(), userID, req.Image)
	if err != nil {
		abortWithAIError(c, err, "Failed to analyze posture")
		return
	}
	c.JSON(http.StatusCreated, AnalyzeSnapshotResponse{Assessment: assessment, Details: details})
}

// History godoc
// @Summary Get assessment history and statistics
// @Tags Posture
// @Produce json
// @Security BearerAuth
// @Success 200 {object} HistoryResponse
// @Router /posture/history [get]
func (h *PostureHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	assessments, stats, err := h.postureService.History(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load assessment history")
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{Assessments: assessments, Stats: stats})
}

// Exercises godoc
// @Summary Get corrective exercises for posture issues
// @Tags Posture
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExercisesRequest true "Detected issues"
// @Success 200 {array} posture.Exercise
// @Router /posture/exercises [post]
func (h *PostureHandler) Exercises(c *gin.Context) {
	var req ExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	c.JSON(http.StatusOK, h.postureService.ExercisesForIssues(req.Issues))
}

// Tips godoc
// @Summary Get posture tips for a score
// @Tags Posture
// @Produce json
// @Security BearerAuth
// @Param score query int true "Posture score 0-100"
// @Success 200 {array} posture.Tip
// @Router /posture/tips [get]
func (h *PostureHandler) Tips(c *gin.Context) {
	score, err := strconv.Atoi(c.Query("score"))
	if err != nil || score < 0 || score > 100 {
		abortWithError(c, http.StatusBadRequest, "score must be an integer between 0 and 100")
		return
	}
	c.JSON(http.StatusOK, h.postureService.TipsForScore(score))
}

// abortWithAIError maps AI client errors onto HTTP statuses shared by the
// posture and plan endpoints.
func abortWithAIError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		abortWithError(c, http.StatusTooManyRequests, "Rate limit exceeded, please try again later")
	case errors.Is(err, ai.ErrQuotaExhausted):
		abortWithError(c, http.StatusPaymentRequired, "AI credits exhausted, please add credits to continue")
	case errors.Is(err, ai.ErrMalformedResponse), errors.Is(err, ai.ErrUnavailable):
		abortWithError(c, http.StatusBadGateway, "AI service is unavailable, please try again")
	case errors.Is(err, service.ErrSnapshotRequired):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
