package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fitlife/fitness-api/internal/ai"
	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/health"
	"fitlife/fitness-api/internal/posture"
	"fitlife/fitness-api/internal/repository"
	"fitlife/fitness-api/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrSnapshotRequired = errors.New("snapshot image is required")
)

const assessmentHistoryLimit = 50

// DailyScore is one point on the weekly posture progress chart.
type DailyScore struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// PostureStats summarizes a user's assessment history.
type PostureStats struct {
	TotalAssessments int                      `json:"totalAssessments"`
	AverageScore     int                      `json:"averageScore"`
	LatestScore      *int                     `json:"latestScore"`
	LatestBand       *health.ScoreDescription `json:"latestBand"`
	PreviousScore    *int                     `json:"previousScore"`
	Improvement      *int                     `json:"improvement"`
	BestScore        int                      `json:"bestScore"`
	WeeklyProgress   []DailyScore             `json:"weeklyProgress"`
}

// --- Service Interface ---
type PostureService interface {
	// SubmitQuestionnaire scores the self-assessment answers, derives
	// issues and recommendations, and records the assessment.
	SubmitQuestionnaire(ctx context.Context, userID primitive.ObjectID, answers map[string]string) (*domain.PostureAssessment, error)
	// AnalyzeSnapshot sends a camera frame to the AI model and records
	// the resulting assessment. Returns the model's detail text alongside.
	AnalyzeSnapshot(ctx context.Context, userID primitive.ObjectID, imageBase64 string) (*domain.PostureAssessment, string, error)
	History(ctx context.Context, userID primitive.ObjectID) ([]domain.PostureAssessment, *PostureStats, error)
	Questions() []posture.Question
	ExercisesForIssues(issues []string) []posture.Exercise
	TipsForScore(score int) []posture.Tip
}

// postureService implements the PostureService interface.
type postureService struct {
	assessmentRepo repository.AssessmentRepository
	profileRepo    repository.ProfileRepository
	aiClient       ai.Client
	fileStorage    storage.FileStorage
	now            func() time.Time
}

// NewPostureService creates a new instance of postureService. fileStorage
// may be nil; camera snapshots are then analyzed without being archived.
func NewPostureService(assessmentRepo repository.AssessmentRepository, profileRepo repository.ProfileRepository, aiClient ai.Client, fileStorage storage.FileStorage) PostureService {
	return &postureService{
		assessmentRepo: assessmentRepo,
		profileRepo:    profileRepo,
		aiClient:       aiClient,
		fileStorage:    fileStorage,
		now:            time.Now,
	}
}

// SubmitQuestionnaire handles a completed self-assessment.
func (s *postureService) SubmitQuestionnaire(ctx context.Context, userID primitive.ObjectID, answers map[string]string) (*domain.PostureAssessment, error) {
	score := posture.Score(answers)

	assessment := &domain.PostureAssessment{
		UserID:          userID,
		Score:           score,
		Issues:          posture.DeriveIssues(answers),
		Recommendations: posture.DeriveRecommendations(answers),
		AssessmentType:  domain.AssessmentSelf,
	}

	id, err := s.assessmentRepo.Create(ctx, assessment)
	if err != nil {
		return nil, err
	}
	assessment.ID = id

	s.updateProfileScore(ctx, userID, score)
	return assessment, nil
}

// AnalyzeSnapshot handles a camera-based assessment.
func (s *postureService) AnalyzeSnapshot(ctx context.Context, userID primitive.ObjectID, imageBase64 string) (*domain.PostureAssessment, string, error) {
	if imageBase64 == "" {
		return nil, "", ErrSnapshotRequired
	}

	analysis, err := s.aiClient.AnalyzePosture(ctx, imageBase64)
	if err != nil {
		return nil, "", err
	}

	assessment := &domain.PostureAssessment{
		UserID:          userID,
		Score:           analysis.Score,
		Issues:          analysis.Issues,
		Recommendations: analysis.Recommendations,
		AssessmentType:  domain.AssessmentCamera,
	}

	// Archive the analyzed frame. Failure here must not lose the
	// assessment itself.
	if s.fileStorage != nil {
		if key, err := s.archiveSnapshot(ctx, userID, imageBase64); err != nil {
			log.Printf("WARN: Failed to archive posture snapshot for user %s: %v", userID.Hex(), err)
		} else {
			assessment.SnapshotKey = key
		}
	}

	id, err := s.assessmentRepo.Create(ctx, assessment)
	if err != nil {
		return nil, "", err
	}
	assessment.ID = id

	s.updateProfileScore(ctx, userID, analysis.Score)
	return assessment, analysis.Details, nil
}

// History returns the most recent assessments plus aggregate stats.
func (s *postureService) History(ctx context.Context, userID primitive.ObjectID) ([]domain.PostureAssessment, *PostureStats, error) {
	assessments, err := s.assessmentRepo.GetByUserID(ctx, userID, assessmentHistoryLimit)
	if err != nil {
		return nil, nil, err
	}
	return assessments, buildPostureStats(assessments, s.now().UTC()), nil
}

func (s *postureService) Questions() []posture.Question {
	return posture.Questions
}

func (s *postureService) ExercisesForIssues(issues []string) []posture.Exercise {
	return posture.ExercisesForIssues(issues)
}

func (s *postureService) TipsForScore(score int) []posture.Tip {
	return posture.TipsForScore(score)
}

// archiveSnapshot decodes the base64 frame and writes it to object storage.
func (s *postureService) archiveSnapshot(ctx context.Context, userID primitive.ObjectID, imageBase64 string) (string, error) {
	// Frames may arrive as data URLs; strip the prefix before decoding.
	payload := imageBase64
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid snapshot encoding: %w", err)
	}

	key := fmt.Sprintf("posture-snapshots/%s/%s.jpg", userID.Hex(), uuid.NewString())
	if err := s.fileStorage.UploadObject(ctx, key, "image/jpeg", decoded); err != nil {
		return "", err
	}
	return key, nil
}

// updateProfileScore mirrors the latest score onto the profile so the
// dashboard can show it without loading assessment history.
func (s *postureService) updateProfileScore(ctx context.Context, userID primitive.ObjectID, score int) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("WARN: Failed to load profile for posture score update: %v", err)
		return
	}
	profile.PostureScore = score
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		log.Printf("WARN: Failed to update posture score for user %s: %v", userID.Hex(), err)
	}
}

// buildPostureStats aggregates assessment history. Input must be sorted
// newest first, which is what the repository returns.
func buildPostureStats(assessments []domain.PostureAssessment, now time.Time) *PostureStats {
	stats := &PostureStats{
		TotalAssessments: len(assessments),
		WeeklyProgress:   weeklyProgress(assessments, now),
	}
	if len(assessments) == 0 {
		return stats
	}

	sum := 0
	best := 0
	for _, a := range assessments {
		sum += a.Score
		if a.Score > best {
			best = a.Score
		}
	}
	stats.AverageScore = int(float64(sum)/float64(len(assessments)) + 0.5)
	stats.BestScore = best

	latest := assessments[0].Score
	stats.LatestScore = &latest
	band := health.GetPostureScoreDescription(latest)
	stats.LatestBand = &band
	if len(assessments) >= 2 {
		previous := assessments[1].Score
		stats.PreviousScore = &previous
		improvement := latest - previous
		stats.Improvement = &improvement
	}
	return stats
}

// weeklyProgress keeps the newest score per day over the last 7 days,
// oldest day first.
func weeklyProgress(assessments []domain.PostureAssessment, now time.Time) []DailyScore {
	weekAgo := now.Add(-7 * 24 * time.Hour)

	daily := make(map[string]int)
	order := make([]string, 0)
	for _, a := range assessments {
		if a.AssessedAt.Before(weekAgo) || a.AssessedAt.After(now) {
			continue
		}
		dateKey := a.AssessedAt.UTC().Format(DateLayout)
		if _, exists := daily[dateKey]; exists {
			continue // newest-first input: first hit per day wins
		}
		daily[dateKey] = a.Score
		order = append(order, dateKey)
	}

	progress := make([]DailyScore, 0, len(order))
	for _, dateKey := range order {
		progress = append(progress, DailyScore{Date: dateKey, Score: daily[dateKey]})
	}
	// Reverse to chronological order.
	for i, j := 0, len(progress)-1; i < j; i, j = i+1, j-1 {
		progress[i], progress[j] = progress[j], progress[i]
	}
	return progress
}
