package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	weightHistoryLimit  = 100
	defaultCalorieGoal  = 2000
	workoutHistoryLimit = 200
)

var weekDayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeightProgress is the weight history plus trend summary.
type WeightProgress struct {
	Logs          []domain.WeightLog `json:"logs"`
	Change        *float64           `json:"change"`        // kg delta, latest minus first
	ChangePercent *string            `json:"changePercent"` // formatted to one decimal
}

// WorkoutDay is one bar on the weekly workout chart.
type WorkoutDay struct {
	Day     string `json:"day"`
	Minutes int    `json:"minutes"`
}

// WorkoutProgress summarizes workout activity.
type WorkoutProgress struct {
	Logs              []domain.WorkoutLog `json:"logs"`
	WeeklyMinutes     [7]WorkoutDay       `json:"weeklyMinutes"`
	TotalWorkouts     int                 `json:"totalWorkouts"`
	ThisMonthWorkouts int                 `json:"thisMonthWorkouts"`
}

// MealDay is one bar on the weekly calories chart.
type MealDay struct {
	Day      string `json:"day"`
	Consumed int    `json:"consumed"`
	Goal     int    `json:"goal"`
}

// MealProgress summarizes calorie intake for the current week.
type MealProgress struct {
	Logs           []domain.MealLog `json:"logs"`
	WeeklyCalories [7]MealDay       `json:"weeklyCalories"`
}

// --- Service Interface ---
type ProgressService interface {
	LogWeight(ctx context.Context, userID primitive.ObjectID, weightKg float64) (*domain.WeightLog, error)
	WeightHistory(ctx context.Context, userID primitive.ObjectID) (*WeightProgress, error)
	WorkoutHistory(ctx context.Context, userID primitive.ObjectID) (*WorkoutProgress, error)
	MealHistory(ctx context.Context, userID primitive.ObjectID) (*MealProgress, error)
}

// progressService implements the ProgressService interface.
type progressService struct {
	weightRepo  repository.WeightLogRepository
	workoutRepo repository.WorkoutLogRepository
	mealRepo    repository.MealLogRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(weightRepo repository.WeightLogRepository, workoutRepo repository.WorkoutLogRepository, mealRepo repository.MealLogRepository, profileRepo repository.ProfileRepository) ProgressService {
	return &progressService{
		weightRepo:  weightRepo,
		workoutRepo: workoutRepo,
		mealRepo:    mealRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// LogWeight records a new weight measurement and mirrors it onto the
// profile so derived metrics stay current.
func (s *progressService) LogWeight(ctx context.Context, userID primitive.ObjectID, weightKg float64) (*domain.WeightLog, error) {
	if weightKg < 10 || weightKg > 500 {
		return nil, fmt.Errorf("%w: weight must be between 10 and 500 kg", ErrProfileValidation)
	}

	entry := &domain.WeightLog{
		UserID:   userID,
		WeightKg: weightKg,
	}
	id, err := s.weightRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		profile.WeightKg = &weightKg
		recomputeHealthMetrics(profile)
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return entry, nil
}

// WeightHistory returns the weight logs oldest first with trend summary.
func (s *progressService) WeightHistory(ctx context.Context, userID primitive.ObjectID) (*WeightProgress, error) {
	logs, err := s.weightRepo.GetByUserID(ctx, userID, weightHistoryLimit)
	if err != nil {
		return nil, err
	}

	// Repository returns newest first; charts want chronological order.
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}

	progress := &WeightProgress{Logs: logs}
	if len(logs) > 0 {
		first := logs[0].WeightKg
		latest := logs[len(logs)-1].WeightKg
		change := latest - first
		progress.Change = &change
		if first != 0 {
			percent := fmt.Sprintf("%.1f", change/first*100)
			progress.ChangePercent = &percent
		}
	}
	return progress, nil
}

// WorkoutHistory returns workout logs plus this week's per-day minutes.
func (s *progressService) WorkoutHistory(ctx context.Context, userID primitive.ObjectID) (*WorkoutProgress, error) {
	now := s.now().UTC()
	logs, err := s.workoutRepo.GetByUserID(ctx, userID, workoutHistoryLimit)
	if err != nil {
		return nil, err
	}

	// Repository returns newest first; charts want chronological order.
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}

	progress := &WorkoutProgress{
		Logs:          logs,
		TotalWorkouts: len(logs),
	}
	for i, label := range weekDayLabels {
		progress.WeeklyMinutes[i].Day = label
	}

	weekStart := startOfWeek(now)
	for _, log := range logs {
		completed := log.CompletedAt.UTC()
		if !completed.Before(weekStart) {
			progress.WeeklyMinutes[int(completed.Weekday())].Minutes += log.DurationMinutes
		}
		if completed.Month() == now.Month() && completed.Year() == now.Year() {
			progress.ThisMonthWorkouts++
		}
	}
	return progress, nil
}

// MealHistory returns meal logs plus this week's per-day calories against
// the user's daily goal.
func (s *progressService) MealHistory(ctx context.Context, userID primitive.ObjectID) (*MealProgress, error) {
	now := s.now().UTC()
	weekStart := startOfWeek(now)

	logs, err := s.mealRepo.GetByUserSince(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}

	goal := defaultCalorieGoal
	if profile, err := s.profileRepo.GetByUserID(ctx, userID); err == nil && profile.DailyCalorieGoal != nil {
		goal = *profile.DailyCalorieGoal
	}

	progress := &MealProgress{Logs: logs}
	for i, label := range weekDayLabels {
		progress.WeeklyCalories[i].Day = label
		progress.WeeklyCalories[i].Goal = goal
	}
	for _, log := range logs {
		logged := log.LoggedAt.UTC()
		if !logged.Before(weekStart) {
			progress.WeeklyCalories[int(logged.Weekday())].Consumed += log.Calories
		}
	}
	return progress, nil
}

// startOfWeek returns midnight on the Sunday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

