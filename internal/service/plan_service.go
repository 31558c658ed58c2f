package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"fitlife/fitness-api/internal/ai"
	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanItemOutOfRange = errors.New("plan item index out of range")
	ErrUnknownMealSlot    = errors.New("unknown meal slot")
)

// defaultExerciseMinutes is logged when an exercise has no parseable
// duration.
const defaultExerciseMinutes = 5

// --- Service Interface ---
type PlanService interface {
	// Generate asks the AI model for a fresh set of plans based on the
	// user's profile and replaces today's task list with the plan's
	// suggested tasks.
	Generate(ctx context.Context, userID primitive.ObjectID) (*domain.GeneratedPlans, error)
	// CompleteExercise records one finished exercise from the workout
	// plan as a workout log entry.
	CompleteExercise(ctx context.Context, userID primitive.ObjectID, workout domain.WorkoutPlan, exerciseIndex int) error
	// CompleteMeal records one eaten meal from the meal plan as a meal
	// log entry. Slot is breakfast, lunch, or dinner.
	CompleteMeal(ctx context.Context, userID primitive.ObjectID, meals domain.MealPlan, slot string) error
}

// planService implements the PlanService interface.
type planService struct {
	aiClient    ai.Client
	profileRepo repository.ProfileRepository
	taskService TaskService
	workoutRepo repository.WorkoutLogRepository
	mealRepo    repository.MealLogRepository
	now         func() time.Time
}

// NewPlanService creates a new instance of planService.
func NewPlanService(aiClient ai.Client, profileRepo repository.ProfileRepository, taskService TaskService, workoutRepo repository.WorkoutLogRepository, mealRepo repository.MealLogRepository) PlanService {
	return &planService{
		aiClient:    aiClient,
		profileRepo: profileRepo,
		taskService: taskService,
		workoutRepo: workoutRepo,
		mealRepo:    mealRepo,
		now:         time.Now,
	}
}

// Generate produces new plans and installs their suggested daily tasks.
func (s *planService) Generate(ctx context.Context, userID primitive.ObjectID) (*domain.GeneratedPlans, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	plans, err := s.aiClient.GeneratePlans(ctx, profile)
	if err != nil {
		return nil, err
	}

	if len(plans.DailyTasks) > 0 {
		today := s.now().UTC().Format(DateLayout)
		tasks := make([]domain.DailyTask, 0, len(plans.DailyTasks))
		for _, suggestion := range plans.DailyTasks {
			tasks = append(tasks, domain.DailyTask{
				Title:    suggestion.Title,
				Category: suggestion.Category,
			})
		}
		if err := s.taskService.ReplaceForDate(ctx, userID, today, tasks); err != nil {
			return nil, err
		}
	}

	return plans, nil
}

// CompleteExercise logs a single exercise from the day's workout plan.
// Calories are split evenly across the plan's exercises.
func (s *planService) CompleteExercise(ctx context.Context, userID primitive.ObjectID, workout domain.WorkoutPlan, exerciseIndex int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(workout.Exercises) {
		return ErrPlanItemOutOfRange
	}
	exercise := workout.Exercises[exerciseIndex]

	caloriesPer := 0
	if n := len(workout.Exercises); n > 0 {
		caloriesPer = int(workout.Calories/float64(n) + 0.5)
	}

	entry := &domain.WorkoutLog{
		UserID:          userID,
		WorkoutType:     "daily_plan",
		DurationMinutes: parseDurationMinutes(exercise.Duration),
		CaloriesBurned:  caloriesPer,
		Exercises: []domain.LoggedExercise{
			{Name: exercise.Name, Sets: exercise.Sets, Duration: exercise.Duration},
		},
	}
	_, err := s.workoutRepo.Create(ctx, entry)
	return err
}

// CompleteMeal logs one of the plan's meals.
func (s *planService) CompleteMeal(ctx context.Context, userID primitive.ObjectID, meals domain.MealPlan, slot string) error {
	var item domain.MealItem
	switch slot {
	case "breakfast":
		item = meals.Breakfast
	case "lunch":
		item = meals.Lunch
	case "dinner":
		item = meals.Dinner
	default:
		return ErrUnknownMealSlot
	}

	entry := &domain.MealLog{
		UserID:    userID,
		MealType:  slot,
		FoodItems: []domain.FoodItem{{Name: item.Meal}},
		Calories:  int(item.Calories + 0.5),
		ProteinG:  item.Protein,
		CarbsG:    item.Carbs,
		FatG:      item.Fat,
	}
	_, err := s.mealRepo.Create(ctx, entry)
	return err
}

// parseDurationMinutes pulls the leading integer out of a duration string
// like "15 mins". Anything unparseable falls back to the default.
func parseDurationMinutes(duration string) int {
	trimmed := strings.TrimSpace(duration)
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == 0 {
		return defaultExerciseMinutes
	}
	minutes, err := strconv.Atoi(trimmed[:end])
	if err != nil || minutes <= 0 {
		return defaultExerciseMinutes
	}
	return minutes
}
