package service

import (
	"context"
	"errors"
	"time"

	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrTaskNotFound = errors.New("task not found")
)

const (
	// DateLayout is the date-only format task scheduling uses.
	DateLayout = "2006-01-02"

	// streakLookbackDays bounds how far back the streak calculation walks.
	streakLookbackDays = 365
)

// --- Service Interface ---
type TaskService interface {
	// TodayTasks returns the user's tasks for today. On the first call of
	// the day the default checklist is seeded from the user's profile.
	TodayTasks(ctx context.Context, userID primitive.ObjectID) ([]domain.DailyTask, error)
	Toggle(ctx context.Context, userID, taskID primitive.ObjectID, completed bool) error
	// ReplaceForDate wipes the given day's tasks and installs a new set.
	ReplaceForDate(ctx context.Context, userID primitive.ObjectID, date string, tasks []domain.DailyTask) error
	// Streak counts consecutive days (ending today or yesterday) on which
	// the user completed at least one task.
	Streak(ctx context.Context, userID primitive.ObjectID) (int, error)
}

// taskService implements the TaskService interface.
type taskService struct {
	taskRepo    repository.TaskRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewTaskService creates a new instance of taskService.
func NewTaskService(taskRepo repository.TaskRepository, profileRepo repository.ProfileRepository) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// TodayTasks returns today's checklist, seeding defaults when empty.
func (s *taskService) TodayTasks(ctx context.Context, userID primitive.ObjectID) ([]domain.DailyTask, error) {
	today := s.now().UTC().Format(DateLayout)

	tasks, err := s.taskRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if len(tasks) > 0 {
		return tasks, nil
	}

	// First visit today: build the default checklist from the profile.
	// A missing profile still gets the generic set.
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	defaults := defaultTasksForProfile(profile)
	seeded := make([]domain.DailyTask, 0, len(defaults))
	for _, d := range defaults {
		seeded = append(seeded, domain.DailyTask{
			UserID:       userID,
			Title:        d.Title,
			Category:     d.Category,
			Completed:    false,
			ScheduledFor: today,
		})
	}
	if err := s.taskRepo.CreateMany(ctx, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// Toggle sets the completion flag on one of the user's tasks.
func (s *taskService) Toggle(ctx context.Context, userID, taskID primitive.ObjectID, completed bool) error {
	err := s.taskRepo.SetCompleted(ctx, userID, taskID, completed)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// ReplaceForDate atomically swaps a day's checklist, used when a generated
// plan supplies its own task list.
func (s *taskService) ReplaceForDate(ctx context.Context, userID primitive.ObjectID, date string, tasks []domain.DailyTask) error {
	if err := s.taskRepo.DeleteByUserAndDate(ctx, userID, date); err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].UserID = userID
		tasks[i].ScheduledFor = date
		tasks[i].Completed = false
	}
	return s.taskRepo.CreateMany(ctx, tasks)
}

// Streak reports the current consecutive-day completion streak.
func (s *taskService) Streak(ctx context.Context, userID primitive.ObjectID) (int, error) {
	dates, err := s.taskRepo.GetCompletedDates(ctx, userID, streakLookbackDays)
	if err != nil {
		return 0, err
	}
	return calculateStreak(dates, s.now().UTC()), nil
}

// calculateStreak walks backwards day by day from today, counting days with
// at least one completed task. A day without completions today does not
// break the streak yet; the walk then starts from yesterday.
func calculateStreak(completedDates []string, now time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(completedDates))
	for _, d := range completedDates {
		seen[d] = true
	}

	checkDate := now
	if !seen[checkDate.Format(DateLayout)] {
		checkDate = checkDate.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < streakLookbackDays; i++ {
		if !seen[checkDate.Format(DateLayout)] {
			break
		}
		streak++
		checkDate = checkDate.AddDate(0, 0, -1)
	}
	return streak
}

// taskTemplate is a title/category pair used for the seeded defaults.
type taskTemplate struct {
	Title    string
	Category domain.TaskCategory
}

// defaultTasksForProfile builds the default daily checklist, tuned by the
// user's workout experience and fitness goals.
func defaultTasksForProfile(profile *domain.Profile) []taskTemplate {
	defaults := []taskTemplate{
		// Core tasks everyone gets
		{Title: "Drink 8 glasses of water", Category: domain.CategoryHydration},
		{Title: "Posture check", Category: domain.CategoryPosture},
	}

	experience := domain.ExperienceBeginner
	if profile != nil && profile.WorkoutExperience != nil {
		experience = *profile.WorkoutExperience
	}
	switch experience {
	case domain.ExperienceIntermediate:
		defaults = append(defaults,
			taskTemplate{Title: "Morning warm-up", Category: domain.CategoryWorkout},
			taskTemplate{Title: "Workout session (45 min)", Category: domain.CategoryWorkout},
		)
	case domain.ExperienceAdvanced:
		defaults = append(defaults,
			taskTemplate{Title: "Morning mobility work", Category: domain.CategoryWorkout},
			taskTemplate{Title: "Training session (60 min)", Category: domain.CategoryWorkout},
		)
	default:
		defaults = append(defaults,
			taskTemplate{Title: "Morning stretches (10 min)", Category: domain.CategoryWorkout},
			taskTemplate{Title: "Light exercise (20 min)", Category: domain.CategoryWorkout},
		)
	}

	defaults = append(defaults,
		taskTemplate{Title: "Log breakfast", Category: domain.CategoryMeal},
		taskTemplate{Title: "Log lunch", Category: domain.CategoryMeal},
		taskTemplate{Title: "Log dinner", Category: domain.CategoryMeal},
	)

	var goals []string
	if profile != nil {
		goals = profile.FitnessGoals
	}
	hasGoal := func(goal string) bool {
		for _, g := range goals {
			if g == goal {
				return true
			}
		}
		return false
	}
	if hasGoal("weight_loss") {
		defaults = append(defaults, taskTemplate{Title: "Track calorie intake", Category: domain.CategoryHealth})
	}
	if hasGoal("muscle_gain") {
		defaults = append(defaults, taskTemplate{Title: "Hit protein target", Category: domain.CategoryMeal})
	}
	if hasGoal("better_sleep") {
		defaults = append(defaults, taskTemplate{Title: "Sleep by 10:30 PM", Category: domain.CategorySleep})
	}
	if hasGoal("stress_reduction") {
		defaults = append(defaults, taskTemplate{Title: "5 min meditation", Category: domain.CategoryHealth})
	}

	// Always include a sleep task
	hasSleep := false
	for _, d := range defaults {
		if d.Category == domain.CategorySleep {
			hasSleep = true
			break
		}
	}
	if !hasSleep {
		defaults = append(defaults, taskTemplate{Title: "Sleep by 10:30 PM", Category: domain.CategorySleep})
	}

	defaults = append(defaults, taskTemplate{Title: "Take vitamins", Category: domain.CategoryHealth})
	return defaults
}
