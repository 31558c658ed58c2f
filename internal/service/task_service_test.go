package service

import (
	"testing"
	"time"

	"fitlife/fitness-api/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}

func TestCalculateStreak(t *testing.T) {
	now := "2025-06-15"

	tests := []struct {
		name      string
		completed []string
		want      int
	}{
		{
			name:      "no completions",
			completed: nil,
			want:      0,
		},
		{
			name:      "single completion today",
			completed: []string{"2025-06-15"},
			want:      1,
		},
		{
			name:      "three consecutive days ending today",
			completed: []string{"2025-06-15", "2025-06-14", "2025-06-13"},
			want:      3,
		},
		{
			name:      "today missing still counts from yesterday",
			completed: []string{"2025-06-14", "2025-06-13"},
			want:      2,
		},
		{
			name:      "gap two days ago breaks streak",
			completed: []string{"2025-06-15", "2025-06-13", "2025-06-12"},
			want:      1,
		},
		{
			name:      "last completion two days ago means no streak",
			completed: []string{"2025-06-13", "2025-06-12"},
			want:      0,
		},
		{
			name:      "duplicate dates count once",
			completed: []string{"2025-06-15", "2025-06-15", "2025-06-14"},
			want:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateStreak(tt.completed, date(t, now))
			if got != tt.want {
				t.Errorf("calculateStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDefaultTasksForProfile(t *testing.T) {
	countCategory := func(tasks []taskTemplate, c domain.TaskCategory) int {
		n := 0
		for _, task := range tasks {
			if task.Category == c {
				n++
			}
		}
		return n
	}
	hasTitle := func(tasks []taskTemplate, title string) bool {
		for _, task := range tasks {
			if task.Title == title {
				return true
			}
		}
		return false
	}

	t.Run("nil profile gets beginner defaults", func(t *testing.T) {
		tasks := defaultTasksForProfile(nil)

		if !hasTitle(tasks, "Morning stretches (10 min)") {
			t.Error("expected beginner workout task for nil profile")
		}
		if countCategory(tasks, domain.CategoryMeal) != 3 {
			t.Errorf("meal tasks = %d, want 3", countCategory(tasks, domain.CategoryMeal))
		}
		if countCategory(tasks, domain.CategorySleep) != 1 {
			t.Errorf("sleep tasks = %d, want 1", countCategory(tasks, domain.CategorySleep))
		}
		if !hasTitle(tasks, "Take vitamins") {
			t.Error("expected vitamins task")
		}
	})

	t.Run("advanced experience swaps workout tasks", func(t *testing.T) {
		exp := domain.ExperienceAdvanced
		tasks := defaultTasksForProfile(&domain.Profile{WorkoutExperience: &exp})

		if !hasTitle(tasks, "Training session (60 min)") {
			t.Error("expected advanced training task")
		}
		if hasTitle(tasks, "Light exercise (20 min)") {
			t.Error("beginner task should not appear for advanced users")
		}
	})

	t.Run("goal tasks appended once", func(t *testing.T) {
		tasks := defaultTasksForProfile(&domain.Profile{
			FitnessGoals: []string{"weight_loss", "muscle_gain", "better_sleep", "stress_reduction"},
		})

		for _, title := range []string{"Track calorie intake", "Hit protein target", "Sleep by 10:30 PM", "5 min meditation"} {
			if !hasTitle(tasks, title) {
				t.Errorf("missing goal task %q", title)
			}
		}
		// The better_sleep goal already added a sleep task; the
		// fallback must not add a second one.
		if countCategory(tasks, domain.CategorySleep) != 1 {
			t.Errorf("sleep tasks = %d, want 1", countCategory(tasks, domain.CategorySleep))
		}
	})
}
