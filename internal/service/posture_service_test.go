package service

import (
	"testing"
	"time"

	"fitlife/fitness-api/internal/domain"
)

func assessmentAt(score int, at time.Time) domain.PostureAssessment {
	return domain.PostureAssessment{Score: score, AssessedAt: at}
}

func TestBuildPostureStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty history", func(t *testing.T) {
		stats := buildPostureStats(nil, now)

		if stats.TotalAssessments != 0 {
			t.Errorf("TotalAssessments = %d, want 0", stats.TotalAssessments)
		}
		if stats.LatestScore != nil || stats.Improvement != nil {
			t.Error("expected nil latest score and improvement for empty history")
		}
		if len(stats.WeeklyProgress) != 0 {
			t.Errorf("WeeklyProgress has %d entries, want 0", len(stats.WeeklyProgress))
		}
	})

	t.Run("single assessment", func(t *testing.T) {
		stats := buildPostureStats([]domain.PostureAssessment{
			assessmentAt(72, now.Add(-time.Hour)),
		}, now)

		if stats.LatestScore == nil || *stats.LatestScore != 72 {
			t.Errorf("LatestScore = %v, want 72", stats.LatestScore)
		}
		if stats.PreviousScore != nil || stats.Improvement != nil {
			t.Error("expected nil previous score and improvement with one assessment")
		}
		if stats.AverageScore != 72 || stats.BestScore != 72 {
			t.Errorf("average/best = %d/%d, want 72/72", stats.AverageScore, stats.BestScore)
		}
		if stats.LatestBand == nil || stats.LatestBand.Label != "Good" {
			t.Errorf("LatestBand = %+v, want Good", stats.LatestBand)
		}
	})

	t.Run("improvement from previous", func(t *testing.T) {
		stats := buildPostureStats([]domain.PostureAssessment{
			assessmentAt(80, now.Add(-1*time.Hour)),
			assessmentAt(65, now.Add(-25*time.Hour)),
			assessmentAt(50, now.Add(-49*time.Hour)),
		}, now)

		if stats.Improvement == nil || *stats.Improvement != 15 {
			t.Errorf("Improvement = %v, want 15", stats.Improvement)
		}
		if stats.AverageScore != 65 {
			t.Errorf("AverageScore = %d, want 65", stats.AverageScore)
		}
		if stats.BestScore != 80 {
			t.Errorf("BestScore = %d, want 80", stats.BestScore)
		}
	})
}

func TestWeeklyProgress(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assessments := []domain.PostureAssessment{
		assessmentAt(90, now.Add(-2*time.Hour)),    // today, newest
		assessmentAt(70, now.Add(-6*time.Hour)),    // today, older, must lose
		assessmentAt(60, now.Add(-26*time.Hour)),   // yesterday
		assessmentAt(40, now.Add(-9*24*time.Hour)), // outside the window
	}

	progress := weeklyProgress(assessments, now)

	if len(progress) != 2 {
		t.Fatalf("got %d entries, want 2", len(progress))
	}
	// Chronological: yesterday first, today second.
	if progress[0].Score != 60 {
		t.Errorf("first day score = %d, want 60", progress[0].Score)
	}
	if progress[1].Score != 90 {
		t.Errorf("second day score = %d, want 90 (newest per day wins)", progress[1].Score)
	}
	if progress[1].Date != "2025-06-15" {
		t.Errorf("second day date = %s, want 2025-06-15", progress[1].Date)
	}
}
