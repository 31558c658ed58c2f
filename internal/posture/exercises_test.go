package posture

import "testing"

func exerciseIDs(exercises []Exercise) []string {
	ids := make([]string, len(exercises))
	for i, ex := range exercises {
		ids[i] = ex.ID
	}
	return ids
}

func assertContainsID(t *testing.T, exercises []Exercise, id string) {
	t.Helper()
	for _, ex := range exercises {
		if ex.ID == id {
			return
		}
	}
	t.Errorf("expected exercise %q in %v", id, exerciseIDs(exercises))
}

func TestExercisesForIssues(t *testing.T) {
	t.Run("rounded shoulders matches its group", func(t *testing.T) {
		got := ExercisesForIssues([]string{"rounded shoulders"})
		assertContainsID(t, got, "doorway_stretch")
		assertContainsID(t, got, "wall_angels")
		assertContainsID(t, got, "band_pull_aparts")
	})

	t.Run("AI phrasing matches by containment", func(t *testing.T) {
		// "slight forward head tilt detected" contains the "forward head" key.
		got := ExercisesForIssues([]string{"slight forward head tilt detected"})
		assertContainsID(t, got, "chin_tucks")
		assertContainsID(t, got, "neck_stretches")
	})

	t.Run("first word matches key prefix", func(t *testing.T) {
		// First word "neck" is contained in the "neck" key even though the
		// full issue string matches nothing.
		got := ExercisesForIssues([]string{"neck discomfort when reading"})
		assertContainsID(t, got, "levator_scapulae_stretch")
	})

	t.Run("no duplicates across overlapping issues", func(t *testing.T) {
		got := ExercisesForIssues([]string{"rounded shoulders", "very rounded shoulders"})
		seen := map[string]bool{}
		for _, ex := range got {
			if seen[ex.ID] {
				t.Errorf("duplicate exercise %q", ex.ID)
			}
			seen[ex.ID] = true
		}
	})

	t.Run("capped at six", func(t *testing.T) {
		got := ExercisesForIssues([]string{
			"forward head", "rounded shoulders", "slouching", "lower back", "tight shoulders",
		})
		if len(got) != 6 {
			t.Errorf("len = %d, want 6", len(got))
		}
		// First-seen order: forward head group comes first.
		if got[0].ID != "chin_tucks" {
			t.Errorf("first exercise = %q, want chin_tucks", got[0].ID)
		}
	})

	t.Run("empty input falls back to poor posture group", func(t *testing.T) {
		got := ExercisesForIssues(nil)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2 (fallback group)", len(got))
		}
		assertContainsID(t, got, "thoracic_extension")
		assertContainsID(t, got, "plank")
	})

	t.Run("unmatched issue falls back, never empty", func(t *testing.T) {
		got := ExercisesForIssues([]string{"scoliosis curvature"})
		if len(got) == 0 {
			t.Fatal("expected fallback exercises, got none")
		}
		assertContainsID(t, got, "thoracic_extension")
	})
}

func TestTipsForScore(t *testing.T) {
	tests := []struct {
		name           string
		score          int
		wantCategories map[TipCategory]int
	}{
		{
			name:           "low score biases workspace and habit",
			score:          30,
			wantCategories: map[TipCategory]int{TipWorkspace: 3, TipHabit: 1},
		},
		{
			name:           "medium score mixes categories",
			score:          60,
			wantCategories: map[TipCategory]int{TipHabit: 2, TipStretch: 1, TipStrength: 1},
		},
		{
			name:           "high score gets maintenance tips",
			score:          90,
			wantCategories: map[TipCategory]int{TipStretch: 2, TipStrength: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TipsForScore(tt.score)
			if len(got) > 4 {
				t.Fatalf("len = %d, want <= 4", len(got))
			}
			counts := map[TipCategory]int{}
			for _, tip := range got {
				counts[tip.Category]++
			}
			for cat, want := range tt.wantCategories {
				if counts[cat] != want {
					t.Errorf("category %s count = %d, want %d (tips %v)", cat, counts[cat], want, got)
				}
			}
		})
	}
}
