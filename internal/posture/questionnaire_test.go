package posture

import "testing"

// answersWithScore builds a full answer set by picking, per question, the
// first option carrying the given point value.
func answersWithScore(t *testing.T, points int) map[string]string {
	t.Helper()
	answers := map[string]string{}
	for _, q := range Questions {
		for _, o := range q.Options {
			if o.Score == points {
				answers[q.ID] = o.Value
				break
			}
		}
		if _, ok := answers[q.ID]; !ok {
			t.Fatalf("question %s has no option worth %d points", q.ID, points)
		}
	}
	return answers
}

// lowestAnswers picks each question's minimum-score option. The minima
// are not uniform: monitor_position bottoms out at 2, the rest at 1.
func lowestAnswers() map[string]string {
	answers := map[string]string{}
	for _, q := range Questions {
		min := q.Options[0]
		for _, o := range q.Options[1:] {
			if o.Score < min.Score {
				min = o
			}
		}
		answers[q.ID] = min.Value
	}
	return answers
}

func TestScore(t *testing.T) {
	t.Run("all lowest options", func(t *testing.T) {
		// 1+1+1+2+1 = 6 -> round(6/50*100) = 12.
		answers := lowestAnswers()
		if got := Score(answers); got != 12 {
			t.Errorf("Score() = %d, want 12", got)
		}
	})

	t.Run("all highest options", func(t *testing.T) {
		answers := answersWithScore(t, 10)
		if got := Score(answers); got != 100 {
			t.Errorf("Score() = %d, want 100", got)
		}
	})

	t.Run("empty questionnaire", func(t *testing.T) {
		if got := Score(map[string]string{}); got != 0 {
			t.Errorf("Score() = %d, want 0", got)
		}
	})

	t.Run("unanswered questions still count in denominator", func(t *testing.T) {
		// Two perfect answers out of five questions: 20/50 -> 40, not 100.
		answers := map[string]string{
			"sitting_hours": "less_than_4",
			"back_pain":     "never",
		}
		if got := Score(answers); got != 40 {
			t.Errorf("Score() = %d, want 40", got)
		}
	})

	t.Run("unknown option value contributes nothing", func(t *testing.T) {
		answers := map[string]string{"sitting_hours": "bogus"}
		if got := Score(answers); got != 0 {
			t.Errorf("Score() = %d, want 0", got)
		}
	})

	t.Run("mixed answers round to nearest", func(t *testing.T) {
		// 10+7+4+6+1 = 28 -> 28/50*100 = 56.
		answers := map[string]string{
			"sitting_hours":    "less_than_4",
			"back_pain":        "rarely",
			"neck_pain":        "sometimes",
			"monitor_position": "slightly_off",
			"standing_breaks":  "rarely",
		}
		if got := Score(answers); got != 56 {
			t.Errorf("Score() = %d, want 56", got)
		}
	})
}

func TestDeriveIssues(t *testing.T) {
	t.Run("clean answers produce no issues", func(t *testing.T) {
		issues := DeriveIssues(answersWithScore(t, 10))
		if len(issues) != 0 {
			t.Errorf("expected no issues, got %v", issues)
		}
	})

	t.Run("worst answers fire every rule in question order", func(t *testing.T) {
		answers := map[string]string{
			"sitting_hours":    "more_than_8",
			"back_pain":        "frequently",
			"neck_pain":        "frequently",
			"monitor_position": "laptop",
			"standing_breaks":  "rarely",
		}
		want := []string{
			"Prolonged sitting",
			"Back pain issues",
			"Neck tension",
			"Poor monitor ergonomics",
			"Infrequent movement breaks",
		}
		got := DeriveIssues(answers)
		if len(got) != len(want) {
			t.Fatalf("DeriveIssues() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("issue[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("every_few_hours flags movement breaks", func(t *testing.T) {
		issues := DeriveIssues(map[string]string{"standing_breaks": "every_few_hours"})
		if len(issues) != 1 || issues[0] != "Infrequent movement breaks" {
			t.Errorf("DeriveIssues() = %v, want [Infrequent movement breaks]", issues)
		}
	})
}

func TestDeriveRecommendations(t *testing.T) {
	t.Run("never empty", func(t *testing.T) {
		recs := DeriveRecommendations(answersWithScore(t, 10))
		if len(recs) != 1 {
			t.Fatalf("expected single fallback recommendation, got %v", recs)
		}
		if recs[0] != "Keep up the good work! Maintain your current habits." {
			t.Errorf("unexpected fallback: %q", recs[0])
		}
	})

	t.Run("recommendations pair with issues", func(t *testing.T) {
		answers := map[string]string{
			"back_pain": "sometimes",
			"neck_pain": "frequently",
		}
		want := []string{
			"Strengthen your core with daily exercises",
			"Do neck stretches every 2 hours",
		}
		got := DeriveRecommendations(answers)
		if len(got) != len(want) {
			t.Fatalf("DeriveRecommendations() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("rec[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("every_few_hours breaks get no recommendation", func(t *testing.T) {
		// The issue rule is wider than the recommendation rule here.
		recs := DeriveRecommendations(map[string]string{"standing_breaks": "every_few_hours"})
		if len(recs) != 1 || recs[0] != "Keep up the good work! Maintain your current habits." {
			t.Errorf("DeriveRecommendations() = %v, want fallback only", recs)
		}
	})
}
