package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitlife/fitness-api/internal/config"
	"fitlife/fitness-api/internal/domain"
)

// newTestClient wires a gateway client against a stub HTTP server.
func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(config.AIConfig{
		GatewayURL:  srv.URL,
		APIKey:      "test-key",
		VisionModel: "vision-model",
		PlanModel:   "plan-model",
		Timeout:     5 * time.Second,
	})
	return client, srv
}

// toolCallResponse wraps function-call arguments in the chat completions
// response envelope.
func toolCallResponse(name string, args any) string {
	encoded, _ := json.Marshal(args)
	return fmt.Sprintf(`{"choices":[{"message":{"tool_calls":[{"function":{"name":%q,"arguments":%q}}]}}]}`,
		name, string(encoded))
}

func TestAnalyzePosture_ClampsScore(t *testing.T) {
	tests := []struct {
		name     string
		rawScore float64
		want     int
	}{
		{"above range", 150, 100},
		{"below range", -5, 0},
		{"fractional rounds", 72.6, 73},
		{"in range untouched", 85, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, toolCallResponse("analyze_posture", map[string]any{
					"score":           tt.rawScore,
					"issues":          []string{"forward head"},
					"recommendations": []string{"chin tucks"},
					"details":         "assessment",
				}))
			})

			analysis, err := client.AnalyzePosture(context.Background(), "data:image/jpeg;base64,xxx")
			if err != nil {
				t.Fatalf("AnalyzePosture() error = %v", err)
			}
			if analysis.Score != tt.want {
				t.Errorf("Score = %d, want %d", analysis.Score, tt.want)
			}
		})
	}
}

func TestAnalyzePosture_SendsImageAndForcesToolChoice(t *testing.T) {
	var captured map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		fmt.Fprint(w, toolCallResponse("analyze_posture", map[string]any{
			"score": 50.0, "issues": []string{}, "recommendations": []string{}, "details": "d",
		}))
	})

	if _, err := client.AnalyzePosture(context.Background(), "data:image/jpeg;base64,abc"); err != nil {
		t.Fatalf("AnalyzePosture() error = %v", err)
	}

	if captured["model"] != "vision-model" {
		t.Errorf("model = %v, want vision-model", captured["model"])
	}
	choice, _ := captured["tool_choice"].(map[string]any)
	if choice == nil || choice["type"] != "function" {
		t.Errorf("tool_choice = %v, want forced function", captured["tool_choice"])
	}
}

func TestGatewayErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"429 maps to rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"402 maps to quota exhausted", http.StatusPaymentRequired, ErrQuotaExhausted},
		{"500 maps to unavailable", http.StatusInternalServerError, ErrUnavailable},
		{"503 maps to unavailable", http.StatusServiceUnavailable, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.AnalyzePosture(context.Background(), "img")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AnalyzePosture() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAnalyzePosture_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no tool call", `{"choices":[{"message":{}}]}`},
		{"no choices", `{"choices":[]}`},
		{"not json", `its broken`},
		{"missing required field", toolCallResponse("analyze_posture", map[string]any{
			"issues": []string{}, "recommendations": []string{}, "details": "d",
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})

			_, err := client.AnalyzePosture(context.Background(), "img")
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("AnalyzePosture() error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func validPlansPayload() map[string]any {
	meal := func(name string) map[string]any {
		return map[string]any{
			"time": "8:00", "meal": name, "calories": 400.0,
			"protein": 30.0, "carbs": 40.0, "fat": 12.0,
		}
	}
	return map[string]any{
		"workout": map[string]any{
			"title": "Upper Body Strength", "duration": "45 min", "calories": 320.0,
			"exercises": []map[string]any{
				{"name": "Push-ups", "sets": "3x12"},
				{"name": "Plank", "duration": "60s"},
			},
		},
		"meals": map[string]any{
			"breakfast": meal("Oatmeal"),
			"lunch":     meal("Chicken salad"),
			"dinner":    meal("Salmon and rice"),
			"snacks":    []map[string]any{{"name": "Almonds", "calories": 160.0}},
		},
		"sleep": map[string]any{
			"bedtime": "22:30", "wakeTime": "06:30", "targetHours": 8.0,
			"tips": []string{"No screens after 22:00"},
		},
		"dailyTasks": []map[string]any{
			{"title": "Drink 8 glasses of water", "category": "hydration"},
			{"title": "Morning stretches", "category": "workout"},
		},
	}
}

func testProfile() *domain.Profile {
	age := 30
	gender := domain.GenderMale
	weight := 70.0
	return &domain.Profile{Age: &age, Gender: &gender, WeightKg: &weight}
}

func TestGeneratePlans_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, toolCallResponse("generate_daily_plans", validPlansPayload()))
	})

	plans, err := client.GeneratePlans(context.Background(), testProfile())
	if err != nil {
		t.Fatalf("GeneratePlans() error = %v", err)
	}

	if plans.Workout.Title != "Upper Body Strength" {
		t.Errorf("workout title = %q", plans.Workout.Title)
	}
	if len(plans.Workout.Exercises) != 2 || plans.Workout.Exercises[0].Sets != "3x12" {
		t.Errorf("exercises = %+v", plans.Workout.Exercises)
	}
	if plans.Meals.Dinner.Meal != "Salmon and rice" {
		t.Errorf("dinner = %q", plans.Meals.Dinner.Meal)
	}
	if plans.Sleep.TargetHours != 8 {
		t.Errorf("targetHours = %v", plans.Sleep.TargetHours)
	}
	if len(plans.DailyTasks) != 2 || plans.DailyTasks[0].Category != domain.CategoryHydration {
		t.Errorf("dailyTasks = %+v", plans.DailyTasks)
	}
}

func TestGeneratePlans_RejectsInvalidCategory(t *testing.T) {
	payload := validPlansPayload()
	payload["dailyTasks"] = []map[string]any{
		{"title": "Do something", "category": "mindfulness"},
	}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, toolCallResponse("generate_daily_plans", payload))
	})

	_, err := client.GeneratePlans(context.Background(), testProfile())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("GeneratePlans() error = %v, want ErrMalformedResponse", err)
	}
}

func TestGeneratePlans_RejectsMissingSections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p map[string]any)
	}{
		{"no workout exercises", func(p map[string]any) {
			p["workout"].(map[string]any)["exercises"] = []map[string]any{}
		}},
		{"empty dinner", func(p map[string]any) {
			p["meals"].(map[string]any)["dinner"].(map[string]any)["meal"] = ""
		}},
		{"empty sleep schedule", func(p map[string]any) {
			p["sleep"].(map[string]any)["bedtime"] = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPlansPayload()
			tt.mutate(payload)
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, toolCallResponse("generate_daily_plans", payload))
			})

			_, err := client.GeneratePlans(context.Background(), testProfile())
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("GeneratePlans() error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestBuildPlanPrompt_UnknownsSpelledOut(t *testing.T) {
	prompt := buildPlanPrompt(&domain.Profile{})
	for _, want := range []string{
		"Age: unknown",
		"Workout Experience: beginner",
		"Fitness Goals: general fitness",
		"Sleep Hours Target: 8",
		"Injuries: none",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
