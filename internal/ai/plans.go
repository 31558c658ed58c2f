package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fitlife/fitness-api/internal/domain"
)

const planSystemPrompt = `You are an expert fitness, nutrition, and sleep coach. Generate a personalized daily plan based on the user's profile. Be specific with exercises, meals, and sleep recommendations. Adapt everything to their experience level, goals, dietary restrictions, allergies, injuries, and body metrics.`

// plansSchema is the function-call parameter schema for plan generation.
// The dailyTasks category enum matches domain.TaskCategory exactly.
var plansSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "workout": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "duration": {"type": "string"},
        "calories": {"type": "number"},
        "exercises": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "name": {"type": "string"},
              "sets": {"type": "string", "description": "e.g. 3x12 or null"},
              "duration": {"type": "string", "description": "e.g. 5 mins or null"}
            },
            "required": ["name"],
            "additionalProperties": false
          }
        }
      },
      "required": ["title", "duration", "calories", "exercises"],
      "additionalProperties": false
    },
    "meals": {
      "type": "object",
      "properties": {
        "breakfast": {"$ref": "#/$defs/meal"},
        "lunch": {"$ref": "#/$defs/meal"},
        "dinner": {"$ref": "#/$defs/meal"},
        "snacks": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "name": {"type": "string"},
              "calories": {"type": "number"}
            },
            "required": ["name", "calories"],
            "additionalProperties": false
          }
        }
      },
      "required": ["breakfast", "lunch", "dinner", "snacks"],
      "additionalProperties": false
    },
    "sleep": {
      "type": "object",
      "properties": {
        "bedtime": {"type": "string"},
        "wakeTime": {"type": "string"},
        "targetHours": {"type": "number"},
        "tips": {"type": "array", "items": {"type": "string"}}
      },
      "required": ["bedtime", "wakeTime", "targetHours", "tips"],
      "additionalProperties": false
    },
    "dailyTasks": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "category": {"type": "string", "enum": ["workout", "meal", "hydration", "posture", "health", "sleep"]}
        },
        "required": ["title", "category"],
        "additionalProperties": false
      }
    }
  },
  "required": ["workout", "meals", "sleep", "dailyTasks"],
  "additionalProperties": false,
  "$defs": {
    "meal": {
      "type": "object",
      "properties": {
        "time": {"type": "string"},
        "meal": {"type": "string"},
        "calories": {"type": "number"},
        "protein": {"type": "number"},
        "carbs": {"type": "number"},
        "fat": {"type": "number"}
      },
      "required": ["time", "meal", "calories", "protein", "carbs", "fat"],
      "additionalProperties": false
    }
  }
}`)

// GeneratePlans asks the plan model for a full day plan tailored to the
// profile. Every profile field is optional; unknowns are spelled out in the
// prompt rather than omitted.
func (c *gatewayClient) GeneratePlans(ctx context.Context, profile *domain.Profile) (*domain.GeneratedPlans, error) {
	messages := []chatMessage{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: buildPlanPrompt(profile)},
	}

	fn := toolFunction{
		Name:        "generate_daily_plans",
		Description: "Return a complete personalized daily plan with workout, meals, and sleep schedule",
		Parameters:  plansSchema,
	}

	args, err := c.complete(ctx, c.planModel, messages, fn)
	if err != nil {
		return nil, err
	}

	var plans domain.GeneratedPlans
	if err := json.Unmarshal(args, &plans); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validatePlans(&plans); err != nil {
		return nil, err
	}
	return &plans, nil
}

// validatePlans enforces the parts of the contract a JSON decode cannot:
// required sub-objects present and task categories inside the closed enum.
func validatePlans(plans *domain.GeneratedPlans) error {
	if plans.Workout.Title == "" || len(plans.Workout.Exercises) == 0 {
		return fmt.Errorf("%w: workout missing", ErrMalformedResponse)
	}
	if plans.Meals.Breakfast.Meal == "" || plans.Meals.Lunch.Meal == "" || plans.Meals.Dinner.Meal == "" {
		return fmt.Errorf("%w: meals missing", ErrMalformedResponse)
	}
	if plans.Sleep.Bedtime == "" || plans.Sleep.WakeTime == "" {
		return fmt.Errorf("%w: sleep schedule missing", ErrMalformedResponse)
	}
	for _, task := range plans.DailyTasks {
		if !task.Category.IsValid() {
			return fmt.Errorf("%w: invalid task category %q", ErrMalformedResponse, task.Category)
		}
	}
	return nil
}

// buildPlanPrompt renders the profile snapshot into the user prompt. Nil
// fields render as "unknown" so the model never sees an empty line.
func buildPlanPrompt(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString("Create a personalized daily plan for this user:\n")
	writeLine := func(label, value string) {
		fmt.Fprintf(&b, "- %s: %s\n", label, value)
	}

	writeLine("Age", orUnknownInt(p.Age, ""))
	writeLine("Gender", orUnknownStr((*string)(p.Gender)))
	writeLine("Weight", orUnknownFloat(p.WeightKg, " kg"))
	writeLine("Height", orUnknownFloat(p.HeightCm, " cm"))
	writeLine("BMI", orUnknownFloat(p.BMI, ""))
	writeLine("BMR", orUnknownInt(p.BMR, " cal/day"))
	writeLine("Daily Calorie Goal", orUnknownInt(p.DailyCalorieGoal, " cal"))
	writeLine("Activity Level", orUnknownStr((*string)(p.ActivityLevel)))
	writeLine("Workout Experience", orDefault((*string)(p.WorkoutExperience), "beginner"))
	writeLine("Fitness Goals", orDefaultList(p.FitnessGoals, "general fitness"))
	writeLine("Body Type", orUnknownStr((*string)(p.BodyType)))
	writeLine("Injuries", orDefaultList(p.Injuries, "none"))
	writeLine("Dietary Restrictions", orDefaultList(p.DietaryRestrictions, "none"))
	writeLine("Allergies", orDefaultList(p.Allergies, "none"))
	writeLine("Eating Habits", orDefault((*string)(p.EatingHabits), "regular"))
	writeLine("Sleep Hours Target", orDefaultFloat(p.SleepHours, "8"))
	writeLine("Work Schedule", orUnknownStr((*string)(p.WorkSchedule)))
	writeLine("Stress Level", orUnknownStr((*string)(p.StressLevel)))

	b.WriteString("\nGenerate a complete personalized plan for today.")
	return b.String()
}

func orUnknownStr(s *string) string {
	if s == nil || *s == "" {
		return "unknown"
	}
	return *s
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func orUnknownInt(n *int, unit string) string {
	if n == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d%s", *n, unit)
}

func orUnknownFloat(n *float64, unit string) string {
	if n == nil {
		return "unknown"
	}
	return fmt.Sprintf("%g%s", *n, unit)
}

func orDefaultFloat(n *float64, def string) string {
	if n == nil {
		return def
	}
	return fmt.Sprintf("%g", *n)
}

func orDefaultList(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}
