package domain

// The generated-plan types mirror the structured output schema the AI
// gateway is forced to produce. A plan is ephemeral: it is never persisted
// as its own document, only decomposed into DailyTask rows and ad-hoc
// workout/meal logs as the user completes individual items.

// PlannedExercise is one exercise within a generated workout. Sets and
// Duration are mutually optional ("3x12" vs "5 mins").
type PlannedExercise struct {
	Name     string `json:"name"`
	Sets     string `json:"sets,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// WorkoutPlan is the day's generated workout.
type WorkoutPlan struct {
	Title     string            `json:"title"`
	Duration  string            `json:"duration"`
	Calories  float64           `json:"calories"`
	Exercises []PlannedExercise `json:"exercises"`
}

// MealItem is one planned meal with macros.
type MealItem struct {
	Time     string  `json:"time"`
	Meal     string  `json:"meal"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// PlannedSnack is a named snack with a calorie estimate.
type PlannedSnack struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

// MealPlan covers the three main meals plus snacks.
type MealPlan struct {
	Breakfast MealItem       `json:"breakfast"`
	Lunch     MealItem       `json:"lunch"`
	Dinner    MealItem       `json:"dinner"`
	Snacks    []PlannedSnack `json:"snacks"`
}

// SleepPlan is the generated sleep schedule.
type SleepPlan struct {
	Bedtime     string   `json:"bedtime"`
	WakeTime    string   `json:"wakeTime"`
	TargetHours float64  `json:"targetHours"`
	Tips        []string `json:"tips"`
}

// TaskSuggestion is a daily task proposed by the plan generator. Category
// must be a valid TaskCategory; the AI client rejects anything else.
type TaskSuggestion struct {
	Title    string       `json:"title"`
	Category TaskCategory `json:"category"`
}

// GeneratedPlans is the complete validated output of one plan-generation
// request.
type GeneratedPlans struct {
	Workout    WorkoutPlan      `json:"workout"`
	Meals      MealPlan         `json:"meals"`
	Sleep      SleepPlan        `json:"sleep"`
	DailyTasks []TaskSuggestion `json:"dailyTasks"`
}
