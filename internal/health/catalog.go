package health

import "fitlife/fitness-api/internal/domain"

// Option catalogs presented during onboarding. Kept server-side so clients
// and the plan generator share one vocabulary.

type BodyTypeOption struct {
	ID          domain.BodyType `json:"id"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
}

var BodyTypes = []BodyTypeOption{
	{ID: domain.BodyTypeEctomorph, Label: "Ectomorph", Description: "Lean and long, difficulty building muscle"},
	{ID: domain.BodyTypeMesomorph, Label: "Mesomorph", Description: "Muscular and well-built, gains muscle easily"},
	{ID: domain.BodyTypeEndomorph, Label: "Endomorph", Description: "Bigger bone structure, stores fat easily"},
	{ID: domain.BodyTypeNotSure, Label: "Not Sure", Description: "I'm not sure about my body type"},
}

type ActivityLevelOption struct {
	ID          domain.ActivityLevel `json:"id"`
	Label       string               `json:"label"`
	Description string               `json:"description"`
}

var ActivityLevels = []ActivityLevelOption{
	{ID: domain.ActivitySedentary, Label: "Sedentary", Description: "Little to no exercise, desk job"},
	{ID: domain.ActivityLightlyActive, Label: "Lightly Active", Description: "Light exercise 1-3 days/week"},
	{ID: domain.ActivityModeratelyActive, Label: "Moderately Active", Description: "Moderate exercise 3-5 days/week"},
	{ID: domain.ActivityVeryActive, Label: "Very Active", Description: "Hard exercise 6-7 days/week"},
	{ID: domain.ActivityExtraActive, Label: "Extra Active", Description: "Very hard exercise, physical job"},
}

var DietaryRestrictions = []string{
	"Vegetarian", "Vegan", "Pescatarian", "Keto", "Paleo", "Gluten-Free",
	"Dairy-Free", "Low-Carb", "Low-Fat", "Halal", "Kosher", "None",
}

var CommonAllergies = []string{
	"Peanuts", "Tree Nuts", "Milk", "Eggs", "Wheat", "Soy", "Fish",
	"Shellfish", "Sesame", "None",
}

var FitnessGoals = []string{
	"Lose Weight", "Build Muscle", "Improve Endurance", "Increase Flexibility",
	"Better Posture", "General Fitness", "Stress Reduction", "Better Sleep",
}
