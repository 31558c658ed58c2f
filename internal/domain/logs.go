package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeightLog is an append-only weight measurement.
type WeightLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	WeightKg   float64            `bson:"weightKg" json:"weightKg"`
	RecordedAt time.Time          `bson:"recordedAt" json:"recordedAt"`
}

// LoggedExercise is one exercise entry inside a workout log.
type LoggedExercise struct {
	Name     string `bson:"name" json:"name"`
	Sets     string `bson:"sets,omitempty" json:"sets,omitempty"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
}

// WorkoutLog is an append-only record of a completed workout or exercise.
type WorkoutLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	WorkoutType     string             `bson:"workoutType" json:"workoutType"` // e.g. "daily_plan"
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	CaloriesBurned  int                `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`
	Exercises       []LoggedExercise   `bson:"exercises,omitempty" json:"exercises,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CompletedAt     time.Time          `bson:"completedAt" json:"completedAt"`
}

// FoodItem is one food entry inside a meal log.
type FoodItem struct {
	Name string `bson:"name" json:"name"`
}

// MealLog is an append-only record of an eaten meal.
type MealLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	MealType  string             `bson:"mealType,omitempty" json:"mealType,omitempty"` // breakfast, lunch, dinner, snack
	FoodItems []FoodItem         `bson:"foodItems" json:"foodItems"`
	Calories  int                `bson:"calories,omitempty" json:"calories,omitempty"`
	ProteinG  float64            `bson:"proteinG,omitempty" json:"proteinG,omitempty"`
	CarbsG    float64            `bson:"carbsG,omitempty" json:"carbsG,omitempty"`
	FatG      float64            `bson:"fatG,omitempty" json:"fatG,omitempty"`
	LoggedAt  time.Time          `bson:"loggedAt" json:"loggedAt"`
}
