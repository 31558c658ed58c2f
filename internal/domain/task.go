package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskCategory is the closed set of daily task categories. The AI plan
// generator is constrained to this set as well; anything else coming back
// from the model is a contract violation.
type TaskCategory string

const (
	CategoryWorkout   TaskCategory = "workout"
	CategoryMeal      TaskCategory = "meal"
	CategoryHydration TaskCategory = "hydration"
	CategoryPosture   TaskCategory = "posture"
	CategoryHealth    TaskCategory = "health"
	CategorySleep     TaskCategory = "sleep"
)

func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryWorkout, CategoryMeal, CategoryHydration,
		CategoryPosture, CategoryHealth, CategorySleep:
		return true
	}
	return false
}

// DailyTask is one checkable item on a user's daily list. Tasks are seeded
// in batches per day and may be replaced wholesale when plans regenerate;
// only the Completed flag is toggled in place.
type DailyTask struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Title        string             `bson:"title" json:"title"`
	Category     TaskCategory       `bson:"category,omitempty" json:"category,omitempty"`
	Completed    bool               `bson:"completed" json:"completed"`
	ScheduledFor string             `bson:"scheduledFor" json:"scheduledFor"` // date-only, YYYY-MM-DD
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
