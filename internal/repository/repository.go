package repository

import (
	"context"
	"time"

	"fitlife/fitness-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ProfileRepository defines the interface for profile documents. Exactly
// one profile exists per user.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

// TaskRepository defines the interface for daily task rows.
type TaskRepository interface {
	CreateMany(ctx context.Context, tasks []domain.DailyTask) error
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.DailyTask, error)
	SetCompleted(ctx context.Context, userID, taskID primitive.ObjectID, completed bool) error
	DeleteByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) error
	// GetCompletedDates returns the scheduled dates of the most recent
	// completed tasks, newest first, bounded by limit. Dates may repeat.
	GetCompletedDates(ctx context.Context, userID primitive.ObjectID, limit int64) ([]string, error)
}

// AssessmentRepository defines the interface for posture assessments.
// Assessments are immutable: create and read only.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *domain.PostureAssessment) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.PostureAssessment, error)
}

// WeightLogRepository defines the interface for weight measurements.
type WeightLogRepository interface {
	Create(ctx context.Context, log *domain.WeightLog) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.WeightLog, error)
}

// WorkoutLogRepository defines the interface for completed workout records.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.WorkoutLog, error)
	GetByUserSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.WorkoutLog, error)
}

// MealLogRepository defines the interface for meal records.
type MealLogRepository interface {
	Create(ctx context.Context, log *domain.MealLog) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.MealLog, error)
	GetByUserSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.MealLog, error)
}
