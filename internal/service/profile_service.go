package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlife/fitness-api/internal/domain"
	"fitlife/fitness-api/internal/health"
	"fitlife/fitness-api/internal/repository"
	"fitlife/fitness-api/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileValidation = errors.New("profile validation failed")
)

// ProfileUpdate carries the fields a profile edit may change. Nil fields
// are left untouched, mirroring a PATCH.
type ProfileUpdate struct {
	FullName            *string
	Age                 *int
	Gender              *domain.Gender
	HeightCm            *float64
	WeightKg            *float64
	BodyType            *domain.BodyType
	DietaryRestrictions []string
	Allergies           []string
	EatingHabits        *domain.EatingHabits
	ActivityLevel       *domain.ActivityLevel
	WorkoutExperience   *domain.WorkoutExperience
	Injuries            []string
	FitnessGoals        []string
	SleepHours          *float64
	WorkSchedule        *domain.WorkSchedule
	StressLevel         *domain.StressLevel
	OnboardingStep      *int
	OnboardingCompleted *bool
}

// --- Service Interface ---
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.Profile, error)
	// AvatarUploadURL returns a presigned PUT URL plus the object key the
	// client must upload to.
	AvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (uploadURL, objectKey string, err error)
	SetAvatar(ctx context.Context, userID primitive.ObjectID, objectKey string) (*domain.Profile, error)
}

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	weightRepo  repository.WeightLogRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository, weightRepo repository.WeightLogRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		weightRepo:  weightRepo,
		fileStorage: fileStorage,
	}
}

// GetProfile fetches the user's profile.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile applies the given patch, validates the result, recomputes
// the derived health metrics, and persists the profile. A weight change is
// also recorded in the weight log history.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	weightChanged := applyUpdate(profile, update)

	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	recomputeHealthMetrics(profile)

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if weightChanged && profile.WeightKg != nil {
		entry := &domain.WeightLog{
			UserID:   userID,
			WeightKg: *profile.WeightKg,
		}
		if _, err := s.weightRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// AvatarUploadURL issues a presigned upload URL for a new avatar image.
func (s *profileService) AvatarUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (string, string, error) {
	if s.fileStorage == nil {
		return "", "", errors.New("file storage is not configured")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectKey := fmt.Sprintf("avatars/%s/%s", userID.Hex(), uuid.NewString())
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", err
	}
	return uploadURL, objectKey, nil
}

// SetAvatar records the uploaded object key and returns a fresh download
// URL in the profile's AvatarURL field.
func (s *profileService) SetAvatar(ctx context.Context, userID primitive.ObjectID, objectKey string) (*domain.Profile, error) {
	if s.fileStorage == nil {
		return nil, errors.New("file storage is not configured")
	}
	if objectKey == "" {
		return nil, fmt.Errorf("%w: object key is required", ErrProfileValidation)
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	profile.AvatarURL = downloadURL

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// applyUpdate copies non-nil patch fields onto the profile and reports
// whether the weight changed.
func applyUpdate(profile *domain.Profile, update ProfileUpdate) (weightChanged bool) {
	if update.FullName != nil {
		profile.FullName = *update.FullName
	}
	if update.Age != nil {
		profile.Age = update.Age
	}
	if update.Gender != nil {
		profile.Gender = update.Gender
	}
	if update.HeightCm != nil {
		profile.HeightCm = update.HeightCm
	}
	if update.WeightKg != nil {
		if profile.WeightKg == nil || *profile.WeightKg != *update.WeightKg {
			weightChanged = true
		}
		profile.WeightKg = update.WeightKg
	}
	if update.BodyType != nil {
		profile.BodyType = update.BodyType
	}
	if update.DietaryRestrictions != nil {
		profile.DietaryRestrictions = update.DietaryRestrictions
	}
	if update.Allergies != nil {
		profile.Allergies = update.Allergies
	}
	if update.EatingHabits != nil {
		profile.EatingHabits = update.EatingHabits
	}
	if update.ActivityLevel != nil {
		profile.ActivityLevel = update.ActivityLevel
	}
	if update.WorkoutExperience != nil {
		profile.WorkoutExperience = update.WorkoutExperience
	}
	if update.Injuries != nil {
		profile.Injuries = update.Injuries
	}
	if update.FitnessGoals != nil {
		profile.FitnessGoals = update.FitnessGoals
	}
	if update.SleepHours != nil {
		profile.SleepHours = update.SleepHours
	}
	if update.WorkSchedule != nil {
		profile.WorkSchedule = update.WorkSchedule
	}
	if update.StressLevel != nil {
		profile.StressLevel = update.StressLevel
	}
	if update.OnboardingStep != nil {
		profile.OnboardingStep = *update.OnboardingStep
	}
	if update.OnboardingCompleted != nil {
		profile.OnboardingCompleted = *update.OnboardingCompleted
	}
	return weightChanged
}

// validateProfile checks numeric bounds and enum membership on the fields
// that are present.
func validateProfile(p *domain.Profile) error {
	if p.Age != nil && (*p.Age < 1 || *p.Age > 120) {
		return fmt.Errorf("%w: age must be between 1 and 120", ErrProfileValidation)
	}
	if p.HeightCm != nil && (*p.HeightCm < 30 || *p.HeightCm > 300) {
		return fmt.Errorf("%w: height must be between 30 and 300 cm", ErrProfileValidation)
	}
	if p.WeightKg != nil && (*p.WeightKg < 10 || *p.WeightKg > 500) {
		return fmt.Errorf("%w: weight must be between 10 and 500 kg", ErrProfileValidation)
	}
	if p.SleepHours != nil && (*p.SleepHours < 0 || *p.SleepHours > 24) {
		return fmt.Errorf("%w: sleep hours must be between 0 and 24", ErrProfileValidation)
	}
	if p.Gender != nil && !p.Gender.IsValid() {
		return fmt.Errorf("%w: invalid gender %q", ErrProfileValidation, *p.Gender)
	}
	if p.BodyType != nil && !p.BodyType.IsValid() {
		return fmt.Errorf("%w: invalid body type %q", ErrProfileValidation, *p.BodyType)
	}
	if p.EatingHabits != nil && !p.EatingHabits.IsValid() {
		return fmt.Errorf("%w: invalid eating habits %q", ErrProfileValidation, *p.EatingHabits)
	}
	if p.ActivityLevel != nil && !p.ActivityLevel.IsValid() {
		return fmt.Errorf("%w: invalid activity level %q", ErrProfileValidation, *p.ActivityLevel)
	}
	if p.WorkoutExperience != nil && !p.WorkoutExperience.IsValid() {
		return fmt.Errorf("%w: invalid workout experience %q", ErrProfileValidation, *p.WorkoutExperience)
	}
	if p.WorkSchedule != nil && !p.WorkSchedule.IsValid() {
		return fmt.Errorf("%w: invalid work schedule %q", ErrProfileValidation, *p.WorkSchedule)
	}
	if p.StressLevel != nil && !p.StressLevel.IsValid() {
		return fmt.Errorf("%w: invalid stress level %q", ErrProfileValidation, *p.StressLevel)
	}
	return nil
}

// recomputeHealthMetrics refreshes BMI, BMR, and the daily calorie goal
// from the current measurements. Metrics whose inputs are missing are
// cleared rather than left stale.
func recomputeHealthMetrics(p *domain.Profile) {
	if p.HeightCm != nil && p.WeightKg != nil {
		bmi := health.CalculateBMI(*p.WeightKg, *p.HeightCm)
		p.BMI = &bmi
	} else {
		p.BMI = nil
	}

	if p.HeightCm != nil && p.WeightKg != nil && p.Age != nil && p.Gender != nil {
		bmr := health.CalculateBMR(*p.WeightKg, *p.HeightCm, *p.Age, *p.Gender)
		p.BMR = &bmr

		if p.ActivityLevel != nil {
			if goal, ok := health.CalculateDailyCalories(bmr, *p.ActivityLevel); ok {
				p.DailyCalorieGoal = &goal
			}
		}
	} else {
		p.BMR = nil
		p.DailyCalorieGoal = nil
	}
}
