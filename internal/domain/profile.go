package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender as captured during onboarding.
type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

// BodyType is the user's self-reported somatotype.
type BodyType string

const (
	BodyTypeEctomorph BodyType = "ectomorph"
	BodyTypeMesomorph BodyType = "mesomorph"
	BodyTypeEndomorph BodyType = "endomorph"
	BodyTypeNotSure   BodyType = "not_sure"
)

func (b BodyType) IsValid() bool {
	switch b {
	case BodyTypeEctomorph, BodyTypeMesomorph, BodyTypeEndomorph, BodyTypeNotSure:
		return true
	}
	return false
}

// ActivityLevel drives the daily calorie multiplier.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtraActive:
		return true
	}
	return false
}

// WorkoutExperience selects the default workout task set.
type WorkoutExperience string

const (
	ExperienceBeginner     WorkoutExperience = "beginner"
	ExperienceIntermediate WorkoutExperience = "intermediate"
	ExperienceAdvanced     WorkoutExperience = "advanced"
)

func (w WorkoutExperience) IsValid() bool {
	switch w {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// EatingHabits describes the user's meal pattern.
type EatingHabits string

const (
	EatingRegular          EatingHabits = "regular"
	EatingIrregular        EatingHabits = "irregular"
	EatingFrequentSnacking EatingHabits = "frequent_snacking"
	EatingTimeRestricted   EatingHabits = "time_restricted"
)

func (e EatingHabits) IsValid() bool {
	switch e {
	case EatingRegular, EatingIrregular, EatingFrequentSnacking, EatingTimeRestricted:
		return true
	}
	return false
}

// WorkSchedule informs plan timing suggestions.
type WorkSchedule string

const (
	ScheduleRegular9To5  WorkSchedule = "regular_9_to_5"
	ScheduleShiftWork    WorkSchedule = "shift_work"
	ScheduleFlexible     WorkSchedule = "flexible"
	ScheduleWorkFromHome WorkSchedule = "work_from_home"
	ScheduleStudent      WorkSchedule = "student"
)

func (w WorkSchedule) IsValid() bool {
	switch w {
	case ScheduleRegular9To5, ScheduleShiftWork, ScheduleFlexible,
		ScheduleWorkFromHome, ScheduleStudent:
		return true
	}
	return false
}

// StressLevel as self-reported during onboarding.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressVeryHigh StressLevel = "very_high"
)

func (s StressLevel) IsValid() bool {
	switch s {
	case StressLow, StressModerate, StressHigh, StressVeryHigh:
		return true
	}
	return false
}

// Profile holds the demographic and health data collected during onboarding
// and updated on every profile edit or posture assessment. One document per
// user. Pointer fields are absent until the respective onboarding step fills
// them in.
type Profile struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID              primitive.ObjectID `bson:"userId" json:"userId"`
	FullName            string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	AvatarURL           string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Age                 *int               `bson:"age,omitempty" json:"age,omitempty"`
	Gender              *Gender            `bson:"gender,omitempty" json:"gender,omitempty"`
	HeightCm            *float64           `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg            *float64           `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	BodyType            *BodyType          `bson:"bodyType,omitempty" json:"bodyType,omitempty"`
	BMI                 *float64           `bson:"bmi,omitempty" json:"bmi,omitempty"`
	BMR                 *int               `bson:"bmr,omitempty" json:"bmr,omitempty"`
	DailyCalorieGoal    *int               `bson:"dailyCalorieGoal,omitempty" json:"dailyCalorieGoal,omitempty"`
	DietaryRestrictions []string           `bson:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`
	Allergies           []string           `bson:"allergies,omitempty" json:"allergies,omitempty"`
	EatingHabits        *EatingHabits      `bson:"eatingHabits,omitempty" json:"eatingHabits,omitempty"`
	ActivityLevel       *ActivityLevel     `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"`
	WorkoutExperience   *WorkoutExperience `bson:"workoutExperience,omitempty" json:"workoutExperience,omitempty"`
	Injuries            []string           `bson:"injuries,omitempty" json:"injuries,omitempty"`
	FitnessGoals        []string           `bson:"fitnessGoals,omitempty" json:"fitnessGoals,omitempty"`
	SleepHours          *float64           `bson:"sleepHours,omitempty" json:"sleepHours,omitempty"`
	WorkSchedule        *WorkSchedule      `bson:"workSchedule,omitempty" json:"workSchedule,omitempty"`
	StressLevel         *StressLevel       `bson:"stressLevel,omitempty" json:"stressLevel,omitempty"`
	OnboardingCompleted bool               `bson:"onboardingCompleted" json:"onboardingCompleted"`
	OnboardingStep      int                `bson:"onboardingStep" json:"onboardingStep"`
	PostureScore        int                `bson:"postureScore" json:"postureScore"` // 0-100
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
