// Package health provides the pure metric calculations used across the app:
// BMI, BMR (Mifflin-St Jeor), activity-adjusted daily calories, and the
// display bands derived from them. No I/O, no state.
package health

import (
	"fmt"
	"math"

	"fitlife/fitness-api/internal/domain"
)

// ActivityMultipliers maps activity levels to their daily-calorie multiplier.
// This is the single source of truth for valid activity levels.
var ActivityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.2,
	domain.ActivityLightlyActive:    1.375,
	domain.ActivityModeratelyActive: 1.55,
	domain.ActivityVeryActive:       1.725,
	domain.ActivityExtraActive:      1.9,
}

// CalculateBMI returns weight / height_m^2 rounded to one decimal.
// Height must be positive; the caller guards against zero.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// CalculateBMR estimates basal metabolic rate via Mifflin-St Jeor.
// Non-binary or undisclosed gender uses the average of the male and
// female offsets (-78).
func CalculateBMR(weightKg, heightCm float64, age int, gender domain.Gender) int {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case domain.GenderMale:
		return int(math.Round(base + 5))
	case domain.GenderFemale:
		return int(math.Round(base - 161))
	default:
		return int(math.Round(base - 78))
	}
}

// CalculateDailyCalories scales BMR by the activity multiplier. Returns
// ok=false for an unknown activity level; validating the level is the
// caller's contract.
func CalculateDailyCalories(bmr int, level domain.ActivityLevel) (int, bool) {
	mult, found := ActivityMultipliers[level]
	if !found {
		return 0, false
	}
	return int(math.Round(float64(bmr) * mult)), true
}

// BMICategory is a coarse weight classification bucket.
type BMICategory struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// GetBMICategory classifies a BMI into the standard four buckets. Buckets
// are half-open on their upper bound except obese.
func GetBMICategory(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMICategory{Label: "Underweight", Color: "neon-orange"}
	case bmi < 25:
		return BMICategory{Label: "Normal", Color: "neon-green"}
	case bmi < 30:
		return BMICategory{Label: "Overweight", Color: "neon-orange"}
	default:
		return BMICategory{Label: "Obese", Color: "destructive"}
	}
}

// ScoreDescription is the display band for a posture score.
type ScoreDescription struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// GetPostureScoreDescription maps a 0-100 posture score to its band.
func GetPostureScoreDescription(score int) ScoreDescription {
	switch {
	case score >= 80:
		return ScoreDescription{
			Label:       "Excellent",
			Description: "Great posture! Keep up the good work.",
			Color:       "neon-green",
		}
	case score >= 60:
		return ScoreDescription{
			Label:       "Good",
			Description: "Your posture is good with minor improvements needed.",
			Color:       "primary",
		}
	case score >= 40:
		return ScoreDescription{
			Label:       "Fair",
			Description: "Some posture issues detected. Follow the exercises.",
			Color:       "neon-orange",
		}
	default:
		return ScoreDescription{
			Label:       "Needs Work",
			Description: "Significant posture issues. Daily exercises recommended.",
			Color:       "destructive",
		}
	}
}

// FormatHeight renders centimeters as feet'inches" (cm).
func FormatHeight(cm float64) string {
	feet := int(cm / 30.48)
	inches := int(math.Round(math.Mod(cm, 30.48) / 2.54))
	return fmt.Sprintf("%d'%d\" (%g cm)", feet, inches, cm)
}

// FormatWeight renders kilograms with the pound equivalent.
func FormatWeight(kg float64) string {
	lbs := int(math.Round(kg * 2.205))
	return fmt.Sprintf("%g kg (%d lbs)", kg, lbs)
}
