package health

import (
	"math"
	"testing"

	"fitlife/fitness-api/internal/domain"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		expected float64
	}{
		{"average adult", 70, 175, 22.9},
		{"light and tall", 55, 190, 15.2},
		{"heavy and short", 110, 160, 43.0},
		{"one decimal rounding", 80, 180, 24.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMI(tt.weightKg, tt.heightCm)
			if got != tt.expected {
				t.Errorf("CalculateBMI(%v, %v) = %v, want %v", tt.weightKg, tt.heightCm, got, tt.expected)
			}
		})
	}
}

func TestCalculateBMI_MatchesFormula(t *testing.T) {
	// Spot-check the rounded formula across a grid of plausible inputs.
	for w := 40.0; w <= 150; w += 17.5 {
		for h := 140.0; h <= 210; h += 12.5 {
			want := math.Round(w/((h/100)*(h/100))*10) / 10
			if got := CalculateBMI(w, h); got != want {
				t.Fatalf("CalculateBMI(%v, %v) = %v, want %v", w, h, got, want)
			}
		}
	}
}

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		gender   domain.Gender
		expected int
	}{
		{"male", domain.GenderMale, 1649},
		{"female", domain.GenderFemale, 1483},
		{"other uses average offset", domain.GenderOther, 1566},
		{"prefer not to say uses average offset", domain.GenderPreferNotToSay, 1566},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMR(70, 175, 30, tt.gender)
			if got != tt.expected {
				t.Errorf("CalculateBMR(70, 175, 30, %q) = %d, want %d", tt.gender, got, tt.expected)
			}
		})
	}

	// Male and female differ by exactly the offset delta (5 - (-161)).
	male := CalculateBMR(70, 175, 30, domain.GenderMale)
	female := CalculateBMR(70, 175, 30, domain.GenderFemale)
	if male-female != 166 {
		t.Errorf("male-female BMR delta = %d, want 166", male-female)
	}
}

func TestCalculateDailyCalories(t *testing.T) {
	tests := []struct {
		level    domain.ActivityLevel
		expected int
	}{
		{domain.ActivitySedentary, 1800},
		{domain.ActivityLightlyActive, 2063},
		{domain.ActivityModeratelyActive, 2325},
		{domain.ActivityVeryActive, 2588},
		{domain.ActivityExtraActive, 2850},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			got, ok := CalculateDailyCalories(1500, tt.level)
			if !ok {
				t.Fatalf("CalculateDailyCalories(1500, %q) returned ok=false", tt.level)
			}
			if got != tt.expected {
				t.Errorf("CalculateDailyCalories(1500, %q) = %d, want %d", tt.level, got, tt.expected)
			}
		})
	}

	if _, ok := CalculateDailyCalories(1500, domain.ActivityLevel("couch_potato")); ok {
		t.Error("expected ok=false for unknown activity level")
	}
}

func TestGetBMICategory(t *testing.T) {
	tests := []struct {
		bmi   float64
		label string
	}{
		{12.0, "Underweight"},
		{18.4, "Underweight"},
		{18.5, "Normal"},
		{24.9, "Normal"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
		{55.0, "Obese"},
	}

	for _, tt := range tests {
		if got := GetBMICategory(tt.bmi); got.Label != tt.label {
			t.Errorf("GetBMICategory(%v).Label = %q, want %q", tt.bmi, got.Label, tt.label)
		}
	}
}

func TestGetPostureScoreDescription(t *testing.T) {
	tests := []struct {
		score int
		label string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Fair"},
		{40, "Fair"},
		{39, "Needs Work"},
		{0, "Needs Work"},
	}

	for _, tt := range tests {
		if got := GetPostureScoreDescription(tt.score); got.Label != tt.label {
			t.Errorf("GetPostureScoreDescription(%d).Label = %q, want %q", tt.score, got.Label, tt.label)
		}
	}
}

func TestFormatHeight(t *testing.T) {
	tests := []struct {
		cm   float64
		want string
	}{
		{175, `5'9" (175 cm)`},
		{183, `6'0" (183 cm)`},
		{160, `5'3" (160 cm)`},
	}

	for _, tt := range tests {
		if got := FormatHeight(tt.cm); got != tt.want {
			t.Errorf("FormatHeight(%g) = %q, want %q", tt.cm, got, tt.want)
		}
	}
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		kg   float64
		want string
	}{
		{70, "70 kg (154 lbs)"},
		{82.5, "82.5 kg (182 lbs)"},
	}

	for _, tt := range tests {
		if got := FormatWeight(tt.kg); got != tt.want {
			t.Errorf("FormatWeight(%g) = %q, want %q", tt.kg, got, tt.want)
		}
	}
}
