package service

import (
	"testing"
	"time"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"15 mins", 15},
		{"5", 5},
		{"45 minutes", 45},
		{" 30 min", 30},
		{"", defaultExerciseMinutes},
		{"a few minutes", defaultExerciseMinutes},
		{"0 mins", defaultExerciseMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			if got := parseDurationMinutes(tt.duration); got != tt.want {
				t.Errorf("parseDurationMinutes(%q) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid-week wednesday",
			in:   time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC),
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday is its own week start",
			in:   time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday reaches back six days",
			in:   time.Date(2025, 6, 21, 1, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("startOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
