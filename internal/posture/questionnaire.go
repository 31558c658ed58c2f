// Package posture holds the self-assessment questionnaire, the exercise
// library keyed by posture issue, and the scoring/matching logic over them.
// Everything here is pure; persistence and AI analysis live elsewhere.
package posture

import "math"

// Option is one selectable answer carrying its point value (1-10).
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is one fixed questionnaire entry with four mutually exclusive
// options.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Questions is the fixed, ordered self-assessment questionnaire.
var Questions = []Question{
	{
		ID:       "sitting_hours",
		Question: "How many hours do you sit per day?",
		Options: []Option{
			{Value: "less_than_4", Label: "Less than 4 hours", Score: 10},
			{Value: "4_to_6", Label: "4-6 hours", Score: 7},
			{Value: "6_to_8", Label: "6-8 hours", Score: 4},
			{Value: "more_than_8", Label: "More than 8 hours", Score: 1},
		},
	},
	{
		ID:       "back_pain",
		Question: "Do you experience back pain?",
		Options: []Option{
			{Value: "never", Label: "Never", Score: 10},
			{Value: "rarely", Label: "Rarely", Score: 7},
			{Value: "sometimes", Label: "Sometimes", Score: 4},
			{Value: "frequently", Label: "Frequently", Score: 1},
		},
	},
	{
		ID:       "neck_pain",
		Question: "Do you experience neck pain or stiffness?",
		Options: []Option{
			{Value: "never", Label: "Never", Score: 10},
			{Value: "rarely", Label: "Rarely", Score: 7},
			{Value: "sometimes", Label: "Sometimes", Score: 4},
			{Value: "frequently", Label: "Frequently", Score: 1},
		},
	},
	{
		ID:       "monitor_position",
		Question: "Is your computer monitor at eye level?",
		Options: []Option{
			{Value: "yes", Label: "Yes, properly positioned", Score: 10},
			{Value: "slightly_off", Label: "Slightly below/above", Score: 6},
			{Value: "no", Label: "No, it's too low/high", Score: 2},
			{Value: "laptop", Label: "I use a laptop without external monitor", Score: 3},
		},
	},
	{
		ID:       "standing_breaks",
		Question: "How often do you take standing/walking breaks?",
		Options: []Option{
			{Value: "every_30min", Label: "Every 30 minutes", Score: 10},
			{Value: "every_hour", Label: "Every hour", Score: 7},
			{Value: "every_few_hours", Label: "Every few hours", Score: 4},
			{Value: "rarely", Label: "Rarely", Score: 1},
		},
	},
}

// Score converts questionnaire answers (questionID -> option value) into a
// 0-100 integer. Every question counts toward the denominator whether or
// not it was answered: an incomplete questionnaire scores as if unanswered
// questions earned zero points. That is deliberate, not a bug.
func Score(answers map[string]string) int {
	total := 0
	max := 0

	for _, q := range Questions {
		max += 10
		value, answered := answers[q.ID]
		if !answered {
			continue
		}
		for _, o := range q.Options {
			if o.Value == value {
				total += o.Score
				break
			}
		}
	}

	return int(math.Round(float64(total) / float64(max) * 100))
}

// issueRule fires when a given question was answered with one of the listed
// values, contributing a paired issue label and remediation.
type issueRule struct {
	questionID     string
	values         []string
	issue          string
	recommendation string
}

// Rules are evaluated in question order; several may fire at once.
var issueRules = []issueRule{
	{"sitting_hours", []string{"more_than_8", "6_to_8"},
		"Prolonged sitting", "Use a standing desk or take regular standing breaks"},
	{"back_pain", []string{"frequently", "sometimes"},
		"Back pain issues", "Strengthen your core with daily exercises"},
	{"neck_pain", []string{"frequently", "sometimes"},
		"Neck tension", "Do neck stretches every 2 hours"},
	{"monitor_position", []string{"no", "laptop"},
		"Poor monitor ergonomics", "Raise your monitor to eye level using a stand"},
	{"standing_breaks", []string{"rarely"},
		"Infrequent movement breaks", "Set hourly reminders to stand and stretch"},
}

// movementBreakIssueValues widens the issue rule for standing breaks: the
// issue also flags "every_few_hours" even though the recommendation only
// fires on "rarely".
var movementBreakIssueValues = []string{"rarely", "every_few_hours"}

func answerIn(answers map[string]string, questionID string, values []string) bool {
	got, ok := answers[questionID]
	if !ok {
		return false
	}
	for _, v := range values {
		if got == v {
			return true
		}
	}
	return false
}

// DeriveIssues returns the issue labels triggered by the answers, in
// question order.
func DeriveIssues(answers map[string]string) []string {
	issues := []string{}
	for _, r := range issueRules {
		values := r.values
		if r.questionID == "standing_breaks" {
			values = movementBreakIssueValues
		}
		if answerIn(answers, r.questionID, values) {
			issues = append(issues, r.issue)
		}
	}
	return issues
}

// DeriveRecommendations returns the remediation strings paired with the
// triggered rules. Never empty: a clean questionnaire earns a single
// positive-reinforcement message.
func DeriveRecommendations(answers map[string]string) []string {
	recs := []string{}
	for _, r := range issueRules {
		if answerIn(answers, r.questionID, r.values) {
			recs = append(recs, r.recommendation)
		}
	}
	if len(recs) == 0 {
		return []string{"Keep up the good work! Maintain your current habits."}
	}
	return recs
}
