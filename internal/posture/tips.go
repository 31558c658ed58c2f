package posture

// TipCategory groups tips by where they apply.
type TipCategory string

const (
	TipWorkspace TipCategory = "workspace"
	TipHabit     TipCategory = "habit"
	TipStretch   TipCategory = "stretch"
	TipStrength  TipCategory = "strength"
)

// Tip is a short piece of posture advice.
type Tip struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    TipCategory `json:"category"`
}

const maxTips = 4

var tips = []Tip{
	{
		ID:          "monitor_height",
		Title:       "Adjust Monitor Height",
		Description: "Position your monitor so the top of the screen is at or slightly below eye level. This prevents neck strain from looking up or down.",
		Category:    TipWorkspace,
	},
	{
		ID:          "chair_setup",
		Title:       "Optimize Chair Settings",
		Description: "Adjust your chair so your feet are flat on the floor, knees at 90 degrees, and lower back supported by the chair's lumbar support.",
		Category:    TipWorkspace,
	},
	{
		ID:          "keyboard_position",
		Title:       "Position Keyboard Correctly",
		Description: "Keep your keyboard at elbow height with wrists straight. Consider using a keyboard tray to achieve the optimal position.",
		Category:    TipWorkspace,
	},
	{
		ID:          "movement_breaks",
		Title:       "Take Regular Movement Breaks",
		Description: "Set a timer to stand up and move every 30-60 minutes. Even a 2-minute walk can reset your posture and boost circulation.",
		Category:    TipHabit,
	},
	{
		ID:          "posture_checks",
		Title:       "Perform Posture Checks",
		Description: "Set 3-4 daily reminders to check your posture. Ask yourself: Are my shoulders back? Is my chin tucked? Am I sitting tall?",
		Category:    TipHabit,
	},
	{
		ID:          "phone_usage",
		Title:       "Mindful Phone Usage",
		Description: "Hold your phone at eye level instead of looking down. This prevents 'text neck' which can add up to 60 lbs of pressure on your spine.",
		Category:    TipHabit,
	},
	{
		ID:          "morning_routine",
		Title:       "Start with Morning Stretches",
		Description: "Spend 5 minutes each morning doing basic stretches. Focus on chest openers, neck rolls, and spinal twists to set up your day.",
		Category:    TipStretch,
	},
	{
		ID:          "desk_stretches",
		Title:       "Desk-Friendly Stretches",
		Description: "Practice stretches you can do at your desk: seated twists, shoulder shrugs, and wrist circles help maintain flexibility.",
		Category:    TipStretch,
	},
	{
		ID:          "core_strength",
		Title:       "Build Core Strength",
		Description: "A strong core is the foundation of good posture. Include planks, dead bugs, and bird-dogs in your workout routine.",
		Category:    TipStrength,
	},
	{
		ID:          "back_exercises",
		Title:       "Strengthen Your Back",
		Description: "Exercises like rows, reverse flies, and lat pulldowns build the muscles that pull your shoulders back and maintain upright posture.",
		Category:    TipStrength,
	},
}

func tipsByCategory(cat TipCategory, limit int) []Tip {
	out := []Tip{}
	for _, t := range tips {
		if t.Category != cat {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// TipsForScore picks up to 4 tips weighted by score band: low scores bias
// toward foundational workspace and habit tips, higher scores toward
// maintenance stretch and strength tips.
func TipsForScore(score int) []Tip {
	var picked []Tip
	switch {
	case score < 50:
		picked = append(picked, tipsByCategory(TipWorkspace, 0)...)
		picked = append(picked, tipsByCategory(TipHabit, 2)...)
	case score < 70:
		picked = append(picked, tipsByCategory(TipHabit, 2)...)
		picked = append(picked, tipsByCategory(TipStretch, 1)...)
		picked = append(picked, tipsByCategory(TipStrength, 1)...)
	default:
		picked = append(picked, tipsByCategory(TipStretch, 0)...)
		picked = append(picked, tipsByCategory(TipStrength, 0)...)
	}

	if len(picked) > maxTips {
		picked = picked[:maxTips]
	}
	return picked
}
