package posture

import "strings"

// Difficulty grades an exercise.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Exercise is one corrective exercise from the curated library.
type Exercise struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Difficulty  Difficulty `json:"difficulty"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	Steps       []string   `json:"steps"`
}

// exerciseGroup binds an issue keyword to its exercise list. Groups are a
// slice, not a map: matching walks them in declaration order so results are
// deterministic.
type exerciseGroup struct {
	key       string
	exercises []Exercise
}

const fallbackKey = "poor posture"

// maxExercises caps how many exercises a single lookup returns.
const maxExercises = 6

var exerciseGroups = []exerciseGroup{
	{
		// Forward head / tech neck
		key: "forward head",
		exercises: []Exercise{
			{
				ID:          "chin_tucks",
				Name:        "Chin Tucks",
				Description: "Strengthen deep neck flexors to correct forward head posture",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Sit or stand with your back straight",
					"Gently tuck your chin back as if making a double chin",
					"Hold for 5 seconds, then release",
					"Repeat 10-15 times",
				},
			},
			{
				ID:          "neck_stretches",
				Name:        "Neck Stretches",
				Description: "Release tension in neck muscles caused by forward head position",
				Duration:    "3-4 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Tilt your head to the right, bringing ear toward shoulder",
					"Hold for 20-30 seconds",
					"Repeat on the left side",
					"Do 3 sets on each side",
				},
			},
		},
	},
	{
		key: "rounded shoulders",
		exercises: []Exercise{
			{
				ID:          "doorway_stretch",
				Name:        "Doorway Chest Stretch",
				Description: "Open up tight chest muscles pulling shoulders forward",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Stand in a doorway with arms at 90 degrees",
					"Place forearms on door frame",
					"Step forward until you feel a stretch in your chest",
					"Hold for 30 seconds, repeat 3 times",
				},
			},
			{
				ID:          "wall_angels",
				Name:        "Wall Angels",
				Description: "Strengthen upper back to counteract rounded shoulders",
				Duration:    "3-4 minutes",
				Difficulty:  DifficultyMedium,
				Steps: []string{
					"Stand with back flat against a wall",
					"Raise arms to form a W shape against the wall",
					"Slowly slide arms up to form a Y, keeping contact with wall",
					"Return to W position, repeat 10-15 times",
				},
			},
			{
				ID:          "band_pull_aparts",
				Name:        "Resistance Band Pull-Aparts",
				Description: "Strengthen rear deltoids and rhomboids",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyMedium,
				Steps: []string{
					"Hold a resistance band with arms extended in front",
					"Pull the band apart by squeezing shoulder blades together",
					"Return slowly to starting position",
					"Repeat 15-20 times for 3 sets",
				},
			},
		},
	},
	{
		// Poor sitting posture
		key: "slouching",
		exercises: []Exercise{
			{
				ID:          "cat_cow",
				Name:        "Cat-Cow Stretch",
				Description: "Improve spinal mobility and awareness",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Start on hands and knees in tabletop position",
					"Arch your back upward like a cat, tucking chin",
					"Then drop belly toward floor, lifting head (cow)",
					"Flow between positions 10-15 times",
				},
			},
			{
				ID:          "seated_twist",
				Name:        "Seated Spinal Twist",
				Description: "Release tension in the spine from prolonged sitting",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Sit tall in your chair with feet flat",
					"Twist to the right, holding the back of the chair",
					"Hold for 20-30 seconds",
					"Repeat on the left side",
				},
			},
		},
	},
	{
		// Anterior pelvic tilt territory
		key: "lower back",
		exercises: []Exercise{
			{
				ID:          "hip_flexor_stretch",
				Name:        "Hip Flexor Stretch",
				Description: "Release tight hip flexors that cause lower back strain",
				Duration:    "3-4 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Kneel on your right knee with left foot forward",
					"Push hips forward gently until you feel a stretch",
					"Keep torso upright, hold for 30 seconds",
					"Switch sides, repeat 3 times each",
				},
			},
			{
				ID:          "glute_bridges",
				Name:        "Glute Bridges",
				Description: "Strengthen glutes to support lower back",
				Duration:    "3-4 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Lie on back with knees bent, feet flat",
					"Squeeze glutes and lift hips toward ceiling",
					"Hold at top for 2-3 seconds",
					"Lower slowly, repeat 15-20 times",
				},
			},
			{
				ID:          "dead_bug",
				Name:        "Dead Bug Exercise",
				Description: "Build core stability to protect the lower back",
				Duration:    "3-4 minutes",
				Difficulty:  DifficultyMedium,
				Steps: []string{
					"Lie on back with arms extended toward ceiling",
					"Lift legs to 90 degrees at hips and knees",
					"Lower opposite arm and leg while keeping back flat",
					"Return and alternate, do 10 reps per side",
				},
			},
		},
	},
	{
		// General fallback category
		key: fallbackKey,
		exercises: []Exercise{
			{
				ID:          "thoracic_extension",
				Name:        "Thoracic Extension",
				Description: "Improve upper back mobility and posture",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Sit on floor with foam roller behind upper back",
					"Support head with hands, keep hips down",
					"Gently extend over the roller",
					"Roll up and down the upper back for 1-2 minutes",
				},
			},
			{
				ID:          "plank",
				Name:        "Plank Hold",
				Description: "Build overall core strength for better posture",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyMedium,
				Steps: []string{
					"Start in push-up position on forearms",
					"Keep body in straight line from head to heels",
					"Engage core and hold for 30-60 seconds",
					"Rest and repeat 3 times",
				},
			},
		},
	},
	{
		key: "neck",
		exercises: []Exercise{
			{
				ID:          "levator_scapulae_stretch",
				Name:        "Levator Scapulae Stretch",
				Description: "Release the muscle connecting neck to shoulder blade",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Turn head 45 degrees to the right",
					"Look down toward your armpit",
					"Use right hand to gently increase the stretch",
					"Hold 30 seconds, repeat on other side",
				},
			},
			{
				ID:          "neck_rotations",
				Name:        "Gentle Neck Rotations",
				Description: "Improve neck mobility and reduce stiffness",
				Duration:    "2 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Sit or stand with shoulders relaxed",
					"Slowly rotate head in a circle",
					"Do 5 circles in each direction",
					"Keep movements slow and controlled",
				},
			},
		},
	},
	{
		key: "tight shoulders",
		exercises: []Exercise{
			{
				ID:          "shoulder_rolls",
				Name:        "Shoulder Rolls",
				Description: "Release shoulder tension and improve circulation",
				Duration:    "1-2 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Sit or stand with arms relaxed at sides",
					"Roll shoulders forward in circles 10 times",
					"Reverse direction for 10 more rolls",
					"Repeat 2-3 times throughout the day",
				},
			},
			{
				ID:          "cross_body_stretch",
				Name:        "Cross-Body Shoulder Stretch",
				Description: "Stretch rear deltoid and upper back muscles",
				Duration:    "2-3 minutes",
				Difficulty:  DifficultyEasy,
				Steps: []string{
					"Bring right arm across your body",
					"Use left hand to pull it closer to chest",
					"Hold for 30 seconds",
					"Repeat on other side",
				},
			},
		},
	},
}

// ExercisesForIssues maps free-text issue strings (questionnaire labels or
// AI-generated phrasing) to exercises. Matching is deliberately fuzzy to
// tolerate the AI's vocabulary: an issue matches a group when the
// lower-cased issue contains the group key, or the key contains the issue's
// first word. Results keep first-seen order, are deduplicated by exercise
// ID, and are capped at 6. When nothing matches, the "poor posture" group
// is returned instead — never an empty list.
func ExercisesForIssues(issues []string) []Exercise {
	matched := []Exercise{}
	seen := map[string]bool{}

	for _, issue := range issues {
		lower := strings.ToLower(issue)
		firstWord := strings.SplitN(lower, " ", 2)[0]

		for _, group := range exerciseGroups {
			if !strings.Contains(lower, group.key) && !strings.Contains(group.key, firstWord) {
				continue
			}
			for _, ex := range group.exercises {
				if seen[ex.ID] {
					continue
				}
				matched = append(matched, ex)
				seen[ex.ID] = true
			}
		}
	}

	if len(matched) == 0 {
		for _, group := range exerciseGroups {
			if group.key == fallbackKey {
				matched = append(matched, group.exercises...)
				break
			}
		}
	}

	if len(matched) > maxExercises {
		matched = matched[:maxExercises]
	}
	return matched
}
