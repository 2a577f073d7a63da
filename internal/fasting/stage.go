package fasting

import (
	"math"

	"fastwise/internal/model"
)

// StageRefeeding is the post-fast stage. It is never returned by
// ClassifyStage; it applies only when the user is explicitly breaking
// a fast.
const StageRefeeding = 7

// stages is the static catalog, ordered by start hour. The first six
// stages tile [0, +Inf) with contiguous half-open ranges; Refeeding is
// not time-indexed.
var stages = []model.Stage{
	{
		ID:        1,
		Name:      "Fed State",
		StartHour: 0,
		EndHour:   4,
		Description: "Your body is actively digesting and absorbing nutrients from your last meal. " +
			"Insulin levels are elevated, promoting storage of excess energy as glycogen and fat.",
		Benefits: []string{
			"Nutrient absorption",
			"Energy for immediate use",
		},
		Tips: []string{
			"This is when your last meal is being processed",
			"Drink water to help with digestion",
			"Avoid additional snacking to begin the fasting process",
		},
		Symptoms: []string{
			"Normal energy levels",
			"Feeling of fullness",
			"Possible slight drowsiness after large meals",
		},
	},
	{
		ID:        2,
		Name:      "Early Post-Absorptive",
		StartHour: 4,
		EndHour:   16,
		Description: "Your body begins to tap into glycogen stores in the liver as blood glucose levels start to decrease. " +
			"Insulin levels begin to drop, allowing for the beginning of fat mobilization.",
		Benefits: []string{
			"Beginning of glycogen depletion",
			"Insulin levels starting to drop",
			"Initial fat-burning activation",
		},
		Tips: []string{
			"Stay hydrated with water, black coffee, or plain tea",
			"Light activity can help deplete glycogen faster",
			"Hunger may come in waves - it typically passes after 20-30 minutes",
		},
		Symptoms: []string{
			"Initial hunger signals",
			"Slight decrease in energy",
			"Possible mild mental fog",
		},
	},
	{
		ID:        3,
		Name:      "Metabolic Shift",
		StartHour: 16,
		EndHour:   24,
		Description: "Liver glycogen is significantly depleted, and your body begins ramping up fat oxidation. " +
			"Ketone production begins, providing an alternative fuel source for the brain.",
		Benefits: []string{
			"Fat burning increases significantly",
			"Initial ketone production",
			"Growth hormone increases",
			"Cellular cleaning (autophagy) begins",
		},
		Tips: []string{
			"Replenish electrolytes (sodium, potassium, magnesium)",
			"Light walking can help with energy levels",
			"Mental clarity often improves during this phase",
		},
		Symptoms: []string{
			"Hunger typically decreases",
			"Energy fluctuations",
			"Possible slight dizziness when standing quickly",
		},
	},
	{
		ID:        4,
		Name:      "Gluconeogenic State",
		StartHour: 24,
		EndHour:   48,
		Description: "Your body is actively producing glucose through gluconeogenesis (creating glucose from non-carbohydrate sources). " +
			"Ketone levels continue to rise, becoming a major fuel source.",
		Benefits: []string{
			"Significant increase in ketone levels",
			"Enhanced fat burning",
			"Increased autophagy",
			"Reduced inflammation",
		},
		Tips: []string{
			"Electrolyte supplementation becomes more important",
			"Reduce intensive exercise",
			"Stay busy to avoid food-focused thinking",
		},
		Symptoms: []string{
			"Hunger typically very low",
			"Possible mental clarity",
			"Some may experience mild headaches",
			"Cold extremities possible",
		},
	},
	{
		ID:        5,
		Name:      "Deep Ketosis",
		StartHour: 48,
		EndHour:   72,
		Description: "Ketone production reaches peak levels, providing most of the energy for the brain and body. " +
			"Autophagy (cellular cleaning) is significantly enhanced, and insulin sensitivity improves.",
		Benefits: []string{
			"Maximum autophagy",
			"Peak fat burning",
			"Enhanced brain function for many",
			"Stem cell activation begins",
			"Significant insulin sensitivity improvement",
		},
		Tips: []string{
			"Continue electrolyte supplementation",
			"Rest as needed",
			"Monitor for any warning signs",
		},
		Symptoms: []string{
			"Minimal hunger",
			"Increased energy for many",
			"Possible euphoria",
			"Some may experience sleep changes",
		},
	},
	{
		ID:        6,
		Name:      "Extended Starvation",
		StartHour: 72,
		EndHour:   math.Inf(1),
		Description: "The body is fully adapted to using ketones and fatty acids for fuel. " +
			"Protein conservation mechanisms are maximized, and growth hormone levels peak to preserve muscle mass.",
		Benefits: []string{
			"Maximum cellular regeneration",
			"Significant immune system reset",
			"Maximum growth hormone production",
			"Extended stem cell activation",
		},
		Tips: []string{
			"Only continue under medical supervision",
			"Daily electrolyte supplementation is crucial",
			"Monitor for warning signs",
			"Break fast immediately if feeling unwell",
		},
		Symptoms: []string{
			"Minimal to no hunger",
			"High mental clarity for many",
			"Possible euphoria",
			"Need for less sleep",
			"Cold sensitivity",
		},
	},
	{
		ID:        StageRefeeding,
		Name:      "Refeeding",
		StartHour: 0,
		EndHour:   0, // not time-indexed
		Description: "The critical phase of transitioning back to eating. " +
			"How you break your fast is crucial, especially after extended fasts.",
		Benefits: []string{
			"Insulin sensitivity is maximized",
			"Nutrient absorption is enhanced",
			"Digestive system reset",
		},
		Tips: []string{
			"Break fast with small, easily digestible meals",
			"For longer fasts (>36h), start with bone broth or light protein",
			"Avoid large, heavy meals and processed foods",
			"Gradually increase meal size over several hours",
		},
		Symptoms: []string{
			"Possible intense hunger",
			"Digestive sensitivity",
			"Rapid energy increase",
		},
	},
}

// Stages returns the static stage catalog, time-indexed stages first.
// Callers must not modify the returned slice.
func Stages() []model.Stage { return stages }

// StageByID looks up a stage by id; the second result reports whether
// the id exists.
func StageByID(id int) (model.Stage, bool) {
	for _, s := range stages {
		if s.ID == id {
			return s, true
		}
	}
	return model.Stage{}, false
}

// ClassifyStage maps elapsed fasting hours to a stage id. Ranges are
// scanned in ascending-start order and the first [start, end) hit
// wins; hours beyond every finite range fall into the terminal
// open-ended stage. Refeeding is never returned here.
func ClassifyStage(elapsedHours float64) int {
	terminal := 1
	for _, s := range stages {
		if s.ID == StageRefeeding {
			continue
		}
		if elapsedHours >= s.StartHour && elapsedHours < s.EndHour {
			return s.ID
		}
		terminal = s.ID
	}
	return terminal
}
