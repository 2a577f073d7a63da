package fasting

import (
	"math"
	"strings"

	"fastwise/internal/model"
)

// Coach is the rule-based response engine. It never errors and never
// mutates session or stats state; its only nondeterminism is the
// injected RandSource used to pick among text variants.
type Coach struct {
	clock Clock
	rand  RandSource
}

// NewCoach creates a Coach drawing time from clock and variant
// selections from rand.
func NewCoach(clock Clock, rand RandSource) *Coach {
	return &Coach{clock: clock, rand: rand}
}

// coachContext is the immutable snapshot a reply is composed from.
type coachContext struct {
	stage           int
	fastingHours    float64
	symptoms        []string
	energy          int
	mood            model.Mood
	timeOfDay       int // local hour, 0-23
	experienceLevel string
	motivationStyle string
}

// Respond selects and personalizes a reply for the user's message.
// Outside a fast only keyword categories apply; during a fast an
// ordered rule chain runs: symptom/topic handlers, then time-of-day
// rules, then the stage template table, then personalization.
func (c *Coach) Respond(message string, active *model.Fast, stats model.UserStats) string {
	if active == nil {
		return c.respondIdle(message, stats)
	}
	ctx := c.buildContext(active, stats)
	base := c.baseResponse(strings.ToLower(message), ctx)
	return c.personalize(base, ctx)
}

func (c *Coach) buildContext(active *model.Fast, stats model.UserStats) coachContext {
	now := c.clock.Now()
	fastingHours := (now.Sub(active.StartTime) - active.PausedTime).Hours()

	return coachContext{
		stage:           ClassifyStage(fastingHours),
		fastingHours:    fastingHours,
		symptoms:        active.Symptoms,
		energy:          active.Energy,
		mood:            active.Mood,
		timeOfDay:       now.Hour(),
		experienceLevel: stats.ExperienceLevel,
		motivationStyle: stats.MotivationStyle,
	}
}

func (c *Coach) respondIdle(message string, stats model.UserStats) string {
	lower := strings.ToLower(message)
	for _, category := range idleCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				if reply, ok := category.byLevel[stats.ExperienceLevel]; ok {
					return reply
				}
				return idleCategoryFallback
			}
		}
	}
	return idleFallback
}

// baseResponse runs the ordered rule chain; first match wins.
func (c *Coach) baseResponse(lower string, ctx coachContext) string {
	// Symptom and topic rules.
	if strings.Contains(lower, "hungry") || strings.Contains(lower, "hunger") {
		return hungerResponse(ctx)
	}
	if strings.Contains(lower, "tired") || strings.Contains(lower, "energy") {
		return energyResponse(ctx)
	}
	if strings.Contains(lower, "headache") {
		return headacheAdvice
	}

	// Time-of-day rules.
	if ctx.timeOfDay >= 18 && ctx.fastingHours < 12 {
		return eveningAdvice
	}
	if ctx.timeOfDay >= 5 && ctx.timeOfDay <= 8 && ctx.fastingHours > 8 {
		return morningAdvice
	}

	// Stage template fallback.
	return c.stageResponse(ctx.stage, lower, math.Mod(ctx.fastingHours, 24)/24)
}

func hungerResponse(ctx coachContext) string {
	if ctx.fastingHours < 12 {
		return hungerEarly
	}
	if ctx.fastingHours > 24 {
		return hungerLate
	}
	return hungerTransition
}

func energyResponse(ctx coachContext) string {
	if ctx.fastingHours < 16 {
		return energyEarly
	}
	if ctx.fastingHours > 36 {
		return energyLate
	}
	return energyTransition
}

// stageResponse selects from the stage's template table. The day
// fraction picks the early/middle/late bucket; a question-table
// keyword hit takes precedence over the generic bucket variants.
func (c *Coach) stageResponse(stage int, lower string, dayFraction float64) string {
	var template *stageTemplate
	for i := range stageTemplates {
		if stageTemplates[i].stage == stage {
			template = &stageTemplates[i]
			break
		}
	}
	if template == nil {
		return unknownStageFallback
	}

	for _, q := range template.questions {
		if strings.Contains(lower, q.keyword) {
			return c.pick(q.variants)
		}
	}

	switch {
	case dayFraction < 0.3:
		return c.pick(template.early)
	case dayFraction < 0.7:
		return c.pick(template.middle)
	default:
		return c.pick(template.late)
	}
}

// personalize appends experience, motivation-style and symptom
// suffixes, in that order.
func (c *Coach) personalize(response string, ctx coachContext) string {
	if ctx.experienceLevel == model.LevelBeginner {
		response += beginnerSuffix
	}

	switch ctx.motivationStyle {
	case model.StyleScientific:
		response += "\n\n🔬 Scientific Context: " + scientificContext[ctx.stage]
	case model.StyleEmotional:
		response += "\n\n" + c.pick(motivationalMessages)
	}

	// First matching recorded symptom only.
	if containsSymptom(ctx.symptoms, "headache") {
		response += headacheAddendum
	} else if containsSymptom(ctx.symptoms, "dizzy") {
		response += dizzyAddendum
	}

	return response
}

func containsSymptom(symptoms []string, symptom string) bool {
	for _, s := range symptoms {
		if s == symptom {
			return true
		}
	}
	return false
}

// pick draws a uniformly random element.
func (c *Coach) pick(variants []string) string {
	return variants[int(c.rand.Float64()*float64(len(variants)))]
}
