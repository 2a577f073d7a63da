package fasting

import "fastwise/internal/model"

// protocols is the built-in catalog, ordered by fasting duration.
var protocols = []model.Protocol{
	{
		ID:          "12-12",
		Name:        "12:12 Balanced",
		Description: "12 hours fasting, 12 hours eating. A gentle introduction that mostly formalizes the overnight fast.",
		FastHours:   12,
		EatHours:    12,
	},
	{
		ID:          "14-10",
		Name:        "14:10 Gentle",
		Description: "14 hours fasting with a 10 hour eating window. A comfortable step up from 12:12.",
		FastHours:   14,
		EatHours:    10,
	},
	{
		ID:          "16-8",
		Name:        "16:8 Intermittent",
		Description: "16 hours fasting, 8 hours eating. The most popular protocol - sustainable and effective for most people.",
		FastHours:   16,
		EatHours:    8,
		Recommended: true,
	},
	{
		ID:          "18-6",
		Name:        "18:6 Extended",
		Description: "18 hours fasting with a 6 hour eating window. Deepens glycogen depletion before the first meal.",
		FastHours:   18,
		EatHours:    6,
	},
	{
		ID:          "20-4",
		Name:        "20:4 Warrior",
		Description: "20 hours fasting with a 4 hour eating window, typically one large meal plus a snack.",
		FastHours:   20,
		EatHours:    4,
	},
	{
		ID:          "omad",
		Name:        "OMAD",
		Description: "One meal a day: 23 hours fasting with a single one-hour eating window.",
		FastHours:   23,
		EatHours:    1,
	},
	{
		ID:          "24h",
		Name:        "24 Hour Fast",
		Description: "A full-day fast, dinner to dinner. Reaches the metabolic shift into early ketosis.",
		FastHours:   24,
		EatHours:    24,
	},
	{
		ID:          "36h",
		Name:        "36 Hour Fast",
		Description: "A 'monk fast' spanning a full day and two nights. Significant ketone production and autophagy.",
		FastHours:   36,
		EatHours:    12,
	},
	{
		ID:          "48h",
		Name:        "48 Hour Fast",
		Description: "A two-day fast reaching deep ketosis. For experienced fasters; electrolyte supplementation advised.",
		FastHours:   48,
		EatHours:    24,
	},
	{
		ID:          "72h",
		Name:        "72 Hour Fast",
		Description: "A three-day fast for maximum autophagy and stem cell activation. Medical supervision recommended.",
		FastHours:   72,
		EatHours:    24,
	},
}

// Protocols returns the built-in protocol catalog in duration order.
// Callers must not modify the returned slice.
func Protocols() []model.Protocol { return protocols }

// ProtocolByID looks up a protocol by id. The second result reports
// whether the id is in the catalog.
func ProtocolByID(id string) (model.Protocol, bool) {
	for _, p := range protocols {
		if p.ID == id {
			return p, true
		}
	}
	return model.Protocol{}, false
}
