package fasting

// Canned coach text. The wording is part of the product surface and
// is kept stable; tests assert against these strings.

// welcomeMessage seeds an empty chat log.
const welcomeMessage = "Hello! I'm your FastWise AI coach. I can help answer questions about fasting, " +
	"provide encouragement, or explain what's happening in your body. How can I assist you today?"

// idleFallback is returned when no keyword category matches outside a fast.
const idleFallback = "I'm here to help with your fasting journey! Would you like to know about getting started, " +
	"fasting benefits, or choosing a protocol?"

// idleCategoryFallback is returned for a matched category with an
// unrecognized experience level.
const idleCategoryFallback = "How can I help you with your fasting journey today?"

// unknownStageFallback is returned when no template exists for a stage.
const unknownStageFallback = "I'm sorry, I don't have specific guidance for this stage yet."

// idleCategory is one keyword category handled outside a fast.
// Categories are evaluated in slice order; the first keyword hit wins.
type idleCategory struct {
	name     string
	keywords []string
	byLevel  map[string]string
}

var idleCategories = []idleCategory{
	{
		name:     "start",
		keywords: []string{"how", "begin", "start"},
		byLevel: map[string]string{
			"beginner":     "Let's start with a gentle 16:8 fast - 16 hours fasting, 8 hours eating. Skip breakfast tomorrow and eat lunch as your first meal!",
			"intermediate": "Ready to begin? Choose your protocol and I'll guide you through the stages with personalized support.",
			"advanced":     "Welcome back! Select your fasting protocol and we'll track your progress through all metabolic stages.",
		},
	},
	{
		name:     "benefits",
		keywords: []string{"benefits", "good", "help"},
		byLevel: map[string]string{
			"beginner":     "Fasting can help with weight management, mental clarity, and cellular health. We'll start slowly to help you adapt safely.",
			"intermediate": "Beyond weight management, you're now experiencing enhanced autophagy, ketone production, and metabolic flexibility.",
			"advanced":     "At your level, you're maximizing autophagy, stem cell activation, and metabolic benefits. Let's optimize your protocol.",
		},
	},
	{
		name:     "motivation",
		keywords: []string{"motivate", "encourage", "inspire"},
		byLevel: map[string]string{
			"beginner":     "Every journey begins with a single step! We'll start gradually and celebrate each milestone together.",
			"intermediate": "You've already proven you can do this! Let's build on your success and reach new fasting goals.",
			"advanced":     "Your dedication is impressive! Let's focus on optimizing your fasting for specific health and performance goals.",
		},
	},
	{
		name:     "protocol",
		keywords: []string{"protocol", "schedule", "plan"},
		byLevel: map[string]string{
			"beginner":     "I recommend starting with 16:8 intermittent fasting. It's sustainable and effective for most people.",
			"intermediate": "Consider advancing to 18:6 or adding a weekly 24-hour fast to enhance benefits.",
			"advanced":     "You might enjoy experimenting with alternate day fasting or targeted 72-hour fasts for maximum benefits.",
		},
	},
}

// Topic handler texts, branched on fasting hours by the coach.

const (
	hungerEarly = "Hunger often comes in waves and passes within 20 minutes. Try drinking water or herbal tea, and stay busy! " +
		"Your body is just adjusting to its natural eating rhythm."
	hungerLate = "At this stage, true hunger usually decreases as your body becomes more efficient at using stored fat. " +
		"If you're experiencing discomfort, check your electrolytes and hydration."
	hungerTransition = "You're in the transition period where hunger can feel strongest. This is normal! " +
		"Your body is switching from glucose to fat for fuel. Stay strong, this phase usually passes soon! 💪"

	energyEarly = "Early fasting fatigue is normal as your body adapts. Try light movement or a short walk to boost energy naturally."
	energyLate  = "Many experience increased energy and mental clarity at this stage! " +
		"If you're feeling tired, ensure adequate electrolytes and rest as needed."
	energyTransition = "You're in the metabolic switch phase! Energy can fluctuate as your body transitions to using fat for fuel. " +
		"This usually stabilizes soon."

	headacheAdvice = "Headaches during fasting often relate to electrolyte imbalance or dehydration. " +
		"Try adding a pinch of salt to your water and ensure you're well hydrated. " +
		"If it persists, breaking your fast is always an option."

	eveningAdvice = "Evening can be challenging for fasting! Try keeping busy with light activities, herbal tea, " +
		"and remember that sleep is a natural fasting period."
	morningAdvice = "Morning energy is often highest during a fast! Take advantage of this clarity for important tasks. " +
		"Stay hydrated as you start your day."
)

// Personalization suffixes.

const beginnerSuffix = "\n\nRemember: It's normal to find this challenging at first. Each fast makes you stronger! 💪"

var scientificContext = map[int]string{
	1: "During the fed state, insulin levels remain elevated to process nutrients.",
	2: "Your body is accessing glycogen stores, typically holding ~2000kcal of energy.",
	3: "Ketone production is beginning as glucose availability decreases.",
	4: "Gluconeogenesis is maintaining stable blood glucose while ketones increase.",
	5: "Autophagy is significantly enhanced during this prolonged fasting state.",
	6: "Growth hormone levels are elevated to preserve lean tissue mass.",
}

const (
	headacheAddendum = "\n\nFor your headache: Try adding electrolytes and staying hydrated. This is common during adaptation."
	dizzyAddendum    = "\n\nFeeling dizzy? Take it easy, add some salt to your water, and don't hesitate to break your fast if needed."
)

var motivationalMessages = []string{
	"You're doing great! Remember why you started this journey.",
	"Every hour of fasting is benefiting your body at the cellular level.",
	"Stay strong! The hunger waves always pass.",
	"Your willpower is building with every moment of this fast.",
	"You've got this! Your body is thanking you for this reset.",
	"Remember, fasting gets easier with practice as your body adapts.",
	"You're not just abstaining from food - you're actively healing your body.",
	"Difficult roads often lead to beautiful destinations. Keep going!",
	"Your future self will thank you for the discipline you're showing now.",
	"Focus on how you'll feel when you complete this fast, not on temporary discomfort.",
	"Fasting is like a muscle - the more you use it, the stronger it gets.",
	"Each fasting hour is like a deposit in your health savings account.",
	"Hunger is often just a habit of eating at certain times, not true hunger.",
	"Your body has food - it's just eating your fat stores instead of a meal!",
	"What seems hard now will soon become your new normal. Persist!",
	"Fasting doesn't get easier - you get stronger.",
	"Small daily improvements lead to stunning results over time.",
	"Trust the process. Your body knows exactly what to do during a fast.",
	"The temporary discomfort of fasting leads to lasting metabolic health.",
}

// stageQuestion is one topic entry in a stage's question table.
// Entries are scanned in order; the first keyword contained in the
// user's message wins.
type stageQuestion struct {
	keyword  string
	variants []string
}

// stageTemplate holds the time-bucketed generic replies and the
// per-topic question table for one stage.
type stageTemplate struct {
	stage     int
	early     []string
	middle    []string
	late      []string
	questions []stageQuestion
}

var stageTemplates = []stageTemplate{
	{
		stage: 1,
		early: []string{
			"You're just getting started with your fast! Your body is still processing your last meal, which typically takes 3-4 hours. This is a great time to stay hydrated and prepare mentally for your fasting journey.",
			"Welcome to your fasting journey! Right now, your body is digesting your last meal. Insulin levels are elevated as nutrients are being absorbed and stored. Stay hydrated and embrace the beginning of your fast!",
		},
		middle: []string{
			"You're about halfway through the Fed State. Your body is actively processing your last meal. Insulin is still elevated, which is normal during digestion. Keep drinking water and prepare for the next stage.",
			"Your body is busy processing nutrients from your last meal. This digestive process creates the feeling of fullness that helps ease you into your fast. Stay hydrated and notice how your body feels.",
		},
		late: []string{
			"You're nearing the end of the Fed State. Soon, your body will transition to using stored energy instead of food from your last meal. Keep drinking water and notice the subtle changes in how you feel.",
			"The Fed State is almost complete. Your body has nearly finished processing your last meal, and soon you'll begin tapping into stored energy. This transition is the first step in your fasting journey!",
		},
		questions: []stageQuestion{
			{keyword: "hunger", variants: []string{
				"Feeling hungry already? That's often psychological at this early stage since your body is still processing food. Try drinking water or herbal tea, and distract yourself with an engaging activity.",
				"Early hunger during the Fed State is typically mental rather than physical. Your body still has plenty of available energy from your recent meal. Deep breathing or a short walk can help shift your focus.",
			}},
			{keyword: "water", variants: []string{
				"Water is essential during fasting! Aim for at least 2-3 liters daily. You can also enjoy black coffee, plain tea, and other non-caloric beverages. Staying hydrated helps manage hunger and supports your body's processes.",
				"Hydration is crucial! Water, black coffee, and plain tea are excellent choices. Proper hydration helps with hunger management and supports the detoxification processes that occur during fasting.",
			}},
			{keyword: "exercise", variants: []string{
				"Light exercise during the Fed State is perfectly fine! Your body still has plenty of readily available energy. Walking, stretching, or light cardio are all good options. Listen to your body and don't overdo it.",
				"Exercise is great during this early stage! Your body has ample energy from your recent meal. Moderate activity can help deplete glycogen stores faster, accelerating your transition to fat burning.",
			}},
		},
	},
	{
		stage: 2,
		early: []string{
			"You've entered the Early Post-Absorptive stage! Your body has finished processing your last meal and is beginning to tap into liver glycogen (stored carbohydrates). Insulin levels are starting to decrease, which will eventually lead to fat burning.",
			"Welcome to the Early Post-Absorptive phase! Your body is now shifting from using your last meal for energy to tapping into stored glycogen. This is when the metabolic benefits of fasting begin to kick in.",
		},
		middle: []string{
			"You're making great progress! Your body is actively using glycogen stores, and insulin levels continue to drop. This gradual transition prepares your body to access fat stores more efficiently. Hunger may come and go in waves - this is completely normal.",
			"You're well into the Early Post-Absorptive phase. Your liver is releasing stored glucose to maintain blood sugar levels. This process is helping to deplete glycogen reserves, an important step before significant fat burning begins.",
		},
		late: []string{
			"You're approaching the end of the Early Post-Absorptive phase! Your glycogen stores are becoming depleted, and your body is preparing to increase fat oxidation. Some people begin to notice mental clarity improvements around this time.",
			"You're doing fantastic! This stage is laying the groundwork for the metabolic shift coming soon. Your insulin levels have decreased significantly, which helps unlock your fat stores for energy use.",
		},
		questions: []stageQuestion{
			{keyword: "hunger", variants: []string{
				"Hunger often peaks during this stage as your body adjusts to using stored energy. Remember that hunger comes in waves that typically last only 20-30 minutes. Staying busy, drinking water, or having a pinch of salt can help manage these feelings.",
				"This is when many people experience their strongest hunger signals. These are often hormonal (from ghrelin, the hunger hormone) rather than representing true energy needs. The hunger wave will pass if you wait it out, usually within 30 minutes.",
			}},
			{keyword: "energy", variants: []string{
				"Energy fluctuations are normal during this transition phase. Your body is switching fuel sources from immediate food energy to stored energy. Light activity can actually help stabilize energy levels, and electrolytes may be beneficial if you're feeling low.",
				"Some energy dips are common as your body adapts to using stored energy instead of recently consumed food. This is temporary! Many people find their energy stabilizes and even improves as they progress further into their fast.",
			}},
			{keyword: "headache", variants: []string{
				"Headaches during this stage often relate to electrolyte imbalances or caffeine withdrawal (if you've reduced coffee/tea). Try adding a pinch of salt to your water, staying well-hydrated, and ensuring adequate magnesium and potassium intake.",
				"Headaches are common for fasting beginners. They're typically related to dehydration, electrolyte imbalance, or caffeine changes. A pinch of salt in water, staying hydrated, and possibly taking magnesium can help resolve this issue.",
			}},
		},
	},
	{
		stage: 3,
		early: []string{
			"Congratulations on reaching the Metabolic Shift stage! Your body is now significantly increasing fat oxidation as glycogen stores become depleted. Ketone production is beginning, providing an alternative fuel source for your brain.",
			"You've reached an exciting milestone! The Metabolic Shift phase is when your body starts producing significant amounts of ketones from fat breakdown. Many fasters notice improved mental clarity and reduced hunger during this phase.",
		},
		middle: []string{
			"You're in the heart of the Metabolic Shift! Your body is ramping up ketone production and fat burning. This is when many people report a notable decrease in hunger and improvements in mental focus. Autophagy (cellular cleaning) is also increasing.",
			"You're doing wonderfully! This stage is when many of the beneficial processes of fasting really accelerate. Your body is becoming increasingly efficient at using fat for fuel, and cellular cleaning mechanisms are activating.",
		},
		late: []string{
			"You're approaching the end of the Metabolic Shift stage! Your ketone levels are continuing to rise, providing clean fuel for your brain. Growth hormone production is increasing, which helps preserve muscle mass during extended fasting.",
			"You're almost through the Metabolic Shift! This crucial transition has established ketosis and enhanced fat burning. The hunger-suppressing effects of ketones are typically strong now, making the rest of your fast more comfortable.",
		},
		questions: []stageQuestion{
			{keyword: "ketosis", variants: []string{
				"Yes, you're likely entering ketosis now! The Metabolic Shift stage (16-24 hours) is when ketone production becomes significant. These ketones provide an excellent alternative fuel for your brain and help suppress hunger.",
				"Ketosis typically begins during this Metabolic Shift stage. Your liver is converting fatty acids into ketone bodies, which serve as an efficient fuel source for your brain and many other tissues. This metabolic state offers numerous benefits beyond just weight management.",
			}},
			{keyword: "focus", variants: []string{
				"Many people report improved mental clarity during this stage as ketones increase. Your brain actually functions very efficiently on ketones, which some researchers believe may have evolutionary advantages. Stay hydrated and consider electrolytes if you're not experiencing this benefit yet.",
				"Mental clarity often improves during this stage! Ketones provide a steady, efficient energy source for your brain, without the fluctuations that can come from glucose metabolism. Some people describe it as a 'lifting of brain fog.'",
			}},
			{keyword: "exercise", variants: []string{
				"Light to moderate exercise is still fine, but high-intensity workouts may become more challenging as your body adapts to using fat and ketones for fuel. Walking, yoga, or light resistance training are good options. Listen to your body and scale back if needed.",
				"Exercise during this phase should be approached mindfully. Your body is undergoing a significant metabolic transition. Many people find they perform well with light activities, but may need to reduce intensity compared to their fed state. Walking and light resistance training are excellent choices.",
			}},
		},
	},
	{
		stage: 4,
		early: []string{
			"You've entered the Gluconeogenic State! Your body is now actively producing glucose from non-carbohydrate sources (like certain amino acids and glycerol) while also significantly increasing ketone production. Fat burning is substantially enhanced.",
			"Welcome to the Gluconeogenic State! You've passed the 24-hour mark, which is an impressive achievement. Your body is now fully engaged in producing ketones and has activated significant autophagy (cellular cleaning) processes.",
		},
		middle: []string{
			"You're progressing excellently through the Gluconeogenic State. Ketone levels are continuing to rise, providing clean, efficient fuel for your brain. Autophagy is well-established, removing damaged cellular components and proteins.",
			"You're doing remarkably well! At this stage, your growth hormone levels have increased significantly, which helps preserve muscle mass. Fat oxidation is now your primary energy source, and many people report significant mental clarity.",
		},
		late: []string{
			"You're approaching the end of the Gluconeogenic State! Your ketone levels are approaching their peak, and your body has become quite efficient at using fat for fuel. Insulin sensitivity is improving, which will benefit your metabolism even after the fast.",
			"You're almost through this stage! The extensive fat burning and ketone production happening now are providing steady energy and typically reducing hunger significantly. Your body is showing its remarkable adaptability to using stored energy.",
		},
		questions: []stageQuestion{
			{keyword: "hunger", variants: []string{
				"Many people report that hunger significantly decreases during this stage as ketone levels rise. Ketones have a natural appetite-suppressing effect. If you're still experiencing hunger, ensure you're well-hydrated and consider adding a pinch of salt to your water.",
				"Hunger typically diminishes considerably by this stage. If you're still experiencing it, check your hydration and electrolyte balance. Sometimes what feels like hunger is actually thirst or an electrolyte need. A pinch of salt or a sugar-free electrolyte supplement may help.",
			}},
			{keyword: "muscle", variants: []string{
				"Your body is working to preserve muscle during this stage! Growth hormone levels increase significantly during extended fasting, which helps maintain lean tissue. Adequate protein before and after your fast, along with resistance training, further protects muscle mass.",
				"Muscle preservation is actually enhanced during this fasting stage through several mechanisms. Growth hormone increases significantly (up to 5x baseline), and your body becomes more efficient at recycling amino acids. Light resistance training during your fast can further protect muscle tissue.",
			}},
			{keyword: "sleep", variants: []string{
				"Sleep changes are common during extended fasting. Some people need less sleep, while others experience lighter sleep. This is often due to increased adrenaline and cortisol - part of your body's adaptation to fasting. Magnesium before bed can help improve sleep quality.",
				"Many fasters notice changes in their sleep patterns at this stage. Often people report needing less sleep yet feeling more rested. This likely relates to hormetic stress responses and increased orexin (a wakefulness neurotransmitter). If sleep disturbances are problematic, consider magnesium supplementation before bed.",
			}},
		},
	},
	{
		stage: 5,
		early: []string{
			"Congratulations on reaching Deep Ketosis! You've passed the 48-hour mark, which is a significant milestone. Ketone production is at or near peak levels, providing efficient fuel for your brain and body. Autophagy is substantially elevated.",
			"Welcome to Deep Ketosis! This stage represents a significant achievement in your fasting journey. Your ketone levels are at or near their peak, providing clean, efficient fuel. Autophagy (cellular cleaning) is now significantly enhanced.",
		},
		middle: []string{
			"You're progressing exceptionally well through Deep Ketosis. Your body has become highly efficient at utilizing fat for fuel. Stem cell activation begins during this phase, which contributes to the regenerative benefits of extended fasting.",
			"You're doing remarkably well in Deep Ketosis! Your insulin levels are extremely low, maximizing fat burning and improving insulin sensitivity. The significant autophagy happening now helps remove damaged cellular components and may have longevity benefits.",
		},
		late: []string{
			"You're approaching the end of the Deep Ketosis stage! Your body has been experiencing maximum autophagy, peak fat burning, and significant improvements in inflammatory markers. These benefits can persist even after you resume eating.",
			"You're almost through Deep Ketosis! The metabolic flexibility you're developing during this extended fast will benefit you even after you resume eating. Your insulin sensitivity is significantly improved, and cellular regeneration processes are highly active.",
		},
		questions: []stageQuestion{
			{keyword: "breaking_fast", variants: []string{
				"Breaking an extended fast properly is crucial! Start very small with easily digestible foods like bone broth, a small serving of protein, or a light vegetable soup. Avoid carbohydrates and large meals initially, then gradually increase portion sizes over 1-2 days.",
				"After fasting this long, breaking your fast correctly is essential. Begin with a small, gentle meal - bone broth, scrambled eggs, or a small salad with protein are good options. Avoid large portions, high-carb foods, and processed items, which can cause digestive discomfort or reactive hypoglycemia.",
			}},
			{keyword: "electrolytes", variants: []string{
				"Electrolytes are absolutely critical during extended fasting! Ensure adequate sodium (2-3g daily), potassium (1-2g), and magnesium (300-400mg). Many symptoms at this stage (headache, weakness, cramps) relate to electrolyte imbalances rather than true energy needs.",
				"At this stage, electrolyte management is essential. Your body excretes more sodium, potassium, and magnesium during extended fasting, which must be replaced. A good general approach is adding pink salt to water, consuming sugar-free electrolyte supplements, or using magnesium glycinate supplements.",
			}},
			{keyword: "warning_signs", variants: []string{
				"Important warning signs to watch for: extreme dizziness when standing, heart palpitations, persistent nausea, unusual weakness, or feeling genuinely unwell (beyond minor discomforts). If you experience these, break your fast with a light meal and consult a healthcare provider if symptoms persist.",
				"While some discomfort can be normal during extended fasting, certain symptoms warrant breaking your fast: severe lightheadedness, heart palpitations that persist after electrolyte supplementation, extreme weakness, persistent nausea, or feeling significantly unwell. Your safety always comes first.",
			}},
		},
	},
	{
		stage: 6,
		early: []string{
			"You've entered Extended Starvation after 72+ hours of fasting - an impressive achievement! Your body is fully adapted to using ketones and fat for fuel. Protein conservation mechanisms are maximized to protect muscle tissue.",
			"Welcome to the Extended Starvation phase! This advanced fasting stage represents significant metabolic adaptation. Your body is fully ketone-adapted, growth hormone levels are substantially elevated, and autophagy is maximized.",
		},
		middle: []string{
			"You're progressing remarkably through Extended Starvation. Your body continues to efficiently utilize fat stores while preserving lean tissue. Stem cell activation is significant during this phase, contributing to cellular renewal.",
			"Your extended fast is progressing exceptionally well! At this stage, your body has maximized its fat-burning capabilities while developing sophisticated protein-sparing mechanisms. The regenerative processes active now may have significant longevity benefits.",
		},
		late: []string{
			"You're continuing to thrive in the Extended Starvation phase! Your body has been maintaining peak autophagy, maximum fat oxidation, and significant cellular renewal processes. These profound adaptations showcase your body's remarkable resilience.",
			"Your extended fasting journey continues to demonstrate your body's remarkable adaptability! The metabolic flexibility, cellular regeneration, and potential immune system reset you're experiencing represent some of the most profound benefits of extended fasting.",
		},
		questions: []stageQuestion{
			{keyword: "how_long", variants: []string{
				"Extended fasts beyond 72 hours should only be undertaken with proper research and ideally medical supervision. Many experts suggest that most metabolic benefits peak within 3-5 days, with diminishing returns afterward. Listen to your body and break your fast if you experience concerning symptoms.",
				"The optimal fasting duration varies by individual and goals. Most research suggests the key autophagy and metabolic benefits are significant by day 3-5. Extended fasts beyond this point should only be done with appropriate medical guidance. Always prioritize safety and listen to your body's signals.",
			}},
			{keyword: "refeeding", variants: []string{
				"After such an extended fast, proper refeeding is absolutely critical to avoid refeeding syndrome, a potentially dangerous condition. Begin with very small, protein-focused meals (bone broth, small serving of eggs or fish). Gradually increase calories over 2-3 days, initially avoiding high-carb foods.",
				"Proper refeeding after your extended fast is crucial for safety. Begin with very small portions of easily digestible foods rich in proteins and fats but low in carbohydrates. Bone broth, scrambled eggs, or a small portion of fish are ideal. Increase portion sizes gradually over several days while monitoring how you feel.",
			}},
			{keyword: "medical", variants: []string{
				"Extended fasting of this duration should ideally include medical supervision. Key parameters to monitor include electrolytes (particularly sodium, potassium, magnesium), blood pressure, and any unusual symptoms. Breaking your fast is appropriate if you develop concerning symptoms.",
				"For fasts of this duration, medical oversight is advisable. Important health parameters to monitor include electrolytes, blood pressure, and general wellbeing. Remember that the benefits of fasting can be obtained through shorter durations or intermittent protocols as well. Always prioritize your safety.",
			}},
		},
	},
	{
		stage: StageRefeeding,
		early: []string{
			"Welcome to the Refeeding phase! This crucial transition back to eating requires careful attention. Start with a very small, easily digestible meal. How you break your fast significantly impacts how you'll feel afterward.",
			"You've now entered the important Refeeding phase. The transition back to eating requires thoughtful attention, especially after extended fasting. Begin with small, nutrient-dense foods that are gentle on your digestive system.",
		},
		middle: []string{
			"You're progressing well through the Refeeding process. Continue with modest portion sizes and nutrient-dense foods. Your digestive system is reactivating, and your insulin sensitivity is currently optimal for nutrient partitioning.",
			"Your refeeding is going well! At this stage, you can gradually increase portion sizes while maintaining focus on whole, nutrient-dense foods. Your body is particularly efficient at nutrient absorption and utilization right now.",
		},
		late: []string{
			"You're nearing the completion of your refeeding process. Your digestive system has reactivated, and you can transition to normal healthy eating patterns. The metabolic benefits from your fast can persist for days or even weeks.",
			"You've almost completed the refeeding transition! Your body has successfully readapted to processing food, and you're ready to resume normal eating patterns. Consider incorporating regular fasting into your lifestyle to maintain benefits.",
		},
		questions: []stageQuestion{
			{keyword: "what_to_eat", variants: []string{
				"The best foods to break your fast depend on the duration. For shorter fasts (<24h), most whole foods are fine. For longer fasts, begin with easily digestible options like bone broth, soft-cooked eggs, avocado, or well-cooked vegetables. Avoid processed foods, large meals, and high-carb options initially.",
				"Ideal foods for breaking your fast include protein-rich, easily digestible options: bone broth, scrambled eggs, steamed fish, avocado, or well-cooked low-carb vegetables. These provide essential nutrients without overwhelming your digestive system. Gradually increase complexity and portion sizes with subsequent meals.",
			}},
			{keyword: "overeating", variants: []string{
				"Post-fast overeating is common but counterproductive! It can cause digestive distress and negate some fasting benefits. Use small plates, eat slowly, and pause between helpings. Remember that your stomach capacity temporarily decreases during fasting.",
				"To avoid post-fast overeating, pre-plan your break-fast meal, use smaller plates, eat very slowly, and wait 20 minutes before deciding on seconds. Your hunger and fullness signals may take time to normalize, so conscious eating is especially important during refeeding.",
			}},
			{keyword: "benefits", variants: []string{
				"To maintain your fasting benefits, consider incorporating regular time-restricted eating (like 16:8) or occasional longer fasts into your routine. Focus on whole, nutrient-dense foods during eating windows, and minimize processed foods and refined carbohydrates.",
				"The benefits from your fast can be extended through ongoing intermittent fasting practices, prioritizing whole foods, adequate protein intake, and regular physical activity. Many people find that a consistent 16:8 or 18:6 eating pattern helps maintain the metabolic improvements gained from longer fasts.",
			}},
		},
	},
}
