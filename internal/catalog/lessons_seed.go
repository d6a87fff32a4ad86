package catalog

// seedLessons defines the curriculum: 12 lessons across 3 mastery levels.
// Order matters — the progression engine walks this slice front to back,
// and lessons must be grouped by level in unlock order.
//
// IDs are persistence keys. Never rename or reuse an id; retire content by
// removing the record and leaving the id unused.
var seedLessons = []Lesson{
	// Foundation (5)
	{
		ID:       "fnd-protein-anchor",
		Title:    "Anchor Every Meal With Protein",
		Subtitle: "The one habit that carries the rest",
		Paragraphs: [LessonParagraphs]string{
			"Protein is the anchor of a balanced plate. It slows digestion, steadies blood sugar, and keeps you full for hours instead of minutes. Meals without it tend to unravel into grazing by mid-afternoon.",
			"You don't need to weigh anything. A palm-sized portion of eggs, fish, chicken, tofu, beans, or Greek yogurt at each meal is enough for most people, most days.",
			"Start with breakfast — it's the meal where protein is most often missing. Swap toast-only mornings for eggs or yogurt and notice how the 11am snack urge fades.",
		},
		Category: CategoryProtein,
		Level:    LevelFoundation,
	},
	{
		ID:       "fnd-half-plate-plants",
		Title:    "Half the Plate Is Plants",
		Subtitle: "Volume, fiber, and color do the work",
		Paragraphs: [LessonParagraphs]string{
			"Vegetables and fruit fill you up on few calories and feed the gut bacteria that regulate appetite. Half the plate is the target — not a garnish on the side.",
			"Frozen and tinned count. A bag of frozen broccoli steamed in three minutes beats the fresh head that wilts in the drawer. Perfect is the enemy of eaten.",
			"If half feels like a leap, start by doubling whatever vegetable portion you'd normally serve. The plate rebalances itself from there.",
		},
		Category: CategoryPlants,
		Level:    LevelFoundation,
	},
	{
		ID:       "fnd-plate-method",
		Title:    "Build Plates, Not Diets",
		Subtitle: "One visual rule beats a hundred food rules",
		Paragraphs: [LessonParagraphs]string{
			"Diets hand you a list of forbidden foods. The plate method hands you a picture: half plants, a quarter protein, a quarter starch. Any cuisine fits inside it.",
			"Because it's proportional, the method scales to any appetite. A big eater and a small eater build the same plate at different sizes, and both are fine.",
			"When a meal can't be plated — a sandwich, a stir-fry, a bowl — apply the picture mentally. Where's the protein? Where are the plants? Adjust what you can.",
		},
		Category: CategoryRoutine,
		Level:    LevelFoundation,
	},
	{
		ID:       "fnd-hunger-signals",
		Title:    "Relearn Hunger",
		Subtitle: "Tell appetite from habit",
		Paragraphs: [LessonParagraphs]string{
			"Real hunger builds gradually, sits in the stomach, and is satisfied by almost any food. Habit hunger arrives suddenly, craves one specific thing, and ignores the fridge full of alternatives.",
			"Before an unplanned snack, wait ten minutes and drink a glass of water. Real hunger survives the wait; boredom usually doesn't.",
			"Don't fight real hunger — feed it properly. Chronic undereating during the day is the most common cause of evening overeating.",
		},
		Category: CategoryCravings,
		Level:    LevelFoundation,
	},
	{
		ID:       "fnd-consistency",
		Title:    "Consistency Beats Intensity",
		Subtitle: "The boring secret of every success story",
		Paragraphs: [LessonParagraphs]string{
			"A mediocre plan followed for a year beats a perfect plan abandoned in March. The body responds to the average of your choices, not the best of them.",
			"Plan for the 80 percent. If eight meals in ten follow the plate method, the other two don't matter much — and knowing that removes the guilt spiral that sinks most attempts.",
			"A missed day is data, not failure. Note what made it hard, adjust, and let the next meal be the comeback.",
		},
		Category: CategoryRoutine,
		Level:    LevelFoundation,
	},

	// Intermediate (4)
	{
		ID:       "int-protein-targets",
		Title:    "Dialing In Protein",
		Subtitle: "From 'some' to 'enough'",
		Paragraphs: [LessonParagraphs]string{
			"Once protein is at every meal, the next lever is amount. Most adults do well around 1.2 to 1.6 grams per kilogram of body weight per day, spread across meals rather than loaded into dinner.",
			"Spreading matters because muscle protein synthesis responds per meal. Three meals of 30 grams beat one meal of 90 grams with the same total.",
			"You still don't need a scale — learn the look of 30 grams once (two eggs plus yogurt, a chicken breast, a block of tofu) and eyeball from there.",
		},
		Category: CategoryProtein,
		Level:    LevelIntermediate,
	},
	{
		ID:       "int-plant-variety",
		Title:    "Thirty Plants a Week",
		Subtitle: "Variety is its own nutrient",
		Paragraphs: [LessonParagraphs]string{
			"Gut microbiome research keeps landing on the same number: people who eat thirty or more different plants a week have measurably healthier gut flora than those who eat ten, even at the same total intake.",
			"Herbs, spices, nuts, seeds, and legumes all count. A chili with beans, tomatoes, onion, garlic, cumin, and coriander is six plants in one pot.",
			"Run the count once this week — most people land around fifteen and find five easy additions just by rotating what they already buy.",
		},
		Category: CategoryPlants,
		Level:    LevelIntermediate,
	},
	{
		ID:       "int-craving-surfing",
		Title:    "Surf the Craving",
		Subtitle: "Cravings peak, then pass",
		Paragraphs: [LessonParagraphs]string{
			"A craving behaves like a wave: it builds, peaks at two or three minutes, and subsides whether or not you act on it. Most people only ever experience the build, because they eat at the peak.",
			"Surfing means observing the wave without acting — name it, rate its intensity, and watch the number drop. It feels absurd the first time and routine by the tenth.",
			"This isn't about never eating chocolate. It's about making it a choice you own rather than a reflex that owns you.",
		},
		Category: CategoryCravings,
		Level:    LevelIntermediate,
	},
	{
		ID:       "int-eating-out",
		Title:    "Restaurants Without Rules",
		Subtitle: "The plate method travels",
		Paragraphs: [LessonParagraphs]string{
			"Restaurant meals average double the calories of home-cooked equivalents, mostly through fat and portion size. You can't control the kitchen, but you can control the order.",
			"Scan the menu for the protein first, then ask what comes with it. Swapping fries for a side salad or vegetables is the single highest-value customization on any menu.",
			"Eat the meal you ordered and enjoy it. One restaurant plate is a rounding error in a week of decent plates — the damage is in making it a nightly default.",
		},
		Category: CategoryRoutine,
		Level:    LevelIntermediate,
	},

	// Advanced (3)
	{
		ID:       "adv-meal-architecture",
		Title:    "Meal Architecture",
		Subtitle: "Sequence and composition, not just contents",
		Paragraphs: [LessonParagraphs]string{
			"The same foods in a different order produce a different response. Starting a meal with vegetables and protein before starch measurably blunts the glucose spike of the starch that follows.",
			"Composition works the same way: fat, fiber, and acid all slow gastric emptying. Dressing on the salad and vinegar in the lentils aren't indulgences — they're architecture.",
			"None of this rescues a poor plate, and all of it compounds a good one. Architecture is the last few percent, which is why it's an advanced lesson and not lesson one.",
		},
		Category: CategoryRoutine,
		Level:    LevelAdvanced,
	},
	{
		ID:       "adv-protein-timing",
		Title:    "Protein Timing and Training",
		Subtitle: "When you eat it starts to matter",
		Paragraphs: [LessonParagraphs]string{
			"For people who train, protein timing moves from irrelevant to useful. The muscle is most responsive to protein in the hours after resistance work — not a narrow 'anabolic window', but a broad afternoon of opportunity.",
			"The practical rule: put one of your normal protein feedings within a couple of hours of training. No extra food required, just placement.",
			"Total daily protein still dominates. Timing is the seasoning, not the meal.",
		},
		Category: CategoryProtein,
		Level:    LevelAdvanced,
	},
	{
		ID:       "adv-flexible-maintenance",
		Title:    "Maintenance Is a Skill",
		Subtitle: "Keeping results without keeping rules",
		Paragraphs: [LessonParagraphs]string{
			"Almost everyone can follow rules for twelve weeks. Maintenance is different: the rules relax, and what remains is whatever became automatic. That's why this program drills habits, not restrictions.",
			"Build your personal early-warning system. Pick one objective signal — how clothes fit, a weekly average, energy at 3pm — and let it trigger a return to basics before drift becomes a trend.",
			"The basics you return to are the foundation lessons. Mastery isn't never slipping; it's knowing exactly which lever to pull when you do.",
		},
		Category: CategoryCravings,
		Level:    LevelAdvanced,
	},
}
