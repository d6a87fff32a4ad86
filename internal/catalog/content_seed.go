package catalog

// seedGoldenRules defines the core eating principles. One is featured per
// day, rotating by day of year.
var seedGoldenRules = []GoldenRule{
	{
		ID:    "rule-protein-every-meal",
		Title: "Protein at every meal",
		Body:  "Eggs, fish, meat, tofu, beans, or yogurt — a palm-sized portion, every time you eat. It's the habit that makes every other habit easier.",
	},
	{
		ID:    "rule-half-plate-plants",
		Title: "Half the plate is plants",
		Body:  "Vegetables and fruit take up half the plate before anything else goes on it. Frozen counts. Tinned counts.",
	},
	{
		ID:    "rule-eat-slowly",
		Title: "Eat slowly, stop at satisfied",
		Body:  "Fullness signals run twenty minutes behind your fork. Put it down between bites and let them catch up.",
	},
	{
		ID:    "rule-drink-water-first",
		Title: "Water before snacks",
		Body:  "Thirst wears a hunger costume. A glass of water and ten minutes unmasks it.",
	},
	{
		ID:    "rule-plan-dont-willpower",
		Title: "Plan beats willpower",
		Body:  "Decide what dinner is before you're hungry. Willpower at 6pm is the most overdrawn account in nutrition.",
	},
	{
		ID:    "rule-no-forbidden-foods",
		Title: "No forbidden foods",
		Body:  "Anything fits in a week of good plates. Forbidding a food is the fastest way to think about nothing else.",
	},
	{
		ID:    "rule-progress-not-perfection",
		Title: "Progress, not perfection",
		Body:  "Eight good meals out of ten wins. The goal is a better average, not a spotless record.",
	},
}

// seedTactics defines small actionable suggestions, filterable by category.
var seedTactics = []Tactic{
	{
		ID:       "tac-breakfast-eggs",
		Title:    "Front-load breakfast protein",
		Body:     "Keep boiled eggs in the fridge. Two eggs turn any toast-and-coffee breakfast into a real meal in ninety seconds.",
		Category: CategoryProtein,
	},
	{
		ID:       "tac-yogurt-default",
		Title:    "Make yogurt the default dessert",
		Body:     "Greek yogurt with frozen berries scratches the after-dinner sweet itch and adds 15g of protein while it does.",
		Category: CategoryProtein,
	},
	{
		ID:       "tac-tin-of-fish",
		Title:    "Keep tinned fish in the cupboard",
		Body:     "Sardines or mackerel on crackers is a complete protein feed with zero cooking. Cupboard to plate in one minute.",
		Category: CategoryProtein,
	},
	{
		ID:       "tac-frozen-veg",
		Title:    "Stock the freezer with vegetables",
		Body:     "Frozen spinach, peas, and broccoli never wilt and steam in minutes. No fresh produce guilt, no excuses at 7pm.",
		Category: CategoryPlants,
	},
	{
		ID:       "tac-veg-starter",
		Title:    "Start dinner with the vegetables",
		Body:     "Eat the plants first while you're hungriest. The rest of the plate gets eaten more slowly and more honestly.",
		Category: CategoryPlants,
	},
	{
		ID:       "tac-fruit-bowl-visible",
		Title:    "Put the fruit bowl where you snack",
		Body:     "You eat what you see. Fruit on the counter and biscuits in a high cupboard reverses the default snack.",
		Category: CategoryPlants,
	},
	{
		ID:       "tac-craving-delay",
		Title:    "The ten-minute rule",
		Body:     "When a craving hits, set a ten-minute timer before acting on it. Most cravings don't survive the wait; the ones that do, honor.",
		Category: CategoryCravings,
	},
	{
		ID:       "tac-single-portion",
		Title:    "Plate it, don't bag it",
		Body:     "Never eat from the packet. Put one portion in a bowl and put the packet away — the decision to continue becomes deliberate.",
		Category: CategoryCravings,
	},
	{
		ID:       "tac-sunday-reset",
		Title:    "The Sunday reset",
		Body:     "Fifteen minutes on Sunday: pick three dinners, check the cupboard, write the list. The week's hardest decisions, made once.",
		Category: CategoryRoutine,
	},
	{
		ID:       "tac-same-breakfast",
		Title:    "Repeat your breakfast",
		Body:     "Eating the same good breakfast daily removes one decision and anchors the day. Variety belongs to dinner.",
		Category: CategoryRoutine,
	},
}

// seedDrops defines one-sentence daily insights, rotating by day of year
// with a fixed offset so they never change in step with the golden rule.
var seedDrops = []Drop{
	{ID: "drop-fiber-fullness", Text: "Fiber is the only nutrient that fills you up and costs you nothing — most people eat half of what they need."},
	{ID: "drop-protein-thermic", Text: "Your body burns around a quarter of protein's calories just digesting it, more than any other macronutrient."},
	{ID: "drop-sleep-appetite", Text: "One short night raises next-day hunger hormones enough to add roughly 300 unplanned calories."},
	{ID: "drop-liquid-calories", Text: "Calories you drink don't register as food to your appetite — the fastest upgrade is swapping one daily drink for water."},
	{ID: "drop-colors-count", Text: "Each color in plants signals a different family of protective compounds. A colorful plate is quiet chemistry."},
	{ID: "drop-hunger-wave", Text: "Hunger arrives in waves of about twenty minutes, not a rising flood — a wave you ride passes on its own."},
	{ID: "drop-kitchen-closed", Text: "People who stop eating two hours before bed sleep measurably better, which in turn makes tomorrow's choices easier."},
	{ID: "drop-weekend-drift", Text: "The average eater consumes a fifth more on weekend days — weekends are a third of your week, not a day off from it."},
}

// seedReactions defines the coaching lines shown after a plate check.
// The validator guarantees every type has at least one entry.
var seedReactions = []Reaction{
	// perfect: protein and plants both present
	{ID: "react-perfect-1", Type: ReactionPerfect, Text: "Protein, plants, done. That's a textbook plate — your future self says thanks."},
	{ID: "react-perfect-2", Type: ReactionPerfect, Text: "Now that's a plate. Anchor protein, half plants — you've made this a habit."},
	{ID: "react-perfect-3", Type: ReactionPerfect, Text: "Chef's kiss. Both boxes ticked before the food even cooled."},
	{ID: "react-perfect-4", Type: ReactionPerfect, Text: "This is what consistency looks like. Nothing to fix here — enjoy it."},

	// meh: protein present, plants missing
	{ID: "react-meh-1", Type: ReactionMeh, Text: "Protein's there — nice. Now where are the plants hiding? Even a handful of frozen peas counts."},
	{ID: "react-meh-2", Type: ReactionMeh, Text: "Halfway plate. The anchor's set, but half of it should be green, red, or orange."},
	{ID: "react-meh-3", Type: ReactionMeh, Text: "Good protein call. Next time let some vegetables crash the party."},

	// oops: protein missing
	{ID: "react-oops-1", Type: ReactionOops, Text: "No protein on deck — this plate will leave you hungry in an hour. What can you add?"},
	{ID: "react-oops-2", Type: ReactionOops, Text: "Missing the anchor. Eggs, beans, yogurt, tuna — any of them turns this into a meal."},
	{ID: "react-oops-3", Type: ReactionOops, Text: "This one's mostly filler. Find the protein first and build the plate around it."},
	{ID: "react-oops-4", Type: ReactionOops, Text: "Your plate called — it wants an anchor. Protein first, then we'll talk plants."},
}

// seedLoadingLines rotate on screen while the plate photo is being analyzed.
var seedLoadingLines = []string{
	"Squinting at your plate...",
	"Counting the vegetables...",
	"Looking for the protein...",
	"Consulting the golden rules...",
	"Judging (gently)...",
	"Measuring plant-to-plate ratio...",
}
