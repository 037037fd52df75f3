package query

// canonicalOrder is the hand-curated sequence of slugs representing
// the original publish order. Curated data supplied as-is; the engine
// never derives or re-sorts it.
var canonicalOrder = []string{
	"guacamole",
	"hummus",
	"greek-salad",
	"vegetable-stir-fry",
	"lentil-soup",
	"roasted-cauliflower",
	"roasted-chicken",
	"chicken-tikka-masala",
	"beef-chili",
	"spaghetti-bolognese",
	"mushroom-risotto",
	"pad-thai",
	"salmon-teriyaki",
	"shakshuka",
	"banana-pancakes",
	"chocolate-chip-cookies",
	"tomato-basil-soup",
	"caprese-salad",
	"chicken-noodle-soup",
	"beef-tacos",
	"fish-tacos",
	"margherita-pizza",
	"pesto-pasta",
	"butternut-squash-soup",
	"quinoa-salad",
	"stuffed-bell-peppers",
	"eggplant-parmesan",
	"chicken-curry",
	"vegetable-curry",
	"fried-rice",
	"ramen-bowl",
	"falafel-wrap",
	"avocado-toast",
	"overnight-oats",
	"granola-bars",
	"apple-pie",
	"carrot-cake",
	"lemon-bars",
	"brownies",
	"berry-smoothie",
	"garlic-bread",
	"caesar-salad",
	"minestrone",
	"pulled-pork-sandwich",
}

// canonicalIndex maps slug to canonical position.
var canonicalIndex = func() map[string]int {
	m := make(map[string]int, len(canonicalOrder))
	for i, s := range canonicalOrder {
		m[s] = i
	}
	return m
}()
