package source

// The tables in this file are curated input data, not derived logic.
// Their exact contents feed search fixtures and published URLs, so
// entries are preserved verbatim even where a mapping looks odd.

// imageExceptions maps slugs whose image filename never matched the
// slug convention. Historical mismatches; do not "fix".
var imageExceptions = map[string]string{
	"guacamole":             "images/guac-final.jpg",
	"chicken-tikka-masala":  "images/tikka.jpg",
	"spaghetti-bolognese":   "images/spag-bol.jpg",
	"chocolate-chip-cookies": "images/choc-chip.jpg",
	"pad-thai":              "images/padthai-v2.jpg",
	"shakshuka":             "images/shakshouka.jpg",
}

// keywordTag is one keyword→tags inference rule. Rules are applied in
// order, matching the keyword as a substring of the slug.
type keywordTag struct {
	keyword string
	tags    []string
}

// keywordTags infers tags for tag-less sources (sitemap, bare feeds).
// Heuristic and lossy: "pepper" also fires on "peppermint", which is
// accepted drift.
var keywordTags = []keywordTag{
	{"chicken", []string{"meat", "chicken"}},
	{"beef", []string{"meat", "beef"}},
	{"pork", []string{"meat"}},
	{"lamb", []string{"meat"}},
	{"salmon", []string{"fish", "healthy"}},
	{"shrimp", []string{"seafood"}},
	{"tofu", []string{"vegan", "vegetarian"}},
	{"lentil", []string{"vegan", "vegetarian", "healthy"}},
	{"chickpea", []string{"vegan", "vegetarian"}},
	{"mushroom", []string{"vegetarian"}},
	{"cauliflower", []string{"vegetarian", "healthy"}},
	{"salad", []string{"healthy", "fresh"}},
	{"soup", []string{"comfort", "soup"}},
	{"stew", []string{"comfort"}},
	{"curry", []string{"spicy", "curry"}},
	{"chili", []string{"spicy"}},
	{"taco", []string{"mexican"}},
	{"salsa", []string{"mexican", "fresh"}},
	{"guacamole", []string{"mexican", "vegan", "fresh"}},
	{"pasta", []string{"italian", "pasta"}},
	{"spaghetti", []string{"italian", "pasta"}},
	{"lasagna", []string{"italian", "pasta", "comfort"}},
	{"risotto", []string{"italian"}},
	{"pizza", []string{"italian", "comfort"}},
	{"stir-fry", []string{"asian", "quick"}},
	{"pad-thai", []string{"asian", "noodles"}},
	{"ramen", []string{"asian", "noodles", "soup"}},
	{"cake", []string{"dessert", "sweet", "baking"}},
	{"cookie", []string{"dessert", "sweet", "baking"}},
	{"brownie", []string{"dessert", "sweet", "baking"}},
	{"pie", []string{"dessert", "baking"}},
	{"bread", []string{"baking"}},
	{"pancake", []string{"breakfast", "sweet"}},
	{"omelette", []string{"breakfast"}},
	{"granola", []string{"breakfast", "healthy"}},
	{"smoothie", []string{"drink", "healthy", "quick"}},
	{"roasted", []string{"roasted"}},
	{"grilled", []string{"grilled"}},
	{"vegan", []string{"vegan"}},
}

// synonymRow is one ingredient→synonyms expansion. The key is matched
// as a substring of the slug or lowercased title; all synonyms join
// the record's search-term bag.
type synonymRow struct {
	key      string
	synonyms []string
}

var synonyms = []synonymRow{
	{"eggplant", []string{"aubergine"}},
	{"zucchini", []string{"courgette"}},
	{"cilantro", []string{"coriander"}},
	{"chickpea", []string{"garbanzo"}},
	{"shrimp", []string{"prawn", "prawns"}},
	{"chicken", []string{"poultry"}},
	{"beef", []string{"steak"}},
	{"avocado", []string{"guac"}},
	{"guacamole", []string{"avocado", "dip"}},
	{"pepper", []string{"capsicum"}},
	{"scallion", []string{"green onion", "spring onion"}},
	{"pasta", []string{"noodles"}},
	{"stock", []string{"broth"}},
	{"garbanzo", []string{"chickpea"}},
	{"hummus", []string{"chickpea", "tahini", "dip"}},
}

// genericTerms is a fixed tail appended to every record's search-term
// bag so broad queries like "dinner" still land somewhere.
var genericTerms = []string{"recipe", "food", "cooking", "homemade", "dinner"}
