package source

import (
	"context"

	"github.com/hammamikhairi/dishdex/internal/domain"
)

// builtinEntry is one hand-authored fallback recipe. The list below is
// the minimum set of known-published recipes, served when every
// network source fails or under-delivers.
type builtinEntry struct {
	title string
	slug  string
	tags  []string
}

var builtinEntries = []builtinEntry{
	{"Guacamole", "guacamole", []string{"mexican", "vegan", "fresh"}},
	{"Chicken Tikka Masala", "chicken-tikka-masala", []string{"indian", "spicy", "chicken", "curry"}},
	{"Spaghetti Bolognese", "spaghetti-bolognese", []string{"italian", "pasta", "meat", "comfort"}},
	{"Roasted Cauliflower", "roasted-cauliflower", []string{"vegan", "healthy", "roasted"}},
	{"Roasted Chicken", "roasted-chicken", []string{"meat", "chicken", "roasted"}},
	{"Pad Thai", "pad-thai", []string{"asian", "noodles"}},
	{"Shakshuka", "shakshuka", []string{"breakfast", "vegetarian", "spicy"}},
	{"Lentil Soup", "lentil-soup", []string{"vegan", "healthy", "soup", "comfort"}},
	{"Chocolate Chip Cookies", "chocolate-chip-cookies", []string{"dessert", "sweet", "baking"}},
	{"Vegetable Stir Fry", "vegetable-stir-fry", []string{"asian", "vegan", "quick", "healthy"}},
	{"Beef Chili", "beef-chili", []string{"meat", "spicy", "comfort"}},
	{"Greek Salad", "greek-salad", []string{"healthy", "fresh", "vegetarian"}},
	{"Mushroom Risotto", "mushroom-risotto", []string{"italian", "vegetarian", "comfort"}},
	{"Banana Pancakes", "banana-pancakes", []string{"breakfast", "sweet"}},
	{"Salmon Teriyaki", "salmon-teriyaki", []string{"fish", "asian", "healthy"}},
	{"Hummus", "hummus", []string{"vegan", "fresh", "dip"}},
}

// Builtin returns the hardcoded fallback records. Search terms are
// regenerated on every call so they always reflect the current tables.
func Builtin() []domain.RecipeRecord {
	out := make([]domain.RecipeRecord, 0, len(builtinEntries))
	for _, e := range builtinEntries {
		out = append(out, domain.RecipeRecord{
			Title:       e.title,
			Slug:        e.slug,
			ImagePath:   ImagePath(e.slug),
			Tags:        e.tags,
			SearchTerms: SearchTerms(e.title, e.slug, e.tags),
		})
	}
	return out
}

// Compile-time interface check.
var _ domain.RecipeSource = (*BuiltinSource)(nil)

// BuiltinSource exposes the fallback dataset through the RecipeSource
// port so the loader can treat it like any other source in tests.
type BuiltinSource struct{}

// Name identifies the source in logs.
func (BuiltinSource) Name() string { return "builtin" }

// Fetch returns the fallback records. It never fails.
func (BuiltinSource) Fetch(ctx context.Context) ([]domain.RecipeRecord, error) {
	return Builtin(), nil
}
