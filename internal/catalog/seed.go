package catalog

// SeedProducts returns the built-in storefront catalog. Admin-created
// products are appended separately by the store; the seed set itself is
// immutable.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "committed-hoodie",
			Name:          "Committed",
			Tagline:       `// git commit -m "to you forever"`,
			Description:   "For those who commit to their code and their relationships. Premium cotton blend hoodie that's as reliable as your version control. Because real developers know that the best commits are the ones you never revert.",
			Price:         89.99,
			OriginalPrice: 109.99,
			Category:      CategoryDeveloper,
			Type:          TypeHoodie,
			Colors:        []Color{ColorBlack, ColorCharcoal, ColorNavy},
			Sizes:         []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:        []string{"/products/black-hoodie.png"},
			Featured:      true,
			New:           true,
			InStock:       true,
		},
		{
			ID:          "404-not-found-tee",
			Name:        "404: Sleep Not Found",
			Tagline:     "// Error: REM_CYCLE_UNDEFINED",
			Description: "The official uniform for debugging at 3 AM. When your sleep pattern returns null and your coffee dependency is critical. Made from ultra-soft cotton that feels like the cloud services you can't afford.",
			Price:       49.99,
			Category:    CategoryDeveloper,
			Type:        TypeTShirt,
			Colors:      []Color{ColorWhite, ColorBlack, ColorCharcoal},
			Sizes:       []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:      []string{"/products/white-tshirt.png"},
			Featured:    true,
			InStock:     true,
		},
		{
			ID:            "merge-conflict-crew",
			Name:          "Merge Conflict",
			Tagline:       "// HEAD -> main | relationship -> complicated",
			Description:   "When your code conflicts but your style doesn't. This premium crewneck celebrates the beautiful chaos of collaborative development. Soft, comfortable, and unlike your git history, always clean.",
			Price:         74.99,
			OriginalPrice: 84.99,
			Category:      CategoryDeveloper,
			Type:          TypeSweatshirt,
			Colors:        []Color{ColorNavy, ColorCharcoal, ColorBlack},
			Sizes:         []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:        []string{"/products/navy-sweatshirt.png"},
			Featured:      true,
			InStock:       true,
		},
		{
			ID:          "query-everything-tee",
			Name:        "Query Everything",
			Tagline:     "// SELECT * FROM life WHERE meaning IS NOT NULL",
			Description: "For database enthusiasts who question everything. This shirt runs faster than your unindexed queries. Premium fabric that won't normalize your style but will definitely structure your look.",
			Price:       44.99,
			Category:    CategoryDeveloper,
			Type:        TypeTShirt,
			Colors:      []Color{ColorCharcoal, ColorWhite, ColorBlack},
			Sizes:       []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL},
			Images:      []string{"/products/gray-tshirt.png"},
			New:         true,
			InStock:     true,
		},
		{
			ID:          "on-call-hoodie-med",
			Name:        "On Call",
			Tagline:     "// status: ALWAYS_AVAILABLE",
			Description: "For medical professionals who never truly clock out. Comfortable enough for 24-hour shifts, stylish enough for rounds. The pager may be gone, but the commitment remains. Premium heavyweight cotton for those cold hospital nights.",
			Price:       94.99,
			Category:    CategoryMedical,
			Type:        TypeHoodie,
			Colors:      []Color{ColorForest, ColorNavy, ColorBlack},
			Sizes:       []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:      []string{"/products/green-hoodie.png"},
			Featured:    true,
			New:         true,
			InStock:     true,
		},
		{
			ID:          "stat-order-tee",
			Name:        "STAT Order",
			Tagline:     "// priority: CRITICAL | eta: NOW",
			Description: "When everything is urgent but you still have style. For healthcare heroes who run toward emergencies in comfort. Premium quick-dry fabric because you're already running.",
			Price:       49.99,
			Category:    CategoryMedical,
			Type:        TypeTShirt,
			Colors:      []Color{ColorWhite, ColorForest, ColorNavy},
			Sizes:       []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:      []string{"/products/white-tshirt.png"},
			InStock:     true,
		},
		{
			ID:          "over-engineered-longsleeve",
			Name:        "Over Engineered",
			Tagline:     "// complexity: O(n!) | style: O(1)",
			Description: "For engineers who always find the most elegant solution, eventually. This long-sleeve is structurally sound and aesthetically optimized. Premium construction that could survive a peer review.",
			Price:       59.99,
			Category:    CategoryEngineering,
			Type:        TypeLongSleeve,
			Colors:      []Color{ColorBurgundy, ColorCharcoal, ColorNavy},
			Sizes:       []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:      []string{"/products/burgundy-shirt.png"},
			Featured:    true,
			InStock:     true,
		},
		{
			ID:          "under-pressure-tee",
			Name:        "Under Pressure",
			Tagline:     "// psi: HIGH | composure: HIGHER",
			Description: "When deadlines compress but your style expands. For engineers who thrive under stress and always deliver. Premium fabric that handles pressure better than most project managers.",
			Price:       44.99,
			Category:    CategoryEngineering,
			Type:        TypeTShirt,
			Colors:      []Color{ColorBlack, ColorCharcoal, ColorWhite},
			Sizes:       []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL},
			Images:      []string{"/products/gray-tshirt.png"},
			New:         true,
			InStock:     true,
		},
		{
			ID:          "pixel-perfect-hoodie",
			Name:        "Pixel Perfect",
			Tagline:     "// margin: 0 | padding: immaculate",
			Description: "For designers who obsess over every detail. When your mockups are flawless and your hoodie should be too. Premium cotton that's as smooth as your gradients and as consistent as your design system.",
			Price:       89.99,
			Category:    CategoryDesigner,
			Type:        TypeHoodie,
			Colors:      []Color{ColorBlack, ColorWhite, ColorCharcoal},
			Sizes:       []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:      []string{"/products/black-hoodie.png"},
			New:         true,
			InStock:     true,
		},
		{
			ID:          "undefined-behavior-tee",
			Name:        "Undefined Behavior",
			Tagline:     `// result: ¯\_(ツ)_/¯`,
			Description: "For those moments when the code works but nobody knows why. Embrace the chaos with this premium tee. Soft cotton that's more predictable than your legacy codebase.",
			Price:       44.99,
			Category:    CategoryDeveloper,
			Type:        TypeTShirt,
			Colors:      []Color{ColorBlack, ColorCharcoal, ColorNavy},
			Sizes:       []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:      []string{"/products/black-hoodie.png"},
			InStock:     true,
		},
		{
			ID:          "coffee-dependency-crew",
			Name:        "Coffee Dependency",
			Tagline:     "// import { sanity } from 'caffeine'",
			Description: "Required for all builds. This crewneck understands that coffee isn't a want, it's a core dependency. Premium warmth for those long compilation times.",
			Price:       74.99,
			Category:    CategoryDeveloper,
			Type:        TypeSweatshirt,
			Colors:      []Color{ColorCharcoal, ColorBlack, ColorNavy},
			Sizes:       []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:      []string{"/products/navy-sweatshirt.png"},
			InStock:     true,
		},
		{
			ID:          "first-do-no-harm-tee",
			Name:        "First, Do No Harm",
			Tagline:     "// except to disease | error_handling: aggressive",
			Description: "The original code of conduct. For medical professionals who took an oath and take it seriously. Premium comfort for those who comfort others.",
			Price:       49.99,
			Category:    CategoryMedical,
			Type:        TypeTShirt,
			Colors:      []Color{ColorWhite, ColorNavy, ColorForest},
			Sizes:       []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL},
			Images:      []string{"/products/white-tshirt.png"},
			InStock:     true,
		},
	}
}
