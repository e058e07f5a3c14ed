package economy

// Kind distinguishes what an upgrade contributes to.
type Kind string

const (
	KindProduction Kind = "production"
	KindClick      Kind = "click-power"
)

// UpgradeSpec is one static catalog entry. Cost growth is geometric:
// cost = ceil(BaseCost * Growth^owned).
type UpgradeSpec struct {
	ID          string
	Name        string
	Description string
	BaseCost    float64
	Growth      float64
	Kind        Kind
	Production  float64 // currency/second per unit (production kind)
	ClickBonus  float64 // currency per click per unit (click kind)
}

const defaultGrowth = 1.15

// Catalog is the full purchasable upgrade set, cheapest first within kind.
var Catalog = []UpgradeSpec{
	// Click power
	{ID: "reinforced-cursor", Name: "Reinforced Cursor", Description: "Doubles the power of your clicks", BaseCost: 25, Growth: defaultGrowth, Kind: KindClick, ClickBonus: 1},
	{ID: "magic-gloves", Name: "Magic Gloves", Description: "Enchanted gloves that amplify your clicks", BaseCost: 250, Growth: defaultGrowth, Kind: KindClick, ClickBonus: 5},
	{ID: "creation-wand", Name: "Creation Wand", Description: "Mystical artifact that materializes cookies with a simple click", BaseCost: 2500, Growth: defaultGrowth, Kind: KindClick, ClickBonus: 25},

	// Automatic production
	{ID: "pastry-robot", Name: "Pastry Robot", Description: "A small robot that kneads dough automatically", BaseCost: 15, Growth: defaultGrowth, Kind: KindProduction, Production: 0.1},
	{ID: "sugar-lab", Name: "Sugar Laboratory", Description: "Scientists who optimize recipes", BaseCost: 100, Growth: defaultGrowth, Kind: KindProduction, Production: 1},
	{ID: "nano-furnace", Name: "Nano-Furnace", Description: "Ultra-fast quantum baking technology", BaseCost: 1100, Growth: defaultGrowth, Kind: KindProduction, Production: 8},
	{ID: "dimensional-portal", Name: "Dimensional Portal", Description: "Imports cookies from parallel dimensions", BaseCost: 12000, Growth: defaultGrowth, Kind: KindProduction, Production: 47},
	{ID: "culinary-ai", Name: "Culinary AI", Description: "Artificial intelligence specialized in pastry", BaseCost: 130000, Growth: defaultGrowth, Kind: KindProduction, Production: 260},
	{ID: "time-machine", Name: "Time Machine", Description: "Time travel to steal cookies from the future", BaseCost: 1400000, Growth: defaultGrowth, Kind: KindProduction, Production: 1400},
	{ID: "stellar-cookies", Name: "Stellar Cookies", Description: "Harvesting cookies from distant stars", BaseCost: 20000000, Growth: defaultGrowth, Kind: KindProduction, Production: 7800},
	{ID: "quantum-generator", Name: "Quantum Generator", Description: "Manipulates reality to create quantum cookies", BaseCost: 330000000, Growth: defaultGrowth, Kind: KindProduction, Production: 44000},
	{ID: "fractal-matrix", Name: "Fractal Matrix", Description: "Infinite mathematical structure generating recursive cookies", BaseCost: 5.1e9, Growth: defaultGrowth, Kind: KindProduction, Production: 260000},
	{ID: "universal-factory", Name: "Universal Factory", Description: "Industrial complex exploiting an entire galaxy", BaseCost: 7.5e10, Growth: defaultGrowth, Kind: KindProduction, Production: 1.6e6},
	{ID: "antimatter-reactor", Name: "Antimatter Reactor", Description: "Converts antimatter into pure cookies", BaseCost: 1e12, Growth: defaultGrowth, Kind: KindProduction, Production: 1e7},
	{ID: "reality-prisms", Name: "Reality Prisms", Description: "Crystals warping the fabric of space-time", BaseCost: 1.4e13, Growth: defaultGrowth, Kind: KindProduction, Production: 6.5e7},
	{ID: "probability-manipulators", Name: "Probability Manipulators", Description: "Machines altering the laws of cosmic chance", BaseCost: 1.7e14, Growth: defaultGrowth, Kind: KindProduction, Production: 4.3e8},
	{ID: "sweet-singularity", Name: "Sweet Singularity", Description: "Black hole specialized in cookie creation", BaseCost: 2.1e15, Growth: defaultGrowth, Kind: KindProduction, Production: 2.9e9},
	{ID: "cosmic-console", Name: "Cosmic Console", Description: "Terminal allowing you to program the entire universe", BaseCost: 2.6e16, Growth: defaultGrowth, Kind: KindProduction, Production: 2.1e10},
}
