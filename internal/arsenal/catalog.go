package arsenal

// Kind is a catalog entry: a stable key and a display name.
type Kind struct {
	Key  string
	Name string
}

var Tools = []Kind{
	{"arrowhead", "Arrowhead"},
	{"knife", "Flint knife"},
	{"scraper", "Scraper"},
	{"axe", "Adze"},
	{"spear_tip", "Spear tip"},
	{"harpoon", "Harpoon"},
	{"drill", "Chisel"},
}

var Materials = []Kind{
	{"flint", "Flint"},
	{"obsidian", "Obsidian"},
	{"jasper", "Jasper"},
	{"quartzite", "Quartzite"},
}

// RareMaterial replaces the drawn material with probability RareChance.
var RareMaterial = Kind{"obsidian", "Obsidian"}

// Tier of a periodic reward.
type Tier string

const (
	Common    Tier = "common"
	Rare      Tier = "rare"
	Legendary Tier = "legendary"
)

// Reward is a small positive reinforcement sent during the day.
type Reward struct {
	Tier Tier
	Text string
}

// Cumulative thresholds on a 1..100 roll.
const (
	commonCeil = 70
	rareCeil   = 95
)

var rewardCatalog = map[Tier][]string{
	Common: {
		"☀️ A quiet moment in the workshop...",
		"🌿 The smell of flint and birch tar...",
		"🔥 The hearth burns steady...",
		"🪶 A raven lands on the drying rack and watches you work.",
	},
	Rare: {
		"🦌 Hunters bring back a fat elk. The camp is in high spirits.",
		"❄️ Fresh snow crunches outside, the fire inside feels twice as warm.",
		"🎶 Someone hums an old song by the river. Work goes easier.",
	},
	Legendary: {
		"✨ A trader from the north leaves a gift by your anvil stone: a perfect obsidian nodule.",
		"🌌 The northern lights dance over the Dubna. The elders say it is a sign of a great master.",
	},
}
