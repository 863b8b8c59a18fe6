package texts

const (
	Inactive       = "The workshop is closed."
	ForeignSubject = "This workshop already has a master."
)

const Welcome = "⚒️ TOOLMAKER: MESOLITHIC OF THE RUSSIAN PLAIN\n\n" +
	"Your job: make tools for the hunters.\n\n" +
	"Commands:\n" +
	"/done or \"done\": a tool is ready (+12h, +18h every 10th)\n" +
	"/tried or \"tried\": working on the shape (+4h)\n" +
	"/penalty: a mishap in the workshop (-1h)\n" +
	"/status: check the supplies\n\n" +
	"Goal: make 52 tools and earn Baltic amber.\n" +
	"I will ask about your plans every morning."

const (
	WakePrompt    = "⚒️ Rise, Toolmaker. Do you have 4 tasks for today? (yes/no)"
	PlanRequired  = "First answer: do you have 4 tasks for today? (yes/no)"
	PlanReprompt  = "Just answer: \"yes\" or \"no\"."
	PlanConfirmed = "✅ Excellent, Master! There is a plan, the tribe will be fed."

	SunriseCaption  = "🌅 Dawn in the workshop. The day promises to be fruitful."
	SunriseFallback = "🌅 Dawn in the workshop..."

	ImageUnavailable = "(Image temporarily unavailable)"

	AmberCaption = "🎉 A great achievement! You have made 52 tools. " +
		"The tribe traded them for Baltic amber. Your status: Legendary Master."

	WarningAlert = "⚠️ The tools are getting dull. The hunters are nervous. Act!"

	NightCaption  = "🌙 Good night, Toolmaker. The arsenal is stocked."
	NightFallback = "🌙 Good night, Toolmaker."

	WeekWasted     = "📉 The week was wasted. The arsenal is empty. The tribe is displeased."
	CollageCaption = "🏆 A full arsenal this week! Magnificent work."
)

var TriedPhrases = []string{
	"The path is unclear, but you are searching. +4h",
	"The tool did not come out, but the experience stays. +4h",
	"The flint split badly, but you do not give up. +4h",
}

var PenaltyPhrases = []string{
	"🔥 The embers in the workshop died out. The fire has to be started again. -1h",
	"💔 A crack in the elk antler! The blank split while working. -1h",
	"🌧️ Rain soaked the birch-bark box, the bone got wet. -1h",
	"🪵 The wood had a knot, the chisel slipped. -1h",
	"❄️ Frost made the bone brittle, the edge of the plate broke off. -1h",
	"🌬️ The wind blew the birch tar out of the vessel. -1h",
}

var CriticalAlerts = []string{
	"🔥 RIOT! The hunters have been without weapons for 24 hours!",
	"🔥 The tribe is losing patience! Where are the new tools?!",
	"🔥 Crisis! The workshop has been empty for too long!",
}
