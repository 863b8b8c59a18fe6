// Package texts holds the image prompts and the phrase tables of the bot.
package texts

import "strings"

const SunrisePrompt = "Mesolithic workshop on the bank of the Dubna river, winter morning, " +
	"sunrise, melting snow, birch groves, smouldering campfire, flint blanks on a bison hide, " +
	"start of the day, realistic archaeological style, warm tones"

const NightPrompt = "Mesolithic workshop at night, smouldering campfire, finished tools lying " +
	"on a bison hide, northern lights or starry sky, winter, snow, calm and cosy atmosphere, " +
	"birch groves in the background"

const AmberPrompt = "Mesolithic toolmaker holding a piece of Baltic amber, winter forest, " +
	"Dubna river, workshop in the background, solemn atmosphere, the exchange is done, realistic style"

const CollagePrompt = "Mesolithic workshop, seven flint tools laid in a row on a bison hide: " +
	"knives, arrowheads, an adze. Winter, snow, campfire. A master's collection, realistic style."

// ToolPrompt describes a freshly made tool. Milestone tools get ornament.
func ToolPrompt(tool, material string, milestone bool) string {
	var b strings.Builder
	b.WriteString(material + " " + strings.ToLower(tool))
	b.WriteString(", Mesolithic of the Russian plain, winter to early spring, freshly made, " +
		"lying on birch bark or a hide, campfire in the background, snow, " +
		"realistic archaeological reconstruction")
	if milestone {
		b.WriteString(", herringbone geometric ornament, notches, carefully polished, " +
			"a master's status object, incisor decorations")
	}
	return b.String()
}
