package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/toolmaker/internal/command"
	"github.com/keshon/toolmaker/pkg/cmd"
)

func TestStripMention(t *testing.T) {
	tests := []struct{ in, want string }{
		{"<@99> сделал", "сделал"},
		{"<@!99>   done  ", "done"},
		{"tried <@99>", "tried"},
		{"<@12> hello", "<@12> hello"},
		{"<@99>", ""},
	}
	for _, tt := range tests {
		if got := stripMention(tt.in, "99"); got != tt.want {
			t.Errorf("stripMention(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMentions(t *testing.T) {
	users := []*discordgo.User{{ID: "1"}, {ID: "99"}}
	if !mentions(users, "99") || mentions(users, "2") {
		t.Fatal("mentions mismatch")
	}
}

func TestInteractionUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "g"}},
	}}
	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "d"},
	}}
	if interactionUserID(guild) != "g" || interactionUserID(dm) != "d" {
		t.Fatal("wrong interaction user")
	}
}

func TestCommandDefinitionsAndHash(t *testing.T) {
	r := cmd.NewRegistry()
	command.Register(r, nil)

	defs := buildCommandDefinitions(r)
	names := map[string]bool{}
	for _, d := range defs {
		names[d.Name] = true
	}
	for _, want := range []string{"start", "done", "tried", "penalty", "status", "plan", "help"} {
		if !names[want] {
			t.Errorf("missing slash definition %s", want)
		}
	}
	if names[command.TextCommand] {
		t.Error("free-text command exposed as slash")
	}

	reversed := make([]*discordgo.ApplicationCommand, len(defs))
	for i, d := range defs {
		reversed[len(defs)-1-i] = d
	}
	if hashCommands(defs) != hashCommands(reversed) {
		t.Fatal("hash depends on definition order")
	}
	before := hashCommands(defs)
	defs[0].Description += "!"
	if hashCommands(defs) == before {
		t.Fatal("hash ignores content")
	}
}

func TestOptionArgs(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "answer", Type: discordgo.ApplicationCommandOptionString, Value: "yes"},
		{Name: "empty", Type: discordgo.ApplicationCommandOptionString},
	}
	if got := optionArgs(opts); len(got) != 1 || got[0] != "yes" {
		t.Fatalf("optionArgs = %v", got)
	}
	if got := optionArgs(nil); len(got) != 0 {
		t.Fatalf("optionArgs(nil) = %v", got)
	}
}

func TestHashCoversChoices(t *testing.T) {
	def := (&command.PlanCommand{}).SlashDefinition()
	before := hashCommands([]*discordgo.ApplicationCommand{def})
	def.Options[0].Choices[0].Value = "да"
	if hashCommands([]*discordgo.ApplicationCommand{def}) == before {
		t.Fatal("hash ignores option choices")
	}
}
