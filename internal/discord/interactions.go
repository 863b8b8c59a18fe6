package discord

import (
	"bytes"
	"context"

	"github.com/bwmarrin/discordgo"
)

const imageName = "toolmaker.png"

// RespondDeferred acknowledges an interaction; replies follow as followups.
func RespondDeferred(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// Followup sends a public followup message, optionally with an image.
func Followup(s *discordgo.Session, i *discordgo.InteractionCreate, content string, image []byte) error {
	params := &discordgo.WebhookParams{Content: content}
	if image != nil {
		params.Files = []*discordgo.File{imageFile(image)}
	}
	_, err := s.FollowupMessageCreate(i.Interaction, true, params)
	return err
}

// FollowupEphemeral sends an ephemeral followup message.
func FollowupEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}

// SendChannel posts a message, optionally with an image, to a channel.
func SendChannel(s *discordgo.Session, channelID, content string, image []byte) error {
	msg := &discordgo.MessageSend{Content: content}
	if image != nil {
		msg.Files = []*discordgo.File{imageFile(image)}
	}
	_, err := s.ChannelMessageSendComplex(channelID, msg)
	return err
}

func imageFile(image []byte) *discordgo.File {
	return &discordgo.File{Name: imageName, ContentType: "image/png", Reader: bytes.NewReader(image)}
}

// followupResponder answers a deferred interaction.
type followupResponder struct {
	s    *discordgo.Session
	i    *discordgo.InteractionCreate
	sent bool
}

func (r *followupResponder) Send(_ context.Context, _, text string, image []byte) error {
	if err := Followup(r.s, r.i, text, image); err != nil {
		return err
	}
	r.sent = true
	return nil
}

// channelResponder answers in the channel a message came from.
type channelResponder struct {
	s         *discordgo.Session
	channelID string
}

func (r *channelResponder) Send(_ context.Context, _, text string, image []byte) error {
	return SendChannel(r.s, r.channelID, text, image)
}

// DMNotifier delivers scheduled notifications to the recipient's DM channel.
type DMNotifier struct {
	dg *discordgo.Session
}

func (n *DMNotifier) Send(_ context.Context, recipient, text string, image []byte) error {
	ch, err := n.dg.UserChannelCreate(recipient)
	if err != nil {
		return err
	}
	return SendChannel(n.dg, ch.ID, text, image)
}
