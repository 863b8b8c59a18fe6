// Package notify renders outgoing messages and hands them to a transport.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/keshon/toolmaker/internal/ai"
)

// Notifier delivers one message to a recipient. Image may be nil.
type Notifier interface {
	Send(ctx context.Context, recipient, text string, image []byte) error
}

// Image asks for a generated picture. Fallback is sent instead when the
// generator has nothing; an empty Fallback means send nothing.
type Image struct {
	Prompt   string
	Caption  string
	Fallback string
}

// Message is one outgoing item: text, an image request, or both, in that order.
type Message struct {
	Text  string
	Image *Image
}

// Text is a shorthand for a text-only message.
func Text(s string) Message { return Message{Text: s} }

// Deliver renders msgs in order. Image generation is best effort; a send
// failure is collected and the remaining messages are still attempted.
func Deliver(ctx context.Context, gen ai.ImageGenerator, n Notifier, recipient string, msgs []Message) error {
	var errs []error
	for _, m := range msgs {
		if m.Text != "" {
			if err := n.Send(ctx, recipient, m.Text, nil); err != nil {
				errs = append(errs, fmt.Errorf("send text: %w", err))
			}
		}
		if m.Image == nil {
			continue
		}
		var img []byte
		if gen != nil {
			img = gen.Generate(ctx, m.Image.Prompt)
		}
		switch {
		case img != nil:
			if err := n.Send(ctx, recipient, m.Image.Caption, img); err != nil {
				errs = append(errs, fmt.Errorf("send image: %w", err))
			}
		case m.Image.Fallback != "":
			if err := n.Send(ctx, recipient, m.Image.Fallback, nil); err != nil {
				errs = append(errs, fmt.Errorf("send fallback: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

// Recorder is an in-memory Notifier.
type Recorder struct {
	Sent []Sent
}

// Sent is one message captured by a Recorder.
type Sent struct {
	Recipient string
	Text      string
	Image     []byte
}

func (r *Recorder) Send(_ context.Context, recipient, text string, image []byte) error {
	r.Sent = append(r.Sent, Sent{Recipient: recipient, Text: text, Image: image})
	return nil
}
