package middleware

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/keshon/toolmaker/internal/engine"
	"github.com/keshon/toolmaker/internal/notify"
	"github.com/keshon/toolmaker/internal/texts"
	"github.com/keshon/toolmaker/pkg/cmd"
)

type failing struct{ err error }

func (f failing) Name() string        { return "done" }
func (f failing) Description() string { return "" }

func (f failing) Run(context.Context, *cmd.Invocation) error {
	return f.err
}

func TestWithErrorReplies(t *testing.T) {
	other := errors.New("disk full")
	tests := []struct {
		name     string
		err      error
		wantErr  error
		wantText string
	}{
		{"inactive", engine.ErrInactive, nil, texts.Inactive},
		{"foreign", fmt.Errorf("start: %w", engine.ErrForeignSubject), nil, texts.ForeignSubject},
		{"other", other, other, ""},
		{"ok", nil, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &notify.Recorder{}
			c := cmd.Apply(failing{tt.err}, WithCommandLogger(), WithErrorReplies())
			err := c.Run(context.Background(), &cmd.Invocation{UserID: "7", Reply: rec})
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantText == "" {
				if len(rec.Sent) != 0 {
					t.Fatalf("unexpected reply %+v", rec.Sent)
				}
				return
			}
			if len(rec.Sent) != 1 || rec.Sent[0].Text != tt.wantText || rec.Sent[0].Recipient != "7" {
				t.Fatalf("sent = %+v", rec.Sent)
			}
		})
	}
}
