package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// printer is the terminal Responder: texts go to w, images to dir.
type printer struct {
	w   io.Writer
	dir string
}

func (p *printer) Send(_ context.Context, _ string, text string, image []byte) error {
	if text != "" {
		fmt.Fprintln(p.w, text)
	}
	if image != nil {
		if p.dir == "" {
			fmt.Fprintf(p.w, "[image, %d bytes]\n", len(image))
		} else {
			name := filepath.Join(p.dir, "toolmaker-"+uuid.NewString()+".png")
			if err := os.WriteFile(name, image, 0o644); err != nil {
				return fmt.Errorf("save image: %w", err)
			}
			fmt.Fprintf(p.w, "[image saved to %s]\n", name)
		}
	}
	fmt.Fprintln(p.w)
	return nil
}
