package main

import (
	"github.com/rs/zerolog/log"

	"github.com/keshon/toolmaker/internal/command"
	"github.com/keshon/toolmaker/internal/docs"
	"github.com/keshon/toolmaker/pkg/cmd"
)

// Run from the repository root: go run ./cmd/build-readme
func main() {
	// Only names and descriptions are read, so no workshop is needed.
	r := cmd.NewRegistry()
	command.Register(r, nil)

	if err := docs.UpdateReadme(r, "README.md.tmpl", "README.md"); err != nil {
		log.Fatal().Err(err).Msg("Failed to update README")
	}
}
