// Package docs renders README.md from the command registry.
package docs

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"

	"github.com/keshon/toolmaker/internal/command"
	v "github.com/keshon/toolmaker/internal/version"
	"github.com/keshon/toolmaker/pkg/cmd"
)

// Data is what README.md.tmpl can reference.
type Data struct {
	AppName        string
	AppDescription string
	SlashCommands  string
	TextCommands   string
}

// Build collects the template data from r.
func Build(r *cmd.Registry) Data {
	var slash, text strings.Builder
	for _, c := range r.GetAll() {
		if _, ok := cmd.Root(c).(command.SlashProvider); ok {
			fmt.Fprintf(&slash, "- **/%s**: %s\n", c.Name(), c.Description())
			continue
		}
		fmt.Fprintf(&text, "- %s\n", c.Description())
	}
	return Data{
		AppName:        v.AppName,
		AppDescription: v.AppDescription,
		SlashCommands:  slash.String(),
		TextCommands:   text.String(),
	}
}

// UpdateReadme renders tmplPath with the commands of r into outPath.
func UpdateReadme(r *cmd.Registry, tmplPath, outPath string) error {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tmpl.Execute(f, Build(r)); err != nil {
		return err
	}

	log.Info().Str("path", outPath).Msg("README updated with current commands")
	return nil
}
