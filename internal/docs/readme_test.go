package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keshon/toolmaker/internal/command"
	"github.com/keshon/toolmaker/pkg/cmd"
)

func TestUpdateReadme(t *testing.T) {
	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "README.md.tmpl")
	outPath := filepath.Join(dir, "README.md")
	tmpl := "# {{.AppName}}\n\n{{.SlashCommands}}\nText:\n{{.TextCommands}}"
	if err := os.WriteFile(tmplPath, []byte(tmpl), 0o644); err != nil {
		t.Fatal(err)
	}

	r := cmd.NewRegistry()
	command.Register(r, nil)
	if err := UpdateReadme(r, tmplPath, outPath); err != nil {
		t.Fatalf("UpdateReadme: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(raw)
	for _, want := range []string{"# Toolmaker", "- **/done**: ", "- **/help**: ", "Talk to the workshop in plain words"} {
		if !strings.Contains(out, want) {
			t.Errorf("README misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/text") {
		t.Errorf("the free-text handler is not a slash command:\n%s", out)
	}
	// Sorted by name.
	if strings.Index(out, "/done") > strings.Index(out, "/start") {
		t.Errorf("commands are not sorted:\n%s", out)
	}
}

func TestUpdateReadmeMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	err := UpdateReadme(cmd.NewRegistry(), filepath.Join(dir, "nope.tmpl"), filepath.Join(dir, "README.md"))
	if err == nil {
		t.Fatal("expected an error")
	}
}
