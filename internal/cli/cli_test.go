package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/doctran/archdiag/pkg/catalog"
	"github.com/doctran/archdiag/pkg/errors"
	"github.com/doctran/archdiag/pkg/topology"
)

// execute runs the root command with args and returns what the command
// wrote to its output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	// Keep tests away from any archdiag.toml in the working directory.
	root.SetArgs(append([]string{"--config", ""}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "render", "pipeline", "web_client", "-f", "dot,json", "-o", dir); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, rel := range []string{
		"docs/static/diagrams/pipeline.dot",
		"docs/static/diagrams/pipeline.json",
		"docs/static/graphs/web_client.dot",
		"docs/static/graphs/web_client.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
}

func TestRenderAllFlat(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "render", "--all", "--flat", "--no-cache", "-f", "dot", "-o", dir); err != nil {
		t.Fatalf("render --all: %v", err)
	}
	files, _ := os.ReadDir(dir)
	if len(files) != len(catalog.All()) {
		t.Errorf("files = %d, want %d", len(files), len(catalog.All()))
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no names", []string{"render"}, errors.ErrCodeInvalidInput},
		{"names and all", []string{"render", "--all", "pipeline"}, errors.ErrCodeInvalidInput},
		{"unknown name", []string{"render", "nope"}, errors.ErrCodeNotFound},
		{"bad format", []string{"render", "pipeline", "-f", "gif"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRenderUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "formats = [\"dot\"]\nflat = true\noutput = \""+filepath.ToSlash(dir)+"\"\n[cache]\ndisabled = true\n")

	if _, err := execute(t, "--config", cfg, "render", "stepfunction_errors"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "stepfunction_errors.dot")); err != nil {
		t.Errorf("config output not honored: %v", err)
	}
}

func TestInspectJSON(t *testing.T) {
	out, err := execute(t, "inspect", "stepfunction_errors")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"name": "stepfunction_errors"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestInspectYAML(t *testing.T) {
	out, err := execute(t, "inspect", "pipeline", "--format", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	var r topology.Report
	if err := yaml.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("not YAML: %v\n%s", err, out)
	}
	if r.Diagram != "pipeline" || len(r.Nodes) != 4 {
		t.Errorf("report = %+v", r)
	}
}

func TestInspectBadFormat(t *testing.T) {
	if _, err := execute(t, "inspect", "pipeline", "--format", "xml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	if _, err := execute(t, "validate"); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidateManifests(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "manifests")

	if _, err := execute(t, "validate", "--manifests", dir); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("validate without manifests: err = %v, want INVALID_INPUT", err)
	}
	if _, err := execute(t, "validate", "--manifests", dir, "--update"); err != nil {
		t.Fatalf("validate --update: %v", err)
	}
	if files, _ := os.ReadDir(dir); len(files) != len(catalog.All()) {
		t.Errorf("manifests = %d, want %d", len(files), len(catalog.All()))
	}
	if _, err := execute(t, "validate", "--manifests", dir); err != nil {
		t.Errorf("validate against fresh manifests: %v", err)
	}

	stale := filepath.Join(dir, "pipeline.json")
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	data = bytes.Replace(data, []byte(`"direction": "LR"`), []byte(`"direction": "TB"`), 1)
	if err := os.WriteFile(stale, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "validate", "--manifests", dir); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("validate against stale manifest: err = %v, want INVALID_INPUT", err)
	}
}

func TestValidateUpdateNeedsManifests(t *testing.T) {
	if _, err := execute(t, "validate", "--update"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestListCommand(t *testing.T) {
	if _, err := execute(t, "list"); err != nil {
		t.Errorf("list: %v", err)
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "archdiag") {
		t.Error("completion script does not mention archdiag")
	}
}
