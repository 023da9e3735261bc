package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/treemap/pkg/config"
	"github.com/matzehuels/treemap/pkg/pipeline"
)

// writeFiles creates each name under dir with size bytes of content.
func writeFiles(t *testing.T, dir string, files map[string]int) {
	t.Helper()
	for name, size := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"view", "render", "tree", "cache", "config", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing subcommand %q in %v", want, names)
		}
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := run(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q, want a path ending in %q", out, appName)
	}
}

func TestConfigPathFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	out, err := run(t, "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", out, path)
	}
}

func TestConfigShowTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("width = 640\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "--config", path, "config", "show", "--toml")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "width = 640") {
		t.Errorf("config show output %q should contain the file's width", out)
	}
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("colour = 'red'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--config", path, "tree", t.TempDir()); err == nil {
		t.Error("unknown config keys should fail the command")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and case", " SVG , json,", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		vizType string
		formats []string
		want    map[string]string
	}{
		{"derived from input", "", "treemap", []string{"svg", "json"},
			map[string]string{"svg": "src.svg", "json": "src.json"}},
		{"single explicit", "out/map.svg", "treemap", []string{"svg"},
			map[string]string{"svg": "out/map.svg"}},
		{"explicit base strips extension", "out/map.svg", "treemap", []string{"svg", "png"},
			map[string]string{"svg": "out/map.svg", "png": "out/map.png"}},
		{"nodelink suffix", "", "nodelink", []string{"dot"},
			map[string]string{"dot": "src_nodelink.dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, "project/src", tt.vizType, tt.formats)
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], want)
				}
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 300
	cfg.Seed = 9
	cfg.Ignore = []string{".git"}

	opts := pipeline.Options{Ignore: []string{"vendor"}}
	applyConfig(&opts, cfg)

	if opts.Width != 300 || opts.Height != config.DefaultHeight || opts.Seed != 9 {
		t.Errorf("applyConfig() = %+v", opts)
	}
	if !slices.Equal(opts.Ignore, []string{"vendor", ".git"}) {
		t.Errorf("Ignore = %v, want [vendor .git]", opts.Ignore)
	}
}

func TestRenderCommandWritesFiles(t *testing.T) {
	src := filepath.Join(t.TempDir(), "proj")
	writeFiles(t, src, map[string]int{"a.txt": 30, "docs/b.md": 10, "docs/c.md": 20})
	base := filepath.Join(t.TempDir(), "out", "proj")

	if _, err := run(t, "render", src, "-f", "svg,json", "-o", base, "--width", "120", "--height", "80"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.Contains(svg, []byte(`viewBox="0 0 120 80"`)) {
		t.Errorf("svg should use the requested frame size")
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var frame struct {
		TotalSize int64             `json:"total_size"`
		Blocks    []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if frame.TotalSize != 60 || len(frame.Blocks) != 3 {
		t.Errorf("frame total %d with %d blocks, want 60 with 3", frame.TotalSize, len(frame.Blocks))
	}
}

func TestRenderCommandRejectsBadFormat(t *testing.T) {
	if _, err := run(t, "render", t.TempDir(), "-f", "gif", "--no-cache"); err == nil {
		t.Error("unsupported format should fail")
	}
}

func TestTreeCommand(t *testing.T) {
	src := filepath.Join(t.TempDir(), "proj")
	writeFiles(t, src, map[string]int{"a.txt": 3, "docs/b.md": 5})

	out, err := run(t, "tree", src)
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	for _, want := range []string{
		"proj (folder, 2 items, 8.00B)",
		"a.txt (file, 3.00B)",
		"docs (folder, 1 items, 5.00B)",
		"b.md (file, 5.00B)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := run(t, "completion", "zsh")
	if err != nil {
		t.Fatalf("completion zsh: %v", err)
	}
	if !strings.Contains(out, "#compdef "+appName) {
		t.Errorf("zsh completion should start with the compdef line, got %.60q", out)
	}
	if _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shells should be rejected")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	out, err := run(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("config init output %q should name the file", out)
	}
	if _, err := run(t, "--config", path, "config", "init"); err == nil {
		t.Error("init over an existing file should fail without --force")
	}

	out, err = run(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"width", "1024", "resize step"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestCacheClearCommand(t *testing.T) {
	out, err := run(t, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("clearing a missing cache = %q", out)
	}
}
