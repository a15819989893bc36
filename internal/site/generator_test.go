package site

import (
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/surveygen/internal/config"
)

// newWorkspace lays out viewers/ and images/ under a temp root and returns a
// config that writes pages into the root.
func newWorkspace(t *testing.T, folders []string, thumbs []string) *config.Config {
	t.Helper()
	root := t.TempDir()
	for _, f := range folders {
		dir := filepath.Join(root, "viewers", f)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(root, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, th := range thumbs {
		if err := os.WriteFile(filepath.Join(root, "images", th), []byte("png"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.ViewersDir = filepath.Join(root, "viewers")
	cfg.ImagesDir = filepath.Join(root, "images")
	cfg.TestViewersDir = filepath.Join(root, "viewers_test")
	cfg.OutputDir = root
	return cfg
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestIndexGenerate(t *testing.T) {
	cfg := newWorkspace(t, []string{"b_comparison_spatial", "a_ours", "c_comparison_temporal"}, nil)

	gen := NewIndexGenerator(cfg)
	gen.BuildID = "build-123"
	res, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(res.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(res.Entries))
	}
	want := map[string]int{"a_ours": 0, "b_comparison_spatial": 1, "c_comparison_temporal": 2}
	for k, v := range want {
		if res.Captions[k] != v {
			t.Errorf("Captions[%q] = %d, want %d", k, res.Captions[k], v)
		}
	}
	if res.MainURLs[0] != "viewers/a_ours/index.html" {
		t.Errorf("MainURLs[0] = %q", res.MainURLs[0])
	}

	out := readFile(t, filepath.Join(cfg.OutputDir, "index.html"))

	for _, s := range []string{
		`"a_ours": 0`,
		`"b_comparison_spatial": 1`,
		`"c_comparison_temporal": 2`,
		`"viewers/a_ours/index.html",`,
		`"viewers/c_comparison_temporal/index.html"` + "\n",
		`"viewers_test/flickr_comparison_spatial/index.html"`,
		`content="build-123"`,
		`shuffleArray(viewerUrls);`,
		`id="testViewerButton"`,
		`<title>3D Video Survey</title>`,
		`VIDEO ID: `,
	} {
		if !strings.Contains(out, s) {
			t.Errorf("index.html missing %q", s)
		}
	}

	// Instructions markdown is rendered to HTML.
	if !strings.Contains(out, "<strong>Enter VR</strong>") {
		t.Error("instructions markdown was not rendered")
	}
	if !strings.Contains(out, "<br") {
		t.Error("instruction line breaks should be kept")
	}
}

func TestIndexGenerateNoShuffleNoTest(t *testing.T) {
	cfg := newWorkspace(t, []string{"a_ours"}, nil)
	cfg.Shuffle = false
	cfg.TestViewers = nil

	if _, err := NewIndexGenerator(cfg).Generate(); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	out := readFile(t, filepath.Join(cfg.OutputDir, "index.html"))

	if strings.Contains(out, "shuffleArray(viewerUrls);") {
		t.Error("shuffle call should be omitted when shuffle is off")
	}
	if strings.Contains(out, `id="testViewerButton"`) {
		t.Error("test button should be omitted without test viewers")
	}
	if !strings.Contains(out, "const testViewerUrls = [];") {
		t.Error("empty test list should render as []")
	}
}

func TestIndexGenerateEmpty(t *testing.T) {
	cfg := newWorkspace(t, nil, nil)
	if err := os.MkdirAll(cfg.ViewersDir, 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := NewIndexGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(res.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(res.Entries))
	}
	out := readFile(t, res.Path)
	if !strings.Contains(out, "const viewerUrls = [];") || !strings.Contains(out, "const caption_to_id = {};") {
		t.Error("empty viewer set should render empty literals")
	}
}

func TestIndexGenerateMissingViewers(t *testing.T) {
	cfg := newWorkspace(t, nil, nil)
	cfg.ViewersDir = filepath.Join(cfg.OutputDir, "missing")

	if _, err := NewIndexGenerator(cfg).Generate(); err == nil {
		t.Fatal("expected error for missing viewers dir")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); !os.IsNotExist(err) {
		t.Error("no page should be written when the scan fails")
	}
}

func TestIndexGenerateOverwrites(t *testing.T) {
	cfg := newWorkspace(t, []string{"a_ours"}, nil)
	dst := filepath.Join(cfg.OutputDir, "index.html")
	if err := os.WriteFile(dst, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewIndexGenerator(cfg).Generate(); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if strings.Contains(readFile(t, dst), "stale") {
		t.Error("existing index.html should be overwritten")
	}
}

func TestIndexEscapesFolderNames(t *testing.T) {
	cfg := newWorkspace(t, []string{"a<b>&c_ours"}, nil)
	if _, err := NewIndexGenerator(cfg).Generate(); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	out := readFile(t, filepath.Join(cfg.OutputDir, "index.html"))
	if !strings.Contains(out, `"a\u003cb\u003e\u0026c_ours": 0`) {
		t.Error("folder names should be escaped inside the script")
	}
	if strings.Contains(out, "a<b>") {
		t.Error("raw markup from a folder name leaked into the page")
	}
}

func TestPagesGenerate(t *testing.T) {
	cfg := newWorkspace(t,
		[]string{"foo_ours", "bar_ours", "foo_comparison_spatial", "foo_comparison_temporal", "plain"},
		[]string{"foo.png"},
	)

	res, err := NewPagesGenerator(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(res.Paths) != 3 {
		t.Fatalf("paths = %v, want 3 pages", res.Paths)
	}
	if len(res.Comparison) != 1 || res.Comparison[0].Folder != "foo_comparison_spatial" {
		t.Errorf("comparison cards = %+v", res.Comparison)
	}
	if len(res.Results) != 2 || res.Results[0].Folder != "bar_ours" || res.Results[1].Folder != "foo_ours" {
		t.Errorf("results cards = %+v", res.Results)
	}

	if got := res.Results[1].Thumbnail; got != "images/foo.png" {
		t.Errorf("foo_ours thumbnail = %q, want images/foo.png", got)
	}
	if got := res.Results[0].Thumbnail; got != config.DefaultPlaceholder {
		t.Errorf("bar_ours thumbnail = %q, want placeholder", got)
	}
	if got := res.Comparison[0].Thumbnail; got != "images/foo.png" {
		t.Errorf("comparison thumbnail = %q, want images/foo.png", got)
	}

	results := html.UnescapeString(readFile(t, filepath.Join(cfg.OutputDir, "results.html")))
	for _, s := range []string{
		`href="viewers/foo_ours/index.html"`,
		`src="images/foo.png"`,
		`src="` + config.DefaultPlaceholder + `"`,
		`alt="bar_ours"`,
		cfg.Pages.ResultsTitle,
	} {
		if !strings.Contains(results, s) {
			t.Errorf("results.html missing %q", s)
		}
	}

	comparison := html.UnescapeString(readFile(t, filepath.Join(cfg.OutputDir, "comparison.html")))
	if !strings.Contains(comparison, `href="viewers/foo_comparison_spatial/index.html"`) {
		t.Error("comparison.html missing spatial viewer link")
	}
	if strings.Contains(comparison, "foo_comparison_temporal") {
		t.Error("comparison.html should only list spatial comparisons")
	}

	landing := html.UnescapeString(readFile(t, filepath.Join(cfg.OutputDir, "index.html")))
	for _, s := range []string{`href="results.html"`, `href="comparison.html"`, cfg.Pages.ComparisonButton} {
		if !strings.Contains(landing, s) {
			t.Errorf("landing page missing %q", s)
		}
	}
}

func TestPagesGenerateEmptyGrid(t *testing.T) {
	cfg := newWorkspace(t, []string{"plain"}, nil)
	if _, err := NewPagesGenerator(cfg).Generate(); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	out := readFile(t, filepath.Join(cfg.OutputDir, "results.html"))
	if !strings.Contains(out, "No viewers found.") {
		t.Error("empty grid should show a notice")
	}
}

func TestResolveThumbnail(t *testing.T) {
	root := t.TempDir()
	images := filepath.Join(root, "images")
	if err := os.MkdirAll(filepath.Join(images, "dir.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(images, "foo.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		prompt, want string
	}{
		{"foo", "images/foo.png"},
		{"missing", "placeholder"},
		{"dir", "placeholder"},
	}
	for _, tt := range tests {
		if got := ResolveThumbnail(images, root, tt.prompt, "placeholder"); got != tt.want {
			t.Errorf("ResolveThumbnail(%q) = %q, want %q", tt.prompt, got, tt.want)
		}
	}
}

func TestRelURL(t *testing.T) {
	root := t.TempDir()
	tests := []struct {
		base, target, want string
	}{
		{root, filepath.Join(root, "viewers"), "viewers"},
		{root, root, ""},
		{filepath.Join(root, "out"), filepath.Join(root, "viewers"), "../viewers"},
	}
	for _, tt := range tests {
		if got := relURL(tt.base, tt.target); got != tt.want {
			t.Errorf("relURL(%q, %q) = %q, want %q", tt.base, tt.target, got, tt.want)
		}
	}
}

func TestJSLiterals(t *testing.T) {
	if got := string(jsArray([]string{"a", `b"c`})); got != "[\n      \"a\",\n      \"b\\\"c\"\n    ]" {
		t.Errorf("jsArray = %q", got)
	}
	if got := string(jsArray(nil)); got != "[]" {
		t.Errorf("jsArray(nil) = %q", got)
	}
	if got := jsString("<x>&"); got != `"\u003cx\u003e\u0026"` {
		t.Errorf("jsString = %q", got)
	}
}
