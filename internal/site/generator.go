package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/surveygen/internal/config"
	"github.com/ziadkadry99/surveygen/internal/progress"
	"github.com/ziadkadry99/surveygen/internal/viewers"
)

// Output file names.
const (
	IndexPage      = "index.html"
	ComparisonPage = "comparison.html"
	ResultsPage    = "results.html"
)

var (
	indexTmpl   = template.Must(template.New("index").Parse(indexTemplate))
	landingTmpl = template.Must(template.New("landing").Parse(landingTemplate))
	gridTmpl    = template.Must(template.New("grid").Parse(gridTemplate))
)

// IndexGenerator renders the shuffled survey page with its caption-to-ID table.
type IndexGenerator struct {
	cfg      *config.Config
	BuildID  string
	Progress progress.Reporter
}

// NewIndexGenerator creates an IndexGenerator for cfg.
func NewIndexGenerator(cfg *config.Config) *IndexGenerator {
	return &IndexGenerator{cfg: cfg, Progress: progress.Nop{}}
}

// IndexResult describes a generated survey page.
type IndexResult struct {
	Path     string
	Entries  []viewers.Entry
	Captions map[string]int
	MainURLs []string // Sorted order; the page shuffles on load.
	TestURLs []string
}

// indexData holds the data passed to the survey page template.
type indexData struct {
	Title        string
	Instructions template.HTML
	BuildID      string
	ViewerURLs   template.JS
	Captions     template.JS
	TestURLs     template.JS
	Shuffle      bool
	HasTest      bool
}

// Plan scans the viewers directory and resolves every URL the page will
// embed, without writing anything.
func (g *IndexGenerator) Plan() (*IndexResult, error) {
	entries, err := viewers.Scan(viewers.ScanConfig{Dir: g.cfg.ViewersDir, Exclude: g.cfg.Exclude})
	if err != nil {
		return nil, err
	}

	base := relURL(g.cfg.OutputDir, g.cfg.ViewersDir)
	mainURLs := make([]string, len(entries))
	for i, e := range entries {
		mainURLs[i] = e.URL(base)
	}

	testBase := relURL(g.cfg.OutputDir, g.cfg.TestViewersDir)
	testURLs := make([]string, 0, len(g.cfg.TestViewers))
	for _, name := range g.cfg.TestViewers {
		testURLs = append(testURLs, path.Join(testBase, name, viewers.IndexFile))
	}

	return &IndexResult{
		Path:     filepath.Join(g.cfg.OutputDir, IndexPage),
		Entries:  entries,
		Captions: viewers.CaptionTable(entries),
		MainURLs: mainURLs,
		TestURLs: testURLs,
	}, nil
}

// Generate writes index.html into the output directory, overwriting any
// existing file.
func (g *IndexGenerator) Generate() (*IndexResult, error) {
	res, err := g.Plan()
	if err != nil {
		return nil, err
	}

	g.Progress.Start(len(res.Entries), "Indexing viewers")
	for i, e := range res.Entries {
		g.Progress.Update(i+1, e.Name)
	}
	g.Progress.Finish()

	instructions, err := renderMarkdown(g.cfg.Instructions)
	if err != nil {
		return nil, fmt.Errorf("rendering instructions: %w", err)
	}

	data := indexData{
		Title:        g.cfg.Title,
		Instructions: instructions,
		BuildID:      g.BuildID,
		ViewerURLs:   jsArray(res.MainURLs),
		Captions:     jsCaptionTable(res.Entries),
		TestURLs:     jsArray(res.TestURLs),
		Shuffle:      g.cfg.Shuffle,
		HasTest:      len(res.TestURLs) > 0,
	}

	if err := writePage(res.Path, indexTmpl, data); err != nil {
		return nil, err
	}
	return res, nil
}

// PagesGenerator renders the landing, comparison and results pages.
type PagesGenerator struct {
	cfg      *config.Config
	Progress progress.Reporter
}

// NewPagesGenerator creates a PagesGenerator for cfg.
func NewPagesGenerator(cfg *config.Config) *PagesGenerator {
	return &PagesGenerator{cfg: cfg, Progress: progress.Nop{}}
}

// Card is one thumbnail tile on the comparison or results page.
type Card struct {
	Folder    string
	ViewerURL string
	Thumbnail string
}

// PagesResult describes the generated pages.
type PagesResult struct {
	Paths      []string
	Comparison []Card
	Results    []Card
}

type landingData struct {
	Title            string
	ResultsPage      string
	ComparisonPage   string
	ResultsButton    string
	ComparisonButton string
}

type gridData struct {
	Title    string
	Heading  string
	BackPage string
	Cards    []Card
}

// Generate writes index.html, comparison.html and results.html into the
// output directory.
func (g *PagesGenerator) Generate() (*PagesResult, error) {
	entries, err := viewers.Scan(viewers.ScanConfig{Dir: g.cfg.ViewersDir, Exclude: g.cfg.Exclude})
	if err != nil {
		return nil, err
	}

	comparison := viewers.FilterKind(entries, viewers.SpatialComparison)
	results := viewers.FilterKind(entries, viewers.Ours)

	g.Progress.Start(len(comparison)+len(results), "Rendering cards")
	res := &PagesResult{
		Comparison: g.cards(comparison, 0),
		Results:    g.cards(results, len(comparison)),
	}
	g.Progress.Finish()

	out := g.cfg.OutputDir
	pages := []struct {
		name string
		tmpl *template.Template
		data any
	}{
		{IndexPage, landingTmpl, landingData{
			Title:            "Main Page",
			ResultsPage:      ResultsPage,
			ComparisonPage:   ComparisonPage,
			ResultsButton:    g.cfg.Pages.ResultsButton,
			ComparisonButton: g.cfg.Pages.ComparisonButton,
		}},
		{ComparisonPage, gridTmpl, gridData{
			Title:    "Comparison View",
			Heading:  g.cfg.Pages.ComparisonTitle,
			BackPage: IndexPage,
			Cards:    res.Comparison,
		}},
		{ResultsPage, gridTmpl, gridData{
			Title:    "Results View",
			Heading:  g.cfg.Pages.ResultsTitle,
			BackPage: IndexPage,
			Cards:    res.Results,
		}},
	}

	for _, p := range pages {
		dst := filepath.Join(out, p.name)
		if err := writePage(dst, p.tmpl, p.data); err != nil {
			return nil, err
		}
		res.Paths = append(res.Paths, dst)
	}
	return res, nil
}

func (g *PagesGenerator) cards(entries []viewers.Entry, offset int) []Card {
	base := relURL(g.cfg.OutputDir, g.cfg.ViewersDir)
	cards := make([]Card, len(entries))
	for i, e := range entries {
		cards[i] = Card{
			Folder:    e.Name,
			ViewerURL: e.URL(base),
			Thumbnail: ResolveThumbnail(g.cfg.ImagesDir, g.cfg.OutputDir, e.Prompt, g.cfg.Placeholder),
		}
		g.Progress.Update(offset+i+1, e.Name)
	}
	return cards
}

// ResolveThumbnail returns the URL of {imagesDir}/{prompt}.png relative to
// outputDir when that file exists, and placeholder otherwise.
func ResolveThumbnail(imagesDir, outputDir, prompt, placeholder string) string {
	p := filepath.Join(imagesDir, prompt+".png")
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return placeholder
	}
	return relURL(outputDir, p)
}

// relURL expresses target relative to base as a forward-slash URL path.
func relURL(base, target string) string {
	absBase, baseErr := filepath.Abs(base)
	absTarget, targetErr := filepath.Abs(target)
	rel, err := filepath.Rel(absBase, absTarget)
	if baseErr != nil || targetErr != nil || err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return ""
	}
	return rel
}

// writePage renders the whole page before touching the file, so a template
// error never leaves a truncated page behind.
func writePage(dst string, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(dst), err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// renderMarkdown converts the instructions block to HTML. Line breaks inside
// a paragraph are kept as <br>.
func renderMarkdown(src string) (template.HTML, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// jsArray renders urls as a JavaScript array literal, one element per line.
func jsArray(items []string) template.JS {
	if len(items) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for i, item := range items {
		b.WriteString("      ")
		b.WriteString(jsString(item))
		if i < len(items)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("    ]")
	return template.JS(b.String())
}

// jsCaptionTable renders the folder -> ID table as a JavaScript object
// literal in ID order.
func jsCaptionTable(entries []viewers.Entry) template.JS {
	if len(entries) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "      %s: %d", jsString(e.Name), e.ID)
		if i < len(entries)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("    }")
	return template.JS(b.String())
}

// jsString quotes s as a JSON string, which is also a valid JavaScript
// string literal. json.Marshal escapes <, > and & so the value cannot close
// the script element.
func jsString(s string) string {
	quoted, _ := json.Marshal(s)
	return string(quoted)
}
