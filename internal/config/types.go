package config

// Config is the top-level surveygen configuration, corresponding to .surveygen.yml.
type Config struct {
	Title          string      `yaml:"title" koanf:"title"`
	Instructions   string      `yaml:"instructions" koanf:"instructions"` // Markdown.
	ViewersDir     string      `yaml:"viewers_dir" koanf:"viewers_dir"`
	ImagesDir      string      `yaml:"images_dir" koanf:"images_dir"`
	OutputDir      string      `yaml:"output_dir" koanf:"output_dir"`
	TestViewersDir string      `yaml:"test_viewers_dir" koanf:"test_viewers_dir"`
	TestViewers    []string    `yaml:"test_viewers" koanf:"test_viewers"`
	Exclude        []string    `yaml:"exclude" koanf:"exclude"`
	Placeholder    string      `yaml:"placeholder" koanf:"placeholder"`
	Shuffle        bool        `yaml:"shuffle" koanf:"shuffle"`
	LedgerPath     string      `yaml:"ledger_path" koanf:"ledger_path"`
	Pages          PagesConfig `yaml:"pages" koanf:"pages"`
}

// PagesConfig holds the text of the landing, comparison and results pages.
type PagesConfig struct {
	ResultsButton    string `yaml:"results_button" koanf:"results_button"`
	ComparisonButton string `yaml:"comparison_button" koanf:"comparison_button"`
	ComparisonTitle  string `yaml:"comparison_title" koanf:"comparison_title"`
	ResultsTitle     string `yaml:"results_title" koanf:"results_title"`
}
