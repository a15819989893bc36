package config

import "github.com/ziadkadry99/surveygen/internal/viewers"

// DefaultPath is where init writes and every command reads the config.
const DefaultPath = ".surveygen.yml"

// DefaultPlaceholder is shown for cards with no thumbnail on disk.
const DefaultPlaceholder = "https://via.placeholder.com/300x200?text=No+Thumbnail"

// DefaultInstructions is the text shown above the Main Viewer button.
const DefaultInstructions = `Click **Enter VR** for each video to view two videos side by side.
The videos will play twice and then pause on a frame.
Your task is to determine in which video **has a more realistic 3D effect**.
Pay attention to the 3D effect of **reflections** and of objects behind **transparent surfaces**.
Thank you for your input!`

// DefaultTestViewers are the practice folders under the test viewers dir.
var DefaultTestViewers = []string{
	"flickr_comparison_spatial",
	"TEST-VIDEO-A_close-up_view_of_a_laptop_displaying_audio_software_comparison_spatial",
}

// DefaultConfig returns a Config for the conventional layout: viewers/,
// images/ and viewers_test/ next to the generated pages.
func DefaultConfig() *Config {
	return &Config{
		Title:          "3D Video Survey",
		Instructions:   DefaultInstructions,
		ViewersDir:     "viewers",
		ImagesDir:      "images",
		OutputDir:      ".",
		TestViewersDir: "viewers_test",
		TestViewers:    append([]string(nil), DefaultTestViewers...),
		Exclude:        append([]string(nil), viewers.DefaultExcludes...),
		Placeholder:    DefaultPlaceholder,
		Shuffle:        true,
		LedgerPath:     ".surveygen/ledger.db",
		Pages: PagesConfig{
			ResultsButton:    "View Our Results In VR!",
			ComparisonButton: "Comparison to Warp & Inpaint Baseline, in VR",
			ComparisonTitle:  "Comparison: _comparison_spatial",
			ResultsTitle:     "Click the images to enter the VR viewers.",
		},
	}
}
