package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SURVEYGEN_*). A missing file yields defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SURVEYGEN_VIEWERS_DIR -> viewers_dir, etc.
	// Double underscores address nested keys: SURVEYGEN_PAGES__RESULTS_TITLE.
	if err := k.Load(env.Provider("SURVEYGEN_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "SURVEYGEN_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// ZeroFields makes a list in the file replace the default list instead
	// of overwriting it element by element.
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
			Result:           cfg,
			WeaklyTypedInput: true,
			ZeroFields:       true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.ViewersDir == "" {
		return fmt.Errorf("viewers_dir is required")
	}
	if c.ImagesDir == "" {
		return fmt.Errorf("images_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Placeholder == "" {
		return fmt.Errorf("placeholder is required")
	}
	if len(c.TestViewers) > 0 && c.TestViewersDir == "" {
		return fmt.Errorf("test_viewers_dir is required when test_viewers is set")
	}
	for _, name := range c.TestViewers {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("invalid test viewer %q: must be a single folder name", name)
		}
	}
	return nil
}
