package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Source formats understood by the parser.
const (
	FormatHosts   = "hosts"   // IP hostname [hostname ...] lines
	FormatDomains = "domains" // one hostname per line
)

// Source describes one remote blocklist: where to fetch it, which
// category its entries are tagged with, and how its lines are laid out.
type Source struct {
	URL      string `mapstructure:"url" yaml:"url"`
	Category string `mapstructure:"category" yaml:"category"`
	Format   string `mapstructure:"format" yaml:"format"`
}

// Config holds everything the aggregation run needs.
type Config struct {
	OutputDir string        `mapstructure:"output_dir"`
	Timeout   time.Duration `mapstructure:"-"`
	Formats   []string      `mapstructure:"formats"`
	Sources   []Source      `mapstructure:"sources"`
	Verbose   bool          `mapstructure:"verbose"`
}

// defaultSources is the built-in source table: the StevenBlack hosts
// list plus its single-category alternates.
func defaultSources() []Source {
	return []Source{
		{
			URL:      "https://raw.githubusercontent.com/StevenBlack/hosts/master/hosts",
			Category: "Adware & Malware",
			Format:   FormatHosts,
		},
		{
			URL:      "https://raw.githubusercontent.com/StevenBlack/hosts/master/alternates/fakenews-only/hosts",
			Category: "Fake news",
			Format:   FormatHosts,
		},
		{
			URL:      "https://raw.githubusercontent.com/StevenBlack/hosts/master/alternates/gambling-only/hosts",
			Category: "Gambling",
			Format:   FormatHosts,
		},
		{
			URL:      "https://raw.githubusercontent.com/StevenBlack/hosts/master/alternates/porn-only/hosts",
			Category: "Porn",
			Format:   FormatHosts,
		},
		{
			URL:      "https://raw.githubusercontent.com/StevenBlack/hosts/master/alternates/social-only/hosts",
			Category: "Social",
			Format:   FormatHosts,
		},
	}
}

// Load builds a Config from viper's current state (config file, env,
// defaults). Flags are applied on top by the caller.
func Load() (Config, error) {
	viper.SetDefault("output_dir", "data")
	viper.SetDefault("timeout_seconds", 30)
	viper.SetDefault("formats", []string{"csv", "json", "yaml"})

	cfg := Config{
		OutputDir: viper.GetString("output_dir"),
		Formats:   viper.GetStringSlice("formats"),
		Verbose:   viper.GetBool("verbose"),
	}

	secs := viper.GetInt("timeout_seconds")
	if secs <= 0 {
		return Config{}, fmt.Errorf("timeout_seconds must be positive, got %d", secs)
	}
	cfg.Timeout = time.Duration(secs) * time.Second

	if viper.IsSet("sources") {
		if err := viper.UnmarshalKey("sources", &cfg.Sources); err != nil {
			return Config{}, fmt.Errorf("invalid sources config: %w", err)
		}
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = defaultSources()
	}

	for i := range cfg.Sources {
		if cfg.Sources[i].Format == "" {
			cfg.Sources[i].Format = FormatHosts
		}
		if err := validateSource(cfg.Sources[i]); err != nil {
			return Config{}, err
		}
	}

	if err := ValidateFormats(cfg.Formats); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateSource(s Source) error {
	if s.URL == "" {
		return fmt.Errorf("source with category %q has no url", s.Category)
	}
	if s.Category == "" {
		return fmt.Errorf("source %s has no category", s.URL)
	}
	if s.Format != FormatHosts && s.Format != FormatDomains {
		return fmt.Errorf("source %s: unknown format %q", s.URL, s.Format)
	}
	return nil
}

// ValidateFormats checks that every requested output format is one of
// csv, json, or yaml.
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return fmt.Errorf("at least one output format is required")
	}
	for _, f := range formats {
		switch f {
		case "csv", "json", "yaml":
		default:
			return fmt.Errorf("unknown output format %q (choose from csv, json, yaml)", f)
		}
	}
	return nil
}
