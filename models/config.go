package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the heuristic constants of the extraction pipeline. The
// defaults are tuned against Pro Systemer order confirmations; every value a
// different revision of the template could shift is overridable from a yaml
// file rather than baked in.
type Config struct {
	// LineTolerance is the vertical distance, in points, within which two
	// words are judged to sit on the same text line. Must absorb baseline
	// jitter from mixed font sizes without merging adjacent rows.
	LineTolerance float64 `yaml:"line_tolerance"`

	// HeaderCropPt and FooterCropPt are the heights, in points, of the page
	// bands removed before word extraction. The vendor repeats its letterhead
	// in the top band on every page.
	HeaderCropPt float64 `yaml:"header_crop_pt"`
	FooterCropPt float64 `yaml:"footer_crop_pt"`

	// TrailingBoilerplatePages is how many pages to drop from the end of the
	// document when no explicit end page is given. The confirmations close
	// with a fixed run of terms-and-conditions pages.
	TrailingBoilerplatePages int `yaml:"trailing_boilerplate_pages"`

	Template TemplateConfig `yaml:"template"`
}

// TemplateConfig describes the document template's section and table
// markers. All matching is prefix/token based on reconstructed lines.
type TemplateConfig struct {
	// SectionPrefix marks a section heading; the remainder of the line is
	// the section title.
	SectionPrefix string `yaml:"section_prefix"`

	// Metadata prefixes captured into Section fields.
	StartDatePrefix  string `yaml:"start_date_prefix"`
	ReturnDatePrefix string `yaml:"return_date_prefix"`
	UserDaysPrefix   string `yaml:"user_days_prefix"`

	// TotalPrefixes are captured into Section.Totals keyed by the prefix.
	TotalPrefixes []string `yaml:"total_prefixes"`

	// Columns is the table schema. A line starting with Columns[0] and
	// containing every other column label is a table header.
	Columns []string `yaml:"columns"`

	// RowPattern matches the first token of a table data line (the position
	// number in this template).
	RowPattern string `yaml:"row_pattern"`
}

// DefaultConfig returns the configuration for the current Pro Systemer
// order-confirmation template.
func DefaultConfig() Config {
	return Config{
		LineTolerance:            5.0,
		HeaderCropPt:             130,
		FooterCropPt:             0,
		TrailingBoilerplatePages: 3,
		Template: TemplateConfig{
			SectionPrefix:    "Jobb navn:",
			StartDatePrefix:  "Start dato",
			ReturnDatePrefix: "Retur dato",
			UserDaysPrefix:   "Brukerdager",
			TotalPrefixes:    []string{"Total utstyr:", "Total eks.mva"},
			Columns:          []string{"Pos", "Antall", "Navn"},
			RowPattern:       `^\d+$`,
		},
	}
}

// LoadConfig reads a yaml config file over the defaults. Unset keys keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
