// Package config loads the optional tasklist.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"tasklistgen/services"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "tasklist.yaml"

// Config holds the generator settings.
type Config struct {
	// ResourceDir holds assets/psa_tasklist_template.json.
	ResourceDir string `yaml:"resource_dir"`
	// AssessmentShare is the assessment part of total hours when both
	// sections are generated.
	AssessmentShare float64 `yaml:"assessment_share"`
	// Directionality is preselected when a request leaves it empty.
	Directionality string `yaml:"directionality"`
	// HoursSplit is preselected when a request leaves it empty.
	HoursSplit string `yaml:"hours_split"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		ResourceDir:     "./resources",
		AssessmentShare: services.DefaultAssessmentShare,
		Directionality:  "Bi-Directional",
		HoursSplit:      services.SplitBoth,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ResourceDir, validation.Required),
		validation.Field(&c.AssessmentShare, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.Directionality, validation.In(services.AnyOf(services.DirectionalityOptions)...)),
		validation.Field(&c.HoursSplit, validation.In(services.AnyOf(services.HoursSplitOptions)...)),
	)
}

// ApplyDefaults fills the request fields a caller left empty.
func (c Config) ApplyDefaults(p services.TasklistParams) services.TasklistParams {
	if p.Directionality == "" {
		p.Directionality = c.Directionality
	}
	if p.HoursSplit == "" {
		p.HoursSplit = c.HoursSplit
	}
	return p
}
