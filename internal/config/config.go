package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/journeyscribe/journeyscribe/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Selectors SelectorConfig `yaml:"selectors"`
	Variables VariableConfig `yaml:"variables"`
	Accuracy  AccuracyConfig `yaml:"accuracy"`
	Output    OutputConfig   `yaml:"output"`
	Logging   LoggingConfig  `yaml:"logging"`
	DryRun    bool           `yaml:"dry_run"`
}

// SelectorConfig tunes the selector resolver.
type SelectorConfig struct {
	// FreeTextCeiling is the longest free-text value still treated as an
	// element label; longer text is assumed to be page content and skipped.
	FreeTextCeiling int `yaml:"free_text_ceiling"`
	// DescriptionCap truncates any resolved description embedded in output.
	DescriptionCap int `yaml:"description_cap"`
	// MissingMarker is the text rendered when no selector is usable.
	MissingMarker string `yaml:"missing_marker"`
}

// VariableConfig tunes the variable classifier.
type VariableConfig struct {
	// SecretPatterns are case-insensitive substrings marking a variable
	// name as sensitive.
	SecretPatterns []string `yaml:"secret_patterns"`
	// Mask replaces the value of every sensitive variable.
	Mask string `yaml:"mask"`
	// Defaults supplies values for a few well-known names when no source
	// defines them.
	Defaults map[string]string `yaml:"defaults"`
}

// AccuracyConfig holds the threshold ladder for the qualitative level.
type AccuracyConfig struct {
	Excellent int `yaml:"excellent"`
	Good      int `yaml:"good"`
	Fair      int `yaml:"fair"`
	// FamilyFailureLimit is the failure count in one action family above
	// which a dedicated-template recommendation is emitted.
	FamilyFailureLimit int `yaml:"family_failure_limit"`
}

// OutputConfig names the files the CLI writes.
type OutputConfig struct {
	Directory    string `yaml:"directory"`
	ScriptFile   string `yaml:"script_file"`
	VariableFile string `yaml:"variable_file"`
	ReportFile   string `yaml:"report_file"`
}

// LoggingConfig controls CLI logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}
