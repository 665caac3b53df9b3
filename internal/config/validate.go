package config

import (
	"fmt"
	"strings"

	"github.com/journeyscribe/journeyscribe/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Selector validation
	if cfg.Selectors.FreeTextCeiling <= 0 {
		errs = append(errs, "selectors.free_text_ceiling must be positive")
	}
	if cfg.Selectors.DescriptionCap <= 0 {
		errs = append(errs, "selectors.description_cap must be positive")
	}
	if cfg.Selectors.MissingMarker == "" {
		errs = append(errs, "selectors.missing_marker must not be empty")
	}

	// Variable validation
	if cfg.Variables.Mask == "" {
		errs = append(errs, "variables.mask must not be empty")
	}

	// Accuracy ladder must be strictly descending so each level is reachable
	a := cfg.Accuracy
	if a.Excellent <= a.Good || a.Good <= a.Fair {
		errs = append(errs, fmt.Sprintf("accuracy thresholds must be strictly descending (got excellent=%d good=%d fair=%d)", a.Excellent, a.Good, a.Fair))
	}
	if a.Excellent > 100 || a.Fair < 0 {
		errs = append(errs, "accuracy thresholds must be within 0-100")
	}
	if a.FamilyFailureLimit <= 0 {
		errs = append(errs, "accuracy.family_failure_limit must be positive")
	}

	// Output validation
	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	if cfg.Output.ScriptFile == "" {
		errs = append(errs, "output.script_file must not be empty")
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
