package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Selectors: SelectorConfig{
			FreeTextCeiling: 100,
			DescriptionCap:  80,
			MissingMarker:   "[no selector found]",
		},
		Variables: VariableConfig{
			SecretPatterns: []string{"password", "secret", "token"},
			Mask:           "********",
			Defaults: map[string]string{
				"url":      "https://example.com",
				"username": "testuser",
				"password": "********",
			},
		},
		Accuracy: AccuracyConfig{
			Excellent:          95,
			Good:               80,
			Fair:               60,
			FamilyFailureLimit: 3,
		},
		Output: OutputConfig{
			Directory:    "output",
			ScriptFile:   "script.txt",
			VariableFile: "variables.json",
			ReportFile:   "report.json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
