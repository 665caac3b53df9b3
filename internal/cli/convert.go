package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/journeyscribe/journeyscribe/internal/config"
	"github.com/journeyscribe/journeyscribe/internal/domain"
	"github.com/journeyscribe/journeyscribe/internal/generator"
)

var (
	journeyFile     string
	executionFile   string
	environmentFile string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a journey to a natural-language script",
	Long: `Reads a journey record (plus optional execution and environment records)
and writes the script, the classified variable table, and the conversion report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = config.DefaultConfig()
			log.Debug("config file not found, using defaults")
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
		setLogLevel(cfg.Logging.Level)
		if dryRun {
			cfg.DryRun = true
		}

		return runConvert(cfg)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&journeyFile, "journey", "j", "", "journey record JSON file (required)")
	convertCmd.Flags().StringVarP(&executionFile, "execution", "e", "", "execution record JSON file")
	convertCmd.Flags().StringVarP(&environmentFile, "environments", "n", "", "environment records JSON file")
	_ = convertCmd.MarkFlagRequired("journey")
	rootCmd.AddCommand(convertCmd)
}

// runConvert wires the generator and runs both passes.
func runConvert(cfg *config.Config) error {
	journey, err := loadJourney(journeyFile)
	if err != nil {
		return err
	}
	execution, err := loadExecution(executionFile)
	if err != nil {
		return err
	}
	envs, err := loadEnvironments(environmentFile)
	if err != nil {
		return err
	}

	gen := generator.New(cfg, log)
	script, report := gen.Convert(journey)
	table := gen.Variables(journey, execution, envs)

	if cfg.DryRun {
		fmt.Println(script)
		return nil
	}

	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		return domain.NewError("write", cfg.Output.Directory, 0, "failed to create output directory", err)
	}
	if err := writeText(filepath.Join(cfg.Output.Directory, cfg.Output.ScriptFile), script); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.Output.Directory, cfg.Output.VariableFile), table); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.Output.Directory, cfg.Output.ReportFile), report); err != nil {
		return err
	}

	log.WithField("directory", cfg.Output.Directory).Info("outputs written")
	return nil
}

func writeText(path, content string) error {
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return domain.NewError("write", path, 0, "failed to write output file", err)
	}
	return nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return domain.NewError("write", path, 0, "failed to encode output", err)
	}
	return writeText(path, string(data))
}
