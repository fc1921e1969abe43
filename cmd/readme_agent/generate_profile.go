package main

import (
	"fmt"
	"os"

	"github.com/jonathan/readme-generator/internal/config"
	"github.com/jonathan/readme-generator/internal/generator"
	"github.com/jonathan/readme-generator/internal/observability"
	"github.com/jonathan/readme-generator/internal/registry"
	"github.com/spf13/cobra"
)

var generateProfileCmd = &cobra.Command{
	Use:   "generate-profile",
	Short: "Generate a GitHub profile README from a form-state snapshot",
	Long:  "Reads a profile form-state JSON snapshot, validates it against the profile schema, and renders the complete profile README markdown.",
	RunE:  runGenerateProfile,
}

var (
	generateProfileInput    string
	generateProfileOutput   string
	generateProfileTemplate string
	generateProfileConfig   string
	generateProfileVerbose  bool
)

func init() {
	generateProfileCmd.Flags().StringVarP(&generateProfileInput, "input", "i", "", "Path to profile form-state JSON snapshot")
	generateProfileCmd.Flags().StringVarP(&generateProfileOutput, "output", "o", "", "Path to write the README (default: stdout)")
	generateProfileCmd.Flags().StringVar(&generateProfileTemplate, "template", "", "Profile template id (unknown ids fall back to the default)")
	generateProfileCmd.Flags().StringVar(&generateProfileConfig, "config", "", "Path to JSON config file")
	generateProfileCmd.Flags().BoolVarP(&generateProfileVerbose, "verbose", "v", false, "Print a summary of the input and output")

	rootCmd.AddCommand(generateProfileCmd)
}

func runGenerateProfile(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(generateProfileConfig, config.Config{
		Input:    generateProfileInput,
		Output:   generateProfileOutput,
		Template: generateProfileTemplate,
		Verbose:  generateProfileVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input snapshot is required (use --input or set 'input' in the config file)")
	}

	state, err := loadProfileState(cfg.Input)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintProfileState(state)
	}

	template := registry.ProfileTemplateByID(cfg.Template)
	markdown := generator.Profile(*state)

	if cfg.Verbose {
		printer.PrintDocumentStats(markdown)
		fmt.Fprintf(os.Stderr, "Template: %s\n", template.Name)
	}

	return writeMarkdown(cfg.Output, markdown)
}

// resolveConfig merges flag values over an optional config file. Flags win;
// the file only fills in what the flags left empty.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags.MergeWithDefaults(config.Config{}), nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	merged.Verbose = flags.Verbose || fileCfg.Verbose
	return merged, nil
}
