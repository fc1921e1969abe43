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

var generateProjectCmd = &cobra.Command{
	Use:   "generate-project",
	Short: "Generate a project README from a form-state snapshot",
	Long:  "Reads a project form-state JSON snapshot, validates it against the project schema, and renders the complete project README markdown.",
	RunE:  runGenerateProject,
}

var (
	generateProjectInput    string
	generateProjectOutput   string
	generateProjectTemplate string
	generateProjectConfig   string
	generateProjectVerbose  bool
)

func init() {
	generateProjectCmd.Flags().StringVarP(&generateProjectInput, "input", "i", "", "Path to project form-state JSON snapshot")
	generateProjectCmd.Flags().StringVarP(&generateProjectOutput, "output", "o", "", "Path to write the README (default: stdout)")
	generateProjectCmd.Flags().StringVar(&generateProjectTemplate, "template", "", "Project template id (unknown ids fall back to the default)")
	generateProjectCmd.Flags().StringVar(&generateProjectConfig, "config", "", "Path to JSON config file")
	generateProjectCmd.Flags().BoolVarP(&generateProjectVerbose, "verbose", "v", false, "Print a summary of the input and output")

	rootCmd.AddCommand(generateProjectCmd)
}

func runGenerateProject(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(generateProjectConfig, config.Config{
		Input:    generateProjectInput,
		Output:   generateProjectOutput,
		Template: generateProjectTemplate,
		Verbose:  generateProjectVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input snapshot is required (use --input or set 'input' in the config file)")
	}

	state, err := loadProjectState(cfg.Input)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintProjectState(state)
	}

	template := registry.ProjectTemplateByID(cfg.Template)
	markdown := generator.Project(*state)

	if cfg.Verbose {
		printer.PrintDocumentStats(markdown)
		fmt.Fprintf(os.Stderr, "Template: %s\n", template.Name)
	}

	return writeMarkdown(cfg.Output, markdown)
}
