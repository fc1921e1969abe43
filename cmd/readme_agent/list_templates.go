package main

import (
	"fmt"
	"os"

	"github.com/jonathan/readme-generator/internal/registry"
	"github.com/spf13/cobra"
)

var listTemplatesCmd = &cobra.Command{
	Use:   "list-templates",
	Short: "List the available README templates",
	Long:  "Prints the profile and project template catalogs with their ids and descriptions.",
	RunE:  runListTemplates,
}

var listTemplatesVariant string

func init() {
	listTemplatesCmd.Flags().StringVar(&listTemplatesVariant, "variant", "", "Limit output to one variant: profile or project")
	rootCmd.AddCommand(listTemplatesCmd)
}

func runListTemplates(_ *cobra.Command, _ []string) error {
	switch listTemplatesVariant {
	case "", "profile", "project":
	default:
		return fmt.Errorf("unknown variant %q (expected profile or project)", listTemplatesVariant)
	}

	if listTemplatesVariant == "" || listTemplatesVariant == "profile" {
		fmt.Fprintln(os.Stdout, "Profile templates:")
		for _, t := range registry.ProfileTemplates {
			fmt.Fprintf(os.Stdout, "  %-14s %s\n", t.ID, t.Description)
		}
	}
	if listTemplatesVariant == "" || listTemplatesVariant == "project" {
		fmt.Fprintln(os.Stdout, "Project templates:")
		for _, t := range registry.ProjectTemplates {
			fmt.Fprintf(os.Stdout, "  %-14s %s\n", t.ID, t.Description)
		}
	}

	return nil
}
