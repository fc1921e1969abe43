package main

import (
	"fmt"
	"os"

	"github.com/jonathan/readme-generator/internal/registry"
	"github.com/spf13/cobra"
)

var listSkillsCmd = &cobra.Command{
	Use:   "list-skills",
	Short: "List the predefined skill catalog",
	Long:  "Prints the predefined skills grouped by category. Skill names outside this catalog are rendered as custom skills without icons.",
	RunE:  runListSkills,
}

var listSkillsCategory string

func init() {
	listSkillsCmd.Flags().StringVar(&listSkillsCategory, "category", "", "Limit output to one category")
	rootCmd.AddCommand(listSkillsCmd)
}

func runListSkills(_ *cobra.Command, _ []string) error {
	categories := registry.Categories()
	if listSkillsCategory != "" {
		if len(registry.SkillsByCategory(listSkillsCategory)) == 0 {
			return fmt.Errorf("unknown category %q", listSkillsCategory)
		}
		categories = []string{listSkillsCategory}
	}

	for _, category := range categories {
		fmt.Fprintf(os.Stdout, "%s:\n", category)
		for _, skill := range registry.SkillsByCategory(category) {
			fmt.Fprintf(os.Stdout, "  %s\n", skill.Name)
		}
	}

	return nil
}
