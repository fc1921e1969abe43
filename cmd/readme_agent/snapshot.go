package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/readme-generator/internal/schemas"
	"github.com/jonathan/readme-generator/internal/types"
)

const (
	profileSchemaFile = "schemas/profile_state.schema.json"
	projectSchemaFile = "schemas/project_state.schema.json"
)

// validateSnapshot checks a snapshot file against its schema when the schema
// file can be found. A missing schema is not an error; the CLI may be running
// from an installed binary without the repo checkout.
func validateSnapshot(schemaFile, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaFile)
	if schemaPath == "" {
		return nil
	}
	return schemas.ValidateJSON(schemaPath, jsonPath)
}

// loadProfileState reads and validates a profile form-state snapshot.
func loadProfileState(path string) (*types.ProfileState, error) {
	if err := validateSnapshot(profileSchemaFile, path); err != nil {
		return nil, fmt.Errorf("invalid profile snapshot: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var state types.ProfileState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot JSON: %w", err)
	}
	return &state, nil
}

// loadProjectState reads and validates a project form-state snapshot.
func loadProjectState(path string) (*types.ProjectState, error) {
	if err := validateSnapshot(projectSchemaFile, path); err != nil {
		return nil, fmt.Errorf("invalid project snapshot: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var state types.ProjectState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot JSON: %w", err)
	}
	return &state, nil
}

// writeMarkdown writes the generated document to the output path, or stdout
// when the path is empty.
func writeMarkdown(output, markdown string) error {
	if output == "" {
		_, err := fmt.Fprint(os.Stdout, markdown)
		return err
	}
	if err := os.WriteFile(output, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return nil
}
