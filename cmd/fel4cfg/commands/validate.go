package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/fel4cfg/internal/errors"
	"github.com/thoreinstein/fel4cfg/pkg/fel4"
)

var validateJSON bool

var errValidationFailed = errors.New("manifest validation failed")

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a fel4 manifest",
	Long: `Validate the fel4 manifest: parse it, check the header against the
supported target/platform pairings, and resolve both the debug and
release configurations so layering conflicts surface before a build does.

Exit codes:
  0 - Valid manifest
  1 - Invalid manifest`,
	Example: `  # Validate the manifest in the working directory
  fel4cfg validate

  # Validate a specific manifest with JSON output for CI
  fel4cfg validate --manifest ./project/fel4.toml --json`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runValidate(manifestPath(), validateJSON, os.Stdout)
	},
}

// validateResult represents the JSON output structure.
type validateResult struct {
	Valid    bool     `json:"valid"`
	Path     string   `json:"path"`
	Target   string   `json:"target,omitempty"`
	Platform string   `json:"platform,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

func runValidate(path string, jsonOut bool, w io.Writer) error {
	result := validateResult{Path: path}

	manifest, err := fel4.LoadManifest(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
	} else {
		result.Target = string(manifest.Header.Target)
		result.Platform = string(manifest.Header.Platform)
		// Resolve both profiles; a conflict confined to one profile layer
		// should still fail validation.
		for _, profile := range fel4.BuildProfiles() {
			if _, err := fel4.Resolve(manifest, profile); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", profile, err))
			}
		}
	}
	result.Valid = len(result.Errors) == 0

	if jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshaling validation result")
		}
		fmt.Fprintln(w, string(data))
	} else {
		writeValidateText(w, result)
	}

	if !result.Valid {
		return errors.NewExitError(errValidationFailed, errors.ExitUser)
	}
	return nil
}

func writeValidateText(w io.Writer, result validateResult) {
	if result.Valid {
		fmt.Fprintf(w, "✓ %s is valid (target %s, platform %s)\n",
			result.Path, result.Target, result.Platform)
		return
	}
	fmt.Fprintf(w, "✗ %s is invalid:\n", result.Path)
	for _, msg := range result.Errors {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}
