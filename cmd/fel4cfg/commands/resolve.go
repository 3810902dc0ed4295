package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/fel4cfg/internal/errors"
	"github.com/thoreinstein/fel4cfg/pkg/fel4"
)

var (
	resolveProfile string
	resolveFormat  string
)

func init() {
	resolveCmd.Flags().StringVar(&resolveProfile, "profile", "",
		"build profile: debug, release (default: configured default_profile)")
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "text",
		"output format: text, json, yaml")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the manifest into a flat property set",
	Long: `Resolve the fel4 manifest for its selected target and platform,
merging the base, platform, and profile property layers into one
deduplicated, type-checked configuration.

Properties are printed in name order so the output is stable across runs.`,
	Example: `  # Resolve with the default profile
  fel4cfg resolve

  # Resolve the release configuration as JSON
  fel4cfg resolve --profile release --format json

  # Resolve a manifest somewhere else
  fel4cfg resolve --manifest ../project/fel4.toml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runResolve(manifestPath(), resolveProfile, resolveFormat, os.Stdout)
	},
}

// resolveResult is the serializable form of a resolved configuration.
type resolveResult struct {
	Target          string                `json:"target" yaml:"target"`
	Platform        string                `json:"platform" yaml:"platform"`
	BuildProfile    string                `json:"build_profile" yaml:"build_profile"`
	ArtifactPath    string                `json:"artifact_path" yaml:"artifact_path"`
	TargetSpecsPath string                `json:"target_specs_path" yaml:"target_specs_path"`
	Properties      map[string]fel4.Value `json:"properties" yaml:"properties"`
}

func runResolve(path, profileName, format string, w io.Writer) error {
	if profileName == "" {
		profileName = defaultProfile()
	}
	profile, err := fel4.ParseBuildProfile(profileName)
	if err != nil {
		return errors.NewUserError(err, "Use --profile debug or --profile release")
	}

	config, err := fel4.GetConfig(path, profile)
	if err != nil {
		return errors.NewManifestError(err)
	}

	switch format {
	case "json":
		return writeResolveJSON(w, config)
	case "yaml":
		return writeResolveYAML(w, config)
	case "text":
		return writeResolveText(w, config)
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", format),
			"Use --format text, json, or yaml")
	}
}

func writeResolveText(w io.Writer, config *fel4.ResolvedConfig) error {
	fmt.Fprintf(w, "target:            %s\n", config.Target)
	fmt.Fprintf(w, "platform:          %s\n", config.Platform)
	fmt.Fprintf(w, "build profile:     %s\n", config.BuildProfile)
	fmt.Fprintf(w, "artifact path:     %s\n", config.ArtifactPath)
	fmt.Fprintf(w, "target specs path: %s\n", config.TargetSpecsPath)
	fmt.Fprintln(w)
	for _, name := range config.PropertyNames() {
		value, _ := config.Property(name)
		fmt.Fprintf(w, "%s = %s\n", name, value)
	}
	return nil
}

func writeResolveJSON(w io.Writer, config *fel4.ResolvedConfig) error {
	data, err := json.MarshalIndent(resultFromConfig(config), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling resolved config")
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeResolveYAML(w io.Writer, config *fel4.ResolvedConfig) error {
	data, err := yaml.Marshal(resultFromConfig(config))
	if err != nil {
		return errors.Wrap(err, "marshaling resolved config")
	}
	_, err = w.Write(data)
	return err
}

func resultFromConfig(config *fel4.ResolvedConfig) resolveResult {
	return resolveResult{
		Target:          string(config.Target),
		Platform:        string(config.Platform),
		BuildProfile:    string(config.BuildProfile),
		ArtifactPath:    config.ArtifactPath,
		TargetSpecsPath: config.TargetSpecsPath,
		Properties:      config.Properties,
	}
}
