package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/fel4cfg/internal/errors"
	"github.com/thoreinstein/fel4cfg/pkg/cmake"
	"github.com/thoreinstein/fel4cfg/pkg/fel4"
)

var (
	cmakeProfile      string
	cmakeKernelPath   string
	cmakeExpectTarget string
	cmakeScript       bool
)

func init() {
	cmakeArgsCmd.Flags().StringVar(&cmakeProfile, "profile", "",
		"build profile: debug, release (default: configured default_profile)")
	cmakeArgsCmd.Flags().StringVar(&cmakeKernelPath, "kernel-path", cmake.DefaultKernelPath,
		"path to the seL4 kernel sources")
	cmakeArgsCmd.Flags().StringVar(&cmakeExpectTarget, "expect-target", "",
		"fail unless the manifest declares this target (e.g. the toolchain's $TARGET)")
	cmakeArgsCmd.Flags().BoolVar(&cmakeScript, "script", false,
		"emit a cmake -C cache-init script instead of -D arguments")
	rootCmd.AddCommand(cmakeArgsCmd)
}

var cmakeArgsCmd = &cobra.Command{
	Use:   "cmake-args",
	Short: "Emit CMake cache definitions for the seL4 kernel build",
	Long: `Resolve the manifest and print the CMake cache-entry definitions the
seL4 kernel configure step needs: the fixed toolchain/kernel entries
followed by one typed -D definition per resolved property.

With --script the same definitions are emitted as a cache-init script
usable via cmake -C.`,
	Example: `  # Print the -D arguments for a debug build
  fel4cfg cmake-args --profile debug

  # Guard against toolchain/manifest target skew in a build script
  fel4cfg cmake-args --expect-target "$TARGET"

  # Write a cache-init script
  fel4cfg cmake-args --script > kernel-cache.cmake`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCmakeArgs(manifestPath(), cmakeProfile, os.Stdout)
	},
}

func runCmakeArgs(path, profileName string, w io.Writer) error {
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

	opts := cmake.Options{
		KernelPath:      cmakeKernelPath,
		ToolchainTarget: cmakeExpectTarget,
	}
	defs, err := cmake.Definitions(config, opts)
	if err != nil {
		return errors.NewManifestError(err)
	}

	if cmakeScript {
		return cmake.WriteCacheScript(w, defs)
	}
	for _, d := range defs {
		fmt.Fprintln(w, d.Arg())
	}
	return nil
}
