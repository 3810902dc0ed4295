package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/fel4cfg/internal/backup"
	"github.com/thoreinstein/fel4cfg/internal/errors"
	"github.com/thoreinstein/fel4cfg/internal/logging"
	"github.com/thoreinstein/fel4cfg/pkg/fel4"
	"github.com/thoreinstein/fel4cfg/pkg/fileutil"
)

var (
	initTarget   string
	initPlatform string
	initOutput   string
	initForce    bool
)

func init() {
	initCmd.Flags().StringVar(&initTarget, "target", "",
		"build target for the manifest header")
	initCmd.Flags().StringVar(&initPlatform, "platform", "",
		"platform for the manifest header (default: the target's first platform)")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "fel4.toml",
		"where to write the manifest")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite an existing manifest")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a fel4.toml manifest",
	Long: `Write a starter fel4 manifest with sensible properties for every
supported target. When no --target is given and stdin is a terminal, the
target/platform pair is chosen interactively.`,
	Example: `  # Interactive target selection
  fel4cfg init

  # Non-interactive, for scripts
  fel4cfg init --target x86_64-sel4-fel4

  # Overwrite an existing manifest elsewhere
  fel4cfg init --target armv7-sel4-fel4 -o boards/sabre/fel4.toml --force`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runInit()
	},
}

// pairing is one selectable target/platform combination.
type pairing struct {
	target   fel4.Target
	platform fel4.Platform
}

func runInit() error {
	pair, err := chooseInitPairing()
	if err != nil {
		return err
	}

	if _, err := os.Stat(initOutput); err == nil {
		if !initForce {
			return errors.NewUserError(
				errors.Newf("%s already exists", initOutput),
				"Pass --force to overwrite it")
		}
		// Snapshot the old manifest before clobbering it.
		dest, err := backup.NewManager().Backup(initOutput)
		if err != nil {
			return errors.NewSystemError(err, "Check permissions on the backup directory")
		}
		slog.Info("backed up existing manifest", "path", initOutput, "backup", dest)
	}

	manifest := fel4.ExemplarManifestFor(pair.target, pair.platform)
	if err := fileutil.AtomicWriteFile(initOutput, []byte(manifest), 0o644); err != nil {
		return errors.NewSystemError(err, "Check permissions on the output directory")
	}

	fmt.Printf("Wrote %s (target %s, platform %s)\n", initOutput, pair.target, pair.platform)
	return nil
}

// chooseInitPairing picks the header's target/platform pair from flags,
// falling back to an interactive fuzzy selection on a terminal.
func chooseInitPairing() (pairing, error) {
	if initTarget != "" {
		target, err := fel4.ParseTarget(initTarget)
		if err != nil {
			return pairing{}, errors.NewUserError(err, "Run 'fel4cfg init --help' for supported targets")
		}
		platform := fel4.PlatformsFor(target)[0]
		if initPlatform != "" {
			platform = fel4.Platform(initPlatform)
			if !fel4.ValidPairing(target, platform) {
				return pairing{}, errors.NewUserError(
					&fel4.InvalidPlatformError{Target: target, Platform: initPlatform}, "")
			}
		}
		return pairing{target: target, platform: platform}, nil
	}

	if !logging.IsTTY(os.Stdin) {
		// Scripts get the canonical default rather than a prompt.
		return pairing{target: fel4.TargetX8664Sel4Fel4, platform: fel4.PlatformPC99}, nil
	}

	var pairs []pairing
	for _, target := range fel4.Targets() {
		for _, platform := range fel4.PlatformsFor(target) {
			pairs = append(pairs, pairing{target: target, platform: platform})
		}
	}

	idx, err := fuzzyfinder.Find(
		pairs,
		func(i int) string {
			return fmt.Sprintf("%s / %s", pairs[i].target, pairs[i].platform)
		},
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return pairing{}, errors.NewUserError(errors.New("selection cancelled"), "")
		}
		return pairing{}, errors.Wrap(err, "interactive selection failed")
	}

	return pairs[idx], nil
}
