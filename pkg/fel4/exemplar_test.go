package fel4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExemplarManifest_ResolvesForEveryPairingAndProfile(t *testing.T) {
	for _, target := range Targets() {
		for _, platform := range PlatformsFor(target) {
			manifest, err := ParseManifest([]byte(ExemplarManifestFor(target, platform)))
			require.NoError(t, err)

			for _, profile := range BuildProfiles() {
				config, err := Resolve(manifest, profile)
				require.NoError(t, err, "%s/%s/%s", target, platform, profile)
				assert.Equal(t, target, config.Target)
				assert.Equal(t, platform, config.Platform)
				assert.NotEmpty(t, config.Properties)
			}
		}
	}
}

func TestExemplarManifest_DefaultsToX86PC99(t *testing.T) {
	manifest, err := ParseManifest([]byte(ExemplarManifest()))
	require.NoError(t, err)
	assert.Equal(t, TargetX8664Sel4Fel4, manifest.Header.Target)
	assert.Equal(t, PlatformPC99, manifest.Header.Platform)
}

func TestExemplarManifest_ProfileLayersFlipDebugSettings(t *testing.T) {
	manifest, err := ParseManifest([]byte(ExemplarManifest()))
	require.NoError(t, err)

	debug, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)
	assert.Equal(t, BoolValue(true), debug.Properties["KernelDebugBuild"])
	assert.Equal(t, BoolValue(true), debug.Properties["KernelPrinting"])

	release, err := Resolve(manifest, ProfileRelease)
	require.NoError(t, err)
	assert.Equal(t, BoolValue(false), release.Properties["KernelDebugBuild"])
	assert.Equal(t, BoolValue(false), release.Properties["KernelPrinting"])
}
