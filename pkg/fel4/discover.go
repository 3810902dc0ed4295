package fel4

import "os"

// Environment variables used by build scripts to locate the manifest and
// select a profile without any CLI plumbing.
const (
	// EnvManifestPath names the manifest file to resolve.
	EnvManifestPath = "FEL4_MANIFEST_PATH"

	// EnvBuildProfile selects the build profile, mirroring the PROFILE
	// variable native build drivers export.
	EnvBuildProfile = "PROFILE"
)

// DiscoverFromEnv reads the environment to find the manifest path and the
// build profile. It fails with a MissingEnvVarError when either variable
// is unset and an UnknownProfileError when the profile value is not
// debug or release.
func DiscoverFromEnv() (string, BuildProfile, error) {
	path, ok := os.LookupEnv(EnvManifestPath)
	if !ok || path == "" {
		return "", "", &MissingEnvVarError{Name: EnvManifestPath}
	}
	raw, ok := os.LookupEnv(EnvBuildProfile)
	if !ok {
		return "", "", &MissingEnvVarError{Name: EnvBuildProfile}
	}
	profile, err := ParseBuildProfile(raw)
	if err != nil {
		return "", "", err
	}
	return path, profile, nil
}
