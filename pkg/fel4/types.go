package fel4

// Target identifies a build-target triple (CPU architecture plus
// toolchain variant) that the manifest format knows about.
type Target string

// The supported build targets.
const (
	TargetX8664Sel4Fel4 Target = "x86_64-sel4-fel4"
	TargetArmv7Sel4Fel4 Target = "armv7-sel4-fel4"
)

// Platform identifies a hardware or simulation platform compatible
// with one of the supported targets.
type Platform string

// The supported platforms.
const (
	PlatformPC99  Platform = "pc99"
	PlatformSabre Platform = "sabre"
)

// BuildProfile selects which profile override layer is merged
// during resolution.
type BuildProfile string

// The supported build profiles.
const (
	ProfileDebug   BuildProfile = "debug"
	ProfileRelease BuildProfile = "release"
)

// targetPlatforms is the fixed pairing of each target to the platforms
// it supports. Adding a new pairing is a one-line change here.
var targetPlatforms = map[Target][]Platform{
	TargetX8664Sel4Fel4: {PlatformPC99},
	TargetArmv7Sel4Fel4: {PlatformSabre},
}

// Targets returns the supported targets in declaration order.
func Targets() []Target {
	return []Target{TargetX8664Sel4Fel4, TargetArmv7Sel4Fel4}
}

// Platforms returns the supported platforms in declaration order.
func Platforms() []Platform {
	return []Platform{PlatformPC99, PlatformSabre}
}

// BuildProfiles returns the supported build profiles.
func BuildProfiles() []BuildProfile {
	return []BuildProfile{ProfileDebug, ProfileRelease}
}

// PlatformsFor returns the platforms valid for the given target.
// The returned slice is a copy; callers may modify it freely.
func PlatformsFor(t Target) []Platform {
	valid, ok := targetPlatforms[t]
	if !ok {
		return nil
	}
	out := make([]Platform, len(valid))
	copy(out, valid)
	return out
}

// KnownTarget reports whether t names a supported target.
func KnownTarget(t Target) bool {
	_, ok := targetPlatforms[t]
	return ok
}

// KnownPlatform reports whether p names a supported platform for any target.
func KnownPlatform(p Platform) bool {
	for _, platforms := range targetPlatforms {
		for _, candidate := range platforms {
			if candidate == p {
				return true
			}
		}
	}
	return false
}

// ValidPairing reports whether platform p is valid for target t.
func ValidPairing(t Target, p Platform) bool {
	for _, candidate := range targetPlatforms[t] {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseTarget interprets s as a supported target identifier.
func ParseTarget(s string) (Target, error) {
	t := Target(s)
	if !KnownTarget(t) {
		return "", &UnknownTargetError{Name: s}
	}
	return t, nil
}

// ParseBuildProfile interprets s as a build profile name.
func ParseBuildProfile(s string) (BuildProfile, error) {
	switch BuildProfile(s) {
	case ProfileDebug:
		return ProfileDebug, nil
	case ProfileRelease:
		return ProfileRelease, nil
	default:
		return "", &UnknownProfileError{Name: s}
	}
}

// targetNames returns the supported target identifiers as plain strings,
// for use in error messages.
func targetNames() []string {
	targets := Targets()
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = string(t)
	}
	return names
}

func platformNames(platforms []Platform) []string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return names
}
