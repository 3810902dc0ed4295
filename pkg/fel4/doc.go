// Package fel4 models and resolves feL4 build manifests.
//
// A fel4.toml manifest layers build properties for seL4-based projects:
// a [fel4] header selects a target and platform, and each target table
// carries base properties plus platform, debug, and release override
// subtables. This package converts a parsed TOML tree into a typed
// [Manifest], validates the header against the supported target/platform
// pairings, and merges the base, platform, and profile layers into one
// flat, conflict-checked [ResolvedConfig] for downstream build tooling.
//
// # Resolution
//
//	manifest, err := fel4.LoadManifest("fel4.toml")
//	if err != nil { ... }
//	cfg, err := fel4.Resolve(manifest, fel4.ProfileDebug)
//	if err != nil { ... }
//	for _, name := range cfg.PropertyNames() {
//	    v, _ := cfg.Property(name)
//	    fmt.Printf("%s = %s\n", name, v)
//	}
//
// Layers apply in precedence order base, then platform, then profile. A
// later layer may replace an earlier value only when the kinds match;
// recurrence with a different kind is an error, never a silent retype.
//
// Only boolean, integer, and string properties are supported. Floats,
// datetimes, arrays, and nesting beyond the fixed
// target -> {platform|debug|release} shape are rejected.
//
// All functions are pure and safe for concurrent use on shared, read-only
// inputs; every returned value is newly allocated.
package fel4
