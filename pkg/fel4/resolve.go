package fel4

import "sort"

// ValidateHeader checks the header against the supported target/platform
// pairings and the non-empty path requirements. It performs no filesystem
// checks; path existence is the caller's concern.
func ValidateHeader(h Header) error {
	if !KnownTarget(h.Target) {
		return &UnknownTargetError{Name: string(h.Target)}
	}
	if !ValidPairing(h.Target, h.Platform) {
		return &InvalidPlatformError{Target: h.Target, Platform: string(h.Platform)}
	}
	if h.ArtifactPath == "" {
		return &EmptyPathError{Property: "artifact-path"}
	}
	if h.TargetSpecsPath == "" {
		return &EmptyPathError{Property: "target-specs-path"}
	}
	return nil
}

// ResolvedConfig is the flat, conflict-checked property set for one
// (target, platform, profile) selection. It holds no references back to
// the Manifest it was resolved from and is safe to copy and share.
type ResolvedConfig struct {
	Target          Target
	Platform        Platform
	BuildProfile    BuildProfile
	ArtifactPath    string
	TargetSpecsPath string

	// Properties is the merged, key-unique property set.
	Properties map[string]Value
}

// PropertyNames returns the resolved property names sorted
// lexicographically, so downstream output is reproducible.
func (c *ResolvedConfig) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Property returns the resolved value for name, if present.
func (c *ResolvedConfig) Property(name string) (Value, bool) {
	v, ok := c.Properties[name]
	return v, ok
}

// Resolve merges the base, platform, and profile property layers of the
// manifest's selected target into one ResolvedConfig.
//
// Layers apply in precedence order base, then platform, then profile. A
// later layer replaces an earlier value for the same key only when both
// values share the same kind; a cross-kind recurrence fails with a
// ConflictError. Resolution is a pure function: it either fully succeeds
// or fails without producing a partial result, and repeated calls with
// the same inputs yield equal results.
func Resolve(m *Manifest, profile BuildProfile) (*ResolvedConfig, error) {
	if _, err := ParseBuildProfile(string(profile)); err != nil {
		return nil, err
	}
	if err := ValidateHeader(m.Header); err != nil {
		return nil, err
	}

	// The header may name a syntactically valid target whose table the
	// manifest simply omits.
	target, ok := m.Targets[m.Header.Target]
	if !ok {
		return nil, &MissingTargetTableError{Target: m.Header.Target}
	}

	platformProps, ok := target.PlatformProperties[m.Header.Platform]
	if !ok {
		return nil, &MissingPlatformSubtableError{
			Target:   m.Header.Target,
			Platform: m.Header.Platform,
		}
	}

	properties := make(map[string]Value, len(target.BaseProperties))
	for _, layer := range []map[string]Value{
		target.BaseProperties,
		platformProps,
		target.ProfileProperties(profile),
	} {
		if err := mergeLayer(properties, layer); err != nil {
			return nil, err
		}
	}

	return &ResolvedConfig{
		Target:          m.Header.Target,
		Platform:        m.Header.Platform,
		BuildProfile:    profile,
		ArtifactPath:    m.Header.ArtifactPath,
		TargetSpecsPath: m.Header.TargetSpecsPath,
		Properties:      properties,
	}, nil
}

// mergeLayer folds one layer into dst. Keys are visited in sorted order
// so the first reported conflict is deterministic for a given manifest.
func mergeLayer(dst, layer map[string]Value) error {
	names := make([]string, 0, len(layer))
	for name := range layer {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := layer[name]
		if existing, ok := dst[name]; ok && existing.Kind() != value.Kind() {
			return &ConflictError{
				Name:   name,
				First:  existing.Kind(),
				Second: value.Kind(),
			}
		}
		dst[name] = value
	}
	return nil
}
