package fel4

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Header is the typed form of the [fel4] header table. Target and
// Platform are carried as declared; semantic checks against the supported
// pairings happen in ValidateHeader, not here.
type Header struct {
	// Target is the build-target triple the manifest selects.
	Target Target

	// Platform is the hardware/simulation platform the manifest selects.
	Platform Platform

	// ArtifactPath is the relative path build artifacts are written to.
	ArtifactPath string

	// TargetSpecsPath is the relative path holding the target
	// specification files.
	TargetSpecsPath string
}

// TargetTable holds the property layers declared for a single build target:
// base properties, per-platform overrides, and per-profile overrides.
type TargetTable struct {
	// Identity names the target this table belongs to.
	Identity Target

	// BaseProperties are the target's direct key/value properties,
	// excluding the reserved platform and profile subtables.
	BaseProperties map[string]Value

	// PlatformProperties maps each declared platform subtable to its
	// properties.
	PlatformProperties map[Platform]map[string]Value

	// DebugProperties are the properties of the [target.debug] subtable.
	DebugProperties map[string]Value

	// ReleaseProperties are the properties of the [target.release] subtable.
	ReleaseProperties map[string]Value
}

// ProfileProperties returns the override layer for the given profile.
func (t *TargetTable) ProfileProperties(profile BuildProfile) map[string]Value {
	if profile == ProfileRelease {
		return t.ReleaseProperties
	}
	return t.DebugProperties
}

// Manifest is the typed model of a full fel4 manifest document.
// It is constructed once from a parsed TOML tree and read-only afterward.
type Manifest struct {
	Header  Header
	Targets map[Target]*TargetTable
}

// reservedSubtableNames returns the set of key names reserved for platform
// and profile subtables inside a target table. A scalar property must not
// use any of these names.
func reservedSubtableNames() map[string]bool {
	reserved := map[string]bool{
		string(ProfileDebug):   true,
		string(ProfileRelease): true,
	}
	for _, p := range Platforms() {
		reserved[string(p)] = true
	}
	return reserved
}

// FromDocument converts a generic parsed TOML tree into a typed Manifest.
// The tree is the result of unmarshaling manifest TOML into a
// map[string]any; this is the only place "unknown shape" handling lives.
// Top-level tables that do not name a supported target are ignored.
func FromDocument(doc map[string]any) (*Manifest, error) {
	header, err := headerFromDocument(doc)
	if err != nil {
		return nil, err
	}

	targets := make(map[Target]*TargetTable)
	for _, target := range Targets() {
		raw, ok := doc[string(target)]
		if !ok {
			continue
		}
		table, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		parsed, err := targetTableFromDocument(target, table)
		if err != nil {
			return nil, err
		}
		targets[target] = parsed
	}

	return &Manifest{Header: header, Targets: targets}, nil
}

// headerFromDocument extracts and structurally checks the [fel4] table.
func headerFromDocument(doc map[string]any) (Header, error) {
	raw, ok := doc["fel4"]
	if !ok {
		return Header{}, ErrMissingHeaderTable
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return Header{}, ErrMissingHeaderTable
	}

	// The header holds only scalar properties; any substructure is a
	// manifest shape violation.
	for name, value := range table {
		switch value.(type) {
		case map[string]any, []any:
			return Header{}, &NestedTableError{Path: "fel4." + name}
		}
	}

	target, err := headerString(table, "target")
	if err != nil {
		return Header{}, err
	}
	platform, err := headerString(table, "platform")
	if err != nil {
		return Header{}, err
	}
	artifactPath, err := headerString(table, "artifact-path")
	if err != nil {
		return Header{}, err
	}
	specsPath, err := headerString(table, "target-specs-path")
	if err != nil {
		return Header{}, err
	}

	return Header{
		Target:          Target(target),
		Platform:        Platform(platform),
		ArtifactPath:    artifactPath,
		TargetSpecsPath: specsPath,
	}, nil
}

// headerString extracts a required, non-empty string property from the
// header table.
func headerString(table map[string]any, name string) (string, error) {
	raw, ok := table[name]
	if !ok {
		return "", &MissingPropertyError{Table: "fel4", Property: name}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &NonStringPropertyError{Property: name}
	}
	if s == "" {
		return "", &MissingPropertyError{Table: "fel4", Property: name}
	}
	return s, nil
}

// targetTableFromDocument classifies a target table's entries into the
// reserved platform/profile subtables versus ordinary base properties.
func targetTableFromDocument(target Target, table map[string]any) (*TargetTable, error) {
	reserved := reservedSubtableNames()
	out := &TargetTable{
		Identity:           target,
		BaseProperties:     make(map[string]Value),
		PlatformProperties: make(map[Platform]map[string]Value),
	}

	for name, value := range table {
		path := fmt.Sprintf("%s.%s", target, name)
		switch v := value.(type) {
		case map[string]any:
			if !reserved[name] {
				return nil, &NestedTableError{Path: path}
			}
			props, err := flatProperties(path, v)
			if err != nil {
				return nil, err
			}
			switch name {
			case string(ProfileDebug):
				out.DebugProperties = props
			case string(ProfileRelease):
				out.ReleaseProperties = props
			default:
				out.PlatformProperties[Platform(name)] = props
			}
		case []any:
			return nil, &UnsupportedValueError{Path: path, TypeName: "array"}
		default:
			if reserved[name] {
				// A scalar named like a subtable is ambiguous; reject it
				// outright rather than silently shadowing the subtable.
				return nil, &ReservedNameError{Table: string(target), Name: name}
			}
			scalar, err := scalarValue(path, value)
			if err != nil {
				return nil, err
			}
			out.BaseProperties[name] = scalar
		}
	}

	return out, nil
}

// flatProperties converts a platform or profile subtable into a flat
// property map. Subtables must not nest further.
func flatProperties(parent string, table map[string]any) (map[string]Value, error) {
	props := make(map[string]Value, len(table))
	for name, value := range table {
		path := fmt.Sprintf("%s.%s", parent, name)
		switch value.(type) {
		case map[string]any:
			return nil, &NestedTableError{Path: path}
		case []any:
			return nil, &UnsupportedValueError{Path: path, TypeName: "array"}
		}
		scalar, err := scalarValue(path, value)
		if err != nil {
			return nil, err
		}
		props[name] = scalar
	}
	return props, nil
}

// scalarValue converts a decoded TOML scalar into a Value, rejecting the
// kinds the manifest format does not support.
func scalarValue(path string, raw any) (Value, error) {
	switch v := raw.(type) {
	case bool:
		return BoolValue(v), nil
	case int64:
		return IntValue(v), nil
	case string:
		return StringValue(v), nil
	case float64:
		return Value{}, &UnsupportedValueError{Path: path, TypeName: "float"}
	case time.Time, toml.LocalDate, toml.LocalTime, toml.LocalDateTime:
		return Value{}, &UnsupportedValueError{Path: path, TypeName: "datetime"}
	default:
		return Value{}, &UnsupportedValueError{Path: path, TypeName: fmt.Sprintf("%T", raw)}
	}
}
