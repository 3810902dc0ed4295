package fel4

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for manifest parsing, validation, and resolution.
// Structured error types below wrap these so callers can match broad
// categories with errors.Is while still getting full context from the
// message.
var (
	// ErrNotTOML indicates the manifest bytes are not parseable as TOML.
	ErrNotTOML = errors.New("manifest is not parseable as TOML")

	// ErrMissingHeaderTable indicates the manifest has no [fel4] header table.
	ErrMissingHeaderTable = errors.New("manifest is missing the [fel4] table")

	// ErrMissingRequiredProperty indicates a required header property is
	// absent or empty.
	ErrMissingRequiredProperty = errors.New("required property is missing")

	// ErrNonStringProperty indicates a header property that must be a
	// string carries some other type.
	ErrNonStringProperty = errors.New("property must be a string")

	// ErrUnknownTarget indicates a target identifier outside the supported set.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrInvalidPlatformForTarget indicates a platform that exists but is
	// not paired with the selected target.
	ErrInvalidPlatformForTarget = errors.New("platform is not valid for target")

	// ErrEmptyPath indicates an empty artifact or target-specs path.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrMissingTargetTable indicates the manifest has no table for the
	// target the header selects.
	ErrMissingTargetTable = errors.New("manifest has no table for the selected target")

	// ErrMissingPlatformSubtable indicates the selected target table has no
	// subtable for the platform the header selects.
	ErrMissingPlatformSubtable = errors.New("target table has no subtable for the selected platform")

	// ErrConflictingPropertyType indicates a property name recurs across
	// layers with differing value kinds.
	ErrConflictingPropertyType = errors.New("conflicting property type across layers")

	// ErrUnexpectedNestedTable indicates a nested table somewhere the fixed
	// manifest shape does not allow one.
	ErrUnexpectedNestedTable = errors.New("unexpected nested table")

	// ErrUnsupportedValueType indicates a property value of a kind the
	// manifest format does not support (float, datetime, array).
	ErrUnsupportedValueType = errors.New("unsupported value type")

	// ErrReservedPropertyName indicates a scalar property using a name
	// reserved for a platform or profile subtable.
	ErrReservedPropertyName = errors.New("property name is reserved for a subtable")

	// ErrUnknownProfile indicates a build profile name outside debug/release.
	ErrUnknownProfile = errors.New("unknown build profile")

	// ErrMissingEnvVar indicates a required environment variable is unset.
	ErrMissingEnvVar = errors.New("required environment variable is absent")
)

// UnknownTargetError reports a target identifier outside the supported set.
type UnknownTargetError struct {
	Name string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target %q (supported: %s)",
		e.Name, strings.Join(targetNames(), ", "))
}

func (e *UnknownTargetError) Unwrap() error { return ErrUnknownTarget }

// InvalidPlatformError reports a platform that is not paired with the
// selected target.
type InvalidPlatformError struct {
	Target   Target
	Platform string
}

func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("platform %q is not valid for target %q (valid: %s)",
		e.Platform, e.Target, strings.Join(platformNames(PlatformsFor(e.Target)), ", "))
}

func (e *InvalidPlatformError) Unwrap() error { return ErrInvalidPlatformForTarget }

// EmptyPathError reports an empty path-valued header property.
type EmptyPathError struct {
	Property string
}

func (e *EmptyPathError) Error() string {
	return fmt.Sprintf("the [fel4] %s property must be a non-empty path", e.Property)
}

func (e *EmptyPathError) Unwrap() error { return ErrEmptyPath }

// MissingTargetTableError reports a manifest without a table for the
// target its header selects.
type MissingTargetTableError struct {
	Target Target
}

func (e *MissingTargetTableError) Error() string {
	return fmt.Sprintf("manifest has no [%s] table for the selected target", e.Target)
}

func (e *MissingTargetTableError) Unwrap() error { return ErrMissingTargetTable }

// MissingPlatformSubtableError reports a target table without a subtable
// for the platform the header selects.
type MissingPlatformSubtableError struct {
	Target   Target
	Platform Platform
}

func (e *MissingPlatformSubtableError) Error() string {
	return fmt.Sprintf("manifest has no [%s.%s] subtable for the selected platform",
		e.Target, e.Platform)
}

func (e *MissingPlatformSubtableError) Unwrap() error { return ErrMissingPlatformSubtable }

// ConflictError reports a property name that recurs across merge layers
// with differing value kinds.
type ConflictError struct {
	Name   string
	First  Kind
	Second Kind
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("property %q is declared as %s in one layer and %s in a later layer",
		e.Name, e.First, e.Second)
}

func (e *ConflictError) Unwrap() error { return ErrConflictingPropertyType }

// NestedTableError reports a nested table or array-of-tables at a
// location the fixed manifest shape does not allow.
type NestedTableError struct {
	// Path is the dotted key path of the offending entry,
	// e.g. "x86_64-sel4-fel4.pc99.custom".
	Path string
}

func (e *NestedTableError) Error() string {
	return fmt.Sprintf("unexpected nested table at %s", e.Path)
}

func (e *NestedTableError) Unwrap() error { return ErrUnexpectedNestedTable }

// UnsupportedValueError reports a property whose value kind the manifest
// format does not support.
type UnsupportedValueError struct {
	// Path is the dotted key path of the offending property.
	Path string

	// TypeName describes the unsupported kind, e.g. "float" or "array".
	TypeName string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("property %s has unsupported %s value (only boolean, integer, and string are allowed)",
		e.Path, e.TypeName)
}

func (e *UnsupportedValueError) Unwrap() error { return ErrUnsupportedValueType }

// ReservedNameError reports a scalar property whose name collides with a
// reserved platform or profile subtable name.
type ReservedNameError struct {
	Table string
	Name  string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("property %s.%s uses a name reserved for a subtable", e.Table, e.Name)
}

func (e *ReservedNameError) Unwrap() error { return ErrReservedPropertyName }

// MissingPropertyError reports a required header property that is absent
// or empty.
type MissingPropertyError struct {
	Table    string
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("the [%s] table requires the %s property, but it is absent or empty",
		e.Table, e.Property)
}

func (e *MissingPropertyError) Unwrap() error { return ErrMissingRequiredProperty }

// NonStringPropertyError reports a header property that must be a string
// but carries some other type.
type NonStringPropertyError struct {
	Property string
}

func (e *NonStringPropertyError) Error() string {
	return fmt.Sprintf("the %s property should be specified as a string, but is not", e.Property)
}

func (e *NonStringPropertyError) Unwrap() error { return ErrNonStringProperty }

// UnknownProfileError reports a build profile name outside debug/release.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown build profile %q (supported: debug, release)", e.Name)
}

func (e *UnknownProfileError) Unwrap() error { return ErrUnknownProfile }

// MissingEnvVarError reports an environment variable required for
// manifest discovery that is unset.
type MissingEnvVarError struct {
	Name string
}

func (e *MissingEnvVarError) Error() string {
	return fmt.Sprintf("required environment variable %s was absent", e.Name)
}

func (e *MissingEnvVarError) Unwrap() error { return ErrMissingEnvVar }

// ParseError wraps an error raised while reading or parsing a manifest
// file with the file's path for context.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing fel4 manifest: %v", e.Err)
	}
	return fmt.Sprintf("parsing fel4 manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
