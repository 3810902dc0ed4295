// Package cmake translates a resolved fel4 configuration into CMake
// cache-entry definitions for the seL4 kernel build. It only produces
// definitions; it never invokes CMake.
package cmake

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/fel4cfg/pkg/fel4"
)

// Generator is the build-system generator the seL4 kernel build expects.
const Generator = "Ninja"

// DefaultKernelPath is where the seL4 kernel sources live relative to
// the project root.
const DefaultKernelPath = "deps/seL4_kernel"

// armCrossCompilerPrefix supplies cross compilation toolchain guidance
// for arm; the seL4-CMake inferred option doesn't support hardware
// floating point.
const armCrossCompilerPrefix = "arm-linux-gnueabihf-"

// ErrTargetMismatch indicates the toolchain is building for a different
// target than the manifest declares.
var ErrTargetMismatch = errors.New("toolchain target does not match manifest target")

// TargetMismatchError reports the conflicting target identifiers.
type TargetMismatchError struct {
	ToolchainTarget string
	ManifestTarget  fel4.Target
}

func (e *TargetMismatchError) Error() string {
	return fmt.Sprintf("the toolchain is building for the %s target, but the fel4 manifest declares the target to be %s",
		e.ToolchainTarget, e.ManifestTarget)
}

func (e *TargetMismatchError) Unwrap() error { return ErrTargetMismatch }

// EntryType is the CMake cache-entry type attached to a definition.
type EntryType string

// Cache-entry types used by the generated definitions.
const (
	TypeBool   EntryType = "BOOL"
	TypeString EntryType = "STRING"
)

// Definition is a single CMake cache entry derived from the manifest.
type Definition struct {
	Name  string
	Type  EntryType
	Value string
}

// Arg renders the definition as a -D command-line argument.
// Boolean entries carry an explicit :BOOL type annotation, matching how
// seL4's build expects its feature toggles.
func (d Definition) Arg() string {
	if d.Type == TypeBool {
		return fmt.Sprintf("-D%s:BOOL=%s", d.Name, d.Value)
	}
	return fmt.Sprintf("-D%s=%s", d.Name, d.Value)
}

// Options adjusts how definitions are generated.
type Options struct {
	// KernelPath is the path to the seL4 kernel sources.
	// Defaults to DefaultKernelPath when empty.
	KernelPath string

	// ToolchainTarget, when non-empty, is checked against the manifest's
	// target; a mismatch is an error. Build scripts pass the TARGET value
	// their toolchain exports.
	ToolchainTarget string
}

// Definitions converts a resolved configuration into the full list of
// cache definitions for the seL4 kernel configure step: the fixed kernel
// entries first, then the manifest properties sorted by name.
func Definitions(cfg *fel4.ResolvedConfig, opts Options) ([]Definition, error) {
	if opts.ToolchainTarget != "" && opts.ToolchainTarget != string(cfg.Target) {
		return nil, &TargetMismatchError{
			ToolchainTarget: opts.ToolchainTarget,
			ManifestTarget:  cfg.Target,
		}
	}

	kernelPath := opts.KernelPath
	if kernelPath == "" {
		kernelPath = DefaultKernelPath
	}

	defs := []Definition{
		// CMAKE_TOOLCHAIN_FILE is resolved immediately by CMake
		{Name: "CMAKE_TOOLCHAIN_FILE", Type: TypeString, Value: filepath.Join(kernelPath, "gcc.cmake")},
		{Name: "KERNEL_PATH", Type: TypeString, Value: kernelPath},
	}
	if cfg.Target == fel4.TargetArmv7Sel4Fel4 {
		defs = append(defs, Definition{Name: "CROSS_COMPILER_PREFIX", Type: TypeString, Value: armCrossCompilerPrefix})
	}
	// seL4 supplies its own compiler flags; clear these so nothing
	// auto-populates them.
	defs = append(defs,
		Definition{Name: "CMAKE_C_FLAGS", Type: TypeString, Value: ""},
		Definition{Name: "CMAKE_CXX_FLAGS", Type: TypeString, Value: ""},
	)

	for _, name := range cfg.PropertyNames() {
		value, _ := cfg.Property(name)
		defs = append(defs, definitionFor(name, value))
	}

	return defs, nil
}

// Args renders the complete -D argument list for the configure step.
func Args(cfg *fel4.ResolvedConfig, opts Options) ([]string, error) {
	defs, err := Definitions(cfg, opts)
	if err != nil {
		return nil, err
	}
	args := make([]string, len(defs))
	for i, d := range defs {
		args[i] = d.Arg()
	}
	return args, nil
}

// WriteCacheScript writes the definitions as a CMake cache-init script,
// one forced cache set() per definition, suitable for cmake -C.
func WriteCacheScript(w io.Writer, defs []Definition) error {
	for _, d := range defs {
		entryType := d.Type
		if entryType == "" {
			entryType = TypeString
		}
		if _, err := fmt.Fprintf(w, "set(%s %q CACHE %s \"\" FORCE)\n", d.Name, d.Value, entryType); err != nil {
			return errors.Wrap(err, "writing cache script")
		}
	}
	return nil
}

// definitionFor maps a manifest property onto a typed cache entry.
// Booleans become ON/OFF feature toggles; integers and strings pass
// through as string cache entries.
func definitionFor(name string, value fel4.Value) Definition {
	switch value.Kind() {
	case fel4.KindBoolean:
		b, _ := value.Bool()
		v := "OFF"
		if b {
			v = "ON"
		}
		return Definition{Name: name, Type: TypeBool, Value: v}
	case fel4.KindInteger:
		i, _ := value.Int()
		return Definition{Name: name, Type: TypeString, Value: strconv.FormatInt(i, 10)}
	default:
		s, _ := value.Str()
		return Definition{Name: name, Type: TypeString, Value: s}
	}
}
