package fel4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, tomlText string) *Manifest {
	t.Helper()
	manifest, err := ParseManifest([]byte(tomlText))
	require.NoError(t, err)
	return manifest
}

func TestValidateHeader(t *testing.T) {
	valid := Header{
		Target:          TargetX8664Sel4Fel4,
		Platform:        PlatformPC99,
		ArtifactPath:    "artifacts",
		TargetSpecsPath: "targets",
	}

	tests := []struct {
		name    string
		mutate  func(h *Header)
		wantErr error
	}{
		{
			name:   "valid header",
			mutate: func(*Header) {},
		},
		{
			name:    "unknown target",
			mutate:  func(h *Header) { h.Target = "riscv64-sel4-fel4" },
			wantErr: ErrUnknownTarget,
		},
		{
			name:    "platform not paired with target",
			mutate:  func(h *Header) { h.Platform = PlatformSabre },
			wantErr: ErrInvalidPlatformForTarget,
		},
		{
			name:    "platform unknown entirely",
			mutate:  func(h *Header) { h.Platform = "nehalem2" },
			wantErr: ErrInvalidPlatformForTarget,
		},
		{
			name:    "empty artifact path",
			mutate:  func(h *Header) { h.ArtifactPath = "" },
			wantErr: ErrEmptyPath,
		},
		{
			name:    "empty target specs path",
			mutate:  func(h *Header) { h.TargetSpecsPath = "" },
			wantErr: ErrEmptyPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := valid
			tt.mutate(&h)
			err := ValidateHeader(h)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateHeader_ChecksTargetBeforePlatform(t *testing.T) {
	err := ValidateHeader(Header{Target: "bogus", Platform: "bogus"})
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestResolve_HappyPath(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
KernelArch = "x86"
KernelRetypeFanOutLimit = 256

[x86_64-sel4-fel4.pc99]
KernelX86MicroArch = "nehalem"

[x86_64-sel4-fel4.debug]
KernelDebugBuild = true

[x86_64-sel4-fel4.release]
KernelDebugBuild = false
`)

	config, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)

	assert.Equal(t, TargetX8664Sel4Fel4, config.Target)
	assert.Equal(t, PlatformPC99, config.Platform)
	assert.Equal(t, ProfileDebug, config.BuildProfile)
	assert.Equal(t, "artifacts", config.ArtifactPath)
	assert.Equal(t, "targets", config.TargetSpecsPath)

	assert.Equal(t, map[string]Value{
		"KernelArch":              StringValue("x86"),
		"KernelRetypeFanOutLimit": IntValue(256),
		"KernelX86MicroArch":      StringValue("nehalem"),
		"KernelDebugBuild":        BoolValue(true),
	}, config.Properties)

	assert.Equal(t, []string{
		"KernelArch",
		"KernelDebugBuild",
		"KernelRetypeFanOutLimit",
		"KernelX86MicroArch",
	}, config.PropertyNames())
}

func TestResolve_PlatformOverridesBase(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
KernelPrinting = true

[x86_64-sel4-fel4.pc99]
KernelPrinting = false
`)

	config, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)
	assert.Equal(t, BoolValue(false), config.Properties["KernelPrinting"])
}

func TestResolve_ProfileOverridesBaseAndPlatform(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
Mode = "a"

[x86_64-sel4-fel4.pc99]

[x86_64-sel4-fel4.debug]
Mode = "b"
`)

	debug, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)
	assert.Equal(t, StringValue("b"), debug.Properties["Mode"])

	release, err := Resolve(manifest, ProfileRelease)
	require.NoError(t, err)
	assert.Equal(t, StringValue("a"), release.Properties["Mode"])
}

func TestResolve_AdditiveLayers(t *testing.T) {
	// Properties present only in a later layer are included as-is.
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]

[x86_64-sel4-fel4.pc99]
OnlyOnPC99 = 1

[x86_64-sel4-fel4.debug]
OnlyInDebug = "yes"
`)

	config, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)
	assert.Equal(t, IntValue(1), config.Properties["OnlyOnPC99"])
	assert.Equal(t, StringValue("yes"), config.Properties["OnlyInDebug"])
}

func TestResolve_EmptySubtablesAreValid(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
KernelArch = "x86"

[x86_64-sel4-fel4.pc99]
`)

	config, err := Resolve(manifest, ProfileRelease)
	require.NoError(t, err)
	assert.Equal(t, map[string]Value{"KernelArch": StringValue("x86")}, config.Properties)
}

func TestResolve_CrossKindRecurrenceRejected(t *testing.T) {
	tests := []struct {
		name       string
		toml       string
		wantFirst  Kind
		wantSecond Kind
	}{
		{
			name: "base boolean vs profile string",
			toml: validHeader + `
[x86_64-sel4-fel4]
K = true
[x86_64-sel4-fel4.pc99]
[x86_64-sel4-fel4.debug]
K = "x"
`,
			wantFirst:  KindBoolean,
			wantSecond: KindString,
		},
		{
			name: "base integer vs platform boolean",
			toml: validHeader + `
[x86_64-sel4-fel4]
K = 3
[x86_64-sel4-fel4.pc99]
K = false
`,
			wantFirst:  KindInteger,
			wantSecond: KindBoolean,
		},
		{
			name: "platform string vs profile integer",
			toml: validHeader + `
[x86_64-sel4-fel4]
[x86_64-sel4-fel4.pc99]
K = "v"
[x86_64-sel4-fel4.debug]
K = 9
`,
			wantFirst:  KindString,
			wantSecond: KindInteger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifest := mustParse(t, tt.toml)
			_, err := Resolve(manifest, ProfileDebug)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConflictingPropertyType)

			var conflictErr *ConflictError
			require.ErrorAs(t, err, &conflictErr)
			assert.Equal(t, "K", conflictErr.Name)
			assert.Equal(t, tt.wantFirst, conflictErr.First)
			assert.Equal(t, tt.wantSecond, conflictErr.Second)
		})
	}
}

func TestResolve_SameKindRecurrenceReplaces(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
K = true
[x86_64-sel4-fel4.pc99]
K = false
[x86_64-sel4-fel4.debug]
K = true
`)

	config, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)
	assert.Equal(t, BoolValue(true), config.Properties["K"])
}

func TestResolve_HeaderFailuresPropagate(t *testing.T) {
	manifest := mustParse(t, `[fel4]
target = "x86_64-sel4-fel4"
platform = "nehalem2"
artifact-path = "artifacts"
target-specs-path = "targets"

[x86_64-sel4-fel4]
[x86_64-sel4-fel4.pc99]
`)

	_, err := Resolve(manifest, ProfileDebug)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPlatformForTarget)

	var platformErr *InvalidPlatformError
	require.ErrorAs(t, err, &platformErr)
	assert.Equal(t, "nehalem2", platformErr.Platform)
}

func TestResolve_MissingTargetTable(t *testing.T) {
	// Header names a valid target whose table the manifest omits.
	manifest := mustParse(t, validHeader)

	_, err := Resolve(manifest, ProfileDebug)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTargetTable)

	var tableErr *MissingTargetTableError
	require.ErrorAs(t, err, &tableErr)
	assert.Equal(t, TargetX8664Sel4Fel4, tableErr.Target)
}

func TestResolve_MissingPlatformSubtable(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
KernelArch = "x86"
`)

	_, err := Resolve(manifest, ProfileDebug)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPlatformSubtable)

	var subtableErr *MissingPlatformSubtableError
	require.ErrorAs(t, err, &subtableErr)
	assert.Equal(t, PlatformPC99, subtableErr.Platform)
}

func TestResolve_UnknownProfileRejected(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
[x86_64-sel4-fel4.pc99]
`)

	_, err := Resolve(manifest, BuildProfile("profiling"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestResolve_Idempotent(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
KernelArch = "x86"
A = 1
[x86_64-sel4-fel4.pc99]
B = true
[x86_64-sel4-fel4.debug]
C = "c"
`)

	first, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)
	second, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_OutputIndependentOfManifest(t *testing.T) {
	manifest := mustParse(t, validHeader+`
[x86_64-sel4-fel4]
KernelArch = "x86"
[x86_64-sel4-fel4.pc99]
`)

	config, err := Resolve(manifest, ProfileDebug)
	require.NoError(t, err)

	// Mutating the manifest afterward must not leak into the result.
	manifest.Targets[TargetX8664Sel4Fel4].BaseProperties["KernelArch"] = StringValue("scribbled")
	assert.Equal(t, StringValue("x86"), config.Properties["KernelArch"])
}
