package fel4

import "fmt"

// exemplarTemplate is the canonical manifest scaffold. The header is
// filled in per target/platform; both target tables ship so switching
// targets later is an edit to the header alone.
const exemplarTemplate = `[fel4]
target = %q
platform = %q
artifact-path = "artifacts"
target-specs-path = "targets"

[x86_64-sel4-fel4]
BuildWithCommonSimulationSettings = true
KernelArch = "x86"
KernelX86Sel4Arch = "x86_64"
KernelRetypeFanOutLimit = 256

[x86_64-sel4-fel4.pc99]
KernelX86MicroArch = "nehalem"
LibPlatSupportX86ConsoleDevice = "com1"

[x86_64-sel4-fel4.debug]
KernelDebugBuild = true
KernelPrinting = true

[x86_64-sel4-fel4.release]
KernelDebugBuild = false
KernelPrinting = false

[armv7-sel4-fel4]
KernelArch = "arm"
KernelArmSel4Arch = "aarch32"

[armv7-sel4-fel4.sabre]
KernelARMPlatform = "imx6"

[armv7-sel4-fel4.debug]
KernelDebugBuild = true
KernelPrinting = true

[armv7-sel4-fel4.release]
KernelDebugBuild = false
KernelPrinting = false
`

// ExemplarManifest returns the canonical example manifest, selecting the
// x86_64 target on the pc99 platform.
func ExemplarManifest() string {
	return ExemplarManifestFor(TargetX8664Sel4Fel4, PlatformPC99)
}

// ExemplarManifestFor returns the canonical example manifest with the
// header selecting the given target and platform. The pairing is not
// validated here; ValidateHeader will reject bad combinations when the
// result is parsed.
func ExemplarManifestFor(target Target, platform Platform) string {
	return fmt.Sprintf(exemplarTemplate, string(target), string(platform))
}
