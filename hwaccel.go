// hwaccel.go - Hardware acceleration hooks.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const implReference = "Reference"

var (
	isHardwareAccelerated = false
	hardwareAccelImpl     = implReference
)

// IsHardwareAccelerated returns true iff the ML-KEM implementation will use
// hardware acceleration (eg: AVX2) for the NTT and modular arithmetic.
//
// This build only provides the portable reference code path; it always
// returns false. The hook is kept as a stable part of the public API for
// callers that already branch on it, and as the attachment point for a
// future assembly-accelerated build tagged variant.
func IsHardwareAccelerated() bool {
	return isHardwareAccelerated
}

func init() {
	initHardwareAcceleration()
}
