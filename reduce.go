// reduce.go - Montgomery and Barrett reduction.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// montR is 2^16 mod q, ie: the Montgomery constant R.
	montR = -1044

	// qinv is q^-1 mod 2^16.
	qinv = -3327

	// barrettV is round(2^26 / q), used by barrettReduce.
	barrettV = 20159
)

// montgomeryReduce computes r congruent to a * R^-1 (mod q), where R = 2^16,
// with |r| < q. a must fit in a signed 32-bit integer.
//
// This, and barrettReduce below, MUST be branch-free and data-independent
// in time: every secret-dependent polynomial coefficient in this package
// flows through one of the two.
func montgomeryReduce(a int32) int16 {
	t := int16(a) * qinv
	r := (a - int32(t)*kyberQ) >> 16
	return int16(r)
}

// barrettReduce computes r congruent to a (mod q) with |r| < q.
func barrettReduce(a int16) int16 {
	u := (int32(barrettV)*int32(a) + (1 << 25)) >> 26
	return a - int16(u)*kyberQ
}

// canonical reduces a, which must satisfy -kyberQ < a < kyberQ, into the
// range [0, kyberQ) by a single conditional addition of q. The conditional
// add is expressed as a mask so the operation has no secret-dependent
// branch.
func canonical(a int16) uint16 {
	mask := a >> 15 // all-ones if a < 0, all-zeroes otherwise.
	return uint16(a + (mask & kyberQ))
}
