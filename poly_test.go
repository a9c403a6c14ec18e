// poly_test.go - Polynomial serialization and compression tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyBytesRoundTrip(t *testing.T) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		var p poly
		for j := range p.coeffs {
			p.coeffs[j] = int16(i*j) % kyberQ
			if p.coeffs[j] < 0 {
				p.coeffs[j] += kyberQ
			}
		}

		buf := make([]byte, polySize)
		p.toBytes(buf)

		var q poly
		q.fromBytes(buf)

		require.Equal(p.coeffs, q.coeffs, "toBytes/fromBytes round trip: %v", i)
	}
}

func TestPolyCompressBound(t *testing.T) {
	require := require.New(t)

	for _, d := range []int{4, 5, 10, 11} {
		var p poly
		for j := range p.coeffs {
			var b [2]byte
			_, err := rand.Read(b[:])
			require.NoError(err)
			p.coeffs[j] = int16(uint16(b[0])|uint16(b[1])<<8) % kyberQ
			if p.coeffs[j] < 0 {
				p.coeffs[j] += kyberQ
			}
		}

		stride := kyberN * d / 8
		buf := make([]byte, stride)
		p.compress(buf, d)

		var q poly
		q.decompress(buf, d)

		// Compression is lossy: decompressed coefficients must remain within
		// the rounding error bound of +/- ceil(q / 2^(d+1)).
		bound := int32(kyberQ)/(int32(1)<<uint(d+1)) + 1
		for j := range p.coeffs {
			diff := int32(p.coeffs[j]) - int32(q.coeffs[j])
			if diff > kyberQ/2 {
				diff -= kyberQ
			} else if diff < -kyberQ/2 {
				diff += kyberQ
			}
			if diff < 0 {
				diff = -diff
			}
			require.LessOrEqualf(diff, bound, "d=%v coeff=%v: compress/decompress error too large", d, j)
		}
	}
}

func TestPolyMsgRoundTrip(t *testing.T) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		msg := make([]byte, SymSize)
		_, err := rand.Read(msg)
		require.NoError(err)

		var p poly
		p.fromMsg(msg)

		got := make([]byte, SymSize)
		p.toMsg(got)

		require.Equal(msg, got, "fromMsg/toMsg round trip: %v", i)
	}
}

func TestNTTInvolution(t *testing.T) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		var p poly
		for j := range p.coeffs {
			var b [2]byte
			_, err := rand.Read(b[:])
			require.NoError(err)
			p.coeffs[j] = barrettReduce(int16(uint16(b[0]) | uint16(b[1])<<8))
		}

		orig := p.coeffs

		p.ntt()
		// invntt leaves its result multiplied by R, so divide the NTT-domain
		// value by R first: invntt(ntt(p) * R^-1) == p.
		for j := range p.coeffs {
			p.coeffs[j] = montgomeryReduce(int32(p.coeffs[j]))
		}
		p.invntt()
		p.reduce()

		for j := range p.coeffs {
			got := canonical(p.coeffs[j])
			want := canonical(orig[j])
			require.Equalf(want, got, "coefficient %v", j)
		}
	}
}
