// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// loadLittleEndian32 loads 4 bytes into a uint32 in little-endian order.
func loadLittleEndian32(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16 | uint32(x[3])<<24
}

// loadLittleEndian24 loads 3 bytes into a uint32 in little-endian order.
func loadLittleEndian24(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16
}

// cbd2 samples a polynomial with coefficients in [-2, 2] from eta2*n/4 = 128
// bytes of PRF output, distributed according to a centered binomial
// distribution with parameter 2. Table-free and branch-free on the input
// bytes (the only branching is the fixed loop trip count).
func cbd2(p *poly, buf []byte) {
	for i := 0; i < kyberN/8; i++ {
		t := loadLittleEndian32(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := int16((d >> (4*uint(j) + 0)) & 0x3)
			b := int16((d >> (4*uint(j) + 2)) & 0x3)
			p.coeffs[8*i+j] = a - b
		}
	}
}

// cbd3 samples a polynomial with coefficients in [-3, 3] from eta1*n/4 = 192
// bytes of PRF output (eta1 = 3, used only by K2's secret/error terms),
// distributed according to a centered binomial distribution with
// parameter 3.
func cbd3(p *poly, buf []byte) {
	for i := 0; i < kyberN/4; i++ {
		t := loadLittleEndian24(buf[3*i:])
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249

		for j := 0; j < 4; j++ {
			a := int16((d >> (6*uint(j) + 0)) & 0x7)
			b := int16((d >> (6*uint(j) + 3)) & 0x7)
			p.coeffs[4*i+j] = a - b
		}
	}
}

// cbd samples a polynomial according to a centered binomial distribution
// with parameter eta in {2, 3}, as required by spec.
func cbd(p *poly, buf []byte, eta int) {
	switch eta {
	case 2:
		cbd2(p, buf)
	case 3:
		cbd3(p, buf)
	default:
		panic("kyber: eta must be in {2,3}")
	}
}
