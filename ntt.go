// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zetas holds zeta^BitRev7(i) * R mod q for i in [0, 128), where zeta = 17
// is a primitive 256-th root of unity mod q and R = 2^16 is the Montgomery
// constant. Entries are the signed representative of smallest magnitude.
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// fqmul computes montgomeryReduce(a*b) for two values that fit in int16;
// the workhorse of every NTT butterfly and of basemul.
func fqmul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// nttRef computes the in-place forward negacyclic number-theoretic
// transform of a polynomial (Cooley-Tukey, decimation in frequency).
// Input in normal order, output in bit-reversed order. Every coefficient
// is bounded by 7q in absolute value afterwards.
func nttRef(p *[kyberN]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, p[j+length])
				p[j+length] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// invnttRefToMont computes the in-place inverse negacyclic NTT
// (Gentleman-Sande, decimation in time), folding in a final multiplication
// by R^2/128 so that the result is both in normal order and in Montgomery
// form, ready for another round of fqmul without an extra tomont pass.
func invnttRefToMont(p *[kyberN]int16) {
	const f = 1441 // mont^2/128 mod q

	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p[j]
				p[j] = barrettReduce(t + p[j+length])
				p[j+length] = p[j+length] - t
				p[j+length] = fqmul(zeta, p[j+length])
			}
		}
	}

	for j := range p {
		p[j] = fqmul(p[j], f)
	}
}

// basemulMontgomery multiplies two degree-1 polynomials r = a*b modulo
// (X^2 - zeta), the basic operation NTT-domain coefficients are grouped
// into pairs for.
func basemulMontgomery(r, a, b *[2]int16, zeta int16) {
	r[0] = fqmul(a[1], b[1])
	r[0] = fqmul(r[0], zeta)
	r[0] += fqmul(a[0], b[0])

	r[1] = fqmul(a[0], b[1])
	r[1] += fqmul(a[1], b[0])
}
