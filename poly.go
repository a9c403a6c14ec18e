// poly.go - ML-KEM polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// halfQ is ceil(q/2), the coefficient frommsg maps a set message bit to.
const halfQ = (kyberQ + 1) / 2

// Elements of R_q = Z_q[X]/(X^n + 1). Represents polynomial coeffs[0] +
// X*coeffs[1] + X^2*coeffs[2] + ... + X^{n-1}*coeffs[n-1].
//
// Whether a given poly is in normal domain or NTT domain is not tracked by
// the type; it is a property of the call sequence that produced the value,
// exactly as in the reference implementation this is ported from. Callers
// MUST NOT mix domains in add/sub, MUST NOT pass an NTT-domain poly to
// fromMsg/toMsg, nor a normal-domain poly to baseMulMontgomery.
type poly struct {
	coeffs [kyberN]int16
}

// add computes p = a + b, without reducing. Coefficient growth is the
// caller's responsibility to bound.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

// sub computes p = a - b, without reducing.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}

// reduce applies Barrett reduction to every coefficient, bringing each to
// |coeff| < q.
func (p *poly) reduce() {
	for i, c := range p.coeffs {
		p.coeffs[i] = barrettReduce(c)
	}
}

// tomont multiplies every coefficient by R = 2^16 mod q, converting a
// normal-domain poly into Montgomery form.
func (p *poly) tomont() {
	const r2modq = 1353 // (2^32) mod q, ie: R^2 mod q.
	for i, c := range p.coeffs {
		p.coeffs[i] = montgomeryReduce(int32(c) * r2modq)
	}
}

// ntt computes the in-place forward NTT; input in normal order, output in
// bit-reversed order. Followed by a Barrett reduce, per spec.
func (p *poly) ntt() {
	nttRef(&p.coeffs)
	p.reduce()
}

// invntt computes the in-place inverse NTT, leaving the result in
// Montgomery form; input in bit-reversed order, output in normal order.
func (p *poly) invntt() {
	invnttRefToMont(&p.coeffs)
}

// baseMulMontgomery computes p = a*b, where a and b are both in NTT domain,
// via 128 independent degree-1 polynomial multiplications.
func (p *poly) baseMulMontgomery(a, b *poly) {
	for i := 0; i < kyberN/4; i++ {
		zeta := zetas[64+i]
		basemulMontgomery(
			(*[2]int16)(p.coeffs[4*i:4*i+2]),
			(*[2]int16)(a.coeffs[4*i:4*i+2]),
			(*[2]int16)(b.coeffs[4*i:4*i+2]),
			zeta,
		)
		basemulMontgomery(
			(*[2]int16)(p.coeffs[4*i+2:4*i+4]),
			(*[2]int16)(a.coeffs[4*i+2:4*i+4]),
			(*[2]int16)(b.coeffs[4*i+2:4*i+4]),
			-zeta,
		)
	}
}

// toBytes serializes a polynomial's 256 coefficients as 384 bytes of
// 12-bit little-endian values, canonicalizing coefficients into [0, q)
// first.
func (p *poly) toBytes(r []byte) {
	var vals [kyberN]uint16
	for i, c := range p.coeffs {
		vals[i] = canonical(barrettReduce(c))
	}
	packBits(r, &vals, 12)
}

// fromBytes deserializes a polynomial from 384 bytes; the approximate
// inverse of toBytes (coefficients come back canonicalized into [0, q)).
func (p *poly) fromBytes(a []byte) {
	var vals [kyberN]uint16
	unpackBits(&vals, a, 12)
	for i, v := range vals {
		p.coeffs[i] = int16(v)
	}
}

// compress lossily quantizes and serializes a polynomial to
// ceil(n*d/8) bytes, d in {4, 5, 10, 11}.
func (p *poly) compress(r []byte, d int) {
	var vals [kyberN]uint16
	shift := uint32(1) << uint(d)
	for i, c := range p.coeffs {
		x := uint32(canonical(barrettReduce(c)))
		vals[i] = uint16(((x << uint(d)) + kyberQ/2) / kyberQ & (shift - 1))
	}
	packBits(r, &vals, d)
}

// decompress is the approximate inverse of compress.
func (p *poly) decompress(a []byte, d int) {
	var vals [kyberN]uint16
	unpackBits(&vals, a, d)
	half := uint32(1) << uint(d-1)
	for i, v := range vals {
		p.coeffs[i] = int16((uint32(kyberQ)*uint32(v) + half) >> uint(d))
	}
}

// fromMsg expands a 32-byte message into a polynomial, mapping bit j of
// byte i to coefficient 8*i+j: set bits become halfQ, clear bits become 0.
// The mapping is constant-time with respect to the message.
func (p *poly) fromMsg(msg []byte) {
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			mask := -int16((v >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & halfQ
		}
	}
}

// toMsg is the approximate inverse of fromMsg, rounding each coefficient to
// the nearest multiple of halfQ and reading off the corresponding bit,
// constant-time with respect to the coefficients.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			c := uint32(canonical(barrettReduce(p.coeffs[8*i+j])))
			t := ((c << 1) + kyberQ/2) / kyberQ & 1
			msg[i] |= byte(t) << uint(j)
		}
	}
}

// getNoise samples a polynomial deterministically from a seed and a nonce,
// with coefficients distributed according to a centered binomial
// distribution with parameter eta (PRF, per the symmetric adapter).
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	buf := make([]byte, eta*kyberN/4)
	prf(buf, seed, nonce)
	cbd(p, buf, eta)
}

// packBits packs kyberN d-bit values into ceil(kyberN*d/8) bytes,
// little-endian bit concatenation (FIPS 203's ByteEncode_d).
func packBits(dst []byte, vals *[kyberN]uint16, d int) {
	var acc uint32
	accBits, pos := 0, 0
	for _, v := range vals {
		acc |= uint32(v) << uint(accBits)
		accBits += d
		for accBits >= 8 {
			dst[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
}

// unpackBits is the inverse of packBits (FIPS 203's ByteDecode_d).
func unpackBits(vals *[kyberN]uint16, src []byte, d int) {
	mask := uint32(1)<<uint(d) - 1

	var acc uint32
	accBits, pos := 0, 0
	for i := range vals {
		for accBits < d {
			acc |= uint32(src[pos]) << uint(accBits)
			accBits += 8
			pos++
		}
		vals[i] = uint16(acc & mask)
		acc >>= uint(d)
		accBits -= d
	}
}
