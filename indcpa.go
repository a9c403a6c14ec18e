// indcpa.go - ML-KEM IND-CPA encryption scheme (K-PKE).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"io"
)

// packPublicKey serializes the public key as the concatenation of the
// serialized NTT-domain vector t and the public seed rho used to
// regenerate the matrix A.
func packPublicKey(r []byte, t *polyVec, rho []byte) {
	t.toBytes(r)
	copy(r[t.size():], rho[:SymSize])
}

// unpackPublicKey is the inverse of packPublicKey.
func unpackPublicKey(t *polyVec, rho, packedPk []byte) {
	t.fromBytes(packedPk)
	off := t.size()
	copy(rho, packedPk[off:off+SymSize])
}

// packCiphertext serializes a cipher text as the concatenation of the
// compressed vector u and the compressed polynomial v.
func packCiphertext(r []byte, p *ParameterSet, u *polyVec, v *poly) {
	u.compress(r, p.du)
	v.compress(r[p.compressedUSize:], p.dv)
}

// unpackCiphertext is the inverse of packCiphertext.
func unpackCiphertext(u *polyVec, v *poly, p *ParameterSet, c []byte) {
	u.decompress(c, p.du)
	v.decompress(c[p.compressedUSize:], p.dv)
}

// size returns the number of bytes a vector's toBytes/fromBytes
// serialization occupies: 384 bytes per ring element.
func (v *polyVec) size() int {
	return len(v.vec) * polySize
}

// genMatrix deterministically expands a seed into a k*k matrix of ring
// elements sampled directly in NTT domain (FIPS 203's SampleNTT), by
// rejection sampling 12-bit candidates two at a time out of 3-byte groups
// of XOF-128 output. When transposed is true, element (i,j) is sampled
// from seed bytes (j,i) rather than (i,j), producing A^T without an
// explicit transpose step.
func genMatrix(a []polyVec, seed []byte, transposed bool) {
	const (
		xofBlockBytes = 168 // SHAKE-128 rate, in bytes.
		xofBlocks     = 4
	)

	for i, row := range a {
		for j, p := range row.vec {
			var x *xof
			if transposed {
				x = newXOF(seed, byte(j), byte(i))
			} else {
				x = newXOF(seed, byte(i), byte(j))
			}

			buf := make([]byte, xofBlockBytes*xofBlocks)
			x.squeeze(buf)

			ctr, pos := 0, 0
			for ctr < kyberN {
				if pos+3 > len(buf) {
					extra := make([]byte, xofBlockBytes)
					x.squeeze(extra)
					buf = append(buf[pos:], extra...)
					pos = 0
				}

				b0, b1, b2 := uint32(buf[pos]), uint32(buf[pos+1]), uint32(buf[pos+2])
				pos += 3

				d1 := b0 | (b1&0xf)<<8
				d2 := b1>>4 | b2<<4

				if d1 < kyberQ {
					p.coeffs[ctr] = int16(d1)
					ctr++
				}
				if d2 < kyberQ && ctr < kyberN {
					p.coeffs[ctr] = int16(d2)
					ctr++
				}
			}
		}
	}
}

// indcpaKeyPair generates the underlying K-PKE keypair: a public key
// (t, rho) with t held in NTT domain, and a secret key s, also held in
// NTT domain.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (pk, sk []byte, err error) {
	d := make([]byte, SymSize)
	if _, err = io.ReadFull(rng, d); err != nil {
		return nil, nil, err
	}

	seedIn := make([]byte, 0, SymSize+1)
	seedIn = append(seedIn, d...)
	seedIn = append(seedIn, byte(p.k)) // FIPS 203 domain separator on k.
	g := gG(seedIn)
	rho, sigma := g[:SymSize], g[SymSize:]

	a := p.allocMatrix()
	genMatrix(a, rho, false)

	var n byte
	s := p.allocPolyVec()
	for _, pv := range s.vec {
		pv.getNoise(sigma, n, p.eta1)
		n++
	}

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoise(sigma, n, p.eta1)
		n++
	}

	s.ntt()
	e.ntt()

	t := p.allocPolyVec()
	for i, pv := range t.vec {
		pv.baseMulAccMontgomery(&s, &a[i])
		pv.tomont() // cancel the R^-1 baseMulAccMontgomery leaves behind.
	}
	t.add(&t, &e)
	t.reduce()

	pk = make([]byte, p.indcpaPublicKeySize)
	sk = make([]byte, p.indcpaSecretKeySize)
	packPublicKey(pk, &t, rho)
	s.toBytes(sk)

	return pk, sk, nil
}

// indcpaEncrypt is the K-PKE encryption function: deterministic given the
// 32-byte coins, which the caller (the KEM's FO transform) derives from
// the message and public key hash.
func (p *ParameterSet) indcpaEncrypt(c, m, pk, coins []byte) {
	t := p.allocPolyVec()
	rho := make([]byte, SymSize)
	unpackPublicKey(&t, rho, pk)

	at := p.allocMatrix()
	genMatrix(at, rho, true)

	var n byte
	r := p.allocPolyVec()
	for _, pv := range r.vec {
		pv.getNoise(coins, n, p.eta1)
		n++
	}

	e1 := p.allocPolyVec()
	for _, pv := range e1.vec {
		pv.getNoise(coins, n, eta2)
		n++
	}

	var e2 poly
	e2.getNoise(coins, n, eta2)

	r.ntt()

	u := p.allocPolyVec()
	for i, pv := range u.vec {
		pv.baseMulAccMontgomery(&r, &at[i])
		pv.invntt()
	}
	u.add(&u, &e1)
	u.reduce()

	var v poly
	v.baseMulAccMontgomery(&t, &r)
	v.invntt()

	var mu poly
	mu.fromMsg(m)

	v.add(&v, &e2)
	v.add(&v, &mu)
	v.reduce()

	packCiphertext(c, p, &u, &v)
}

// indcpaDecrypt is the K-PKE decryption function.
func (p *ParameterSet) indcpaDecrypt(m, c, sk []byte) {
	u, v := p.allocPolyVec(), poly{}
	unpackCiphertext(&u, &v, p, c)

	s := p.allocPolyVec()
	s.fromBytes(sk)

	u.ntt()

	var w poly
	w.baseMulAccMontgomery(&s, &u)
	w.invntt()

	w.sub(&v, &w)
	w.reduce()

	w.toMsg(m)
}

func (p *ParameterSet) allocMatrix() []polyVec {
	a := make([]polyVec, p.k)
	for i := range a {
		a[i] = newPolyVec(p.k)
	}
	return a
}

func (p *ParameterSet) allocPolyVec() polyVec {
	return newPolyVec(p.k)
}
