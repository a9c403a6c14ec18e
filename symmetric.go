// symmetric.go - Symmetric primitives (hash, XOF, PRF) underlying ML-KEM.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"golang.org/x/crypto/sha3"
)

// hH is H(s) = SHA3-256(s), used to hash public keys.
func hH(dst, s []byte) []byte {
	d := sha3.Sum256(s)
	return append(dst[:0], d[:]...)
}

// gG is G(s) = SHA3-512(s), split by the caller into two 32-byte halves.
func gG(s []byte) [64]byte {
	return sha3.Sum512(s)
}

// prf is PRF_eta(s, b) = SHAKE256(s || b), squeezed to len(dst) bytes. dst
// must be sized eta*kyberN/4, per poly.getNoise.
func prf(dst, s []byte, b byte) {
	h := sha3.NewShake256()
	h.Write(s)
	h.Write([]byte{b})
	if _, err := h.Read(dst); err != nil {
		panic("kyber: shake256 read: " + err.Error())
	}
}

// jJ is J(s) = SHAKE256(s), squeezed to SymSize bytes: the pseudorandom KDF
// used to derive an implicit-rejection shared secret from z and the
// rejected cipher text, so that a syntactically valid but invalid cipher
// text produces output indistinguishable from a valid encapsulation to an
// attacker that does not know z.
func jJ(z, ct []byte) [SymSize]byte {
	h := sha3.NewShake256()
	h.Write(z)
	h.Write(ct)
	var out [SymSize]byte
	if _, err := h.Read(out[:]); err != nil {
		panic("kyber: shake256 read: " + err.Error())
	}
	return out
}

// xof is the extendable-output function (SHAKE-128) used to expand a
// public seed and two byte indices into the uniform pseudorandom bytes
// genMatrix rejection-samples ring elements from.
type xof struct {
	state sha3.ShakeHash
}

func newXOF(seed []byte, i, j byte) *xof {
	x := &xof{state: sha3.NewShake128()}
	x.state.Write(seed)
	x.state.Write([]byte{i, j})
	return x
}

func (x *xof) squeeze(dst []byte) {
	if _, err := x.state.Read(dst); err != nil {
		panic("kyber: shake128 read: " + err.Error())
	}
}
