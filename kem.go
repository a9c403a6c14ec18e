// kem.go - ML-KEM key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"
)

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("kyber: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte serialized
	// cipher text is an invalid size.
	ErrInvalidCipherTextSize = errors.New("kyber: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("kyber: invalid private key")
)

// PrivateKey is an ML-KEM private (decapsulation) key.
type PrivateKey struct {
	PublicKey
	sk []byte // packed K-PKE secret key, NTT domain.
	z  []byte // implicit rejection seed.
}

// Bytes returns the byte serialization of a PrivateKey: the K-PKE secret
// key, the embedded public key, the hash of the public key, and the
// implicit rejection seed, concatenated in that order.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk...)
	b = append(b, sk.PublicKey.pk...)
	b = append(b, sk.PublicKey.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.PublicKey.p = p

	off := p.indcpaSecretKeySize
	sk.PublicKey.pk = append([]byte(nil), b[off:off+p.publicKeySize]...)
	copy(sk.PublicKey.h[:], hH(nil, sk.PublicKey.pk))
	off += p.publicKeySize

	if !bytes.Equal(sk.PublicKey.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize

	sk.z = append([]byte(nil), b[off:]...)
	sk.sk = append([]byte(nil), b[:p.indcpaSecretKeySize]...)

	return sk, nil
}

// PublicKey is an ML-KEM public (encapsulation) key.
type PublicKey struct {
	p  *ParameterSet
	pk []byte        // packed K-PKE public key (t in NTT domain, and rho).
	h  [SymSize]byte // H(pk), cached for every encapsulation/decapsulation.
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.publicKeySize {
		return nil, ErrInvalidKeySize
	}

	pk := &PublicKey{
		p:  p,
		pk: append([]byte(nil), b...),
	}
	copy(pk.h[:], hH(nil, pk.pk))

	return pk, nil
}

// GenerateKeyPair generates an ML-KEM key pair for the given ParameterSet,
// per ML-KEM.KeyGen (FIPS 203 Algorithm 19).
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	pk, sk, err := p.indcpaKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}

	kp := new(PrivateKey)
	kp.PublicKey.p = p
	kp.PublicKey.pk = pk
	copy(kp.PublicKey.h[:], hH(nil, pk))
	kp.sk = sk

	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// Encapsulate generates a cipher text and shared secret under this public
// key, per ML-KEM.Encaps (FIPS 203 Algorithm 20). Unlike pre-standardization
// Kyber, the message m is used directly (not pre-hashed) as input to G.
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	var m [SymSize]byte
	if _, err = io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}

	var gIn [2 * SymSize]byte
	copy(gIn[:SymSize], m[:])
	copy(gIn[SymSize:], pk.h[:])
	kr := gG(gIn[:])
	k, r := kr[:SymSize], kr[SymSize:]

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, m[:], pk.pk, r)

	sharedSecret = append([]byte(nil), k...)
	return cipherText, sharedSecret, nil
}

// Decapsulate recovers the shared secret for a given cipher text, per
// ML-KEM.Decaps (FIPS 203 Algorithm 21). On a malformed or tampered cipher
// text, the returned shared secret is a pseudorandom value derived from the
// implicit rejection seed rather than an error, as required by the FO
// transform's implicit-rejection construction; callers cannot distinguish
// a rejected decapsulation from a genuine one by return value alone.
//
// Providing a cipher text of the wrong length is a caller error and panics.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte) {
	p := sk.PublicKey.p
	if len(cipherText) != p.cipherTextSize {
		panic(ErrInvalidCipherTextSize)
	}

	m := make([]byte, SymSize)
	p.indcpaDecrypt(m, cipherText, sk.sk)

	var gIn [2 * SymSize]byte
	copy(gIn[:SymSize], m)
	copy(gIn[SymSize:], sk.PublicKey.h[:])
	kr := gG(gIn[:])
	kPrime, rPrime := kr[:SymSize], kr[SymSize:]

	kBar := jJ(sk.z, cipherText)

	cPrime := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cPrime, m, sk.PublicKey.pk, rPrime)

	ok := subtle.ConstantTimeCompare(cipherText, cPrime)

	sharedSecret = make([]byte, SymSize)
	subtle.ConstantTimeCopy(ok, sharedSecret, kPrime)
	subtle.ConstantTimeCopy(1-ok, sharedSecret, kBar[:])

	return sharedSecret
}
