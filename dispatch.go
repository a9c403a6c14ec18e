// dispatch.go - Algorithm-tagged, flat ML-KEM entry points.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"errors"
	"io"
)

// Algorithm identifies an ML-KEM parameter set, for callers that want to
// select a variant by tag rather than by linking against a *ParameterSet
// directly (eg: when the algorithm is negotiated at runtime, as in a
// protocol handshake).
type Algorithm int

const (
	// MLKEM512 identifies ML-KEM-512 (K2).
	MLKEM512 Algorithm = iota
	// MLKEM768 identifies ML-KEM-768 (K3).
	MLKEM768
	// MLKEM1024 identifies ML-KEM-1024 (K4).
	MLKEM1024
)

// ErrInvalidAlgorithm is returned when an Algorithm value does not
// correspond to a known parameter set.
var ErrInvalidAlgorithm = errors.New("kyber: invalid algorithm")

// String returns the name of the parameter set an Algorithm identifies.
func (a Algorithm) String() string {
	p, err := a.Params()
	if err != nil {
		return "invalid"
	}
	return p.Name()
}

// Params returns the ParameterSet an Algorithm identifies.
func (a Algorithm) Params() (*ParameterSet, error) {
	switch a {
	case MLKEM512:
		return ML_KEM_512, nil
	case MLKEM768:
		return ML_KEM_768, nil
	case MLKEM1024:
		return ML_KEM_1024, nil
	default:
		return nil, ErrInvalidAlgorithm
	}
}

// Keypair generates an ML-KEM key pair for the given Algorithm, and returns
// the byte-serialized public and private keys. This mirrors the flat,
// algorithm-tagged entry points of libgcrypt's kyber_keypair/kyber_encap/
// kyber_decap, for callers that would rather not hold on to typed
// *PublicKey/*PrivateKey values.
func Keypair(algo Algorithm, rng io.Reader) (pk, sk []byte, err error) {
	p, err := algo.Params()
	if err != nil {
		return nil, nil, err
	}

	pub, priv, err := p.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}

	return pub.Bytes(), priv.Bytes(), nil
}

// Encapsulate generates a cipher text and shared secret under the given
// byte-serialized public key.
func Encapsulate(algo Algorithm, rng io.Reader, pk []byte) (cipherText, sharedSecret []byte, err error) {
	p, err := algo.Params()
	if err != nil {
		return nil, nil, err
	}
	if len(pk) != p.PublicKeySize() {
		return nil, nil, ErrInvalidKeySize
	}

	pub, err := p.PublicKeyFromBytes(pk)
	if err != nil {
		return nil, nil, err
	}

	return pub.Encapsulate(rng)
}

// Decapsulate recovers the shared secret for a cipher text, under the given
// byte-serialized private key.
func Decapsulate(algo Algorithm, sk, cipherText []byte) (sharedSecret []byte, err error) {
	p, err := algo.Params()
	if err != nil {
		return nil, err
	}
	if len(sk) != p.PrivateKeySize() {
		return nil, ErrInvalidKeySize
	}
	if len(cipherText) != p.CipherTextSize() {
		return nil, ErrInvalidCipherTextSize
	}

	priv, err := p.PrivateKeyFromBytes(sk)
	if err != nil {
		return nil, err
	}

	return priv.Decapsulate(cipherText), nil
}
