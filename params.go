// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	// polySize is the size in bytes of a serialized polynomial with
	// 12-bit coefficients (used for public/private keys).
	polySize = 384

	// eta2 is the noise parameter for the second-stage error terms of
	// encryption; it is the same across all three parameter sets.
	eta2 = 2
)

var (
	// ML_KEM_512 is the ML-KEM-512 parameter set (K2), which aims to provide
	// security equivalent to AES-128.
	//
	// This parameter set has a 1632 byte private key, 800 byte public key,
	// and a 768 byte cipher text.
	ML_KEM_512 = newParameterSet("ML-KEM-512", 2, 3, 10, 4)

	// ML_KEM_768 is the ML-KEM-768 parameter set (K3), which aims to provide
	// security equivalent to AES-192.
	//
	// This parameter set has a 2400 byte private key, 1184 byte public key,
	// and a 1088 byte cipher text.
	ML_KEM_768 = newParameterSet("ML-KEM-768", 3, 2, 10, 4)

	// ML_KEM_1024 is the ML-KEM-1024 parameter set (K4), which aims to
	// provide security equivalent to AES-256.
	//
	// This parameter set has a 3168 byte private key, 1568 byte public key,
	// and a 1568 byte cipher text.
	ML_KEM_1024 = newParameterSet("ML-KEM-1024", 4, 2, 11, 5)
)

// ParameterSet is an ML-KEM parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	du   int
	dv   int

	polyVecSize int

	compressedUSize int // k * n * du / 8
	compressedVSize int // n * dv / 8

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k, eta1, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.du = du
	p.dv = dv

	p.polyVecSize = k * polySize

	p.compressedUSize = k * kyberN * du / 8
	p.compressedVSize = kyberN * dv / 8

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.compressedUSize + p.compressedVSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // H(pk) and z
	p.cipherTextSize = p.indcpaSize

	return &p
}
