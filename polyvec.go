// polyvec.go - Vector of ML-KEM polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// polyVec is an ordered sequence of k ring elements, k in {2, 3, 4}.
type polyVec struct {
	vec []*poly
}

// newPolyVec allocates a zeroed vector of k polynomials.
func newPolyVec(k int) polyVec {
	vec := make([]*poly, k)
	for i := range vec {
		vec[i] = new(poly)
	}
	return polyVec{vec}
}

// add computes v = a + b elementwise, without reducing.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// reduce applies Barrett reduction to every coefficient of every element.
func (v *polyVec) reduce() {
	for _, p := range v.vec {
		p.reduce()
	}
}

// ntt applies the forward NTT to every element.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every element.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// baseMulAccMontgomery computes r = sum_i a[i]*b[i], with a and b in NTT
// domain, accumulating into a temporary poly before a single final Barrett
// reduction.
func (r *poly) baseMulAccMontgomery(a, b *polyVec) {
	var t poly
	r.baseMulMontgomery(a.vec[0], b.vec[0])
	for i := 1; i < len(a.vec); i++ {
		t.baseMulMontgomery(a.vec[i], b.vec[i])
		r.add(r, &t)
	}
	r.reduce()
}

// toBytes serializes a vector of polynomials as the concatenation of each
// element's toBytes.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polySize:])
	}
}

// fromBytes deserializes a vector of polynomials; the inverse of toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polySize:])
	}
}

// compress lossily quantizes and serializes a vector of polynomials using
// d bits per coefficient (d_u from the owning ParameterSet).
func (v *polyVec) compress(r []byte, d int) {
	stride := kyberN * d / 8
	for i, p := range v.vec {
		p.compress(r[i*stride:], d)
	}
}

// decompress is the approximate inverse of compress.
func (v *polyVec) decompress(a []byte, d int) {
	stride := kyberN * d / 8
	for i, p := range v.vec {
		p.decompress(a[i*stride:], d)
	}
}
