// doc.go - ML-KEM godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements ML-KEM (formerly CRYSTALS-Kyber), the
// IND-CCA2-secure key encapsulation mechanism (KEM) standardized by NIST as
// FIPS 203, based on the hardness of solving the learning-with-errors (LWE)
// problem over module lattices.
//
// Three parameter sets are provided: ML-KEM-512 (K2), ML-KEM-768 (K3), and
// ML-KEM-1024 (K4), distinguished by the module rank k.
//
// This implementation is a port of the Public Domain reference implementation
// by Joppe Bos, Léo Ducas, Eike Kiltz, Tancrède Lepoint, Vadim Lyubashevsky,
// John Schanck, Peter Schwabe, Gregor Seiler, and Damien Stehlé, updated to
// track the final FIPS 203 wire formats and domain separation rules (which
// diverge from the pre-standardization Kyber submission in the treatment of
// the KEM message and the public-key hash fed into G).
//
// Additionally implementations of Kyber.AKE and Kyber.UAKE as presented in
// the Kyber paper are included, rebuilt atop the FIPS 203 KEM, for users
// that seek an authenticated key exchange.
//
// For more information, see https://csrc.nist.gov/pubs/fips/203/final.
package kyber
