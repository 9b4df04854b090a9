/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sike implements the supersingular-isogeny key encapsulation
// mechanism: an IND-CCA KEM obtained from the underlying isogeny-based
// public-key encryption via the Hofheinz-Hovelmanns-Kiltz transform,
// with SHAKE256-derived session keys and implicit rejection on the
// decapsulation path.
package sike

import (
	"crypto/subtle"
	"io"

	"github.com/fentec-project/sike/curve"
	"github.com/fentec-project/sike/internal"
	"github.com/fentec-project/sike/isogeny"
	"github.com/fentec-project/sike/params"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// GenerateKeyPair draws a fresh key pair from rng: the implicit
// rejection seed s, the masked secret scalar on the 3-power side, and
// the public key obtained by walking the corresponding isogeny.
func GenerateKeyPair(prm *params.SikeParam, rng io.Reader) ([]byte, []byte, error) {
	s := make([]byte, prm.MessageBytes)
	if _, err := io.ReadFull(rng, s); err != nil {
		return nil, nil, errors.Wrap(err, "error while sampling the rejection seed")
	}
	scalar := make([]byte, prm.SecretKeyBBytes)
	if _, err := io.ReadFull(rng, scalar); err != nil {
		return nil, nil, errors.Wrap(err, "error while sampling the secret scalar")
	}
	scalar[len(scalar)-1] &= prm.MaskB

	pub := publicFromScalarB(prm, scalar)
	sk := &SecretKey{prm: prm, s: s, scalar: scalar, pub: pub}
	return pub.Bytes(), sk.Bytes(), nil
}

// Encapsulate derives a fresh session key against the given public
// key. It returns the ciphertext and the session key.
func Encapsulate(prm *params.SikeParam, pkBytes []byte, rng io.Reader) ([]byte, []byte, error) {
	pub, err := NewPublicKeyFromBytes(prm, pkBytes)
	if err != nil {
		return nil, nil, err
	}
	m := make([]byte, prm.MessageBytes)
	if _, err := io.ReadFull(rng, m); err != nil {
		return nil, nil, errors.Wrap(err, "error while sampling the message")
	}
	defer wipeBytes(m)

	scalar := deriveScalarA(prm, m, pkBytes)
	defer wipeBytes(scalar)

	c0 := ciphertextC0(prm, scalar)
	j := sharedFromA(prm, scalar, pub)
	defer wipeBytes(j)

	mask := shake(prm.MessageBytes, j)
	c1 := make([]byte, prm.MessageBytes)
	for i := range c1 {
		c1[i] = m[i] ^ mask[i]
	}
	ct := append(c0, c1...)
	ss := shake(prm.CryptoBytes, m, ct)
	return ct, ss, nil
}

// Decapsulate recovers the session key from a ciphertext. A ciphertext
// of the wrong length, or whose first part holds a component outside
// the field, is rejected with an error. Any other invalid ciphertext is
// not signalled: the HHK transform re-encrypts the recovered message
// and, on mismatch, derives the session key from the secret rejection
// seed instead, so the caller observes a pseudorandom key either way.
func Decapsulate(prm *params.SikeParam, skBytes, ctBytes []byte) ([]byte, error) {
	sk, err := NewSecretKeyFromBytes(prm, skBytes)
	if err != nil {
		return nil, err
	}
	defer sk.Wipe()
	if len(ctBytes) != prm.CiphertextBytes {
		return nil, internal.MalformedCipher
	}
	c0 := ctBytes[:prm.PublicKeyBytes]
	c1 := ctBytes[prm.PublicKeyBytes:]
	ephemeral, err := NewPublicKeyFromBytes(prm, c0)
	if err != nil {
		return nil, internal.MalformedCipher
	}

	j := sharedFromB(prm, sk.scalar, ephemeral)
	defer wipeBytes(j)
	mask := shake(prm.MessageBytes, j)
	m := make([]byte, prm.MessageBytes)
	for i := range m {
		m[i] = c1[i] ^ mask[i]
	}
	defer wipeBytes(m)

	pkBytes := sk.pub.Bytes()
	scalar := deriveScalarA(prm, m, pkBytes)
	defer wipeBytes(scalar)
	c0Check := ciphertextC0(prm, scalar)

	// Implicit rejection: substitute the secret seed for the message
	// without a secret-dependent branch.
	eq := subtle.ConstantTimeCompare(c0, c0Check)
	pre := make([]byte, prm.MessageBytes)
	for i := range pre {
		pre[i] = byte(subtle.ConstantTimeSelect(eq, int(m[i]), int(sk.s[i])))
	}
	defer wipeBytes(pre)
	return shake(prm.CryptoBytes, pre, ctBytes), nil
}

// deriveScalarA expands m || pk into the masked ephemeral scalar of
// the 2-power side.
func deriveScalarA(prm *params.SikeParam, m, pkBytes []byte) []byte {
	scalar := shake(prm.SecretKeyABytes, m, pkBytes)
	scalar[len(scalar)-1] &= prm.MaskA
	return scalar
}

// publicFromScalarB walks the 3-power isogeny with kernel
// PB + scalar*QB from the base curve and returns the images of the
// 2-power basis as a public key.
func publicFromScalarB(prm *params.SikeParam, scalar []byte) *PublicKey {
	f := prm.Fp2
	a := f.Generate(6)
	kernel := curve.Ladder3Pt(f, scalar, prm.BitsB, prm.PB.X, prm.QB.X, prm.RB.X, a)
	defer kernel.Wipe()
	images := []curve.ProjectivePoint{
		prm.PA.Projective(f),
		prm.QA.Projective(f),
		prm.RA.Projective(f),
	}
	a24minus := f.Sub(a, f.Generate(2))
	a24plus := f.Add(a, f.Generate(2))
	_, _, images = isogeny.ThreePowerWalk(f, kernel, a24minus, a24plus, images, prm.StrategyB, prm.TreeRowsB)
	return &PublicKey{
		prm: prm,
		P:   curve.Normalize(f, images[0]),
		Q:   curve.Normalize(f, images[1]),
		R:   curve.Normalize(f, images[2]),
	}
}

// ciphertextC0 walks the 2-power isogeny with kernel
// PA + scalar*QA from the base curve and serializes the images of the
// 3-power basis.
func ciphertextC0(prm *params.SikeParam, scalar []byte) []byte {
	f := prm.Fp2
	a := f.Generate(6)
	kernel := curve.Ladder3Pt(f, scalar, prm.BitsA, prm.PA.X, prm.QA.X, prm.RA.X, a)
	defer kernel.Wipe()
	images := []curve.ProjectivePoint{
		prm.PB.Projective(f),
		prm.QB.Projective(f),
		prm.RB.Projective(f),
	}
	a24plus := f.Add(a, f.Generate(2))
	c24 := f.Generate(4)
	_, _, images = isogeny.TwoPowerWalk(f, kernel, a24plus, c24, images, prm.StrategyA, prm.EA)
	pub := &PublicKey{
		prm: prm,
		P:   curve.Normalize(f, images[0]),
		Q:   curve.Normalize(f, images[1]),
		R:   curve.Normalize(f, images[2]),
	}
	return pub.Bytes()
}

// sharedFromA reconstructs the curve behind pk, walks the 2-power
// isogeny with the given scalar and returns the serialized j-invariant
// of the final codomain.
func sharedFromA(prm *params.SikeParam, scalar []byte, pk *PublicKey) []byte {
	f := prm.Fp2
	a := curve.RecoverCurveCoefficient(f, pk.P, pk.Q, pk.R)
	kernel := curve.Ladder3Pt(f, scalar, prm.BitsA, pk.P, pk.Q, pk.R, a)
	defer kernel.Wipe()
	a24plus := f.Add(a, f.Generate(2))
	c24 := f.Generate(4)
	a24plus, c24, _ = isogeny.TwoPowerWalk(f, kernel, a24plus, c24, nil, prm.StrategyA, prm.EA)
	codomain := curve.CodomainFromPlusC(f, a24plus, c24)
	j := curve.JInvariant(f, codomain, f.One())
	return f.ToBytes(j)
}

// sharedFromB is the 3-power counterpart of sharedFromA.
func sharedFromB(prm *params.SikeParam, scalar []byte, pk *PublicKey) []byte {
	f := prm.Fp2
	a := curve.RecoverCurveCoefficient(f, pk.P, pk.Q, pk.R)
	kernel := curve.Ladder3Pt(f, scalar, prm.BitsB, pk.P, pk.Q, pk.R, a)
	defer kernel.Wipe()
	a24minus := f.Sub(a, f.Generate(2))
	a24plus := f.Add(a, f.Generate(2))
	a24minus, a24plus, _ = isogeny.ThreePowerWalk(f, kernel, a24minus, a24plus, nil, prm.StrategyB, prm.TreeRowsB)
	codomain := curve.CodomainFromPlusMinus(f, a24plus, a24minus)
	j := curve.JInvariant(f, codomain, f.One())
	return f.ToBytes(j)
}

// shake concatenates the inputs and expands them with SHAKE256 to n
// bytes.
func shake(n int, in ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, b := range in {
		h.Write(b)
	}
	out := make([]byte, n)
	h.Read(out)
	return out
}
