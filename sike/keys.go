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

package sike

import (
	"github.com/fentec-project/sike/field"
	"github.com/fentec-project/sike/internal"
	"github.com/fentec-project/sike/params"
	sha256 "github.com/minio/sha256-simd"
)

// PublicKey holds the three x-coordinates phi(P), phi(Q), phi(P-Q)
// describing the codomain curve of a party's secret isogeny.
type PublicKey struct {
	prm     *params.SikeParam
	P, Q, R field.Fp2Element
}

// NewPublicKeyFromBytes parses the uncompressed wire form, three
// extension-field elements of fixed length. Component values outside
// the field are rejected.
func NewPublicKeyFromBytes(prm *params.SikeParam, b []byte) (*PublicKey, error) {
	if len(b) != prm.PublicKeyBytes {
		return nil, internal.MalformedPubKey
	}
	f := prm.Fp2
	n := 2 * f.Fp.Bytes
	p, err := f.FromBytes(b[:n])
	if err != nil {
		return nil, internal.MalformedPubKey
	}
	q, err := f.FromBytes(b[n : 2*n])
	if err != nil {
		return nil, internal.MalformedPubKey
	}
	r, err := f.FromBytes(b[2*n:])
	if err != nil {
		return nil, internal.MalformedPubKey
	}
	return &PublicKey{prm: prm, P: p, Q: q, R: r}, nil
}

// Bytes serializes the key back to its wire form.
func (k *PublicKey) Bytes() []byte {
	f := k.prm.Fp2
	out := make([]byte, 0, k.prm.PublicKeyBytes)
	out = append(out, f.ToBytes(k.P)...)
	out = append(out, f.ToBytes(k.Q)...)
	out = append(out, f.ToBytes(k.R)...)
	return out
}

// Fingerprint returns the SHA-256 digest of the serialized public key,
// as used for key pinning and by the known-answer tests.
func Fingerprint(k *PublicKey) [32]byte {
	return sha256.Sum256(k.Bytes())
}

// SecretKey is the decapsulation key: the implicit-rejection seed s,
// the masked secret scalar, and a cached copy of the public key.
type SecretKey struct {
	prm    *params.SikeParam
	s      []byte
	scalar []byte
	pub    *PublicKey
}

// NewSecretKeyFromBytes parses the concatenation s || scalar || pk.
func NewSecretKeyFromBytes(prm *params.SikeParam, b []byte) (*SecretKey, error) {
	if len(b) != prm.SecretKeyBytes {
		return nil, internal.MalformedSecKey
	}
	s := make([]byte, prm.MessageBytes)
	copy(s, b[:prm.MessageBytes])
	scalar := make([]byte, prm.SecretKeyBBytes)
	copy(scalar, b[prm.MessageBytes:prm.MessageBytes+prm.SecretKeyBBytes])
	pub, err := NewPublicKeyFromBytes(prm, b[prm.MessageBytes+prm.SecretKeyBBytes:])
	if err != nil {
		return nil, internal.MalformedSecKey
	}
	return &SecretKey{prm: prm, s: s, scalar: scalar, pub: pub}, nil
}

// Bytes serializes the key back to its wire form.
func (k *SecretKey) Bytes() []byte {
	out := make([]byte, 0, k.prm.SecretKeyBytes)
	out = append(out, k.s...)
	out = append(out, k.scalar...)
	out = append(out, k.pub.Bytes()...)
	return out
}

// Public returns the cached public key.
func (k *SecretKey) Public() *PublicKey {
	return k.pub
}

// Wipe overwrites the secret material. The key must not be used
// afterwards.
func (k *SecretKey) Wipe() {
	wipeBytes(k.s)
	wipeBytes(k.scalar)
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
