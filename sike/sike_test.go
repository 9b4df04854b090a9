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

package sike_test

import (
	"crypto/rand"
	"testing"

	"github.com/fentec-project/sike/field"
	"github.com/fentec-project/sike/params"
	"github.com/fentec-project/sike/sike"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"
)

var variantNames = []string{"SIKEp434", "SIKEp503", "SIKEp610", "SIKEp751"}

func testRoundTrip(t *testing.T, name string, mode field.Mode) {
	prm, err := params.NewSikeParam(name, mode)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	pk, sk, err := sike.GenerateKeyPair(prm, rand.Reader)
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	assert.Equal(t, prm.PublicKeyBytes, len(pk))
	assert.Equal(t, prm.SecretKeyBytes, len(sk))

	ct, ssE, err := sike.Encapsulate(prm, pk, rand.Reader)
	if err != nil {
		t.Fatalf("Error during encapsulation: %v", err)
	}
	assert.Equal(t, prm.CiphertextBytes, len(ct))
	assert.Equal(t, prm.CryptoBytes, len(ssE))

	ssD, err := sike.Decapsulate(prm, sk, ct)
	if err != nil {
		t.Fatalf("Error during decapsulation: %v", err)
	}
	assert.Equal(t, ssE, ssD, "encapsulated and decapsulated keys should match")
}

func TestSike_RoundTrip(t *testing.T) {
	for _, name := range variantNames {
		t.Run(name, func(t *testing.T) {
			testRoundTrip(t, name, field.Optimized)
		})
	}
	t.Run("SIKEp434/reference", func(t *testing.T) {
		testRoundTrip(t, "SIKEp434", field.Reference)
	})
}

func TestSike_KeySizes(t *testing.T) {
	prm, err := params.NewSikeParam("SIKEp434", field.Optimized)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	assert.Equal(t, 330, prm.PublicKeyBytes)
	assert.Equal(t, 374, prm.SecretKeyBytes)
	assert.Equal(t, 346, prm.CiphertextBytes)
	assert.Equal(t, 16, prm.CryptoBytes)
}

func TestSike_ImplicitRejection(t *testing.T) {
	prm, err := params.NewSikeParam("SIKEp434", field.Optimized)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	pk, sk, err := sike.GenerateKeyPair(prm, rand.Reader)
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	ct, ssE, err := sike.Encapsulate(prm, pk, rand.Reader)
	if err != nil {
		t.Fatalf("Error during encapsulation: %v", err)
	}

	tampered := make([]byte, len(ct))
	copy(tampered, ct)
	// Flip the lowest bit of the first field component, so the tampered
	// ciphertext still parses and reaches the rejection path.
	tampered[prm.Fp2.Fp.Bytes-1] ^= 1

	ss1, err := sike.Decapsulate(prm, sk, tampered)
	if err != nil {
		t.Fatalf("Error during decapsulation: %v", err)
	}
	assert.NotEqual(t, ssE, ss1, "tampered ciphertext should not yield the session key")

	ss2, err := sike.Decapsulate(prm, sk, tampered)
	if err != nil {
		t.Fatalf("Error during decapsulation: %v", err)
	}
	assert.Equal(t, ss1, ss2, "rejection should be deterministic per key")

	// The rejection key is SHAKE256(s || ct) with the secret seed s
	// stored at the head of the secret key.
	h := sha3.NewShake256()
	h.Write(sk[:prm.MessageBytes])
	h.Write(tampered)
	expected := make([]byte, prm.CryptoBytes)
	h.Read(expected)
	assert.Equal(t, expected, ss1, "rejection key should be bound to the seed")

	// A different secret key rejects to a different value.
	_, sk2, err := sike.GenerateKeyPair(prm, rand.Reader)
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	ss3, err := sike.Decapsulate(prm, sk2, tampered)
	if err != nil {
		t.Fatalf("Error during decapsulation: %v", err)
	}
	assert.NotEqual(t, ss1, ss3, "distinct keys should reject to distinct values")
}

func TestSike_PublicKeyRoundTrip(t *testing.T) {
	prm, err := params.NewSikeParam("SIKEp434", field.Optimized)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	pk, _, err := sike.GenerateKeyPair(prm, rand.Reader)
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	parsed, err := sike.NewPublicKeyFromBytes(prm, pk)
	if err != nil {
		t.Fatalf("Error during deserialization: %v", err)
	}
	assert.Equal(t, pk, parsed.Bytes(), "deserialize then serialize should be the identity")
}

func TestSike_ParseRejection(t *testing.T) {
	prm, err := params.NewSikeParam("SIKEp434", field.Optimized)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	_, err = sike.NewPublicKeyFromBytes(prm, make([]byte, 3))
	assert.Error(t, err, "wrong-length public key should be rejected")

	oversized := make([]byte, prm.PublicKeyBytes)
	for i := range oversized {
		oversized[i] = 0xff
	}
	_, err = sike.NewPublicKeyFromBytes(prm, oversized)
	assert.Error(t, err, "out-of-field components should be rejected")

	_, err = sike.NewSecretKeyFromBytes(prm, make([]byte, 10))
	assert.Error(t, err, "wrong-length secret key should be rejected")

	_, _, err = sike.Encapsulate(prm, make([]byte, 5), rand.Reader)
	assert.Error(t, err, "encapsulation should reject malformed keys")

	_, sk, err := sike.GenerateKeyPair(prm, rand.Reader)
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	_, err = sike.Decapsulate(prm, sk, make([]byte, 5))
	assert.Error(t, err, "decapsulation should reject wrong-length ciphertexts")
}

func TestSike_ReferenceMatchesOptimized(t *testing.T) {
	ref, err := params.NewSikeParam("SIKEp434", field.Reference)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	opt, err := params.NewSikeParam("SIKEp434", field.Optimized)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	seed := make([]byte, 32)
	pkR, skR, err := sike.GenerateKeyPair(ref, newShakeReader(seed))
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	pkO, skO, err := sike.GenerateKeyPair(opt, newShakeReader(seed))
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	assert.Equal(t, pkR, pkO, "engines should produce identical public keys")
	assert.Equal(t, skR, skO, "engines should produce identical secret keys")
}
