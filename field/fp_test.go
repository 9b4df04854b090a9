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

package field_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/fentec-project/sike/field"
	"github.com/fentec-project/sike/params"
	"github.com/stretchr/testify/assert"
)

func fpContext(t *testing.T, mode field.Mode) *field.Fp {
	prm, err := params.NewSikeParam("SIKEp434", mode)
	if err != nil {
		t.Fatalf("Error during parameter construction: %v", err)
	}
	return prm.Fp2.Fp
}

func randomElement(t *testing.T, f *field.Fp) field.FpElement {
	v, err := rand.Int(rand.Reader, f.P)
	if err != nil {
		t.Fatalf("Error during sampling: %v", err)
	}
	e, err := f.FromBytes(v.FillBytes(make([]byte, f.Bytes)))
	if err != nil {
		t.Fatalf("Error during element construction: %v", err)
	}
	return e
}

func testFpLaws(t *testing.T, mode field.Mode) {
	f := fpContext(t, mode)
	a := randomElement(t, f)
	b := randomElement(t, f)
	c := randomElement(t, f)

	assert.True(t, f.Eq(f.Mul(a, f.One()), a), "a * 1 should equal a")
	assert.True(t, f.Eq(f.Add(a, f.Zero()), a), "a + 0 should equal a")
	assert.True(t, f.Eq(f.Add(a, b), f.Add(b, a)), "addition should commute")
	assert.True(t, f.Eq(f.Mul(a, b), f.Mul(b, a)), "multiplication should commute")
	assert.True(t, f.Eq(f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c))),
		"multiplication should associate")
	assert.True(t, f.Eq(f.Mul(a, f.Add(b, c)), f.Add(f.Mul(a, b), f.Mul(a, c))),
		"multiplication should distribute over addition")
	assert.True(t, f.Eq(f.Sqr(a), f.Mul(a, a)), "squaring should match multiplication")
	assert.True(t, f.IsZero(f.Add(a, f.Neg(a))), "a + (-a) should vanish")
	if !f.IsZero(a) {
		assert.True(t, f.Eq(f.Mul(a, f.Inv(a)), f.One()), "a * a^-1 should equal 1")
	}
}

func TestFp_Laws(t *testing.T) {
	for _, mode := range []field.Mode{field.Reference, field.Optimized} {
		t.Run(modeName(mode), func(t *testing.T) {
			testFpLaws(t, mode)
		})
	}
}

func TestFp_InvMatchesBigInt(t *testing.T) {
	f := fpContext(t, field.Optimized)
	a := randomElement(t, f)
	inv := f.Inv(a)
	v := new(big.Int).SetBytes(f.ToBytes(a))
	expected := new(big.Int).ModInverse(v, f.P)
	assert.Equal(t, expected.FillBytes(make([]byte, f.Bytes)), f.ToBytes(inv),
		"chain inversion should match math/big")
}

func TestFp_BytesRoundTrip(t *testing.T) {
	for _, mode := range []field.Mode{field.Reference, field.Optimized} {
		t.Run(modeName(mode), func(t *testing.T) {
			f := fpContext(t, mode)
			a := randomElement(t, f)
			b := f.ToBytes(a)
			back, err := f.FromBytes(b)
			if err != nil {
				t.Fatalf("Error during deserialization: %v", err)
			}
			assert.True(t, f.Eq(a, back), "round trip should preserve the element")
			assert.Equal(t, b, f.ToBytes(back), "serialization should be stable")
		})
	}
}

func TestFp_RejectsOutOfRange(t *testing.T) {
	f := fpContext(t, field.Optimized)
	_, err := f.FromBytes(f.P.FillBytes(make([]byte, f.Bytes)))
	assert.Error(t, err, "p itself should be rejected")
	_, err = f.FromBytes(make([]byte, f.Bytes-1))
	assert.Error(t, err, "short input should be rejected")
}

func TestFp_ReferenceMatchesOptimized(t *testing.T) {
	ref := fpContext(t, field.Reference)
	opt := fpContext(t, field.Optimized)
	raw := make([][]byte, 2)
	for i := range raw {
		v, err := rand.Int(rand.Reader, ref.P)
		if err != nil {
			t.Fatalf("Error during sampling: %v", err)
		}
		raw[i] = v.FillBytes(make([]byte, ref.Bytes))
	}
	ar, _ := ref.FromBytes(raw[0])
	br, _ := ref.FromBytes(raw[1])
	ao, _ := opt.FromBytes(raw[0])
	bo, _ := opt.FromBytes(raw[1])

	assert.Equal(t, ref.ToBytes(ref.Add(ar, br)), opt.ToBytes(opt.Add(ao, bo)))
	assert.Equal(t, ref.ToBytes(ref.Sub(ar, br)), opt.ToBytes(opt.Sub(ao, bo)))
	assert.Equal(t, ref.ToBytes(ref.Neg(ar)), opt.ToBytes(opt.Neg(ao)))
	assert.Equal(t, ref.ToBytes(ref.Mul(ar, br)), opt.ToBytes(opt.Mul(ao, bo)))
	assert.Equal(t, ref.ToBytes(ref.Sqr(ar)), opt.ToBytes(opt.Sqr(ao)))
	assert.Equal(t, ref.ToBytes(ref.Inv(ar)), opt.ToBytes(opt.Inv(ao)))
}

func modeName(mode field.Mode) string {
	if mode == field.Reference {
		return "reference"
	}
	return "optimized"
}
